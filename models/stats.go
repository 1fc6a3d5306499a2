package models

type RegistrationStats struct {
	TotalParticipants     int              `json:"totalParticipants"`
	TotalRegistrations    int              `json:"totalRegistrations"`
	ActiveRegistrations   int              `json:"activeRegistrations"`
	RegistrationsByType   map[string]int   `json:"registrationsByType"`
	RegistrationsByStatus map[string]int   `json:"registrationsByStatus"`
	ParticipantsByType    map[string]int   `json:"participantsByType"`
	ModalityStats         []ModalityStat   `json:"modalityStats"`
	AssemblyCapacity      AssemblyCapacity `json:"assemblyCapacity"`
}

type ModalityStat struct {
	ModalityID           string  `json:"modalityId"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	MaxParticipants      *int    `json:"maxParticipants,omitempty"`
	CurrentRegistrations int     `json:"currentRegistrations"`
	IsFull               bool    `json:"isFull"`
	IsNearFull           bool    `json:"isNearFull"`
}

type AssemblyCapacity struct {
	MaxParticipants      *int `json:"maxParticipants,omitempty"`
	CurrentRegistrations int  `json:"currentRegistrations"`
	IsFull               bool `json:"isFull"`
	IsNearFull           bool `json:"isNearFull"`
}
