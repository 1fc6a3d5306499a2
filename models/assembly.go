package models

const (
	AssemblyTypeAG  = "AG"
	AssemblyTypeAGE = "AGE"

	AssemblyStatusActive   = "active"
	AssemblyStatusArchived = "archived"
)

// Assembly is a general (AG) or extraordinary (AGE) assembly participants
// register for. Timestamps are unix milliseconds.
type Assembly struct {
	ID                   string `json:"id" db:"id"`
	Name                 string `json:"name" db:"name"`
	Type                 string `json:"type" db:"type"`
	Location             string `json:"location" db:"location"`
	StartDate            int64  `json:"startDate" db:"start_date"`
	EndDate              int64  `json:"endDate" db:"end_date"`
	Status               string `json:"status" db:"status"`
	CreatedAt            int64  `json:"createdAt" db:"created_at"`
	CreatedBy            string `json:"createdBy" db:"created_by"`
	LastUpdated          int64  `json:"lastUpdated" db:"last_updated"`
	LastUpdatedBy        string `json:"lastUpdatedBy" db:"last_updated_by"`
	RegistrationOpen     bool   `json:"registrationOpen" db:"registration_open"`
	RegistrationDeadline *int64 `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	MaxParticipants      *int   `json:"maxParticipants,omitempty" db:"max_participants"`
	Description          string `json:"description,omitempty" db:"description"`
	PaymentRequired      bool   `json:"paymentRequired" db:"payment_required"`
}

type AssemblyInput struct {
	Name                 string `json:"name"`
	Type                 string `json:"type"`
	Location             string `json:"location"`
	StartDate            int64  `json:"startDate"`
	EndDate              int64  `json:"endDate"`
	RegistrationOpen     *bool  `json:"registrationOpen,omitempty"`
	RegistrationDeadline *int64 `json:"registrationDeadline,omitempty"`
	MaxParticipants      *int   `json:"maxParticipants,omitempty"`
	Description          string `json:"description,omitempty"`
	PaymentRequired      *bool  `json:"paymentRequired,omitempty"`
}

// AssemblyPatch carries only the fields a caller wants changed.
type AssemblyPatch struct {
	Name                 *string `json:"name,omitempty"`
	Type                 *string `json:"type,omitempty"`
	Location             *string `json:"location,omitempty"`
	StartDate            *int64  `json:"startDate,omitempty"`
	EndDate              *int64  `json:"endDate,omitempty"`
	RegistrationOpen     *bool   `json:"registrationOpen,omitempty"`
	RegistrationDeadline *int64  `json:"registrationDeadline,omitempty"`
	MaxParticipants      *int    `json:"maxParticipants,omitempty"`
	Description          *string `json:"description,omitempty"`
	PaymentRequired      *bool   `json:"paymentRequired,omitempty"`
}

type AssemblyDeletion struct {
	DeletedAssembly      string `json:"deletedAssembly"`
	DeletedRegistrations int    `json:"deletedRegistrations"`
	DeletedModalities    int    `json:"deletedModalities"`
	DeletedParticipants  int    `json:"deletedParticipants"`
	DeletedFiles         int    `json:"deletedFiles"`
	DeletedSessions      int    `json:"deletedSessions"`
	Message              string `json:"message"`
}

type AssemblyReport struct {
	Assembly      Assembly       `json:"assembly"`
	Participants  []Participant  `json:"participants"`
	Registrations []Registration `json:"registrations"`
	Modalities    []Modality     `json:"modalities"`
}
