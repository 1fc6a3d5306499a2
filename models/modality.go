package models

type Modality struct {
	ID              string  `json:"id" db:"id"`
	AssemblyID      string  `json:"assemblyId" db:"assembly_id"`
	Name            string  `json:"name" db:"name"`
	Price           float64 `json:"price" db:"price"`
	MaxParticipants *int    `json:"maxParticipants,omitempty" db:"max_participants"`
}
