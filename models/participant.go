package models

const (
	ParticipantTypeComite = "comite"
	ParticipantTypeEB     = "eb"
	ParticipantTypeCR     = "cr"

	StatusPleno    = "Pleno"
	StatusNaoPleno = "Não-pleno"
)

// Participant is an expected attendee imported for an assembly. ParticipantID
// is the external business key and may repeat across rows.
type Participant struct {
	ID            string `json:"id" db:"id"`
	AssemblyID    string `json:"assemblyId" db:"assembly_id"`
	Type          string `json:"type" db:"type"`
	ParticipantID string `json:"participantId" db:"participant_id"`
	Name          string `json:"name" db:"name"`
	Role          string `json:"role,omitempty" db:"role"`
	Status        string `json:"status,omitempty" db:"status"`
	Escola        string `json:"escola,omitempty" db:"escola"`
	Regional      string `json:"regional,omitempty" db:"regional"`
	Cidade        string `json:"cidade,omitempty" db:"cidade"`
	UF            string `json:"uf,omitempty" db:"uf"`
	AgFiliacao    string `json:"agFiliacao,omitempty" db:"ag_filiacao"`
	CreatedAt     int64  `json:"createdAt" db:"created_at"`
}

type ParticipantInput struct {
	Type          string `json:"type"`
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	Status        string `json:"status,omitempty"`
	Escola        string `json:"escola,omitempty"`
	Regional      string `json:"regional,omitempty"`
	Cidade        string `json:"cidade,omitempty"`
	UF            string `json:"uf,omitempty"`
	AgFiliacao    string `json:"agFiliacao,omitempty"`
}
