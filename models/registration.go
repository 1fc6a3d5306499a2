package models

const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusCancelled = "cancelled"
	RegistrationStatusRejected  = "rejected"
)

type Registration struct {
	ID               string `json:"id" db:"id"`
	AssemblyID       string `json:"assemblyId" db:"assembly_id"`
	ParticipantID    string `json:"participantId" db:"participant_id"`
	ParticipantType  string `json:"participantType" db:"participant_type"`
	ParticipantRole  string `json:"participantRole,omitempty" db:"participant_role"`
	ParticipantName  string `json:"participantName,omitempty" db:"participant_name"`
	Email            string `json:"email,omitempty" db:"email"`
	ModalityID       string `json:"modalityId,omitempty" db:"modality_id"`
	Status           string `json:"status" db:"status"`
	ReceiptStorageID string `json:"receiptStorageId,omitempty" db:"receipt_storage_id"`
	CreatedAt        int64  `json:"createdAt" db:"created_at"`
}

// IsActive reports whether the registration still counts, i.e. it was neither
// cancelled nor rejected.
func (r Registration) IsActive() bool {
	return r.Status != RegistrationStatusCancelled && r.Status != RegistrationStatusRejected
}
