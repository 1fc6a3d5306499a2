package models

// Comite is a local committee entry as offered in registration dropdowns.
type Comite struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ParticipantID string `json:"participantId"`
	Escola        string `json:"escola"`
	Cidade        string `json:"cidade"`
	UF            string `json:"uf"`
	AgFiliacao    string `json:"agFiliacao"`
	Status        string `json:"status,omitempty"`
}

// BoardMember is an executive board or regional coordinator entry.
type BoardMember struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
	Role            string `json:"role"`
}
