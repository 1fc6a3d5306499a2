package models

// AnalyticsReport is the registration analytics for one assembly. Field names
// are consumed by existing dashboards and must stay stable.
type AnalyticsReport struct {
	AssemblyID       string                  `json:"assemblyId"`
	Summary          AnalyticsSummary        `json:"summary"`
	ComitesPlenos    Bucket[CommitteeDetail] `json:"comitesPlenos"`
	ComitesNaoPlenos Bucket[CommitteeDetail] `json:"comitesNaoPlenos"`
	EBs              Bucket[BoardDetail]     `json:"ebs"`
	CRs              Bucket[BoardDetail]     `json:"crs"`
	Others           OthersBucket            `json:"others"`
	LastUpdated      int64                   `json:"lastUpdated"`
}

type AnalyticsSummary struct {
	TotalPredefinedParticipants int     `json:"totalPredefinedParticipants"`
	TotalRegisteredPredefined   int     `json:"totalRegisteredPredefined"`
	TotalActiveRegistrations    int     `json:"totalActiveRegistrations"`
	TotalOtherRegistrations     int     `json:"totalOtherRegistrations"`
	OverallRegistrationRate     float64 `json:"overallRegistrationRate"`
}

// Bucket aggregates one category of expected participants. RegistrationRate
// is a percentage in [0, 100].
type Bucket[T any] struct {
	Total            int     `json:"total"`
	Registered       int     `json:"registered"`
	Unregistered     int     `json:"unregistered"`
	RegistrationRate float64 `json:"registrationRate"`
	Details          []T     `json:"details"`
}

type CommitteeDetail struct {
	ParticipantID     string        `json:"participantId"`
	Name              string        `json:"name"`
	Escola            string        `json:"escola"`
	Cidade            string        `json:"cidade"`
	UF                string        `json:"uf"`
	Regional          string        `json:"regional"`
	AgFiliacao        string        `json:"agFiliacao"`
	IsRegistered      bool          `json:"isRegistered"`
	RegistrationCount int           `json:"registrationCount"`
	Registration      *Registration `json:"registration"`
}

type BoardDetail struct {
	ParticipantID string        `json:"participantId"`
	Name          string        `json:"name"`
	Role          string        `json:"role"`
	IsRegistered  bool          `json:"isRegistered"`
	Registration  *Registration `json:"registration"`
}

type OthersBucket struct {
	Total   int            `json:"total"`
	ByRole  []RoleCount    `json:"byRole"`
	Details []Registration `json:"details"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}
