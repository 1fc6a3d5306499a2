package analytics

import (
	"strings"
	"time"

	"github.com/ifmsabrazil/adminpanel/models"
)

const unknownRole = "unknown"

// Inputs are the rows a report is derived from. Participants and
// Registrations are scoped to the assembly; EBRoster and CRRoster are the
// organization-wide board and coordinator rosters.
type Inputs struct {
	AssemblyID    string
	Participants  []models.Participant
	Registrations []models.Registration
	EBRoster      []models.Participant
	CRRoster      []models.Participant
}

type bucketKey struct {
	participantType string
	status          string
}

// roster is a deduplicated participant list together with its id set.
type roster struct {
	ids     map[string]struct{}
	members []models.Participant
}

// Project derives the analytics report from in. It has no side effects and
// returns the same report for the same inputs and clock.
func Project(in Inputs, now time.Time) models.AnalyticsReport {
	active := make([]models.Registration, 0, len(in.Registrations))
	for _, reg := range in.Registrations {
		if reg.IsActive() {
			active = append(active, reg)
		}
	}
	index := indexByParticipant(active)

	buckets := partition(in.Participants)
	plenos := dedupe(buckets[bucketKey{models.ParticipantTypeComite, models.StatusPleno}])
	naoPlenos := dedupe(buckets[bucketKey{models.ParticipantTypeComite, models.StatusNaoPleno}])
	ebs := dedupe(in.EBRoster)
	crs := dedupe(in.CRRoster)

	report := models.AnalyticsReport{
		AssemblyID:       in.AssemblyID,
		ComitesPlenos:    committeeBucket(plenos, index),
		ComitesNaoPlenos: committeeBucket(naoPlenos, index),
		EBs:              boardBucket(ebs, index, models.ParticipantTypeEB),
		CRs:              boardBucket(crs, index, models.ParticipantTypeCR),
		Others:           othersBucket(active, plenos.ids, naoPlenos.ids),
		LastUpdated:      now.UnixMilli(),
	}

	totalPredefined := report.ComitesPlenos.Total + report.ComitesNaoPlenos.Total + report.EBs.Total + report.CRs.Total
	registeredPredefined := report.ComitesPlenos.Registered + report.ComitesNaoPlenos.Registered + report.EBs.Registered + report.CRs.Registered

	report.Summary = models.AnalyticsSummary{
		TotalPredefinedParticipants: totalPredefined,
		TotalRegisteredPredefined:   registeredPredefined,
		TotalActiveRegistrations:    len(active),
		TotalOtherRegistrations:     report.Others.Total,
		OverallRegistrationRate:     rate(registeredPredefined, totalPredefined),
	}

	return report
}

// indexByParticipant groups registrations by trimmed participant id, keeping
// their order. Registrations without an id are left out.
func indexByParticipant(registrations []models.Registration) map[string][]models.Registration {
	index := make(map[string][]models.Registration, len(registrations))
	for _, reg := range registrations {
		id := strings.TrimSpace(reg.ParticipantID)
		if id == "" {
			continue
		}
		index[id] = append(index[id], reg)
	}
	return index
}

func partition(participants []models.Participant) map[bucketKey][]models.Participant {
	buckets := make(map[bucketKey][]models.Participant)
	for _, p := range participants {
		key := bucketKey{participantType: strings.TrimSpace(p.Type), status: statusOrDefault(p.Status)}
		buckets[key] = append(buckets[key], p)
	}
	return buckets
}

func statusOrDefault(status string) string {
	if s := strings.TrimSpace(status); s != "" {
		return s
	}
	return models.StatusNaoPleno
}

// dedupe keeps the first participant per trimmed id and drops blank ids.
func dedupe(participants []models.Participant) roster {
	r := roster{ids: make(map[string]struct{}, len(participants))}
	for _, p := range participants {
		id := strings.TrimSpace(p.ParticipantID)
		if id == "" {
			continue
		}
		if _, seen := r.ids[id]; seen {
			continue
		}
		r.ids[id] = struct{}{}
		p.ParticipantID = id
		r.members = append(r.members, p)
	}
	return r
}

func committeeBucket(r roster, index map[string][]models.Registration) models.Bucket[models.CommitteeDetail] {
	details := make([]models.CommitteeDetail, 0, len(r.members))
	registered := 0
	for _, p := range r.members {
		regs := index[p.ParticipantID]
		detail := models.CommitteeDetail{
			ParticipantID:     p.ParticipantID,
			Name:              strings.TrimSpace(p.Name),
			Escola:            strings.TrimSpace(p.Escola),
			Cidade:            strings.TrimSpace(p.Cidade),
			UF:                strings.TrimSpace(p.UF),
			Regional:          strings.TrimSpace(p.Regional),
			AgFiliacao:        strings.TrimSpace(p.AgFiliacao),
			IsRegistered:      len(regs) > 0,
			RegistrationCount: len(regs),
		}
		if len(regs) > 0 {
			first := regs[0]
			detail.Registration = &first
			registered++
		}
		details = append(details, detail)
	}
	return newBucket(details, registered)
}

// boardBucket builds the board or coordinator bucket. A member counts as
// registered on any active registration, but only a registration of the
// bucket's own type is attached to the detail.
func boardBucket(r roster, index map[string][]models.Registration, participantType string) models.Bucket[models.BoardDetail] {
	details := make([]models.BoardDetail, 0, len(r.members))
	registered := 0
	for _, p := range r.members {
		regs := index[p.ParticipantID]
		detail := models.BoardDetail{
			ParticipantID: p.ParticipantID,
			Name:          strings.TrimSpace(p.Name),
			Role:          strings.TrimSpace(p.Role),
			IsRegistered:  len(regs) > 0,
		}
		for _, reg := range regs {
			if reg.ParticipantType == participantType {
				match := reg
				detail.Registration = &match
				break
			}
		}
		if detail.IsRegistered {
			registered++
		}
		details = append(details, detail)
	}
	return newBucket(details, registered)
}

func othersBucket(active []models.Registration, plenoIDs, naoPlenoIDs map[string]struct{}) models.OthersBucket {
	details := make([]models.Registration, 0)
	byRole := make([]models.RoleCount, 0)
	position := make(map[string]int)

	for _, reg := range active {
		id := strings.TrimSpace(reg.ParticipantID)
		if _, ok := plenoIDs[id]; ok {
			continue
		}
		if _, ok := naoPlenoIDs[id]; ok {
			continue
		}
		if reg.ParticipantType == models.ParticipantTypeEB || reg.ParticipantType == models.ParticipantTypeCR {
			continue
		}

		details = append(details, reg)
		role := firstNonBlank(reg.ParticipantRole, reg.ParticipantType, unknownRole)
		if i, ok := position[role]; ok {
			byRole[i].Count++
			continue
		}
		position[role] = len(byRole)
		byRole = append(byRole, models.RoleCount{Role: role, Count: 1})
	}

	return models.OthersBucket{
		Total:   len(details),
		ByRole:  byRole,
		Details: details,
	}
}

func newBucket[T any](details []T, registered int) models.Bucket[T] {
	return models.Bucket[T]{
		Total:            len(details),
		Registered:       registered,
		Unregistered:     len(details) - registered,
		RegistrationRate: rate(registered, len(details)),
		Details:          details,
	}
}

// rate returns part as a percentage of total, or 0 when total is 0.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
