// Package stats computes registration counts and capacity for an assembly.
package stats

import "github.com/ifmsabrazil/adminpanel/models"

// nearFullRatio is the share of capacity from which an assembly or modality
// is reported as nearly full.
const nearFullRatio = 0.9

func ComputeRegistrationStats(
	assembly *models.Assembly,
	participants []models.Participant,
	registrations []models.Registration,
	modalities []models.Modality,
) models.RegistrationStats {
	active := 0
	activeByModality := make(map[string]int)
	byType := make(map[string]int)
	byStatus := make(map[string]int)

	for _, reg := range registrations {
		byType[reg.ParticipantType]++
		byStatus[reg.Status]++
		if reg.IsActive() {
			active++
			if reg.ModalityID != "" {
				activeByModality[reg.ModalityID]++
			}
		}
	}

	participantsByType := make(map[string]int)
	for _, p := range participants {
		participantsByType[p.Type]++
	}

	modalityStats := make([]models.ModalityStat, 0, len(modalities))
	for _, m := range modalities {
		current := activeByModality[m.ID]
		full, nearFull := capacity(m.MaxParticipants, current)
		modalityStats = append(modalityStats, models.ModalityStat{
			ModalityID:           m.ID,
			Name:                 m.Name,
			Price:                m.Price,
			MaxParticipants:      m.MaxParticipants,
			CurrentRegistrations: current,
			IsFull:               full,
			IsNearFull:           nearFull,
		})
	}

	var maxParticipants *int
	if assembly != nil {
		maxParticipants = assembly.MaxParticipants
	}
	full, nearFull := capacity(maxParticipants, active)

	return models.RegistrationStats{
		TotalParticipants:     len(participants),
		TotalRegistrations:    len(registrations),
		ActiveRegistrations:   active,
		RegistrationsByType:   byType,
		RegistrationsByStatus: byStatus,
		ParticipantsByType:    participantsByType,
		ModalityStats:         modalityStats,
		AssemblyCapacity: models.AssemblyCapacity{
			MaxParticipants:      maxParticipants,
			CurrentRegistrations: active,
			IsFull:               full,
			IsNearFull:           nearFull,
		},
	}
}

// capacity reports fullness against limit. A missing or zero limit means
// unlimited.
func capacity(limit *int, current int) (full, nearFull bool) {
	if limit == nil || *limit <= 0 {
		return false, false
	}
	return current >= *limit, float64(current) >= float64(*limit)*nearFullRatio
}
