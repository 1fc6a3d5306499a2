// Package roster builds the deduplicated committee, executive board and
// regional coordinator listings used by registration forms and attendance
// management. Listings are sorted with Brazilian Portuguese collation,
// ignoring case and accents.
package roster

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ifmsabrazil/adminpanel/models"
)

// Comites lists committees deduplicated by trimmed participant id and sorted
// by that id. With withStatus set, each entry carries its voting status,
// defaulting to "Não-pleno".
func Comites(participants []models.Participant, withStatus bool) []models.Comite {
	seen := make(map[string]struct{}, len(participants))
	comites := make([]models.Comite, 0)

	for _, p := range participants {
		if strings.TrimSpace(p.Type) != models.ParticipantTypeComite {
			continue
		}
		id := strings.TrimSpace(p.ParticipantID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		escola := strings.TrimSpace(p.Escola)
		name := id
		if escola != "" {
			name = id + " - " + escola
		}

		comite := models.Comite{
			ID:            id,
			Name:          name,
			ParticipantID: id,
			Escola:        escola,
			Cidade:        strings.TrimSpace(p.Cidade),
			UF:            strings.TrimSpace(p.UF),
			AgFiliacao:    strings.TrimSpace(p.AgFiliacao),
		}
		if withStatus {
			comite.Status = strings.TrimSpace(p.Status)
			if comite.Status == "" {
				comite.Status = models.StatusNaoPleno
			}
		}
		comites = append(comites, comite)
	}

	c := newCollator()
	slices.SortStableFunc(comites, func(a, b models.Comite) int {
		return c.CompareString(a.ParticipantID, b.ParticipantID)
	})

	return comites
}

// BoardMembers lists participants of participantType (executive board or
// regional coordinators) deduplicated by trimmed id and sorted by role.
func BoardMembers(participants []models.Participant, participantType string) []models.BoardMember {
	seen := make(map[string]struct{}, len(participants))
	members := make([]models.BoardMember, 0)

	for _, p := range participants {
		if strings.TrimSpace(p.Type) != participantType {
			continue
		}
		id := strings.TrimSpace(p.ParticipantID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(p.Name)
		role := strings.TrimSpace(p.Role)
		display := name
		if role != "" {
			display = role + " - " + name
		}

		members = append(members, models.BoardMember{
			ID:              id,
			Name:            display,
			ParticipantID:   id,
			ParticipantName: name,
			Role:            role,
		})
	}

	c := newCollator()
	slices.SortStableFunc(members, func(a, b models.BoardMember) int {
		return c.CompareString(a.Role, b.Role)
	})

	return members
}

// newCollator returns a fresh collator per call; collate.Collator is not safe
// for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.Loose)
}
