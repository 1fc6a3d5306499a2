package roster

import (
	"context"
	"strings"

	"github.com/ifmsabrazil/adminpanel/models"
)

type Source interface {
	ParticipantsByAssemblyAndType(ctx context.Context, assemblyID, participantType string) ([]models.Participant, error)
	ParticipantsByType(ctx context.Context, participantType string) ([]models.Participant, error)
}

// Service loads participants from a Source and turns them into listings.
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Comites lists committees of one assembly, or of every assembly when
// assemblyID is blank.
func (s *Service) Comites(ctx context.Context, assemblyID string, withStatus bool) ([]models.Comite, error) {
	var (
		participants []models.Participant
		err          error
	)
	if id := strings.TrimSpace(assemblyID); id != "" {
		participants, err = s.source.ParticipantsByAssemblyAndType(ctx, id, models.ParticipantTypeComite)
	} else {
		participants, err = s.source.ParticipantsByType(ctx, models.ParticipantTypeComite)
	}
	if err != nil {
		return nil, err
	}
	return Comites(participants, withStatus), nil
}

func (s *Service) EBs(ctx context.Context) ([]models.BoardMember, error) {
	return s.boardMembers(ctx, models.ParticipantTypeEB)
}

func (s *Service) CRs(ctx context.Context) ([]models.BoardMember, error) {
	return s.boardMembers(ctx, models.ParticipantTypeCR)
}

func (s *Service) boardMembers(ctx context.Context, participantType string) ([]models.BoardMember, error) {
	participants, err := s.source.ParticipantsByType(ctx, participantType)
	if err != nil {
		return nil, err
	}
	return BoardMembers(participants, participantType), nil
}
