package store

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/ifmsabrazil/adminpanel/models"
)

var participantColumns = []interface{}{
	colID, colAssemblyID, colType, "participant_id", "name", "role", colStatus,
	"escola", "regional", "cidade", "uf", "ag_filiacao", colCreatedAt,
}

// selectParticipants orders rows by import time, then by id. Ids of one
// import are time ordered, so rows come back in the order they were imported.
func (s *Store) selectParticipants(where ...exp.Expression) *goqu.SelectDataset {
	return s.builder.From(tableParticipants).
		Select(participantColumns...).
		Where(where...).
		Order(goqu.I(colCreatedAt).Asc(), goqu.I(colID).Asc())
}

func (s *Store) participantsWhere(ctx context.Context, where ...exp.Expression) ([]models.Participant, error) {
	participants := make([]models.Participant, 0)
	if err := s.selectAll(ctx, &participants, s.selectParticipants(where...)); err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *Store) ParticipantsByAssembly(ctx context.Context, assemblyID string) ([]models.Participant, error) {
	participants, err := s.participantsWhere(ctx, goqu.C(colAssemblyID).Eq(assemblyID))
	if err != nil {
		return nil, fmt.Errorf("participants of assembly %s: %w", assemblyID, err)
	}
	return participants, nil
}

func (s *Store) ParticipantsByAssemblyAndType(ctx context.Context, assemblyID, participantType string) ([]models.Participant, error) {
	participants, err := s.participantsWhere(ctx,
		goqu.C(colAssemblyID).Eq(assemblyID),
		goqu.C(colType).Eq(participantType),
	)
	if err != nil {
		return nil, fmt.Errorf("%s participants of assembly %s: %w", participantType, assemblyID, err)
	}
	return participants, nil
}

// ParticipantsByType returns participants of a type across all assemblies.
func (s *Store) ParticipantsByType(ctx context.Context, participantType string) ([]models.Participant, error) {
	participants, err := s.participantsWhere(ctx, goqu.C(colType).Eq(participantType))
	if err != nil {
		return nil, fmt.Errorf("%s participants: %w", participantType, err)
	}
	return participants, nil
}

// InsertParticipants writes all participants in a single statement.
func (s *Store) InsertParticipants(ctx context.Context, participants []models.Participant) (int, error) {
	if len(participants) == 0 {
		return 0, nil
	}

	affected, err := exec(ctx, s.db, s.insertParticipants(participants))
	if err != nil {
		return 0, fmt.Errorf("insert participants: %w", err)
	}
	return int(affected), nil
}

func (s *Store) insertParticipants(participants []models.Participant) *goqu.InsertDataset {
	rows := make([]interface{}, 0, len(participants))
	for _, p := range participants {
		rows = append(rows, goqu.Record{
			colID:            p.ID,
			colAssemblyID:    p.AssemblyID,
			colType:          p.Type,
			"participant_id": p.ParticipantID,
			"name":           p.Name,
			"role":           p.Role,
			colStatus:        p.Status,
			"escola":         p.Escola,
			"regional":       p.Regional,
			"cidade":         p.Cidade,
			"uf":             p.UF,
			"ag_filiacao":    p.AgFiliacao,
			colCreatedAt:     p.CreatedAt,
		})
	}

	return s.builder.Insert(tableParticipants).Rows(rows...).Prepared(true)
}
