package store

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/ifmsabrazil/adminpanel/models"
)

var registrationColumns = []interface{}{
	colID, colAssemblyID, "participant_id", "participant_type", "participant_role",
	"participant_name", "email", "modality_id", colStatus, "receipt_storage_id", colCreatedAt,
}

var modalityColumns = []interface{}{
	colID, colAssemblyID, "name", "price", "max_participants",
}

func (s *Store) RegistrationsByAssembly(ctx context.Context, assemblyID string) ([]models.Registration, error) {
	registrations := make([]models.Registration, 0)
	ds := s.builder.From(tableRegistrations).
		Select(registrationColumns...).
		Where(goqu.C(colAssemblyID).Eq(assemblyID)).
		Order(goqu.I(colCreatedAt).Asc(), goqu.I(colID).Asc())
	if err := s.selectAll(ctx, &registrations, ds); err != nil {
		return nil, fmt.Errorf("registrations of assembly %s: %w", assemblyID, err)
	}
	return registrations, nil
}

func (s *Store) ModalitiesByAssembly(ctx context.Context, assemblyID string) ([]models.Modality, error) {
	modalities := make([]models.Modality, 0)
	ds := s.builder.From(tableModalities).
		Select(modalityColumns...).
		Where(goqu.C(colAssemblyID).Eq(assemblyID)).
		Order(goqu.I("name").Asc())
	if err := s.selectAll(ctx, &modalities, ds); err != nil {
		return nil, fmt.Errorf("modalities of assembly %s: %w", assemblyID, err)
	}
	return modalities, nil
}
