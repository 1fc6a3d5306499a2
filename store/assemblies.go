package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/ifmsabrazil/adminpanel/models"
)

var assemblyColumns = []interface{}{
	colID, "name", colType, "location", "start_date", "end_date", colStatus,
	colCreatedAt, "created_by", "last_updated", "last_updated_by", "registration_open",
	"registration_deadline", "max_participants", "description", "payment_required",
}

// AssemblyDeletion counts the rows removed together with an assembly.
type AssemblyDeletion struct {
	Registrations int
	Modalities    int
	Participants  int
	Sessions      int
}

func assemblyRecord(a models.Assembly) goqu.Record {
	return goqu.Record{
		colID:                   a.ID,
		"name":                  a.Name,
		colType:                 a.Type,
		"location":              a.Location,
		"start_date":            a.StartDate,
		"end_date":              a.EndDate,
		colStatus:               a.Status,
		colCreatedAt:            a.CreatedAt,
		"created_by":            a.CreatedBy,
		"last_updated":          a.LastUpdated,
		"last_updated_by":       a.LastUpdatedBy,
		"registration_open":     a.RegistrationOpen,
		"registration_deadline": a.RegistrationDeadline,
		"max_participants":      a.MaxParticipants,
		"description":           a.Description,
		"payment_required":      a.PaymentRequired,
	}
}

func (s *Store) selectAssemblies() *goqu.SelectDataset {
	return s.builder.From(tableAssemblies).
		Select(assemblyColumns...).
		Order(goqu.I(colCreatedAt).Desc())
}

// ListAssemblies returns all assemblies, newest first.
func (s *Store) ListAssemblies(ctx context.Context) ([]models.Assembly, error) {
	assemblies := make([]models.Assembly, 0)
	if err := s.selectAll(ctx, &assemblies, s.selectAssemblies()); err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}
	return assemblies, nil
}

// ListAssembliesByStatus returns assemblies with the given status, newest first.
func (s *Store) ListAssembliesByStatus(ctx context.Context, status string) ([]models.Assembly, error) {
	assemblies := make([]models.Assembly, 0)
	ds := s.selectAssemblies().Where(goqu.C(colStatus).Eq(status))
	if err := s.selectAll(ctx, &assemblies, ds); err != nil {
		return nil, fmt.Errorf("list %s assemblies: %w", status, err)
	}
	return assemblies, nil
}

func (s *Store) GetAssembly(ctx context.Context, id string) (models.Assembly, error) {
	var assembly models.Assembly
	ds := s.builder.From(tableAssemblies).Select(assemblyColumns...).Where(goqu.C(colID).Eq(id))
	if err := s.selectOne(ctx, &assembly, ds); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.Assembly{}, err
		}
		return models.Assembly{}, fmt.Errorf("get assembly %s: %w", id, err)
	}
	return assembly, nil
}

func (s *Store) InsertAssembly(ctx context.Context, a models.Assembly) error {
	if _, err := exec(ctx, s.db, s.builder.Insert(tableAssemblies).Rows(assemblyRecord(a)).Prepared(true)); err != nil {
		return fmt.Errorf("insert assembly: %w", err)
	}
	return nil
}

// SaveAssembly overwrites every column of an existing assembly except its id
// and creation fields.
func (s *Store) SaveAssembly(ctx context.Context, a models.Assembly) error {
	record := assemblyRecord(a)
	delete(record, colID)
	delete(record, colCreatedAt)
	delete(record, "created_by")

	ds := s.builder.Update(tableAssemblies).Set(record).Where(goqu.C(colID).Eq(a.ID)).Prepared(true)
	if _, err := exec(ctx, s.db, ds); err != nil {
		return fmt.Errorf("save assembly %s: %w", a.ID, err)
	}
	return nil
}

// DeleteAssemblyCascade removes an assembly with its registrations,
// modalities, participants, sessions and session attendance in one
// transaction.
func (s *Store) DeleteAssemblyCascade(ctx context.Context, id string) (AssemblyDeletion, error) {
	var deletion AssemblyDeletion

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return deletion, fmt.Errorf("begin delete assembly %s: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	byAssembly := goqu.C(colAssemblyID).Eq(id)
	sessionIDs := s.builder.From(tableSessions).Select(colID).Where(byAssembly)

	steps := []struct {
		builder sqlBuilder
		count   *int
	}{
		{s.builder.Delete(tableRegistrations).Where(byAssembly).Prepared(true), &deletion.Registrations},
		{s.builder.Delete(tableModalities).Where(byAssembly).Prepared(true), &deletion.Modalities},
		{s.builder.Delete(tableParticipants).Where(byAssembly).Prepared(true), &deletion.Participants},
		{s.builder.Delete(tableSessionAttendance).Where(goqu.C(colSessionID).In(sessionIDs)).Prepared(true), nil},
		{s.builder.Delete(tableSessions).Where(byAssembly).Prepared(true), &deletion.Sessions},
		{s.builder.Delete(tableAssemblies).Where(goqu.C(colID).Eq(id)).Prepared(true), nil},
	}

	for _, step := range steps {
		affected, err := exec(ctx, tx, step.builder)
		if err != nil {
			return AssemblyDeletion{}, fmt.Errorf("delete assembly %s: %w", id, err)
		}
		if step.count != nil {
			*step.count = int(affected)
		}
	}

	if err := tx.Commit(); err != nil {
		return AssemblyDeletion{}, fmt.Errorf("commit delete assembly %s: %w", id, err)
	}
	return deletion, nil
}
