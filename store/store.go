// Package store persists assemblies, participants, registrations and
// modalities in MySQL. Queries are built with goqu's mysql dialect and
// executed through sqlx.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	"github.com/jmoiron/sqlx"
)

const (
	dialectMySQL = "mysql"

	tableAssemblies        = "assemblies"
	tableParticipants      = "ag_participants"
	tableRegistrations     = "ag_registrations"
	tableModalities        = "registration_modalities"
	tableSessions          = "ag_sessions"
	tableSessionAttendance = "ag_session_attendance"

	colID         = "id"
	colAssemblyID = "assembly_id"
	colType       = "type"
	colStatus     = "status"
	colCreatedAt  = "created_at"
	colSessionID  = "session_id"
)

var (
	ErrNotFound            = errors.New("store: record not found")
	ErrBuildingQueryFailed = errors.New("store: building query failed")
	ErrQueryingFailed      = errors.New("store: query failed")
)

type Store struct {
	db      *sqlx.DB
	builder goqu.DialectWrapper
}

func New(db *sqlx.DB) *Store {
	return &Store{
		db:      db,
		builder: goqu.Dialect(dialectMySQL),
	}
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

func toSQL(b sqlBuilder) (string, []interface{}, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return "", nil, errors.Join(ErrBuildingQueryFailed, err)
	}
	return query, args, nil
}

func (s *Store) selectAll(ctx context.Context, dest interface{}, ds *goqu.SelectDataset) error {
	query, args, err := toSQL(ds.Prepared(true))
	if err != nil {
		return err
	}
	if err := s.db.SelectContext(ctx, dest, query, args...); err != nil {
		return errors.Join(ErrQueryingFailed, err)
	}
	return nil
}

func (s *Store) selectOne(ctx context.Context, dest interface{}, ds *goqu.SelectDataset) error {
	query, args, err := toSQL(ds.Prepared(true).Limit(1))
	if err != nil {
		return err
	}
	if err := s.db.GetContext(ctx, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return errors.Join(ErrQueryingFailed, err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func exec(ctx context.Context, db execer, b sqlBuilder) (int64, error) {
	query, args, err := toSQL(b)
	if err != nil {
		return 0, err
	}
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Join(ErrQueryingFailed, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}
