package database

import (
	"context"
	"database/sql"
)

// SqlDatabase implements Database for a *sql.DB, used when callers bring
// their own database/sql connection.
type SqlDatabase struct {
	db *sql.DB
}

func NewSqlDatabase(db *sql.DB) *SqlDatabase {
	return &SqlDatabase{db: db}
}

func (s *SqlDatabase) Exec(query string, args ...any) (Result, error) {
	return s.db.Exec(query, args...)
}

func (s *SqlDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s *SqlDatabase) Query(query string, args ...any) (Rows, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SqlDatabase) Close() error { return s.db.Close() }

// SqlRows implements Rows for *sql.Rows.
type SqlRows struct {
	rows *sql.Rows
}

func (s *SqlRows) Next() bool { return s.rows.Next() }

func (s *SqlRows) Scan(dest ...any) error { return s.rows.Scan(dest...) }

func (s *SqlRows) Columns() ([]string, error) { return s.rows.Columns() }

func (s *SqlRows) Err() error { return s.rows.Err() }

func (s *SqlRows) Close() error { return s.rows.Close() }

var _ Database = (*SqlDatabase)(nil)
var _ Rows = (*SqlRows)(nil)
