package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDatabase implements Database on a pgxpool.Pool.
type PgxDatabase struct {
	pool *pgxpool.Pool
}

func NewPgxDatabase(pool *pgxpool.Pool) *PgxDatabase {
	return &PgxDatabase{pool: pool}
}

func (p *PgxDatabase) Exec(query string, args ...any) (Result, error) {
	return p.ExecContext(context.Background(), query, args...)
}

func (p *PgxDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	cmdTag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxResult{cmdTag: cmdTag}, nil
}

func (p *PgxDatabase) Query(query string, args ...any) (Rows, error) {
	return p.QueryContext(context.Background(), query, args...)
}

func (p *PgxDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

func (p *PgxDatabase) PingContext(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close releases the pool. Safe to call once per pool owner.
func (p *PgxDatabase) Close() error {
	p.pool.Close()
	return nil
}

// PgxRows implements Rows for pgx.Rows.
type PgxRows struct {
	rows              pgx.Rows
	fieldDescriptions []pgconn.FieldDescription
}

func (p *PgxRows) Next() bool { return p.rows.Next() }

func (p *PgxRows) Scan(dest ...any) error { return p.rows.Scan(dest...) }

// Columns caches field descriptions; pgx recomputes them per call.
func (p *PgxRows) Columns() ([]string, error) {
	if p.fieldDescriptions == nil {
		p.fieldDescriptions = p.rows.FieldDescriptions()
	}
	columns := make([]string, len(p.fieldDescriptions))
	for i, fd := range p.fieldDescriptions {
		columns[i] = fd.Name
	}
	return columns, nil
}

func (p *PgxRows) Err() error { return p.rows.Err() }

func (p *PgxRows) Close() error { p.rows.Close(); return nil }

// PgxResult wraps a pgx command tag.
type PgxResult struct {
	cmdTag pgconn.CommandTag
}

func (r *PgxResult) RowsAffected() (int64, error) {
	return r.cmdTag.RowsAffected(), nil
}

var _ Database = (*PgxDatabase)(nil)
var _ Rows = (*PgxRows)(nil)
