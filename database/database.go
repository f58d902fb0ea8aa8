package database

import (
	"context"
)

// Database is the execution surface a deployer needs from an engine
// connection: run DDL, query catalog metadata, check liveness.
type Database interface {
	Exec(query string, args ...any) (Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (Result, error)
	Query(query string, args ...any) (Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Rows iterates a query result.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	Err() error
	Close() error
}

// Result reports the outcome of a statement execution.
type Result interface {
	RowsAffected() (int64, error)
}
