package connector

import (
	"context"
	"database/sql"

	"github.com/streamsql-dev/streamsql/database"
	"github.com/streamsql-dev/streamsql/dialect"
)

// Connection is an established engine connection.
type Connection interface {
	// DB exposes the connection as a database/sql handle.
	DB() *sql.DB
	// Database exposes the native execution surface.
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

// Connector opens Connections for one configured endpoint.
type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	ConnectWithRetry(ctx context.Context, retry RetryConfig) (Connection, error)
}

// Provider creates connections for one engine family. Implementations
// register themselves under a name via Register, usually from an init
// function.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}
