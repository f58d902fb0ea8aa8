package streamsql

import (
	"context"

	"github.com/streamsql-dev/streamsql/ast"
	"github.com/streamsql-dev/streamsql/connector"
	"github.com/streamsql-dev/streamsql/deploy"

	// Registers the postgres and risingwave providers.
	_ "github.com/streamsql-dev/streamsql/providers/postgres"
)

type Config = connector.Config

// LoadConfig reads configuration from defaults, an optional YAML file, and
// STREAMSQL_ environment variables, in that order of precedence.
func LoadConfig(path string) (Config, error) {
	return connector.LoadConfig(path)
}

// Connect opens a connection to a RisingWave endpoint.
func Connect(ctx context.Context, cfg Config) (connector.Connection, error) {
	return ConnectProvider(ctx, "risingwave", cfg)
}

// ConnectProvider opens a connection through the named provider. When the
// config carries retry settings, the connection attempt is retried with
// exponential backoff.
func ConnectProvider(ctx context.Context, provider string, cfg Config) (connector.Connection, error) {
	c, err := connector.New(provider, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Retry != nil {
		return c.ConnectWithRetry(ctx, *cfg.Retry)
	}
	return c.Connect(ctx)
}

// NewDeployer builds a Deployer bound to conn, rendering SQL with the
// connection's own dialect. Further options may override the defaults.
func NewDeployer(conn connector.Connection, opts ...deploy.Option) *deploy.Deployer {
	base := []deploy.Option{deploy.WithDialect(conn.Dialect())}
	return deploy.New(conn.Database(), append(base, opts...)...)
}

// Deploy connects with cfg, applies the statements in order, and closes the
// connection. The per-statement timeout comes from cfg.QueryTimeout.
func Deploy(ctx context.Context, cfg Config, stmts ...ast.Statement) ([]deploy.Run, error) {
	conn, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var opts []deploy.Option
	if cfg.QueryTimeout > 0 {
		opts = append(opts, deploy.WithStatementTimeout(cfg.QueryTimeout))
	}
	d := NewDeployer(conn, opts...)
	defer d.Close()

	return d.Deploy(ctx, stmts...)
}
