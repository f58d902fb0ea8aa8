// Package postgres provides connections to PostgreSQL-wire engines through
// pgxpool. RisingWave speaks the same wire protocol, so one provider serves
// both registrations; only the SQL dialect differs.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/streamsql-dev/streamsql/connector"
	"github.com/streamsql-dev/streamsql/database"
	"github.com/streamsql-dev/streamsql/dialect"
)

type Provider struct {
	dialect dialect.Dialect
}

func init() {
	connector.Register("postgres", &Provider{dialect: dialect.NewPostgresDialect()})
	connector.Register("risingwave", &Provider{dialect: dialect.NewRisingWaveDialect()})
}

func (p *Provider) Dialect() dialect.Dialect {
	return p.dialect
}

func (p *Provider) buildDSN(cfg connector.Config) string {
	return connector.NewDSNBuilder("postgres").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Database(cfg.Database).
		Param("sslmode", cfg.SSLMode).
		Params(cfg.Params).
		Build()
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// pool defaults
	if cfg.Pool.MaxOpen <= 0 {
		cfg.Pool.MaxOpen = 10
	}
	if cfg.Pool.MaxIdle < 0 {
		cfg.Pool.MaxIdle = 5
	}
	if cfg.Pool.MaxLifetime == 0 {
		cfg.Pool.MaxLifetime = time.Hour
	}
	if cfg.Pool.MaxIdleTime == 0 {
		cfg.Pool.MaxIdleTime = 30 * time.Minute
	}

	poolCfg, err := pgxpool.ParseConfig(p.buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.Pool.MaxOpen)
	poolCfg.MinConns = int32(cfg.Pool.MaxIdle)
	poolCfg.MaxConnLifetime = cfg.Pool.MaxLifetime
	poolCfg.MaxConnIdleTime = cfg.Pool.MaxIdleTime
	if cfg.Pool.HealthCheckFreq > 0 {
		poolCfg.HealthCheckPeriod = cfg.Pool.HealthCheckFreq
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	return &connection{pool: pool, dialect: p.dialect}, nil
}

type connection struct {
	pool    *pgxpool.Pool
	dialect dialect.Dialect
}

func (c *connection) DB() *sql.DB {
	return stdlib.OpenDBFromPool(c.pool)
}

func (c *connection) Database() database.Database {
	return database.NewPgxDatabase(c.pool)
}

func (c *connection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *connection) Health(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *connection) Stats() connector.ConnectionStats {
	s := c.pool.Stat()
	return connector.ConnectionStats{
		OpenConnections: int(s.TotalConns()),
		InUse:           int(s.AcquiredConns()),
		Idle:            int(s.IdleConns()),
	}
}

func (c *connection) Close() error {
	c.pool.Close()
	return nil
}

var _ connector.Provider = (*Provider)(nil)
var _ connector.Connection = (*connection)(nil)
