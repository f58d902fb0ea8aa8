// Package deploy executes stream DDL against a live engine. A Deployer
// renders statements through a dialect, applies them in order, and records
// one Run per statement for audit and debugging.
package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streamsql-dev/streamsql/ast"
	"github.com/streamsql-dev/streamsql/cache"
	"github.com/streamsql-dev/streamsql/database"
	"github.com/streamsql-dev/streamsql/dialect"
	"github.com/streamsql-dev/streamsql/visitor"
)

// Run records the outcome of applying one statement.
type Run struct {
	ID        string
	Statement ast.Statement
	SQL       string
	Duration  time.Duration
	Err       error
}

// Deployer applies statements to one engine connection. Statements within a
// Deploy call run sequentially; a Deployer itself is safe for concurrent use.
type Deployer struct {
	id      string
	db      database.Database
	dialect dialect.Dialect
	qcache  cache.QueryCache
	logger  *slog.Logger
	timeout time.Duration
	runIDs  *runIDs
}

type Option func(*Deployer)

// WithDialect sets the SQL dialect used for rendering.
func WithDialect(d dialect.Dialect) Option {
	return func(dep *Deployer) { dep.dialect = d }
}

// WithCache sets the rendered-SQL cache shared by this Deployer.
func WithCache(c cache.QueryCache) Option {
	return func(dep *Deployer) { dep.qcache = c }
}

// WithLogger sets the logger. Deployers are silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(dep *Deployer) { dep.logger = l }
}

// WithStatementTimeout bounds the execution time of each statement.
func WithStatementTimeout(d time.Duration) Option {
	return func(dep *Deployer) { dep.timeout = d }
}

func New(db database.Database, opts ...Option) *Deployer {
	d := &Deployer{
		id:      newDeployerID(),
		db:      db,
		dialect: dialect.NewRisingWaveDialect(),
		qcache:  cache.NewQueryCache(),
		logger:  slog.New(slog.DiscardHandler),
		runIDs:  newRunIDs(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the identifier assigned to this Deployer at construction.
func (d *Deployer) ID() string {
	return d.id
}

// Render produces the SQL text for stmt without executing it.
func (d *Deployer) Render(stmt ast.Statement) (string, error) {
	v := visitor.NewSQLVisitor(d.dialect, d.qcache)
	defer v.Release()
	return v.Build(stmt)
}

// Deploy applies the statements in order and stops at the first failure.
// The returned slice holds one Run per attempted statement, including the
// failed one, so callers can see exactly how far the deploy got.
func (d *Deployer) Deploy(ctx context.Context, stmts ...ast.Statement) ([]Run, error) {
	runs := make([]Run, 0, len(stmts))
	for _, stmt := range stmts {
		r := d.run(ctx, stmt)
		runs = append(runs, r)
		if r.Err != nil {
			return runs, fmt.Errorf("deploy %s: %w", stmt.Type(), r.Err)
		}
	}
	return runs, nil
}

func (d *Deployer) run(ctx context.Context, stmt ast.Statement) Run {
	r := Run{ID: d.runIDs.next(), Statement: stmt}

	sqlText, err := d.Render(stmt)
	if err != nil {
		r.Err = err
		return r
	}
	r.SQL = sqlText

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	_, err = d.db.ExecContext(ctx, sqlText)
	r.Duration = time.Since(start)

	if err != nil {
		r.Err = err
		d.logger.Error("statement failed",
			"deployer", d.id,
			"run", r.ID,
			"sql", sqlText,
			"error", err)
		return r
	}

	d.logger.Info("statement applied",
		"deployer", d.id,
		"run", r.ID,
		"type", stmt.Type().String(),
		"duration", r.Duration)
	return r
}

// ListStreams returns the names of streams visible to the connection,
// optionally filtered with a LIKE pattern. An empty pattern lists all.
func (d *Deployer) ListStreams(ctx context.Context, like string) ([]string, error) {
	sqlText, err := d.Render(ast.NewShowStreams(like))
	if err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("show streams: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the underlying connection.
func (d *Deployer) Close() error {
	return d.db.Close()
}
