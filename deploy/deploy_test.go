package deploy

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamsql-dev/streamsql/ast"
	"github.com/streamsql-dev/streamsql/database"
)

func newMockDeployer(t *testing.T, opts ...Option) (*Deployer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(database.NewSqlDatabase(db), opts...), mock
}

func ordersCreate() *ast.CreateStream {
	return ast.NewCreateStream(
		"orders",
		ast.Columns(
			ast.NotNullColumn("id", ast.DataType{Name: "BIGINT"}),
			ast.Column("customer", ast.DataType{Name: "VARCHAR"}),
		),
		ast.Props(ast.Prop("connector", ast.Str("kafka"))),
		"json",
	)
}

const ordersCreateSQL = `CREATE STREAM "orders" ("id" BIGINT NOT NULL, "customer" VARCHAR) WITH (connector = 'kafka') ROW FORMAT json`

func TestDeployAppliesStatementsInOrder(t *testing.T) {
	d, mock := newMockDeployer(t)

	mock.ExpectExec(ordersCreateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP STREAM IF EXISTS "legacy"`).WillReturnResult(sqlmock.NewResult(0, 0))

	runs, err := d.Deploy(context.Background(),
		ordersCreate(),
		ast.NewDropStream("legacy", true),
	)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, ordersCreateSQL, runs[0].SQL)
	assert.Equal(t, `DROP STREAM IF EXISTS "legacy"`, runs[1].SQL)
	for _, r := range runs {
		assert.NoError(t, r.Err)
		assert.Len(t, r.ID, 26)
	}
	assert.IsIncreasing(t, []string{runs[0].ID, runs[1].ID})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeployStopsAtFirstFailure(t *testing.T) {
	d, mock := newMockDeployer(t)

	boom := errors.New("stream already exists")
	mock.ExpectExec(ordersCreateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DROP STREAM "legacy"`).WillReturnError(boom)

	runs, err := d.Deploy(context.Background(),
		ordersCreate(),
		ast.NewDropStream("legacy", false),
		ast.NewShowStreams(""),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "deploy DropStream")

	// The failed run is reported; the third statement never ran.
	require.Len(t, runs, 2)
	assert.NoError(t, runs[0].Err)
	assert.ErrorIs(t, runs[1].Err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenderDoesNotExecute(t *testing.T) {
	d, mock := newMockDeployer(t)

	sqlText, err := d.Render(ordersCreate())
	require.NoError(t, err)
	assert.Equal(t, ordersCreateSQL, sqlText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeployStatementTimeout(t *testing.T) {
	d, mock := newMockDeployer(t, WithStatementTimeout(10*time.Millisecond))

	mock.ExpectExec(`DROP STREAM "slow"`).
		WillDelayFor(time.Second).
		WillReturnResult(sqlmock.NewResult(0, 0))

	runs, err := d.Deploy(context.Background(), ast.NewDropStream("slow", false))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.Len(t, runs, 1)
	assert.ErrorIs(t, runs[0].Err, context.DeadlineExceeded)
}

func TestListStreams(t *testing.T) {
	d, mock := newMockDeployer(t)

	mock.ExpectQuery(`SHOW STREAMS`).WillReturnRows(
		sqlmock.NewRows([]string{"Name"}).AddRow("orders").AddRow("clicks"))

	names, err := d.ListStreams(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "clicks"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStreamsWithPattern(t *testing.T) {
	d, mock := newMockDeployer(t)

	mock.ExpectQuery(`SHOW STREAMS LIKE 'ord%'`).WillReturnRows(
		sqlmock.NewRows([]string{"Name"}).AddRow("orders"))

	names, err := d.ListStreams(context.Background(), "ord%")
	require.NoError(t, err)
	assert.Equal(t, []string{"orders"}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStreamsQueryError(t *testing.T) {
	d, mock := newMockDeployer(t)

	mock.ExpectQuery(`SHOW STREAMS`).WillReturnError(errors.New("connection reset"))

	_, err := d.ListStreams(context.Background(), "")
	require.Error(t, err)
	assert.ErrorContains(t, err, "show streams")
}

func TestDeployerLogsRuns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	d, mock := newMockDeployer(t, WithLogger(logger))

	mock.ExpectExec(`DROP STREAM "legacy"`).WillReturnResult(sqlmock.NewResult(0, 0))

	runs, err := d.Deploy(context.Background(), ast.NewDropStream("legacy", false))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "statement applied")
	assert.Contains(t, out, runs[0].ID)
	assert.Contains(t, out, d.ID())
}

func TestDeployerIDIsUUID(t *testing.T) {
	a, _ := newMockDeployer(t)
	b, _ := newMockDeployer(t)

	_, err := uuid.Parse(a.ID())
	assert.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDeployerClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	mock.ExpectClose()

	d := New(database.NewSqlDatabase(db))
	assert.NoError(t, d.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunIDsAreSortable(t *testing.T) {
	gen := newRunIDs()
	ids := make([]string, 50)
	for i := range ids {
		ids[i] = gen.next()
	}
	assert.IsIncreasing(t, ids)
}
