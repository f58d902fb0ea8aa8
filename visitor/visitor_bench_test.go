package visitor

import (
	"testing"

	"github.com/streamsql-dev/streamsql/ast"
	"github.com/streamsql-dev/streamsql/cache"
	"github.com/streamsql-dev/streamsql/dialect"
)

func benchStream() *ast.CreateStream {
	elements := ast.Columns(
		ast.NotNullColumn("id", ast.DataType{Name: "BIGINT"}),
		ast.Column("customer", ast.DataType{Name: "VARCHAR"}),
		ast.Column("amount", ast.DataType{Name: "DECIMAL", Precision: 10, Scale: 2}),
		ast.Column("created_at", ast.DataType{Name: "TIMESTAMP"}),
	)
	elements = append(elements, ast.NewKeyConstraint("id"))
	return ast.NewCreateStream("orders_stream", elements,
		ast.Props(
			ast.Prop("connector", ast.Str("kafka")),
			ast.Prop("topic", ast.Str("orders")),
		),
		"json")
}

func BenchmarkVisitorBuild(b *testing.B) {
	v := NewSQLVisitor(dialect.NewRisingWaveDialect(), nil)
	defer v.Release()
	stmt := benchStream()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Build(stmt)
	}
	b.ReportAllocs()
}

func BenchmarkVisitorBuildCached(b *testing.B) {
	v := NewSQLVisitor(dialect.NewRisingWaveDialect(), cache.NewQueryCache())
	defer v.Release()
	stmt := benchStream()

	// Prime the cache
	_, _ = v.Build(stmt)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Build(stmt)
	}
	b.ReportAllocs()
}

func BenchmarkVisitorPoolRoundTrip(b *testing.B) {
	stmt := ast.NewDropStream("orders_stream", true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := NewSQLVisitor(dialect.NewRisingWaveDialect(), nil)
		_, _ = v.Build(stmt)
		v.Release()
	}
	b.ReportAllocs()
}
