package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleNodes() []Node {
	return []Node{
		NewCreateStream("s", nil, nil, ""),
		NewDropStream("s", false),
		NewShowStreams(""),
		NewColumnDef("c", DataType{Name: "INT"}, false),
		NewKeyConstraint("c"),
		NewProperties(),
		Ident("x"),
		Str("x"),
		Int(1),
		Bool(true),
	}
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{NodeCreateStream, "CreateStream"},
		{NodeDropStream, "DropStream"},
		{NodeShowStreams, "ShowStreams"},
		{NodeColumnDef, "ColumnDef"},
		{NodeKeyConstraint, "KeyConstraint"},
		{NodeProperties, "Properties"},
		{NodeIdentifier, "Identifier"},
		{NodeStringLiteral, "StringLiteral"},
		{NodeIntegerLiteral, "IntegerLiteral"},
		{NodeBooleanLiteral, "BooleanLiteral"},
		{NodeType(99), "Unknown"},
		{NodeType(-1), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestEqualityIsKindExact(t *testing.T) {
	nodes := sampleNodes()
	for i, a := range nodes {
		for j, b := range nodes {
			if i == j {
				assert.True(t, a.Equal(b), "%s should equal itself", a.Type())
				continue
			}
			assert.False(t, a.Equal(b), "%s should not equal %s", a.Type(), b.Type())
		}
	}
}

// Nodes of different kinds with the same payload must not collide through
// their fingerprints' kind prefixes.
func TestFingerprintKindSeparation(t *testing.T) {
	assert.NotEqual(t, Ident("x").Fingerprint(), Str("x").Fingerprint())
	assert.NotEqual(t,
		NewDropStream("s", false).Fingerprint(),
		NewShowStreams("s").Fingerprint())
	assert.NotEqual(t,
		NewCreateStream("s", nil, nil, "").Fingerprint(),
		NewDropStream("s", false).Fingerprint())
}

func TestNodeStrings(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"identifier", Ident("watermark"), "watermark"},
		{"string literal", Str("kafka"), "'kafka'"},
		{"string literal escapes quotes", Str("it's"), "'it''s'"},
		{"integer literal", Int(-7), "-7"},
		{"boolean true", Bool(true), "TRUE"},
		{"boolean false", Bool(false), "FALSE"},
		{"column", Column("payload", DataType{Name: "VARCHAR", Length: 255}), "payload VARCHAR(255)"},
		{"not null column", NotNullColumn("id", DataType{Name: "BIGINT"}), "id BIGINT NOT NULL"},
		{"decimal column", Column("amount", DataType{Name: "DECIMAL", Precision: 12, Scale: 4}), "amount DECIMAL(12, 4)"},
		{"key constraint", NewKeyConstraint("region", "id"), "PRIMARY KEY (region, id)"},
		{"properties", Props(Prop("format", Str("json")), Prop("batch", Int(100))), "(format = 'json', batch = 100)"},
		{"empty properties", NewProperties(), "()"},
		{"drop", NewDropStream("orders_stream", false), "DROP STREAM orders_stream"},
		{"drop if exists", NewDropStream("orders_stream", true), "DROP STREAM IF EXISTS orders_stream"},
		{"show", NewShowStreams(""), "SHOW STREAMS"},
		{"show like", NewShowStreams("orders%"), "SHOW STREAMS LIKE 'orders%'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.String())
		})
	}
}

func TestKeyConstraintCopiesColumns(t *testing.T) {
	cols := []string{"a", "b"}
	k := NewKeyConstraint(cols...)
	cols[0] = "mutated"

	got := k.Columns()
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, k.Columns())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "BIGINT", DataType{Name: "BIGINT"}.String())
	assert.Equal(t, "VARCHAR(64)", DataType{Name: "VARCHAR", Length: 64}.String())
	assert.Equal(t, "DECIMAL(10, 2)", DataType{Name: "DECIMAL", Precision: 10, Scale: 2}.String())
}
