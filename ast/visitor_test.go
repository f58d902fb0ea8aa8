package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseVisitorFallback(t *testing.T) {
	var visited []NodeType
	v := &BaseVisitor{Fallback: func(n Node, ctx any) any {
		visited = append(visited, n.Type())
		return ctx
	}}

	for _, n := range sampleNodes() {
		res := n.Accept(v, "passthrough")
		assert.Equal(t, "passthrough", res)
	}

	assert.Equal(t, []NodeType{
		NodeCreateStream,
		NodeDropStream,
		NodeShowStreams,
		NodeColumnDef,
		NodeKeyConstraint,
		NodeProperties,
		NodeIdentifier,
		NodeStringLiteral,
		NodeIntegerLiteral,
		NodeBooleanLiteral,
	}, visited)
}

func TestBaseVisitorNilFallback(t *testing.T) {
	v := &BaseVisitor{}
	for _, n := range sampleNodes() {
		assert.Nil(t, n.Accept(v, 7))
	}
}

type dropCounter struct {
	BaseVisitor
	drops int
}

func (v *dropCounter) VisitDropStream(n *DropStream, ctx any) any {
	v.drops++
	return n.Name()
}

// An embedded BaseVisitor lets a visitor handle one kind and route the rest.
func TestBaseVisitorOverride(t *testing.T) {
	v := &dropCounter{}
	v.Fallback = func(Node, any) any { return "other" }

	assert.Equal(t, "sensor_stream", NewDropStream("sensor_stream", true).Accept(v, nil))
	assert.Equal(t, "other", Ident("x").Accept(v, nil))
	assert.Equal(t, 1, v.drops)
}
