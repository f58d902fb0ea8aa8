// Package ast defines the statement tree for streaming DDL. Nodes are plain
// immutable values: once constructed they never change, so they can be shared
// across goroutines, used as cache keys via Fingerprint, and compared
// structurally via Equal without regard to identity.
package ast

// NodeType discriminates the concrete node kinds.
type NodeType int

const (
	NodeCreateStream NodeType = iota
	NodeDropStream
	NodeShowStreams
	NodeColumnDef
	NodeKeyConstraint
	NodeProperties
	NodeIdentifier
	NodeStringLiteral
	NodeIntegerLiteral
	NodeBooleanLiteral
)

var nodeTypeNames = [...]string{
	NodeCreateStream:   "CreateStream",
	NodeDropStream:     "DropStream",
	NodeShowStreams:    "ShowStreams",
	NodeColumnDef:      "ColumnDef",
	NodeKeyConstraint:  "KeyConstraint",
	NodeProperties:     "Properties",
	NodeIdentifier:     "Identifier",
	NodeStringLiteral:  "StringLiteral",
	NodeIntegerLiteral: "IntegerLiteral",
	NodeBooleanLiteral: "BooleanLiteral",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return "Unknown"
	}
	return nodeTypeNames[t]
}

// Node is the contract every tree element satisfies.
//
// Accept double-dispatches to the Visitor method matching the concrete kind,
// handing the node and ctx through untouched and returning the visitor's
// result unmodified. Equal compares by kind and field structure, never by
// identity: two independently built nodes with the same fields are equal.
// Fingerprint is consistent with Equal (equal nodes hash alike) and stable
// across processes, so it can key caches. String renders the node as SQL
// text; equal nodes render identically.
type Node interface {
	Type() NodeType
	Accept(v Visitor, ctx any) any
	Fingerprint() uint64
	Equal(other Node) bool
	String() string
}

// Statement is a deployable top-level node.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing node, usable as a property value.
type Expression interface {
	Node
	expressionNode()
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
