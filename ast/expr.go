package ast

import (
	"strconv"
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// Identifier names a schema object, for property values that refer to
// another object rather than a constant.
type Identifier struct {
	value string
}

func NewIdentifier(value string) *Identifier { return &Identifier{value: value} }

func (e *Identifier) Value() string { return e.value }

func (e *Identifier) Type() NodeType { return NodeIdentifier }

func (e *Identifier) expressionNode() {}

func (e *Identifier) Accept(v Visitor, ctx any) any { return v.VisitIdentifier(e, ctx) }

func (e *Identifier) Fingerprint() uint64 {
	return utils.FingerprintString("ident:" + e.value)
}

func (e *Identifier) Equal(other Node) bool {
	o, ok := other.(*Identifier)
	return ok && o != nil && e.value == o.value
}

func (e *Identifier) String() string { return e.value }

// StringLiteral is a single-quoted string constant.
type StringLiteral struct {
	value string
}

func NewStringLiteral(value string) *StringLiteral { return &StringLiteral{value: value} }

func (e *StringLiteral) Value() string { return e.value }

func (e *StringLiteral) Type() NodeType { return NodeStringLiteral }

func (e *StringLiteral) expressionNode() {}

func (e *StringLiteral) Accept(v Visitor, ctx any) any { return v.VisitStringLiteral(e, ctx) }

func (e *StringLiteral) Fingerprint() uint64 {
	return utils.FingerprintString("str:" + e.value)
}

func (e *StringLiteral) Equal(other Node) bool {
	o, ok := other.(*StringLiteral)
	return ok && o != nil && e.value == o.value
}

func (e *StringLiteral) String() string {
	return "'" + strings.ReplaceAll(e.value, "'", "''") + "'"
}

// IntegerLiteral is a 64-bit integer constant.
type IntegerLiteral struct {
	value int64
}

func NewIntegerLiteral(value int64) *IntegerLiteral { return &IntegerLiteral{value: value} }

func (e *IntegerLiteral) Value() int64 { return e.value }

func (e *IntegerLiteral) Type() NodeType { return NodeIntegerLiteral }

func (e *IntegerLiteral) expressionNode() {}

func (e *IntegerLiteral) Accept(v Visitor, ctx any) any { return v.VisitIntegerLiteral(e, ctx) }

func (e *IntegerLiteral) Fingerprint() uint64 {
	return utils.FingerprintString("int:" + strconv.FormatInt(e.value, 10))
}

func (e *IntegerLiteral) Equal(other Node) bool {
	o, ok := other.(*IntegerLiteral)
	return ok && o != nil && e.value == o.value
}

func (e *IntegerLiteral) String() string { return strconv.FormatInt(e.value, 10) }

// BooleanLiteral is a TRUE or FALSE constant.
type BooleanLiteral struct {
	value bool
}

func NewBooleanLiteral(value bool) *BooleanLiteral { return &BooleanLiteral{value: value} }

func (e *BooleanLiteral) Value() bool { return e.value }

func (e *BooleanLiteral) Type() NodeType { return NodeBooleanLiteral }

func (e *BooleanLiteral) expressionNode() {}

func (e *BooleanLiteral) Accept(v Visitor, ctx any) any { return v.VisitBooleanLiteral(e, ctx) }

func (e *BooleanLiteral) Fingerprint() uint64 {
	return utils.FingerprintString("bool:" + strconv.FormatBool(e.value))
}

func (e *BooleanLiteral) Equal(other Node) bool {
	o, ok := other.(*BooleanLiteral)
	return ok && o != nil && e.value == o.value
}

func (e *BooleanLiteral) String() string {
	if e.value {
		return "TRUE"
	}
	return "FALSE"
}
