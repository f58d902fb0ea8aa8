package ast

import (
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// KeyConstraint is a PRIMARY KEY (...) table element.
type KeyConstraint struct {
	columns []string
}

// NewKeyConstraint copies columns, so the caller's slice stays independent.
func NewKeyConstraint(columns ...string) *KeyConstraint {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &KeyConstraint{columns: cols}
}

// Columns returns the key columns in order. The slice is a copy.
func (k *KeyConstraint) Columns() []string {
	out := make([]string, len(k.columns))
	copy(out, k.columns)
	return out
}

func (k *KeyConstraint) Type() NodeType { return NodeKeyConstraint }

func (k *KeyConstraint) Accept(v Visitor, ctx any) any { return v.VisitKeyConstraint(k, ctx) }

func (k *KeyConstraint) Fingerprint() uint64 {
	return utils.FingerprintString("key:" + strings.Join(k.columns, ","))
}

func (k *KeyConstraint) Equal(other Node) bool {
	o, ok := other.(*KeyConstraint)
	if !ok || o == nil || len(k.columns) != len(o.columns) {
		return false
	}
	for i := range k.columns {
		if k.columns[i] != o.columns[i] {
			return false
		}
	}
	return true
}

func (k *KeyConstraint) String() string {
	return "PRIMARY KEY (" + strings.Join(k.columns, ", ") + ")"
}
