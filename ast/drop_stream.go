package ast

import (
	"strconv"

	"github.com/streamsql-dev/streamsql/utils"
)

// DropStream is the DROP STREAM statement.
type DropStream struct {
	name     string
	ifExists bool
}

func NewDropStream(name string, ifExists bool) *DropStream {
	return &DropStream{name: name, ifExists: ifExists}
}

func (s *DropStream) Name() string { return s.name }

func (s *DropStream) IfExists() bool { return s.ifExists }

func (s *DropStream) Type() NodeType { return NodeDropStream }

func (s *DropStream) statementNode() {}

func (s *DropStream) Accept(v Visitor, ctx any) any { return v.VisitDropStream(s, ctx) }

func (s *DropStream) Fingerprint() uint64 {
	return utils.FingerprintString("drop_stream:" + s.name + ":" + strconv.FormatBool(s.ifExists))
}

func (s *DropStream) Equal(other Node) bool {
	o, ok := other.(*DropStream)
	return ok && o != nil && s.name == o.name && s.ifExists == o.ifExists
}

func (s *DropStream) String() string {
	if s.ifExists {
		return "DROP STREAM IF EXISTS " + s.name
	}
	return "DROP STREAM " + s.name
}
