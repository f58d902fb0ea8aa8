package ast

import (
	"hash/fnv"
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// CreateStream is the CREATE STREAM statement: a stream name, its column and
// constraint elements, the WITH (...) property bag and an optional row
// format. The node is a pure carrier. It holds whatever the producer supplied
// without validating names, types or property keys; the engine decides what
// is acceptable at deploy time.
type CreateStream struct {
	name          string
	tableElements []Node
	properties    *Properties
	rowFormat     string
}

// NewCreateStream builds the statement in one shot. Nil tableElements and
// properties are normalized to empty, so accessors never return nil. The
// element slice is handed over to the node and must not be mutated by the
// caller afterwards.
func NewCreateStream(name string, tableElements []Node, properties *Properties, rowFormat string) *CreateStream {
	if tableElements == nil {
		tableElements = []Node{}
	}
	if properties == nil {
		properties = NewProperties()
	}
	return &CreateStream{
		name:          name,
		tableElements: tableElements,
		properties:    properties,
		rowFormat:     rowFormat,
	}
}

func (s *CreateStream) Name() string { return s.name }

// TableElements returns the column and constraint elements in declaration
// order. The slice is a copy; the elements themselves are shared immutable
// nodes.
func (s *CreateStream) TableElements() []Node {
	out := make([]Node, len(s.tableElements))
	copy(out, s.tableElements)
	return out
}

func (s *CreateStream) Properties() *Properties { return s.properties }

// RowFormat returns the row encoding name, or "" when none was specified.
func (s *CreateStream) RowFormat() string { return s.rowFormat }

func (s *CreateStream) Type() NodeType { return NodeCreateStream }

func (s *CreateStream) statementNode() {}

func (s *CreateStream) Accept(v Visitor, ctx any) any { return v.VisitCreateStream(s, ctx) }

func (s *CreateStream) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("create_stream:"))
	h.Write([]byte(s.name))
	h.Write([]byte{':'})
	for _, el := range s.tableElements {
		h.Write(utils.U64ToBytes(el.Fingerprint()))
	}
	h.Write(utils.U64ToBytes(s.properties.Fingerprint()))
	h.Write([]byte(s.rowFormat))
	return h.Sum64()
}

func (s *CreateStream) Equal(other Node) bool {
	o, ok := other.(*CreateStream)
	if !ok || o == nil {
		return false
	}
	return s.name == o.name &&
		nodesEqual(s.tableElements, o.tableElements) &&
		s.properties.Equal(o.properties) &&
		s.rowFormat == o.rowFormat
}

func (s *CreateStream) String() string {
	var sb strings.Builder
	sb.WriteString("CREATE STREAM ")
	sb.WriteString(s.name)
	if len(s.tableElements) > 0 {
		sb.WriteString(" (")
		for i, el := range s.tableElements {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(el.String())
		}
		sb.WriteByte(')')
	}
	if s.properties.Len() > 0 {
		sb.WriteString(" WITH ")
		sb.WriteString(s.properties.String())
	}
	if s.rowFormat != "" {
		sb.WriteString(" ROW FORMAT ")
		sb.WriteString(s.rowFormat)
	}
	return sb.String()
}
