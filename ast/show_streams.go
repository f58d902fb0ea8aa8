package ast

import (
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// ShowStreams is the SHOW STREAMS statement, optionally filtered by a LIKE
// pattern. An empty pattern lists everything.
type ShowStreams struct {
	likePattern string
}

func NewShowStreams(likePattern string) *ShowStreams {
	return &ShowStreams{likePattern: likePattern}
}

func (s *ShowStreams) LikePattern() string { return s.likePattern }

func (s *ShowStreams) Type() NodeType { return NodeShowStreams }

func (s *ShowStreams) statementNode() {}

func (s *ShowStreams) Accept(v Visitor, ctx any) any { return v.VisitShowStreams(s, ctx) }

func (s *ShowStreams) Fingerprint() uint64 {
	return utils.FingerprintString("show_streams:" + s.likePattern)
}

func (s *ShowStreams) Equal(other Node) bool {
	o, ok := other.(*ShowStreams)
	return ok && o != nil && s.likePattern == o.likePattern
}

func (s *ShowStreams) String() string {
	if s.likePattern == "" {
		return "SHOW STREAMS"
	}
	return "SHOW STREAMS LIKE '" + strings.ReplaceAll(s.likePattern, "'", "''") + "'"
}
