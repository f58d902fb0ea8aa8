package ast

import (
	"hash/fnv"
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// Property is one key = value option inside a WITH (...) clause.
type Property struct {
	Key   string
	Value Expression
}

// Properties is the ordered option bag of a WITH (...) clause. Keys keep the
// position of their first insertion; a duplicate key overwrites the value in
// place, so the last write wins without reordering. Order is part of the
// value: bags with the same pairs in a different order are not equal.
type Properties struct {
	pairs []Property
}

// NewProperties builds the bag from pairs in order, applying the duplicate
// key rule.
func NewProperties(pairs ...Property) *Properties {
	p := &Properties{pairs: make([]Property, 0, len(pairs))}
	at := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		if i, ok := at[pair.Key]; ok {
			p.pairs[i].Value = pair.Value
			continue
		}
		at[pair.Key] = len(p.pairs)
		p.pairs = append(p.pairs, pair)
	}
	return p
}

func (p *Properties) Len() int { return len(p.pairs) }

// Get returns the value stored under key.
func (p *Properties) Get(key string) (Expression, bool) {
	for _, pair := range p.pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// Pairs returns the entries in insertion order. The slice is a copy.
func (p *Properties) Pairs() []Property {
	out := make([]Property, len(p.pairs))
	copy(out, p.pairs)
	return out
}

func (p *Properties) Type() NodeType { return NodeProperties }

func (p *Properties) Accept(v Visitor, ctx any) any { return v.VisitProperties(p, ctx) }

func (p *Properties) Fingerprint() uint64 {
	h := fnv.New64a()
	h.Write([]byte("props:"))
	for _, pair := range p.pairs {
		h.Write([]byte(pair.Key))
		h.Write([]byte{':'})
		h.Write(utils.U64ToBytes(pair.Value.Fingerprint()))
	}
	return h.Sum64()
}

func (p *Properties) Equal(other Node) bool {
	o, ok := other.(*Properties)
	if !ok || o == nil || len(p.pairs) != len(o.pairs) {
		return false
	}
	for i, pair := range p.pairs {
		if pair.Key != o.pairs[i].Key || !pair.Value.Equal(o.pairs[i].Value) {
			return false
		}
	}
	return true
}

func (p *Properties) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, pair := range p.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pair.Key)
		sb.WriteString(" = ")
		sb.WriteString(pair.Value.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
