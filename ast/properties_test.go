package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesDuplicateKeyKeepsPosition(t *testing.T) {
	p := Props(
		Prop("connector", Str("kafka")),
		Prop("topic", Str("orders")),
		Prop("connector", Str("pulsar")),
	)

	// the duplicate overwrote in place: two entries, original position,
	// last value
	require.Equal(t, 2, p.Len())

	pairs := p.Pairs()
	assert.Equal(t, "connector", pairs[0].Key)
	assert.True(t, pairs[0].Value.Equal(Str("pulsar")))
	assert.Equal(t, "topic", pairs[1].Key)

	v, ok := p.Get("connector")
	require.True(t, ok)
	assert.True(t, v.Equal(Str("pulsar")))
}

func TestPropertiesGetMiss(t *testing.T) {
	p := Props(Prop("a", Int(1)))
	v, ok := p.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestPropertiesOrderMatters(t *testing.T) {
	ab := Props(Prop("a", Int(1)), Prop("b", Int(2)))
	ba := Props(Prop("b", Int(2)), Prop("a", Int(1)))
	ab2 := Props(Prop("a", Int(1)), Prop("b", Int(2)))

	assert.False(t, ab.Equal(ba))
	assert.NotEqual(t, ab.Fingerprint(), ba.Fingerprint())

	assert.True(t, ab.Equal(ab2))
	assert.Equal(t, ab.Fingerprint(), ab2.Fingerprint())
}

func TestPropertiesValueSensitivity(t *testing.T) {
	a := Props(Prop("retention", Int(86400)))
	b := Props(Prop("retention", Int(3600)))

	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestPropertiesPairsIsACopy(t *testing.T) {
	p := Props(Prop("a", Int(1)), Prop("b", Int(2)))
	twin := Props(Prop("a", Int(1)), Prop("b", Int(2)))

	pairs := p.Pairs()
	pairs[0] = Prop("z", Int(9))

	assert.True(t, p.Equal(twin))
}

func TestPropertiesMixedValueKinds(t *testing.T) {
	p := Props(
		Prop("format", Str("json")),
		Prop("buffer", Int(4096)),
		Prop("append_only", Bool(true)),
		Prop("timezone", Ident("UTC")),
	)

	assert.Equal(t, "(format = 'json', buffer = 4096, append_only = TRUE, timezone = UTC)", p.String())
}
