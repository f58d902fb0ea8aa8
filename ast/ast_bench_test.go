package ast

import (
	"testing"
)

func BenchmarkCreateStreamFingerprint(b *testing.B) {
	stmt := ordersStream("json")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.Fingerprint()
	}
	b.ReportAllocs()
}

func BenchmarkCreateStreamConstruction(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ordersStream("json")
	}
	b.ReportAllocs()
}

func BenchmarkCreateStreamEqual(b *testing.B) {
	x := ordersStream("json")
	y := ordersStream("json")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Equal(y)
	}
	b.ReportAllocs()
}

func BenchmarkCreateStreamString(b *testing.B) {
	stmt := ordersStream("json")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stmt.String()
	}
	b.ReportAllocs()
}

func BenchmarkPropertiesGet(b *testing.B) {
	p := Props(
		Prop("connector", Str("kafka")),
		Prop("topic", Str("orders")),
		Prop("retention", Int(86400)),
		Prop("format", Str("json")),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Get("format")
	}
	b.ReportAllocs()
}
