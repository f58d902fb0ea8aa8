package dialect

// Dialect captures the engine-specific parts of SQL rendering. DDL text
// carries no bind parameters, so literals are rendered inline through
// RenderValue.
type Dialect interface {
	QuoteIdentifier(name string) string
	RenderValue(v any) string

	// SupportsRowFormat reports whether the engine accepts a trailing
	// ROW FORMAT clause on CREATE STREAM.
	SupportsRowFormat() bool
}
