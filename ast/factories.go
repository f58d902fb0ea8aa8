package ast

// Shorthand constructors for assembling statements by hand.

func Ident(name string) *Identifier { return NewIdentifier(name) }

func Str(v string) *StringLiteral { return NewStringLiteral(v) }

func Int(v int64) *IntegerLiteral { return NewIntegerLiteral(v) }

func Bool(v bool) *BooleanLiteral { return NewBooleanLiteral(v) }

// Column declares a nullable column.
func Column(name string, dataType DataType) *ColumnDef {
	return NewColumnDef(name, dataType, false)
}

// NotNullColumn declares a column with a NOT NULL constraint.
func NotNullColumn(name string, dataType DataType) *ColumnDef {
	return NewColumnDef(name, dataType, true)
}

// Columns widens column definitions into a table element slice.
func Columns(defs ...*ColumnDef) []Node {
	elements := make([]Node, len(defs))
	for i, d := range defs {
		elements[i] = d
	}
	return elements
}

func Prop(key string, value Expression) Property {
	return Property{Key: key, Value: value}
}

func Props(pairs ...Property) *Properties { return NewProperties(pairs...) }
