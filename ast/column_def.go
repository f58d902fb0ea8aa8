package ast

import (
	"strconv"
	"strings"

	"github.com/streamsql-dev/streamsql/utils"
)

// DataType describes a column's SQL type. It is a plain comparable value.
type DataType struct {
	Name      string
	Length    int // VARCHAR(n); zero means unsized
	Precision int // DECIMAL(p, s)
	Scale     int
}

func (t DataType) String() string {
	switch {
	case t.Precision > 0:
		return t.Name + "(" + strconv.Itoa(t.Precision) + ", " + strconv.Itoa(t.Scale) + ")"
	case t.Length > 0:
		return t.Name + "(" + strconv.Itoa(t.Length) + ")"
	default:
		return t.Name
	}
}

// ColumnDef is a single column declaration inside a CREATE STREAM element
// list.
type ColumnDef struct {
	name     string
	dataType DataType
	notNull  bool
}

func NewColumnDef(name string, dataType DataType, notNull bool) *ColumnDef {
	return &ColumnDef{name: name, dataType: dataType, notNull: notNull}
}

func (c *ColumnDef) Name() string { return c.name }

func (c *ColumnDef) DataType() DataType { return c.dataType }

func (c *ColumnDef) NotNull() bool { return c.notNull }

func (c *ColumnDef) Type() NodeType { return NodeColumnDef }

func (c *ColumnDef) Accept(v Visitor, ctx any) any { return v.VisitColumnDef(c, ctx) }

func (c *ColumnDef) Fingerprint() uint64 {
	return utils.FingerprintString(
		"column_def:" + c.name + ":" + c.dataType.String() + ":" + strconv.FormatBool(c.notNull))
}

func (c *ColumnDef) Equal(other Node) bool {
	o, ok := other.(*ColumnDef)
	return ok && o != nil && c.name == o.name && c.dataType == o.dataType && c.notNull == o.notNull
}

func (c *ColumnDef) String() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	sb.WriteByte(' ')
	sb.WriteString(c.dataType.String())
	if c.notNull {
		sb.WriteString(" NOT NULL")
	}
	return sb.String()
}
