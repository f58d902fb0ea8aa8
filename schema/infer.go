package schema

import (
	"fmt"
	"reflect"

	"github.com/streamsql-dev/streamsql/ast"
)

// StreamDef is an inferred stream schema, the mutable working form that a
// CreateStream statement is assembled from.
type StreamDef struct {
	Name    string
	Columns []*ast.ColumnDef
	Key     []string
}

// Elements widens the definition into the table element list of a CREATE
// STREAM statement, appending a PRIMARY KEY constraint when key columns were
// tagged.
func (d *StreamDef) Elements() []ast.Node {
	elements := make([]ast.Node, 0, len(d.Columns)+1)
	for _, c := range d.Columns {
		elements = append(elements, c)
	}
	if len(d.Key) > 0 {
		elements = append(elements, ast.NewKeyConstraint(d.Key...))
	}
	return elements
}

// CreateStream assembles the DDL statement for this definition.
func (d *StreamDef) CreateStream(props *ast.Properties, rowFormat string) *ast.CreateStream {
	return ast.NewCreateStream(d.Name, d.Elements(), props, rowFormat)
}

// Inferrer derives stream definitions from struct types via reflection.
type Inferrer struct {
	naming NamingStrategy
	tags   *TagParser
}

// NewInferrer builds an inferrer around the given naming strategy; nil means
// DefaultNamingStrategy.
func NewInferrer(naming NamingStrategy) *Inferrer {
	if naming == nil {
		naming = DefaultNamingStrategy()
	}
	return &Inferrer{
		naming: naming,
		tags:   NewTagParser(naming),
	}
}

var defaultInferrer = NewInferrer(nil)

// Infer derives a StreamDef from v using the default naming strategy. v must
// be a struct or pointer to struct.
func Infer(v any) (*StreamDef, error) {
	return defaultInferrer.Infer(v)
}

// Infer derives a StreamDef from v's type. Exported fields become columns in
// declaration order; embedded structs are flattened; pointer fields map to
// nullable columns while value fields come out NOT NULL unless a tag says
// otherwise.
func (in *Inferrer) Infer(v any) (*StreamDef, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("schema: cannot infer stream from nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: cannot infer stream from %s, need a struct", t.Kind())
	}

	def := &StreamDef{Name: in.naming.StreamName(t.Name())}
	if err := in.collect(t, def); err != nil {
		return nil, err
	}
	return def, nil
}

func (in *Inferrer) collect(t reflect.Type, def *StreamDef) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := in.tags.Parse(f.Name, f.Tag)
		if tag.Skip {
			continue
		}

		// Flatten untagged embedded structs, except struct-typed scalars
		// like time.Time that map to a single column.
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Type != timeType && f.Tag.Get("stream") == "" {
			if err := in.collect(f.Type, def); err != nil {
				return err
			}
			continue
		}

		col, err := in.column(f, tag)
		if err != nil {
			return err
		}
		def.Columns = append(def.Columns, col)
		if tag.Key {
			def.Key = append(def.Key, col.Name())
		}
	}
	return nil
}

func (in *Inferrer) column(f reflect.StructField, tag *ParsedTag) (*ast.ColumnDef, error) {
	ft := f.Type
	nullable := false
	if ft.Kind() == reflect.Pointer {
		nullable = true
		ft = ft.Elem()
	}

	var dt ast.DataType
	if tag.Type != "" {
		dt = ast.DataType{Name: tag.Type}
	} else {
		mapped, ok := sqlType(ft)
		if !ok {
			return nil, fmt.Errorf("schema: field %s: no column type for %s, use a type tag or skip it", f.Name, ft)
		}
		dt = mapped
	}

	notNull := !nullable
	if tag.Null {
		notNull = false
	}
	if tag.NotNull {
		notNull = true
	}

	return ast.NewColumnDef(tag.Column, dt, notNull), nil
}
