package visitor

import (
	"strings"
	"sync"

	"github.com/streamsql-dev/streamsql/ast"
	"github.com/streamsql-dev/streamsql/cache"
	"github.com/streamsql-dev/streamsql/dialect"
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{}
	},
}

// SQLVisitor renders statement trees as engine-ready SQL text for one
// dialect. Instances come from a pool: obtain with NewSQLVisitor, render with
// Build, and hand back with Release. A visitor must not be shared across
// goroutines; the nodes it renders can be.
type SQLVisitor struct {
	sb      strings.Builder
	dialect dialect.Dialect
	qcache  cache.QueryCache
}

// NewSQLVisitor returns a pooled visitor bound to d. A nil qcache disables
// rendered-SQL caching.
func NewSQLVisitor(d dialect.Dialect, q cache.QueryCache) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	v.dialect = d
	v.qcache = q
	v.sb.Reset()
	return v
}

func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.qcache = nil
	v.sb.Reset()
	visitorPool.Put(v)
}

// Build renders root, consulting the fingerprint-keyed cache first. Equal
// statements share a fingerprint, so a cache hit skips rendering entirely.
func (v *SQLVisitor) Build(root ast.Statement) (string, error) {
	fp := root.Fingerprint()

	if v.qcache != nil {
		if sql, ok := v.qcache.Get(fp); ok {
			return sql, nil
		}
	}

	v.sb.Reset()
	if res := root.Accept(v, nil); res != nil {
		if err, ok := res.(error); ok {
			return "", err
		}
	}

	sql := v.sb.String()
	if v.qcache != nil {
		v.qcache.Set(fp, sql)
	}
	return sql, nil
}

func (v *SQLVisitor) VisitCreateStream(s *ast.CreateStream, ctx any) any {
	v.sb.WriteString("CREATE STREAM ")
	v.sb.WriteString(v.dialect.QuoteIdentifier(s.Name()))

	if elements := s.TableElements(); len(elements) > 0 {
		v.sb.WriteString(" (")
		for i, el := range elements {
			if i > 0 {
				v.sb.WriteString(", ")
			}
			if res := el.Accept(v, ctx); res != nil {
				return res
			}
		}
		v.sb.WriteByte(')')
	}

	if s.Properties().Len() > 0 {
		v.sb.WriteString(" WITH ")
		if res := s.Properties().Accept(v, ctx); res != nil {
			return res
		}
	}

	if rf := s.RowFormat(); rf != "" && v.dialect.SupportsRowFormat() {
		v.sb.WriteString(" ROW FORMAT ")
		v.sb.WriteString(rf)
	}
	return nil
}

func (v *SQLVisitor) VisitDropStream(s *ast.DropStream, ctx any) any {
	v.sb.WriteString("DROP STREAM ")
	if s.IfExists() {
		v.sb.WriteString("IF EXISTS ")
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(s.Name()))
	return nil
}

func (v *SQLVisitor) VisitShowStreams(s *ast.ShowStreams, ctx any) any {
	v.sb.WriteString("SHOW STREAMS")
	if p := s.LikePattern(); p != "" {
		v.sb.WriteString(" LIKE ")
		v.sb.WriteString(v.dialect.RenderValue(p))
	}
	return nil
}

func (v *SQLVisitor) VisitColumnDef(c *ast.ColumnDef, ctx any) any {
	v.sb.WriteString(v.dialect.QuoteIdentifier(c.Name()))
	v.sb.WriteByte(' ')
	v.sb.WriteString(c.DataType().String())
	if c.NotNull() {
		v.sb.WriteString(" NOT NULL")
	}
	return nil
}

func (v *SQLVisitor) VisitKeyConstraint(k *ast.KeyConstraint, ctx any) any {
	v.sb.WriteString("PRIMARY KEY (")
	for i, col := range k.Columns() {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(col))
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitProperties(p *ast.Properties, ctx any) any {
	v.sb.WriteByte('(')
	for i, pair := range p.Pairs() {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.sb.WriteString(pair.Key)
		v.sb.WriteString(" = ")
		if res := pair.Value.Accept(v, ctx); res != nil {
			return res
		}
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitIdentifier(e *ast.Identifier, ctx any) any {
	v.sb.WriteString(v.dialect.QuoteIdentifier(e.Value()))
	return nil
}

func (v *SQLVisitor) VisitStringLiteral(e *ast.StringLiteral, ctx any) any {
	v.sb.WriteString(v.dialect.RenderValue(e.Value()))
	return nil
}

func (v *SQLVisitor) VisitIntegerLiteral(e *ast.IntegerLiteral, ctx any) any {
	v.sb.WriteString(v.dialect.RenderValue(e.Value()))
	return nil
}

func (v *SQLVisitor) VisitBooleanLiteral(e *ast.BooleanLiteral, ctx any) any {
	v.sb.WriteString(v.dialect.RenderValue(e.Value()))
	return nil
}

var _ ast.Visitor = (*SQLVisitor)(nil)
