package schema

import (
	"reflect"
	"time"

	"github.com/streamsql-dev/streamsql/ast"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	bytesType    = reflect.TypeOf([]byte(nil))
	durationType = reflect.TypeOf(time.Duration(0))
)

// sqlType maps a Go type onto the column type used in stream DDL. The second
// result reports whether a mapping exists.
func sqlType(t reflect.Type) (ast.DataType, bool) {
	switch t {
	case timeType:
		return ast.DataType{Name: "TIMESTAMP"}, true
	case bytesType:
		return ast.DataType{Name: "BYTEA"}, true
	case durationType:
		return ast.DataType{Name: "INTERVAL"}, true
	}

	switch t.Kind() {
	case reflect.String:
		return ast.DataType{Name: "VARCHAR"}, true
	case reflect.Bool:
		return ast.DataType{Name: "BOOLEAN"}, true
	case reflect.Int8, reflect.Int16:
		return ast.DataType{Name: "SMALLINT"}, true
	case reflect.Int32, reflect.Uint8, reflect.Uint16:
		return ast.DataType{Name: "INT"}, true
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint32, reflect.Uint64:
		return ast.DataType{Name: "BIGINT"}, true
	case reflect.Float32:
		return ast.DataType{Name: "REAL"}, true
	case reflect.Float64:
		return ast.DataType{Name: "DOUBLE PRECISION"}, true
	}
	return ast.DataType{}, false
}
