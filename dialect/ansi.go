package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Ansi is the lowest-common-denominator dialect: double-quoted identifiers,
// standard literal syntax, no streaming extensions.
type Ansi struct{}

func NewAnsiDialect() Dialect {
	return &Ansi{}
}

func (Ansi) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (Ansi) RenderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case time.Time:
		return "TIMESTAMP '" + val.Format("2006-01-02 15:04:05") + "'"
	case []byte:
		return fmt.Sprintf("X'%x'", val)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(val), "'", "''") + "'"
	}
}

func (Ansi) SupportsRowFormat() bool {
	return false
}
