// Package schema derives stream definitions from Go struct types: field
// names become column names through a configurable naming strategy, field
// types map onto SQL data types, and stream struct tags override both.
package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton so pluralization behaves consistently
// across strategies.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy converts Go identifiers into stream and column names.
type NamingStrategy interface {
	// StreamName derives the stream name from a struct type name.
	StreamName(structName string) string
	// ColumnName derives the column name from a struct field name.
	ColumnName(fieldName string) string
}

type namingStrategy struct {
	convert func(string) string
	plural  bool
}

func (n namingStrategy) StreamName(structName string) string {
	name := n.convert(structName)
	if n.plural {
		name = pluralize(name)
	}
	return name
}

func (n namingStrategy) ColumnName(fieldName string) string {
	return n.convert(fieldName)
}

// SnakeCaseStrategy produces plural snake_case stream names and snake_case
// columns: OrderEvent becomes order_events, CustomerID becomes customer_id.
func SnakeCaseStrategy() NamingStrategy {
	return namingStrategy{convert: toSnakeCase, plural: true}
}

// CamelCaseStrategy produces plural camelCase stream names and camelCase
// columns.
func CamelCaseStrategy() NamingStrategy {
	return namingStrategy{convert: toCamelCase, plural: true}
}

// PascalCaseStrategy produces plural PascalCase stream names and PascalCase
// columns.
func PascalCaseStrategy() NamingStrategy {
	return namingStrategy{convert: toPascalCase, plural: true}
}

// DefaultNamingStrategy is snake_case with pluralized stream names, the
// prevailing convention across SQL engines.
func DefaultNamingStrategy() NamingStrategy {
	return SnakeCaseStrategy()
}

// toSnakeCase converts CamelCase, camelCase or mixed identifiers to
// snake_case, keeping acronym runs intact: UserID becomes user_id,
// HTTPServer becomes http_server.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Common acronym-only identifiers
	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "URL":
		return "url"
	case "API":
		return "api"
	case "JSON":
		return "json"
	case "SQL":
		return "sql"
	}

	// Already snake_case
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 8)

	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// Break before an uppercase rune after a lowercase or digit
			// (aB -> a_b), or at the end of an acronym run (ABc -> a_bc).
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteByte('_')
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// toCamelCase converts any supported convention to camelCase.
func toCamelCase(name string) string {
	snake := toSnakeCase(name)
	if snake == "" {
		return ""
	}

	parts := strings.Split(snake, "_")
	var result strings.Builder
	result.Grow(len(snake))
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			result.WriteString(part)
			continue
		}
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(part[1:])
	}
	return result.String()
}

// toPascalCase converts any supported convention to PascalCase.
func toPascalCase(name string) string {
	camel := toCamelCase(name)
	if camel == "" {
		return ""
	}
	return strings.ToUpper(camel[:1]) + camel[1:]
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func pluralize(name string) string {
	if name == "" {
		return ""
	}
	return pluralizeClient.Pluralize(name, 2, false)
}
