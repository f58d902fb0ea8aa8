package schema

import (
	"reflect"
	"strings"
	"sync"
)

// ParsedTag is the parsed form of a stream struct tag.
//
// Supported syntax:
//
//	`stream:"column_name"`              // rename the column
//	`stream:"column:custom;not_null"`   // explicit name plus options
//	`stream:"key"`                      // part of the stream's primary key
//	`stream:"type:DECIMAL(10, 2)"`      // SQL type override
//	`stream:"null"`                     // force nullable
//	`stream:"-"`                        // skip the field entirely
//
// Unknown options are ignored for forward compatibility.
type ParsedTag struct {
	Column  string // column name, explicit or derived from the field name
	Skip    bool
	Type    string // raw SQL type override, rendered verbatim
	Key     bool
	NotNull bool
	Null    bool
}

// TagParser parses stream struct tags, caching results per field and tag
// pair so repeated inference of the same types stays cheap.
type TagParser struct {
	naming  NamingStrategy
	cache   map[string]*ParsedTag
	cacheMu sync.RWMutex
}

func NewTagParser(naming NamingStrategy) *TagParser {
	return &TagParser{
		naming: naming,
		cache:  make(map[string]*ParsedTag, 64),
	}
}

// Parse returns the configuration for one struct field. The result is shared
// with the cache and must be treated as read-only.
func (p *TagParser) Parse(fieldName string, tag reflect.StructTag) *ParsedTag {
	tagValue := tag.Get("stream")
	if tagValue == "" {
		return &ParsedTag{Column: p.naming.ColumnName(fieldName)}
	}

	cacheKey := fieldName + ":" + tagValue
	p.cacheMu.RLock()
	if cached, ok := p.cache[cacheKey]; ok {
		p.cacheMu.RUnlock()
		return cached
	}
	p.cacheMu.RUnlock()

	parsed := p.parseValue(fieldName, tagValue)

	p.cacheMu.Lock()
	p.cache[cacheKey] = parsed
	p.cacheMu.Unlock()
	return parsed
}

func (p *TagParser) parseValue(fieldName, tagValue string) *ParsedTag {
	if tagValue == "-" {
		return &ParsedTag{Skip: true}
	}

	parsed := &ParsedTag{Column: p.naming.ColumnName(fieldName)}

	// Single value: a known flag, otherwise a rename
	if !strings.ContainsAny(tagValue, ";:") {
		if !p.parseFlag(parsed, tagValue) {
			parsed.Column = tagValue
		}
		return parsed
	}

	for _, option := range strings.Split(tagValue, ";") {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}
		if colon := strings.IndexByte(option, ':'); colon != -1 {
			p.parseKeyValue(parsed, strings.TrimSpace(option[:colon]), strings.TrimSpace(option[colon+1:]))
			continue
		}
		p.parseFlag(parsed, option)
	}
	return parsed
}

// parseFlag reports whether flag is part of the known vocabulary.
func (p *TagParser) parseFlag(tag *ParsedTag, flag string) bool {
	switch flag {
	case "key", "primary", "primary_key":
		tag.Key = true
	case "not_null", "not null":
		tag.NotNull = true
	case "null":
		tag.Null = true
	default:
		return false
	}
	return true
}

func (p *TagParser) parseKeyValue(tag *ParsedTag, key, value string) {
	switch key {
	case "column", "name":
		tag.Column = value
	case "type":
		tag.Type = value
	}
}
