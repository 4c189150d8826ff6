package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type columnKind int

const (
	kindText columnKind = iota
	kindInt
	kindBool
	kindJSON
)

// tableSchema whitelists the columns of one table and how each is encoded.
type tableSchema struct {
	columns []string
	kinds   map[string]columnKind
}

func newTable(columns ...string) tableSchema {
	schema := tableSchema{kinds: map[string]columnKind{}}
	for _, column := range columns {
		name, kind := column, kindText
		switch {
		case strings.HasSuffix(column, ":int"):
			name, kind = strings.TrimSuffix(column, ":int"), kindInt
		case strings.HasSuffix(column, ":bool"):
			name, kind = strings.TrimSuffix(column, ":bool"), kindBool
		case strings.HasSuffix(column, ":json"):
			name, kind = strings.TrimSuffix(column, ":json"), kindJSON
		}
		schema.columns = append(schema.columns, name)
		schema.kinds[name] = kind
	}
	return schema
}

func (s tableSchema) has(column string) bool {
	_, ok := s.kinds[column]
	return ok
}

var schemas = map[string]tableSchema{
	"settings": newTable("id", "name", "title", "summary", "hero_text", "availability_status",
		"github", "linkedin", "email", "resume_url", "created_at"),
	"projects": newTable("id", "slug", "title", "tagline", "description", "category", "stack:json",
		"is_featured:bool", "is_published:bool", "cover_image_url", "repo_url", "live_url", "created_at"),
	"skills": newTable("id", "group_name", "items:json", "order_index:int", "created_at"),
	"experience": newTable("id", "role", "company", "start_date", "end_date", "description",
		"order_index:int", "is_published:bool", "created_at"),
	"testimonials": newTable("id", "name", "title", "message", "order_index:int", "is_published:bool", "created_at"),
	"certificates": newTable("id", "title", "issuer", "issue_date", "credential_id", "skills:json",
		"image_url", "verify_url", "order_index:int", "is_published:bool", "created_at"),
	"contact_messages": newTable("id", "name", "email", "message", "created_at"),
}

// Tables lists the content tables in dependency-free seed order.
func Tables() []string {
	return []string{"settings", "projects", "skills", "experience", "testimonials", "certificates", "contact_messages"}
}

// decodeColumn turns a scanned SQLite value into its JSON wire form.
func decodeColumn(kind columnKind, value any) any {
	if value == nil {
		return nil
	}
	switch kind {
	case kindBool:
		switch v := value.(type) {
		case int64:
			return v != 0
		case bool:
			return v
		}
	case kindInt:
		if v, ok := value.(int64); ok {
			return v
		}
	case kindJSON:
		text := asText(value)
		if json.Valid([]byte(text)) {
			return json.RawMessage(text)
		}
		// Malformed list columns still reach the decoder, which coerces them.
		return text
	}
	return asText(value)
}

// encodeColumn turns an insert value into the SQLite storage form.
func encodeColumn(kind columnKind, value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch kind {
	case kindBool:
		switch v := value.(type) {
		case bool:
			if v {
				return int64(1), nil
			}
			return int64(0), nil
		case float64:
			return boolInt(v != 0), nil
		case string:
			return boolInt(v == "true" || v == "1"), nil
		}
		return nil, fmt.Errorf("expected bool, got %T", value)
	case kindInt:
		switch v := value.(type) {
		case float64:
			return int64(v), nil
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
		return nil, fmt.Errorf("expected integer, got %T", value)
	case kindJSON:
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		return string(data), nil
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case time.Time:
		return v.UTC().Format(time.RFC3339), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func asText(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}
