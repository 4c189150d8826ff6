package backend

import (
	"fmt"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Filter is one equality predicate.
type Filter struct {
	Column string
	Value  any
}

// Ordering sorts rows by one column.
type Ordering struct {
	Column    string
	Ascending bool
}

// Query is a declarative read against one table. The zero value is not
// usable; start with From.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Orders  []Ordering
	// Max is the row limit; zero means unlimited.
	Max int
	// Counted asks for the exact number of matching rows.
	Counted bool
	// HeadOnly returns only the count, no rows.
	HeadOnly bool
	// SingleRow expects exactly one row decoded into a struct.
	SingleRow bool
}

// From starts a query on table selecting every column.
func From(table string) Query {
	return Query{Table: table}
}

// Select restricts the returned columns.
func (q Query) Select(columns ...string) Query {
	q.Columns = append(append([]string(nil), q.Columns...), columns...)
	return q
}

// Eq adds an equality filter.
func (q Query) Eq(column string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Column: column, Value: value})
	return q
}

// Order appends a sort key.
func (q Query) Order(column string, ascending bool) Query {
	q.Orders = append(append([]Ordering(nil), q.Orders...), Ordering{Column: column, Ascending: ascending})
	return q
}

// Limit caps the number of returned rows.
func (q Query) Limit(n int) Query {
	q.Max = n
	return q
}

// Count requests an exact row count alongside the rows.
func (q Query) Count() Query {
	q.Counted = true
	return q
}

// Head requests the count only. It implies Count.
func (q Query) Head() Query {
	q.Counted = true
	q.HeadOnly = true
	return q
}

// Single expects exactly one row.
func (q Query) Single() Query {
	q.SingleRow = true
	return q
}

// SelectList renders the column list, "*" when none was chosen.
func (q Query) SelectList() string {
	if len(q.Columns) == 0 {
		return "*"
	}
	return strings.Join(q.Columns, ",")
}

// Validate checks identifiers and mode combinations before any I/O.
func (q Query) Validate() error {
	if err := ValidateIdentifier(q.Table); err != nil {
		return fmt.Errorf("table: %w", err)
	}
	for _, column := range q.Columns {
		if column == "*" {
			continue
		}
		if err := ValidateIdentifier(column); err != nil {
			return fmt.Errorf("select: %w", err)
		}
	}
	for _, filter := range q.Filters {
		if err := ValidateIdentifier(filter.Column); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
		switch filter.Value.(type) {
		case string, bool, int, int64, float64:
		default:
			return fmt.Errorf("filter %s: unsupported value type %T", filter.Column, filter.Value)
		}
	}
	for _, order := range q.Orders {
		if err := ValidateIdentifier(order.Column); err != nil {
			return fmt.Errorf("order: %w", err)
		}
	}
	if q.Max < 0 {
		return fmt.Errorf("limit must not be negative, got %d", q.Max)
	}
	if q.HeadOnly && q.SingleRow {
		return fmt.Errorf("head and single modes are exclusive")
	}
	return nil
}

// ValidateIdentifier reports whether name is a safe lower-case SQL identifier.
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

// FormatValue renders a filter value the way both backends compare it.
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(v)
	}
}
