// Package sqlite implements backend.Client on a local SQLite database that
// mirrors the hosted schema. It serves local development, the seed command
// and tests, returning rows in the same JSON shape as the REST backend.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/portfolio/internal/backend"
	"github.com/louisbranch/portfolio/internal/backend/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/portfolio/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Backend serves content tables from SQLite.
type Backend struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

var _ backend.Client = (*Backend)(nil)

// Open opens and migrates the database at path. ":memory:" opens a private
// in-memory database.
func Open(ctx context.Context, path string) (*Backend, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite backend: path is required")
	}
	dsn := "file::memory:?cache=private"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Backend{db: db, now: time.Now, newID: uuid.NewString}, nil
}

// Close releases the database.
func (b *Backend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Select implements backend.Client.
func (b *Backend) Select(ctx context.Context, q backend.Query, dest any) (backend.Result, error) {
	if err := q.Validate(); err != nil {
		return backend.Result{}, err
	}
	schema, columns, err := resolve(q)
	if err != nil {
		return backend.Result{}, err
	}
	where, args := whereClause(q.Filters)

	res := backend.Result{}
	if q.Counted {
		var count int
		if err := b.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+q.Table+where, args...).Scan(&count); err != nil {
			return backend.Result{}, fmt.Errorf("count %s: %w", q.Table, err)
		}
		res = backend.Result{Count: count, Counted: true}
	}
	if q.HeadOnly || dest == nil {
		return res, nil
	}

	stmt := "SELECT " + strings.Join(columns, ", ") + " FROM " + q.Table + where + orderClause(q.Orders)
	switch {
	case q.Max > 0:
		stmt += fmt.Sprintf(" LIMIT %d", q.Max)
	case q.SingleRow:
		stmt += " LIMIT 2"
	}

	rows, err := b.queryRows(ctx, schema, columns, stmt, args)
	if err != nil {
		return backend.Result{}, fmt.Errorf("select %s: %w", q.Table, err)
	}

	var payload any = rows
	if q.SingleRow {
		switch len(rows) {
		case 0:
			return backend.Result{}, backend.ErrNoRows
		case 1:
			payload = rows[0]
		default:
			return backend.Result{}, backend.ErrMultipleRows
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return backend.Result{}, fmt.Errorf("encode %s rows: %w", q.Table, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return backend.Result{}, fmt.Errorf("decode %s rows: %w", q.Table, err)
	}
	return res, nil
}

// Insert implements backend.Client. Missing id and created_at values are
// generated.
func (b *Backend) Insert(ctx context.Context, table string, row any) error {
	return b.insert(ctx, b.db, table, row)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (b *Backend) insert(ctx context.Context, db execer, table string, row any) error {
	if err := backend.ValidateIdentifier(table); err != nil {
		return err
	}
	schema, ok := schemas[table]
	if !ok {
		return fmt.Errorf("insert: unknown table %q", table)
	}
	values, err := toMap(row)
	if err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	for column := range values {
		if !schema.has(column) {
			return fmt.Errorf("insert %s: unknown column %q", table, column)
		}
	}
	if blank(values["id"]) {
		values["id"] = b.newID()
	}
	if schema.has("created_at") && blank(values["created_at"]) {
		values["created_at"] = b.now().UTC().Format(time.RFC3339)
	}

	columns := make([]string, 0, len(values))
	args := make([]any, 0, len(values))
	for _, column := range schema.columns {
		value, present := values[column]
		if !present {
			continue
		}
		encoded, err := encodeColumn(schema.kinds[column], value)
		if err != nil {
			return fmt.Errorf("insert %s.%s: %w", table, column, err)
		}
		columns = append(columns, column)
		args = append(args, encoded)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + placeholders + ")"
	if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

func (b *Backend) queryRows(ctx context.Context, schema tableSchema, columns []string, stmt string, args []any) ([]map[string]any, error) {
	rows, err := b.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []map[string]any
	for rows.Next() {
		raw := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		record := make(map[string]any, len(columns))
		for i, column := range columns {
			record[column] = decodeColumn(schema.kinds[column], raw[i])
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out, nil
}

func resolve(q backend.Query) (tableSchema, []string, error) {
	schema, ok := schemas[q.Table]
	if !ok {
		return tableSchema{}, nil, fmt.Errorf("unknown table %q", q.Table)
	}
	columns := make([]string, 0, len(schema.columns))
	for _, column := range q.Columns {
		if column == "*" {
			columns = append(columns, schema.columns...)
			continue
		}
		if !schema.has(column) {
			return tableSchema{}, nil, fmt.Errorf("unknown column %s.%s", q.Table, column)
		}
		columns = append(columns, column)
	}
	if len(q.Columns) == 0 {
		columns = append(columns, schema.columns...)
	}
	for _, filter := range q.Filters {
		if !schema.has(filter.Column) {
			return tableSchema{}, nil, fmt.Errorf("unknown filter column %s.%s", q.Table, filter.Column)
		}
	}
	for _, order := range q.Orders {
		if !schema.has(order.Column) {
			return tableSchema{}, nil, fmt.Errorf("unknown order column %s.%s", q.Table, order.Column)
		}
	}
	return schema, columns, nil
}

func whereClause(filters []backend.Filter) (string, []any) {
	if len(filters) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(filters))
	args := make([]any, 0, len(filters))
	for _, filter := range filters {
		parts = append(parts, filter.Column+" = ?")
		if v, ok := filter.Value.(bool); ok {
			args = append(args, boolInt(v))
			continue
		}
		args = append(args, filter.Value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func orderClause(orders []backend.Ordering) string {
	if len(orders) == 0 {
		return ""
	}
	parts := make([]string, 0, len(orders))
	for _, order := range orders {
		dir := "DESC"
		if order.Ascending {
			dir = "ASC"
		}
		parts = append(parts, order.Column+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func toMap(row any) (map[string]any, error) {
	if values, ok := row.(map[string]any); ok {
		copied := make(map[string]any, len(values))
		for k, v := range values {
			copied[k] = v
		}
		return copied, nil
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encode row: %w", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode row: %w", err)
	}
	return values, nil
}

func blank(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && strings.TrimSpace(s) == ""
}
