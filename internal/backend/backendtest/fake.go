// Package backendtest provides an in-memory backend.Client for tests.
package backendtest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/louisbranch/portfolio/internal/backend"
)

// Row is one generic record.
type Row = map[string]any

var _ backend.Client = (*Fake)(nil)

// Fake serves canned rows per table and records every call. Equality
// filters, ordering and limits are applied; errors can be injected per table.
type Fake struct {
	mu      sync.Mutex
	tables  map[string][]Row
	errs    map[string]error
	queries []backend.Query
	inserts map[string][]Row
	// Block, when set, is awaited by every Select before it returns.
	Block chan struct{}
}

// NewFake returns an empty fake.
func NewFake() *Fake {
	return &Fake{
		tables:  map[string][]Row{},
		errs:    map[string]error{},
		inserts: map[string][]Row{},
	}
}

// Seed replaces the rows of table.
func (f *Fake) Seed(table string, rows ...Row) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table] = append([]Row(nil), rows...)
	return f
}

// Fail makes every call on table return err.
func (f *Fake) Fail(table string, err error) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[table] = err
	return f
}

// Queries returns the queries received so far.
func (f *Fake) Queries() []backend.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.Query(nil), f.queries...)
}

// QueryCount returns how many selects targeted table.
func (f *Fake) QueryCount(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, q := range f.queries {
		if q.Table == table {
			n++
		}
	}
	return n
}

// Inserted returns rows inserted into table.
func (f *Fake) Inserted(table string) []Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Row(nil), f.inserts[table]...)
}

// Select implements backend.Client.
func (f *Fake) Select(ctx context.Context, q backend.Query, dest any) (backend.Result, error) {
	if err := q.Validate(); err != nil {
		return backend.Result{}, err
	}
	if f.Block != nil {
		select {
		case <-f.Block:
		case <-ctx.Done():
			return backend.Result{}, ctx.Err()
		}
	}

	f.mu.Lock()
	f.queries = append(f.queries, q)
	err := f.errs[q.Table]
	rows := filterRows(f.tables[q.Table], q)
	f.mu.Unlock()

	if err != nil {
		return backend.Result{}, err
	}

	total := len(rows)
	if q.Max > 0 && len(rows) > q.Max {
		rows = rows[:q.Max]
	}
	res := backend.Result{}
	if q.Counted {
		res = backend.Result{Count: total, Counted: true}
	}
	if q.HeadOnly || dest == nil {
		return res, nil
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
		return backend.Result{}, fmt.Errorf("encode rows: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return backend.Result{}, fmt.Errorf("decode rows: %w", err)
	}
	return res, nil
}

// Insert implements backend.Client.
func (f *Fake) Insert(_ context.Context, table string, row any) error {
	if err := backend.ValidateIdentifier(table); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errs[table]; err != nil {
		return err
	}
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("encode row: %w", err)
	}
	var generic Row
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("decode row: %w", err)
	}
	f.inserts[table] = append(f.inserts[table], generic)
	return nil
}

func filterRows(rows []Row, q backend.Query) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if matches(row, q.Filters) {
			out = append(out, row)
		}
	}
	for i := len(q.Orders) - 1; i >= 0; i-- {
		order := q.Orders[i]
		sort.SliceStable(out, func(a, b int) bool {
			less := compare(out[a][order.Column], out[b][order.Column])
			if order.Ascending {
				return less < 0
			}
			return less > 0
		})
	}
	return out
}

func matches(row Row, filters []backend.Filter) bool {
	for _, filter := range filters {
		value, ok := row[filter.Column]
		if !ok || backend.FormatValue(value) != backend.FormatValue(filter.Value) {
			return false
		}
	}
	return true
}

func compare(a, b any) int {
	switch av := a.(type) {
	case int:
		if bv, ok := b.(int); ok {
			return av - bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}
