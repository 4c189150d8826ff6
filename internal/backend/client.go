package backend

import "context"

// Result carries query metadata that is not part of the decoded rows.
type Result struct {
	// Count is the exact number of matching rows when Counted is true.
	Count   int
	Counted bool
}

// Client executes queries against a backend.
//
// Select decodes rows into dest: a pointer to a slice for list reads, a
// pointer to a struct for Single reads, nil for Head reads. When Select
// returns an error dest must not be read.
type Client interface {
	Select(ctx context.Context, q Query, dest any) (Result, error)
	Insert(ctx context.Context, table string, row any) error
}
