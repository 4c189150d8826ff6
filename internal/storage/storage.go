package storage

import (
	"context"
	"time"
)

// Snapshot is a serialized copy of content last read from the backend.
type Snapshot struct {
	Name      string
	Payload   []byte
	StoredAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether s may no longer be served at now. A zero
// ExpiresAt never expires.
func (s Snapshot) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SnapshotStore keeps content snapshots across restarts.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, name string) (Snapshot, bool, error)
	SaveSnapshot(ctx context.Context, snapshot Snapshot) error
	DeleteSnapshot(ctx context.Context, name string) error
}
