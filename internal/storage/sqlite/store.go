package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/portfolio/internal/storage"
	"github.com/louisbranch/portfolio/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var errNotConfigured = errors.New("snapshot store is not configured")

// Store keeps content snapshots in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ storage.SnapshotStore = (*Store)(nil)

// Open opens and migrates the snapshot database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("snapshot store: path is required")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path)+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping snapshot db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, db, migrations.FS, "."); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database. A nil store is a no-op.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadSnapshot returns the unexpired snapshot stored under name.
func (s *Store) LoadSnapshot(ctx context.Context, name string) (storage.Snapshot, bool, error) {
	if s == nil || s.db == nil {
		return storage.Snapshot{}, false, errNotConfigured
	}
	snap := storage.Snapshot{Name: strings.TrimSpace(name)}
	if snap.Name == "" {
		return storage.Snapshot{}, false, errors.New("snapshot name is required")
	}
	var storedAt, expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, stored_at, expires_at FROM content_snapshots
		 WHERE name = ? AND (expires_at = 0 OR expires_at > ?)`,
		snap.Name, s.now().UnixMilli(),
	).Scan(&snap.Payload, &storedAt, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return storage.Snapshot{}, false, nil
	case err != nil:
		return storage.Snapshot{}, false, fmt.Errorf("load snapshot %s: %w", snap.Name, err)
	}
	snap.StoredAt = fromMillis(storedAt)
	snap.ExpiresAt = fromMillis(expiresAt)
	return snap, true, nil
}

// SaveSnapshot replaces the snapshot stored under snapshot.Name. A zero
// StoredAt is stamped with the current time.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot storage.Snapshot) error {
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	name := strings.TrimSpace(snapshot.Name)
	if name == "" {
		return errors.New("snapshot name is required")
	}
	if len(snapshot.Payload) == 0 {
		return fmt.Errorf("snapshot %s: payload is required", name)
	}
	if snapshot.StoredAt.IsZero() {
		snapshot.StoredAt = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO content_snapshots (name, payload, stored_at, expires_at) VALUES (?, ?, ?, ?)`,
		name, snapshot.Payload, toMillis(snapshot.StoredAt), toMillis(snapshot.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", name, err)
	}
	return nil
}

// DeleteSnapshot removes the snapshot stored under name, if any.
func (s *Store) DeleteSnapshot(ctx context.Context, name string) error {
	if s == nil || s.db == nil {
		return errNotConfigured
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM content_snapshots WHERE name = ?`, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", name, err)
	}
	return nil
}

// PurgeExpired removes every expired snapshot and reports how many went.
func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	if s == nil || s.db == nil {
		return 0, errNotConfigured
	}
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM content_snapshots WHERE expires_at != 0 AND expires_at <= ?`, s.now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("purge snapshots: %w", err)
	}
	return res.RowsAffected()
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
