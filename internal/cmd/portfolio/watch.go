package portfolio

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 200 * time.Millisecond

type fixtureWatcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	logger   *zap.Logger
}

// newFixtureWatcher watches the directory holding path so editors that
// replace the file on save still trigger a reseed.
func newFixtureWatcher(path string, logger *zap.Logger) (*fixtureWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fixture watcher: %w", err)
	}
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fixtureWatcher{watcher: watcher, target: target, debounce: watchDebounce, logger: logger}, nil
}

// run calls reseed after each settled change to the fixture until ctx ends.
// A failed reseed is logged and the previous content stays in place.
func (w *fixtureWatcher) run(ctx context.Context, reseed func(context.Context) error) error {
	defer w.watcher.Close()
	w.logger.Info("watching fixture", zap.String("file", w.target))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.target || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			pending = time.After(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("fixture watcher", zap.Error(err))
		case <-pending:
			pending = nil
			if err := reseed(ctx); err != nil {
				w.logger.Warn("reseed fixture", zap.String("file", w.target), zap.Error(err))
			}
		}
	}
}
