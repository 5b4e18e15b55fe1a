// Package watch re-runs a build when descriptor files change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plugsite/plugsite-cli/internal/logger"
)

// defaultDebounce is the quiet period after the last filesystem event
// before a rebuild runs. Editors often emit several events per save.
const defaultDebounce = 250 * time.Millisecond

// Watcher triggers a rebuild callback on descriptor changes.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher with the default debounce interval.
func New() *Watcher {
	return &Watcher{debounce: defaultDebounce}
}

// NewWithDebounce creates a watcher with a custom debounce interval.
// Used by tests to keep runs fast.
func NewWithDebounce(d time.Duration) *Watcher {
	return &Watcher{debounce: d}
}

// Run watches dir for *.json changes and calls rebuild after each burst
// of events, until ctx is cancelled. Rebuild failures are logged, not
// fatal: a half-saved descriptor should not kill the watch loop.
func (w *Watcher) Run(ctx context.Context, dir string, rebuild func() error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s for descriptor changes", dir)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("descriptor change: %s %s", ev.Op, ev.Name)
			pending = time.After(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-pending:
			pending = nil
			if err := rebuild(); err != nil {
				logger.Error("rebuild failed: %v", err)
			}
		}
	}
}

// relevant filters events down to descriptor file changes.
func relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(ev.Name), ".json")
}
