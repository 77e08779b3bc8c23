// Package watch reports settled changes to parseable files using fsnotify.
package watch

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/parsely/internal/core/domain"
	"github.com/custodia-labs/parsely/internal/core/ports/driven"
	"github.com/custodia-labs/parsely/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.Watcher = (*Watcher)(nil)

// Watcher watches a single directory for writes to .json and .xml files.
// Events are coalesced per path and reported once a path has been quiet
// for the debounce window.
type Watcher struct {
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time
}

// NewWatcher creates a watcher with the given debounce window.
// A non-positive window falls back to domain.DefaultWatchDebounce.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = domain.DefaultWatchDebounce
	}
	return &Watcher{
		debounce: debounce,
		pending:  make(map[string]time.Time),
	}
}

// Watch blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string, onChange func(paths []string)) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug("watching %s (debounce %s)", dir, w.debounce)

	ticker := time.NewTicker(w.tick())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)

		case <-ticker.C:
			if ready := w.settled(time.Now()); len(ready) > 0 {
				onChange(ready)
			}
		}
	}
}

// handleEvent queues writes, creates, renames and removals of parseable files.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	if _, err := domain.ClassifyPath(event.Name); err != nil {
		return
	}
	logger.Debug("%s %s", event.Op, event.Name)

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// settled removes and returns, sorted, the paths quiet since now-debounce.
func (w *Watcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, lastChange := range w.pending {
		if now.Sub(lastChange) >= w.debounce {
			ready = append(ready, path)
		}
	}
	for _, path := range ready {
		delete(w.pending, path)
	}

	sort.Strings(ready)
	return ready
}

func (w *Watcher) tick() time.Duration {
	tick := w.debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	return tick
}
