// Package watcher signals when a session log grows. It watches the log's
// directory with fsnotify and keeps a polling ticker as a fallback, because
// some filesystems (network mounts, certain container overlays) deliver no
// change events for appends.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is the fallback poll cadence when events are missing.
const DefaultPollInterval = 2 * time.Second

// Watcher delivers change signals for one file. The signal carries no
// payload; receivers re-read the file to find out what changed. Signals are
// coalesced: a burst of writes between receives collapses into one.
type Watcher struct {
	path     string
	interval time.Duration
	fsw      *fsnotify.Watcher
	changes  chan struct{}
}

// New creates a watcher for path. pollInterval bounds how stale the view can
// get when filesystem events are not delivered; zero or negative selects
// DefaultPollInterval.
func New(path string, pollInterval time.Duration) (*Watcher, error) {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	// Watch the directory, not the file: editors and the CLI both replace
	// files by rename, which silently drops a file-level watch.
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:     path,
		interval: pollInterval,
		fsw:      fsw,
		changes:  make(chan struct{}, 1),
	}, nil
}

// Changes returns the channel change signals arrive on.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Run forwards filesystem events and poll ticks as change signals until ctx
// is done. Watcher errors are absorbed; the poll ticker keeps the watch
// alive regardless.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	defer w.fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.signal()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-ticker.C:
			w.signal()
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}
