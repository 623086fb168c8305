// Package watcher implements filesystem watching for watch-mode rebuilds.
package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/ripple/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirs are directories whose churn never affects a build's inputs.
// .ripple in particular must be skipped: the compiler writes summaries
// there during the very builds the watcher triggers.
var skipDirs = map[string]bool{
	".git":         true,
	".jj":          true,
	".ripple":      true,
	"node_modules": true,
}

const changeBuffer = 128

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	changed chan string
}

// NewWatcher creates a filesystem watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:      fw,
		changed: make(chan string, changeBuffer),
	}, nil
}

// Start begins watching root recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	if err := w.addTree(root); err != nil {
		return err
	}
	go w.loop(ctx)
	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fw.Close()
}

// Changed yields the paths of changed files until the watcher stops.
func (w *Watcher) Changed() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.changed {
			if !yield(path) {
				return
			}
		}
	}
}

// addTree registers every directory under root, skipping the skip list.
// Unreadable directories are left unwatched rather than failing the walk.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip unreadable directories
		}
		if !d.IsDir() {
			return nil
		}
		if skipDirs[d.Name()] {
			return fs.SkipDir
		}
		return w.fw.Add(path)
	})
}

// loop pumps fsnotify events into the changed channel until the context
// ends or the watcher closes.
func (w *Watcher) loop(ctx context.Context) {
	defer close(w.changed)

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op == fsnotify.Chmod {
				// Permission-only churn cannot change build inputs.
				continue
			}

			select {
			case w.changed <- ev.Name:
			case <-ctx.Done():
				return
			}

			// New directories join the watch set so files created inside
			// them are seen too.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !skipDirs[info.Name()] {
					_ = w.addTree(ev.Name)
				}
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep pumping events.
		}
	}
}
