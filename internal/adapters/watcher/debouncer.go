package watcher

import (
	"slices"
	"sync"
	"time"
)

// Debouncer coalesces bursts of change notifications into a single
// callback. Saving a file typically fires several events in quick
// succession; one rebuild should result, not several.
type Debouncer struct {
	window time.Duration
	fire   func(paths []string)

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
}

// NewDebouncer creates a Debouncer that invokes fire with the collected
// paths once no notification has arrived for a full window.
func NewDebouncer(window time.Duration, fire func(paths []string)) *Debouncer {
	return &Debouncer{
		window:  window,
		fire:    fire,
		pending: make(map[string]struct{}),
	}
}

// Notify records a changed path and restarts the window.
func (d *Debouncer) Notify(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.flush)
}

// Stop cancels any pending callback. Paths notified but not yet flushed
// are dropped.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// flush delivers the collected paths in sorted order.
func (d *Debouncer) flush() {
	d.mu.Lock()
	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	clear(d.pending)
	d.timer = nil
	d.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	slices.Sort(paths)
	d.fire(paths)
}
