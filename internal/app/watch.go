package app

import (
	"context"
	"time"

	"go.trai.ch/ripple/internal/adapters/watcher"
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/zerr"
)

// debounceWindow coalesces bursts of filesystem events into one rebuild.
const debounceWindow = 200 * time.Millisecond

// Watch builds once, then rebuilds whenever the watched root changes,
// until the context is cancelled. Build failures are logged, not fatal;
// the loop keeps watching.
func (a *App) Watch(ctx context.Context, inputPaths []string, opts BuildOptions) error {
	if err := a.Build(ctx, inputPaths, opts); err != nil {
		a.logger.Error(err)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	rebuild := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(debounceWindow, func(_ []string) {
		select {
		case rebuild <- struct{}{}:
		default:
		}
	})

	if err := a.watcher.Start(ctx, root); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	defer deb.Stop()

	go func() {
		for path := range a.watcher.Changed() {
			deb.Notify(path)
		}
	}()

	a.logger.Info("watching for changes...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rebuild:
			if err := a.Build(ctx, inputPaths, opts); err != nil {
				a.logger.Error(err)
			}
		}
	}
}
