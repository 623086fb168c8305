package ports

import (
	"context"
	"iter"
)

// Watcher reports filesystem changes under a project root so the driver
// can rerun builds in watch mode. Which kind of change occurred does not
// matter to the driver; any change to a watched path restarts the build
// pipeline after debouncing.
type Watcher interface {
	// Start begins watching root recursively.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Changed yields the paths of changed files until the watcher stops.
	Changed() iter.Seq[string]
}
