// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ripple/internal/adapters/diag"
	_ "go.trai.ch/ripple/internal/adapters/fs"
	_ "go.trai.ch/ripple/internal/adapters/logger"
	_ "go.trai.ch/ripple/internal/adapters/record"
	_ "go.trai.ch/ripple/internal/adapters/shell"
	_ "go.trai.ch/ripple/internal/adapters/telemetry"
	_ "go.trai.ch/ripple/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/ripple/internal/app"
)
