package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/diag"      //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/record"    //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components
	// Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			record.NodeID,
			shell.NodeID,
			diag.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			diag.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	filesystem, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	recordLoader, err := graft.Dep[ports.RecordLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	diagnostics, err := graft.Dep[ports.Diagnostics](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(filesystem, recordLoader, executor, diagnostics, log, tracer, watch), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	diagnostics, err := graft.Dep[ports.Diagnostics](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
		Diag:   diagnostics,
	}, nil
}
