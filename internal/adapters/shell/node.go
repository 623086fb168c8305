package shell

import (
	"context"
	"os"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/logger"
	"go.trai.ch/ripple/internal/adapters/telemetry"
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the executor Graft node.
const NodeID graft.ID = "adapter.executor"

// DefaultCompiler is the compiler binary used when RIPPLE_COMPILER is unset.
const DefaultCompiler = "ripplec"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			compiler := os.Getenv("RIPPLE_COMPILER")
			if compiler == "" {
				compiler = DefaultCompiler
			}

			return NewExecutor(log, tracer, compiler, runtime.NumCPU()), nil
		},
	})
}
