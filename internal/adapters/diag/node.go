package diag

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the diagnostics Graft node.
const NodeID graft.ID = "adapter.diagnostics"

func init() {
	graft.Register(graft.Node[ports.Diagnostics]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Diagnostics, error) {
			return NewEngine(nil), nil
		},
	})
}
