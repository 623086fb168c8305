package record

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ripple/internal/adapters/fs"
	"go.trai.ch/ripple/internal/core/ports"
)

// NodeID is the unique identifier for the record loader Graft node.
const NodeID graft.ID = "adapter.record_loader"

func init() {
	graft.Register(graft.Node[ports.RecordLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
		},
		Run: func(ctx context.Context) (ports.RecordLoader, error) {
			filesystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(filesystem), nil
		},
	})
}
