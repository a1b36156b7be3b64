package hub

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/config"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
)

// NodeID is the unique identifier for the hub client Graft node.
const NodeID graft.ID = "adapter.hub"

func init() {
	graft.Register(graft.Node[ports.Hub]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Hub, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Hub), nil
		},
	})
}
