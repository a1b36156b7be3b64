package wget

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/shell"
	"go.trai.ch/outfit/internal/core/ports"
)

// NodeID is the unique identifier for the direct fetcher Graft node.
const NodeID graft.ID = "adapter.direct_fetcher"

func init() {
	graft.Register(graft.Node[ports.DirectFetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.DirectFetcher, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFetcher(runner), nil
		},
	})
}
