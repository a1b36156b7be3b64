package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/config"
	"go.trai.ch/outfit/internal/adapters/shell"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
)

// NodeID is the unique identifier for the environment installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.EnvironmentInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.EnvironmentInstaller, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(runner, cfg.Bootstrap.Python), nil
		},
	})
}
