package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/cas"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/adapters/hub"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/adapters/linear" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/adapters/wget"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/outfit/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "engine.fetcher"

func init() {
	graft.Register(graft.Node[*Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			hub.NodeID,
			wget.NodeID,
			fs.WorkspaceNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			linear.NodeID,
		},
		Run: func(ctx context.Context) (*Fetcher, error) {
			hubClient, err := graft.Dep[ports.Hub](ctx)
			if err != nil {
				return nil, err
			}

			direct, err := graft.Dep[ports.DirectFetcher](ctx)
			if err != nil {
				return nil, err
			}

			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			return New(hubClient, direct, ws, store, hasher, log, renderer), nil
		},
	})
}
