package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/outfit/internal/adapters/bootstrap" //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/outfit/internal/engine/fetcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the command layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			bootstrap.NodeID,
			fs.WorkspaceNodeID,
			fs.LockerNodeID,
			fetcher.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			linear.NodeID,
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
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.EnvironmentInstaller](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.Locker](ctx)
	if err != nil {
		return nil, err
	}

	fetch, err := graft.Dep[*fetcher.Fetcher](ctx)
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

	return New(cfg, installer, workspace, locker, fetch, store, hasher, log, renderer), nil
}
