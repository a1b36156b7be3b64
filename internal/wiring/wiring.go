// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/outfit/internal/adapters/bootstrap"
	_ "go.trai.ch/outfit/internal/adapters/cas"
	_ "go.trai.ch/outfit/internal/adapters/config"
	_ "go.trai.ch/outfit/internal/adapters/fs"
	_ "go.trai.ch/outfit/internal/adapters/hub"
	_ "go.trai.ch/outfit/internal/adapters/linear"
	_ "go.trai.ch/outfit/internal/adapters/logger"
	_ "go.trai.ch/outfit/internal/adapters/shell"
	_ "go.trai.ch/outfit/internal/adapters/wget"
	// Register app and engine nodes.
	_ "go.trai.ch/outfit/internal/app"
	_ "go.trai.ch/outfit/internal/engine/fetcher"
)
