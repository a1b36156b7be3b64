// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/outfit/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and blocks until it exits.
	// It returns an error wrapping domain.ErrCommandFailed if the process exits non-zero.
	Run(ctx context.Context, cmd domain.Command) error
}
