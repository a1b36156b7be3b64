package ports

import (
	"context"

	"go.trai.ch/outfit/internal/core/domain"
)

// EnvironmentInstaller mutates the host's package environment.
//
// Implementations are responsible for:
//   - Installing OS-level native libraries through the platform package manager
//   - Removing Python packages that conflict with the pinned inference engine
//   - Installing the Python requirement set in a single batch
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type EnvironmentInstaller interface {
	// InstallSystem installs OS packages.
	InstallSystem(ctx context.Context, pkgs []domain.Package) error

	// Uninstall removes Python packages. Absent packages are not an error for callers.
	Uninstall(ctx context.Context, pkgs []domain.Package) error

	// InstallPython installs all Python packages in one call.
	InstallPython(ctx context.Context, pkgs []domain.Package) error
}
