// Package bootstrap installs the host packages the application needs.
package bootstrap

import (
	"context"
	"strings"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer implements ports.EnvironmentInstaller with apt-get and pip.
type Installer struct {
	runner ports.CommandRunner
	python string
}

// NewInstaller creates an Installer running pip through the given interpreter.
// An empty python falls back to domain.DefaultPython.
func NewInstaller(runner ports.CommandRunner, python string) *Installer {
	if python == "" {
		python = domain.DefaultPython
	}
	return &Installer{runner: runner, python: python}
}

// InstallSystem refreshes the apt index and installs pkgs in one shell invocation.
func (i *Installer) InstallSystem(ctx context.Context, pkgs []domain.Package) error {
	if len(pkgs) == 0 {
		return nil
	}

	script := "apt-get update && apt-get install -y " + strings.Join(domain.Specs(pkgs), " ")
	if err := i.runner.Run(ctx, domain.Command{Name: "sh", Args: []string{"-c", script}}); err != nil {
		return zerr.Wrap(err, domain.ErrSystemInstallFailed.Error())
	}
	return nil
}

// Uninstall removes pkgs with pip.
func (i *Installer) Uninstall(ctx context.Context, pkgs []domain.Package) error {
	if len(pkgs) == 0 {
		return nil
	}

	if err := i.pip(ctx, "uninstall", append([]string{"-y"}, names(pkgs)...)); err != nil {
		return zerr.Wrap(err, domain.ErrUninstallFailed.Error())
	}
	return nil
}

// InstallPython installs pkgs with a single pip call.
func (i *Installer) InstallPython(ctx context.Context, pkgs []domain.Package) error {
	if len(pkgs) == 0 {
		return nil
	}

	if err := i.pip(ctx, "install", domain.Specs(pkgs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPythonInstallFailed.Error()), "python", i.python)
	}
	return nil
}

func (i *Installer) pip(ctx context.Context, verb string, args []string) error {
	return i.runner.Run(ctx, domain.Command{
		Name: i.python,
		Args: append([]string{"-m", "pip", verb}, args...),
	})
}

func names(pkgs []domain.Package) []string {
	out := make([]string, len(pkgs))
	for idx, p := range pkgs {
		out[idx] = p.Name
	}
	return out
}
