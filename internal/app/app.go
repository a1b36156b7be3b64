// Package app implements the application layer for outfit.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/outfit/internal/engine/fetcher"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	cfg       *domain.Config
	installer ports.EnvironmentInstaller
	workspace ports.Workspace
	locker    ports.Locker
	fetcher   *fetcher.Fetcher
	store     ports.ManifestStore
	hasher    ports.Hasher
	logger    ports.Logger
	renderer  ports.Renderer

	artifacts []domain.Artifact
	checklist []domain.ChecklistEntry
	goos      string
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	installer ports.EnvironmentInstaller,
	workspace ports.Workspace,
	locker ports.Locker,
	fetch *fetcher.Fetcher,
	store ports.ManifestStore,
	hasher ports.Hasher,
	log ports.Logger,
	renderer ports.Renderer,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return &App{
		cfg:       cfg,
		installer: installer,
		workspace: workspace,
		locker:    locker,
		fetcher:   fetch,
		store:     store,
		hasher:    hasher,
		logger:    log,
		renderer:  renderer,
		artifacts: domain.DefaultArtifacts(),
		checklist: domain.DefaultChecklist(),
		goos:      runtime.GOOS,
	}
}

// WithPlatform overrides the operating system used to decide whether OS packages are installed.
// This is primarily used for testing.
func (a *App) WithPlatform(goos string) *App {
	a.goos = goos
	return a
}

// WithCatalog replaces the artifact table and the verification checklist.
func (a *App) WithCatalog(artifacts []domain.Artifact, checklist []domain.ChecklistEntry) *App {
	a.artifacts = artifacts
	a.checklist = checklist
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ModelsDir overrides the models root for this invocation.
	ModelsDir     string
	SkipBootstrap bool
	// Deep compares every checklist file against its recorded digest.
	Deep bool
}

// Run provisions the environment, fetches the artifacts and prints the verification report.
// Only bootstrap, models-root and lock failures are returned; fetch failures end up in the report.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Bootstrap
	if !opts.SkipBootstrap && !a.cfg.Bootstrap.Skip {
		if err := a.Bootstrap(ctx); err != nil {
			return err
		}
	}

	// 2. Resolve and lock the models root
	root, err := a.resolveRoot(opts.ModelsDir)
	if err != nil {
		return err
	}

	unlock, err := a.locker.Lock(root)
	if err != nil {
		return err
	}
	defer a.release(unlock)

	// 3. Fetch
	report := a.fetcher.Fetch(ctx, root, a.artifacts)
	a.renderer.OnSummary(root, report, domain.PathHints(root, a.artifacts))

	// 4. Verify
	a.renderer.OnVerification(a.verify(ctx, root, report, opts.Deep))

	return ctx.Err()
}

// Bootstrap installs OS packages, removes conflicting engines and installs the Python requirements.
// Only the Python install is fatal.
func (a *App) Bootstrap(ctx context.Context) error {
	if a.cfg.Bootstrap.System && a.goos == "linux" {
		a.logger.Info("Checking/Installing system dependencies (apt-get)...")
		if err := a.installer.InstallSystem(ctx, domain.DefaultSystemPackages()); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to install system dependencies: %v", err))
			a.logger.Warn("this is expected without root/sudo access")
		} else {
			a.logger.Info("System dependencies verified.")
		}
	}

	a.logger.Info("Uninstalling potential conflicting packages...")
	if err := a.installer.Uninstall(ctx, domain.ConflictingPackages()); err != nil {
		a.logger.Info(fmt.Sprintf("conflicting packages left in place: %v", err))
	}

	a.logger.Info("Installing Python dependencies...")
	if err := a.installer.InstallPython(ctx, domain.DefaultPythonPackages()); err != nil {
		return err
	}
	a.logger.Info("Python dependencies installed.")

	return nil
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	ModelsDir string
	Deep      bool
}

// Verify prints the checklist report for the models root without fetching anything.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) (domain.Verification, error) {
	root, err := a.locateRoot(opts.ModelsDir)
	if err != nil {
		return domain.Verification{}, err
	}

	v := a.verify(ctx, root, nil, opts.Deep)
	a.renderer.OnVerification(v)
	return v, nil
}

// Plan prints which artifacts a run would fetch.
func (a *App) Plan(modelsDir string) error {
	root, err := a.locateRoot(modelsDir)
	if err != nil {
		return err
	}

	a.renderer.OnPlan(root, a.fetcher.Plan(root, a.artifacts))
	return nil
}

// Env returns the downstream model-path variables for the models root.
func (a *App) Env(modelsDir string) ([]domain.PathHint, error) {
	root, err := a.locateRoot(modelsDir)
	if err != nil {
		return nil, err
	}
	return domain.PathHints(root, a.artifacts), nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ModelsDir string
	// Manifest also removes the recorded digests.
	Manifest bool
}

// Clean removes download scaffolding and temporary files left by interrupted runs.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	root, err := a.resolveRoot(opts.ModelsDir)
	if err != nil {
		return err
	}

	unlock, err := a.locker.Lock(root)
	if err != nil {
		return err
	}
	defer a.release(unlock)

	var errs error

	remove := func(path string) {
		if !a.workspace.Exists(path) {
			return
		}
		name, relErr := filepath.Rel(root, path)
		if relErr != nil {
			name = path
		}
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := a.workspace.RemoveAll(path); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	seen := make(map[string]struct{})
	for _, art := range a.artifacts {
		scaffold := art.ScaffoldPath(root)
		if _, ok := seen[scaffold]; ok || scaffold == "" {
			continue
		}
		seen[scaffold] = struct{}{}
		remove(scaffold)
	}

	partials, err := a.workspace.Partials(root)
	if err != nil {
		errs = errors.Join(errs, err)
	}
	for _, p := range partials {
		remove(p)
	}

	if opts.Manifest {
		remove(domain.ManifestPath(root))
	}

	return errs
}

func (a *App) resolveRoot(override string) (string, error) {
	if override == "" {
		override = a.cfg.ModelsDir
	}
	return a.workspace.ResolveRoot(override)
}

// locateRoot resolves the models root for the read-only commands, which never create it.
func (a *App) locateRoot(override string) (string, error) {
	if override == "" {
		override = a.cfg.ModelsDir
	}
	return a.workspace.LocateRoot(override)
}

func (a *App) release(unlock func() error) {
	if err := unlock(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to release models directory lock: %v", err))
	}
}

func (a *App) verify(ctx context.Context, root string, report *domain.Report, deep bool) domain.Verification {
	var corrupt map[string]bool
	if deep {
		corrupt = a.corrupted(ctx, root)
	}

	return domain.Verify(root, a.checklist, report, func(entry domain.ChecklistEntry, path string) domain.EntryStatus {
		if !a.workspace.Exists(path) {
			return domain.EntryMissing
		}
		if corrupt[entry.Path] {
			return domain.EntryCorrupt
		}
		return domain.EntryFound
	})
}

// corrupted hashes the checklist files in parallel and returns the paths whose digest
// differs from the manifest. Files without a record are trusted.
func (a *App) corrupted(ctx context.Context, root string) map[string]bool {
	var mu sync.Mutex
	out := make(map[string]bool)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range a.checklist {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if a.isCorrupt(root, entry) {
				mu.Lock()
				out[entry.Path] = true
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (a *App) isCorrupt(root string, entry domain.ChecklistEntry) bool {
	rec, err := a.store.Get(root, entry.Artifact)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("manifest unreadable for %s: %v", entry.Artifact, err))
		return false
	}
	if rec == nil || rec.Path != entry.Path {
		return false
	}

	path := entry.Resolve(root)
	if !a.workspace.Exists(path) {
		return false
	}

	digest, size, err := a.hasher.HashFile(path)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("cannot hash %s: %v", path, err))
		return true
	}
	return digest != rec.Digest || size != rec.Size
}
