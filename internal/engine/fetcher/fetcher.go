// Package fetcher resolves the model artifacts of the models root one at a time.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fetcher downloads missing artifacts and records what it did in a domain.Report.
type Fetcher struct {
	hub      ports.Hub
	direct   ports.DirectFetcher
	ws       ports.Workspace
	store    ports.ManifestStore
	hasher   ports.Hasher
	logger   ports.Logger
	renderer ports.Renderer
	now      func() time.Time
}

// New creates a Fetcher with the given dependencies.
func New(
	hub ports.Hub,
	direct ports.DirectFetcher,
	ws ports.Workspace,
	store ports.ManifestStore,
	hasher ports.Hasher,
	logger ports.Logger,
	renderer ports.Renderer,
) *Fetcher {
	return &Fetcher{
		hub:      hub,
		direct:   direct,
		ws:       ws,
		store:    store,
		hasher:   hasher,
		logger:   logger,
		renderer: renderer,
		now:      time.Now,
	}
}

// Fetch resolves every artifact under root in declared order.
// A failing artifact never stops the loop; its reason is kept in the report.
func (f *Fetcher) Fetch(ctx context.Context, root string, artifacts []domain.Artifact) *domain.Report {
	report := domain.NewReport()
	f.renderer.OnStart(root, len(artifacts))

	for i, a := range artifacts {
		f.renderer.OnArtifactStart(i+1, len(artifacts), a)
		outcome := f.resolve(ctx, root, a)
		report.Add(outcome)
		f.renderer.OnArtifactDone(a, outcome)
	}

	return report
}

// Plan reports which artifacts are already present under root, without touching the network.
func (f *Fetcher) Plan(root string, artifacts []domain.Artifact) []domain.PlanEntry {
	entries := make([]domain.PlanEntry, 0, len(artifacts))
	for _, a := range artifacts {
		entries = append(entries, domain.PlanEntry{
			Artifact: a,
			Path:     a.DestPath(root),
			Present:  f.ws.Exists(a.MarkerPath(root)),
		})
	}
	return entries
}

func (f *Fetcher) resolve(ctx context.Context, root string, a domain.Artifact) domain.Outcome {
	dest := a.DestPath(root)
	marker := a.MarkerPath(root)

	if f.ws.Exists(marker) {
		return domain.Outcome{Artifact: a.Name, Kind: domain.OutcomeSkipped, Path: dest}
	}

	failed := func(err error) domain.Outcome {
		return domain.Outcome{Artifact: a.Name, Kind: domain.OutcomeFailed, Path: dest, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return failed(err)
	}

	source, err := f.retrieve(ctx, root, a)
	if err != nil {
		return failed(err)
	}

	if !f.ws.Exists(marker) {
		return failed(zerr.With(zerr.New(domain.ErrArtifactMissing.Error()), "path", marker))
	}

	f.record(root, a, source)

	return domain.Outcome{Artifact: a.Name, Kind: domain.OutcomeFetched, Source: source, Path: dest}
}

func (f *Fetcher) retrieve(ctx context.Context, root string, a domain.Artifact) (domain.Source, error) {
	switch a.Strategy {
	case domain.StrategySnapshot:
		n, err := f.hub.Snapshot(ctx, a.Repo, a.DestPath(root))
		if err != nil {
			return "", err
		}
		f.logger.Info(fmt.Sprintf("%s: %d file(s) downloaded", a.Name, n))
		return domain.SourceHub, nil

	case domain.StrategyFile, domain.StrategyFileWithFallback:
		defer f.cleanScaffold(root, a)

		hubErr := f.fetchFile(ctx, root, a)
		if hubErr == nil {
			return domain.SourceHub, nil
		}
		if a.Strategy != domain.StrategyFileWithFallback || a.FallbackURL == "" || ctx.Err() != nil {
			return "", hubErr
		}

		f.renderer.OnArtifactStep(a, "Hub download failed, trying direct URL...")
		if err := f.direct.Fetch(ctx, a.FallbackURL, a.DestPath(root)); err != nil {
			return "", errors.Join(hubErr, err)
		}
		return domain.SourceDirect, nil

	default:
		return "", zerr.With(zerr.New(domain.ErrUnknownStrategy.Error()), "strategy", string(a.Strategy))
	}
}

// fetchFile downloads a single file through the hub and moves it onto its destination.
func (f *Fetcher) fetchFile(ctx context.Context, root string, a domain.Artifact) error {
	downloaded, err := f.hub.DownloadFile(ctx, a.Repo, a.RemotePath, a.DownloadDirPath(root))
	if err != nil {
		return err
	}

	dest := a.DestPath(root)
	if downloaded == dest {
		return nil
	}
	return f.ws.Move(downloaded, dest)
}

func (f *Fetcher) cleanScaffold(root string, a domain.Artifact) {
	scaffold := a.ScaffoldPath(root)
	if scaffold == "" {
		return
	}
	if err := f.ws.RemoveAll(scaffold); err != nil {
		f.logger.Warn(fmt.Sprintf("could not remove %s: %v", scaffold, err))
	}
}

// record stores the marker's digest. Failures only degrade later deep verification.
func (f *Fetcher) record(root string, a domain.Artifact, source domain.Source) {
	digest, size, err := f.hasher.HashFile(a.MarkerPath(root))
	if err != nil {
		f.logger.Warn(fmt.Sprintf("could not hash %s: %v", a.Name, err))
		return
	}

	rec := domain.ManifestRecord{
		Artifact:  a.Name,
		Path:      a.MarkerRel(),
		Size:      size,
		Digest:    digest,
		Source:    source,
		FetchedAt: f.now().UTC(),
	}
	if err := f.store.Put(root, rec); err != nil {
		f.logger.Warn(fmt.Sprintf("could not record manifest for %s: %v", a.Name, err))
	}
}
