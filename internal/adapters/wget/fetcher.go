// Package wget fetches URLs with the external wget utility.
package wget

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectFetcher = (*Fetcher)(nil)

// Fetcher implements ports.DirectFetcher by running wget.
type Fetcher struct {
	runner ports.CommandRunner
}

// NewFetcher creates a Fetcher running wget through runner.
func NewFetcher(runner ports.CommandRunner) *Fetcher {
	return &Fetcher{runner: runner}
}

// Fetch downloads url into a partial file beside dest and renames it on success.
// A failed or empty download leaves nothing at dest.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectFetchFailed.Error()), "path", dest)
	}

	partial := dest + domain.PartialSuffix
	cmd := domain.Command{Name: "wget", Args: []string{"-q", "-O", partial, url}}

	if err := f.runner.Run(ctx, cmd); err != nil {
		_ = os.Remove(partial)
		return zerr.With(zerr.Wrap(err, domain.ErrDirectFetchFailed.Error()), "url", url)
	}

	info, err := os.Stat(partial)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDirectFetchFailed.Error()), "url", url)
	}
	if info.Size() == 0 {
		_ = os.Remove(partial)
		return zerr.With(zerr.Wrap(errors.New("zero bytes written"), domain.ErrEmptyDownload.Error()), "url", url)
	}

	if err := os.Rename(partial, dest); err != nil {
		_ = os.Remove(partial)
		return zerr.With(zerr.Wrap(err, domain.ErrDirectFetchFailed.Error()), "path", dest)
	}
	return nil
}
