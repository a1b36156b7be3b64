// Package fs implements the filesystem adapters: workspace operations, file hashing and locking.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the host filesystem.
type Workspace struct {
	// Executable reports the running binary's path. Nil means os.Executable.
	Executable func() (string, error)
}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{Executable: os.Executable}
}

// ResolveRoot returns the absolute models root and creates it.
func (w *Workspace) ResolveRoot(override string) (string, error) {
	abs, err := w.LocateRoot(override)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(abs, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrModelsRootFailed.Error()), "path", abs)
	}

	return abs, nil
}

// LocateRoot returns the absolute models root without touching the filesystem.
func (w *Workspace) LocateRoot(override string) (string, error) {
	root := override
	if root == "" {
		exe, err := w.executable()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrExecutableNotFound.Error())
		}
		root = domain.ModelsRootFor(exe)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrModelsRootFailed.Error()), "path", root)
	}
	return abs, nil
}

func (w *Workspace) executable() (string, error) {
	lookup := w.Executable
	if lookup == nil {
		lookup = os.Executable
	}

	exe, err := lookup()
	if err != nil {
		return "", err
	}

	// A symlinked binary resolves relative to its real location.
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return exe, nil
}

// Exists reports whether path exists. A zero-length regular file still counts.
func (w *Workspace) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates path and its parents.
func (w *Workspace) EnsureDir(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrModelsRootFailed.Error()), "path", path)
	}
	return nil
}

// Move renames src onto dst, replacing an existing file at dst.
func (w *Workspace) Move(src, dst string) error {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "path", dst)
	}

	if err := os.Rename(src, dst); err != nil {
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrRelocateFailed.Error()), "from", src), "to", dst)
	}
	return nil
}

// RemoveAll deletes path recursively. A missing path is not an error.
func (w *Workspace) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path)
	}
	return nil
}

// Partials lists files under root carrying domain.PartialSuffix, sorted.
// The state directory is not searched.
func (w *Workspace) Partials(root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			if d.Name() == domain.StateDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), domain.PartialSuffix) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "root", root)
	}

	sort.Strings(found)
	return found, nil
}
