package domain

import "path/filepath"

// Strategy selects how an artifact is fetched.
type Strategy string

const (
	// StrategySnapshot downloads an entire repository tree into the destination directory.
	StrategySnapshot Strategy = "snapshot"
	// StrategyFile downloads a single file and relocates it to the destination.
	StrategyFile Strategy = "file"
	// StrategyFileWithFallback is StrategyFile with one direct URL attempt when the hub fails.
	StrategyFileWithFallback Strategy = "file+fallback"
)

// RepoType is the kind of hub repository an artifact lives in.
type RepoType string

const (
	// RepoModel is a model repository.
	RepoModel RepoType = "model"
	// RepoSpace is a hosted interactive-demo repository.
	RepoSpace RepoType = "space"
	// RepoDataset is a dataset repository.
	RepoDataset RepoType = "dataset"
)

// DefaultRevision is the branch used when a repository does not pin one.
const DefaultRevision = "main"

// Repo identifies a repository on the model hub.
type Repo struct {
	// ID is the "owner/name" identifier.
	ID string
	// Type is the repository kind. Empty means RepoModel.
	Type RepoType
	// Revision is a branch, tag or commit. Empty means DefaultRevision.
	Revision string
}

// Kind returns the repository type, defaulting to RepoModel.
func (r Repo) Kind() RepoType {
	if r.Type == "" {
		return RepoModel
	}
	return r.Type
}

// Ref returns the revision, defaulting to DefaultRevision.
func (r Repo) Ref() string {
	if r.Revision == "" {
		return DefaultRevision
	}
	return r.Revision
}

// Artifact describes one model artifact and where it lives locally.
// All paths are slash-separated and relative to the models root.
type Artifact struct {
	// Name is the stable identifier used in reports and the manifest.
	Name string
	// Title is the human-readable label.
	Title string
	// Strategy selects the fetch routine.
	Strategy Strategy
	// Repo is the remote source.
	Repo Repo
	// RemotePath is the file inside the repository. Unused for snapshots.
	RemotePath string
	// DownloadDir is where the hub writes the file, mirroring RemotePath beneath it.
	DownloadDir string
	// Dest is the canonical local path: a directory for snapshots, a file otherwise.
	Dest string
	// Marker is the path whose existence means the artifact is present. Empty means Dest.
	Marker string
	// Scaffold is the intermediate directory the download creates, removed after relocation.
	Scaffold string
	// FallbackURL is fetched directly when the hub download fails.
	FallbackURL string
	// EnvVar is the downstream variable that points at this artifact, if any.
	EnvVar string
}

// MarkerRel returns the slash-separated existence predicate path.
func (a Artifact) MarkerRel() string {
	if a.Marker == "" {
		return a.Dest
	}
	return a.Marker
}

// DestPath returns the canonical destination under root.
func (a Artifact) DestPath(root string) string {
	return join(root, a.Dest)
}

// MarkerPath returns the existence predicate path under root.
func (a Artifact) MarkerPath(root string) string {
	return join(root, a.MarkerRel())
}

// DownloadDirPath returns the directory the hub download lands in under root.
func (a Artifact) DownloadDirPath(root string) string {
	return join(root, a.DownloadDir)
}

// DownloadedPath returns where a single-file hub download is written before relocation.
func (a Artifact) DownloadedPath(root string) string {
	return filepath.Join(a.DownloadDirPath(root), filepath.FromSlash(a.RemotePath))
}

// ScaffoldPath returns the intermediate directory under root, or "" when there is none.
func (a Artifact) ScaffoldPath(root string) string {
	if a.Scaffold == "" {
		return ""
	}
	return join(root, a.Scaffold)
}

func join(root, rel string) string {
	if rel == "" {
		return root
	}
	return filepath.Join(root, filepath.FromSlash(rel))
}
