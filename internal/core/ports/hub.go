package ports

import (
	"context"

	"go.trai.ch/outfit/internal/core/domain"
)

// Hub downloads repositories and files from a remote model hub.
//
//go:generate go run go.uber.org/mock/mockgen -source=hub.go -destination=mocks/mock_hub.go -package=mocks
type Hub interface {
	// Snapshot downloads every file of repo into localDir, preserving the repository layout.
	// Files already present in localDir are kept. It returns the number of files downloaded.
	Snapshot(ctx context.Context, repo domain.Repo, localDir string) (int, error)

	// DownloadFile downloads filename from repo to localDir/filename and returns that path.
	DownloadFile(ctx context.Context, repo domain.Repo, filename, localDir string) (string, error)
}

// DirectFetcher downloads a single URL without going through the hub client.
type DirectFetcher interface {
	// Fetch downloads url to dest. dest is only created when the download succeeds.
	Fetch(ctx context.Context, url, dest string) error
}
