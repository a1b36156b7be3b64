package ports

import "go.trai.ch/outfit/internal/core/domain"

// ManifestStore persists per-artifact digests under a models root.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the record for an artifact.
	// Returns nil, nil if not found.
	Get(root, artifact string) (*domain.ManifestRecord, error)

	// Put stores the record.
	Put(root string, rec domain.ManifestRecord) error
}

// Hasher computes content digests of files.
type Hasher interface {
	// HashFile returns the hex digest and size of the file at path.
	HashFile(path string) (digest string, size int64, err error)
}
