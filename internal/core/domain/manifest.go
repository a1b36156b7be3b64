package domain

import "time"

// ManifestRecord is the digest recorded for an artifact after a successful fetch.
type ManifestRecord struct {
	Artifact  string    `json:"artifact"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Digest    string    `json:"digest"`
	Source    Source    `json:"source,omitzero"`
	FetchedAt time.Time `json:"fetched_at,omitzero"`
}
