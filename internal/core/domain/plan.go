package domain

// PlanEntry describes what the fetch phase would do for one artifact.
type PlanEntry struct {
	Artifact Artifact
	Path     string
	Present  bool
}
