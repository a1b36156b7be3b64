package ports

import "go.trai.ch/outfit/internal/core/domain"

// Renderer presents pipeline progress and reports to the user.
// It decouples the fetch engine from console formatting.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnStart is called once before the first artifact with the models root.
	OnStart(root string, total int)

	// OnArtifactStart is called when an artifact begins. index is 1-based.
	OnArtifactStart(index, total int, artifact domain.Artifact)

	// OnArtifactStep reports an intermediate step of the current artifact.
	OnArtifactStep(artifact domain.Artifact, msg string)

	// OnArtifactDone is called with the artifact's final outcome.
	OnArtifactDone(artifact domain.Artifact, outcome domain.Outcome)

	// OnSummary prints the resolved downstream paths after the fetch phase.
	OnSummary(root string, report *domain.Report, hints []domain.PathHint)

	// OnVerification prints the final checklist report.
	OnVerification(v domain.Verification)

	// OnPlan prints what the fetch phase would do.
	OnPlan(root string, entries []domain.PlanEntry)
}
