// Package linear provides a synchronous, line-oriented console renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/outfit/internal/core/domain"
	"go.trai.ch/outfit/internal/core/ports"
	"go.trai.ch/outfit/internal/ui/output"
	"go.trai.ch/outfit/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing progress lines in order.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
	mu  sync.Mutex
}

// NewRenderer creates a Renderer writing to w. Colour is used only when tty is true.
func NewRenderer(w io.Writer, tty bool) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{w: w, out: output.New(w, tty)}
}

// OnStart prints the models root.
func (r *Renderer) OnStart(root string, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Downloading models to: %s\n", root)
}

// OnArtifactStart prints the "[i/n]" header for an artifact.
func (r *Renderer) OnArtifactStart(index, total int, artifact domain.Artifact) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := r.out.String(fmt.Sprintf("[%d/%d]", index, total)).Foreground(output.Colour(string(style.Accent))).Bold()
	r.printf("\n%s Downloading %s...\n", header, artifact.Title)
}

// OnArtifactStep prints an indented step line.
func (r *Renderer) OnArtifactStep(_ domain.Artifact, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("   %s\n", msg)
}

// OnArtifactDone prints the artifact's outcome.
func (r *Renderer) OnArtifactDone(artifact domain.Artifact, outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch outcome.Kind {
	case domain.OutcomeSkipped:
		r.printf("   %s %s already exists.\n", r.check(), filepath.Base(filepath.FromSlash(artifact.Dest)))
	case domain.OutcomeFetched:
		suffix := ""
		if outcome.Source == domain.SourceDirect {
			suffix = " (direct download)"
		}
		r.printf("%s Downloaded to: %s%s\n", r.check(), outcome.Path, suffix)
	case domain.OutcomeFailed:
		r.printf("%s Failed to download %s: %s\n", r.cross(), artifact.Title, oneLine(outcome.Err))
	}
}

// OnSummary prints the completion banner and the downstream path variables.
func (r *Renderer) OnSummary(root string, report *domain.Report, hints []domain.PathHint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banner := "ALL DOWNLOADS COMPLETE"
	if failed := report.Count(domain.OutcomeFailed); failed > 0 {
		banner = fmt.Sprintf("DOWNLOADS FINISHED WITH %d FAILURE(S)", failed)
	}

	r.printf("\n%s\n%s\n%s\n", r.rule(), banner, r.rule())
	r.printf("Models are located in: %s\n", root)
	if len(hints) > 0 {
		r.printf("\nPaths found:\n")
		for i, h := range hints {
			r.printf("%d. %s: %s\n", i+1, h.Name, h.Path)
		}
	}
	r.printf("%s\n", r.rule())
}

// OnVerification prints the checklist report and the readiness banner.
func (r *Renderer) OnVerification(v domain.Verification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("\n%s\nFINAL MODEL VERIFICATION\n%s\n", r.rule(), r.rule())

	for _, e := range v.Entries {
		switch e.Status {
		case domain.EntryFound:
			r.printf("%s FOUND: %s\n", r.check(), filepath.Base(e.Path))
		default:
			r.printf("%s %s: %s\n", r.cross(), e.Status, e.Path)
			if e.Reason != nil {
				r.printf("   %s %s\n", style.Arrow, oneLine(e.Reason))
			}
		}
	}

	if v.Ready() {
		r.printf("\n%s\n", r.out.String("ALL CRITICAL MODELS VERIFIED. READY TO LAUNCH.").Foreground(output.Colour(string(style.Green))).Bold())
	} else {
		r.printf("\n%s\n", r.out.String("WARNING: SOME MODELS ARE MISSING. VTON MAY FAIL.").Foreground(output.Colour(string(style.Yellow))).Bold())
	}
	r.printf("%s\n", r.rule())
}

// OnPlan prints what a run would do for each artifact.
func (r *Renderer) OnPlan(root string, entries []domain.PlanEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Models root: %s\n\n", root)

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Artifact.Name))
	}

	fetch := 0
	for i, e := range entries {
		status := r.out.String(style.Circle + " will fetch").Foreground(output.Colour(string(style.Yellow)))
		if e.Present {
			status = r.out.String(style.Dot + " present   ").Foreground(output.Colour(string(style.Green)))
		} else {
			fetch++
		}
		r.printf("[%d/%d] %-*s  %s  %s\n", i+1, len(entries), width, e.Artifact.Name, status, e.Artifact.Strategy)
	}

	r.printf("\n%d of %d artifact(s) would be fetched.\n", fetch, len(entries))
}

func (r *Renderer) check() string {
	return r.out.String(style.Check).Foreground(output.Colour(string(style.Green))).String()
}

func (r *Renderer) cross() string {
	return r.out.String(style.Cross).Foreground(output.Colour(string(style.Red))).String()
}

func (r *Renderer) rule() string {
	return r.out.String(style.Rule).Foreground(output.Colour(string(style.Muted))).String()
}

// printf must be called with r.mu held.
func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

func oneLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
