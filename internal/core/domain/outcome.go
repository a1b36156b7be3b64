package domain

// OutcomeKind classifies the result of resolving one artifact.
type OutcomeKind uint8

const (
	// OutcomeSkipped means the artifact was already present and nothing was downloaded.
	OutcomeSkipped OutcomeKind = iota
	// OutcomeFetched means the artifact was downloaded and is now present.
	OutcomeFetched
	// OutcomeFailed means the artifact is still absent.
	OutcomeFailed
)

// String returns the outcome kind as a short label.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFetched:
		return "fetched"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source records which tier produced a fetched artifact.
type Source string

const (
	// SourceHub means the model hub client delivered the artifact.
	SourceHub Source = "hub"
	// SourceDirect means the direct URL fallback delivered the artifact.
	SourceDirect Source = "direct"
)

// Outcome is the result of resolving a single artifact.
type Outcome struct {
	Artifact string
	Kind     OutcomeKind
	Source   Source
	// Path is the canonical local path of the artifact.
	Path string
	// Err is set when Kind is OutcomeFailed.
	Err error
}

// Report collects artifact outcomes in fetch order.
type Report struct {
	Outcomes []Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Lookup returns the outcome recorded for the named artifact.
func (r *Report) Lookup(name string) (Outcome, bool) {
	if r == nil {
		return Outcome{}, false
	}
	for _, o := range r.Outcomes {
		if o.Artifact == name {
			return o, true
		}
	}
	return Outcome{}, false
}

// Count returns how many outcomes have the given kind.
func (r *Report) Count(kind OutcomeKind) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
