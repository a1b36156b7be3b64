package domain

import "path/filepath"

// ChecklistEntry is a critical file expected after the fetch phase.
type ChecklistEntry struct {
	// Artifact is the name of the artifact that produces this file.
	Artifact string
	// Path is slash-separated and relative to the models root.
	Path string
}

// Resolve returns the entry's path under root.
func (e ChecklistEntry) Resolve(root string) string {
	return filepath.Join(root, filepath.FromSlash(e.Path))
}

// EntryStatus is the state of one checklist entry.
type EntryStatus uint8

const (
	// EntryFound means the file exists.
	EntryFound EntryStatus = iota
	// EntryMissing means the file does not exist.
	EntryMissing
	// EntryCorrupt means the file exists but does not match its recorded digest.
	EntryCorrupt
)

// String returns the status label used in reports.
func (s EntryStatus) String() string {
	switch s {
	case EntryFound:
		return "FOUND"
	case EntryMissing:
		return "MISSING"
	case EntryCorrupt:
		return "CORRUPT"
	default:
		return "UNKNOWN"
	}
}

// EntryResult is the verified state of one checklist entry.
type EntryResult struct {
	Entry  ChecklistEntry
	Path   string
	Status EntryStatus
	// Reason carries the fetch failure of the owning artifact, when known.
	Reason error
}

// Verification is the final report over the checklist.
type Verification struct {
	Root    string
	Entries []EntryResult
}

// Ready reports whether every checklist entry was found.
func (v Verification) Ready() bool {
	for _, e := range v.Entries {
		if e.Status != EntryFound {
			return false
		}
	}
	return true
}

// Missing returns the entries that were not found.
func (v Verification) Missing() []EntryResult {
	var out []EntryResult
	for _, e := range v.Entries {
		if e.Status != EntryFound {
			out = append(out, e)
		}
	}
	return out
}

// Probe inspects one resolved checklist path.
type Probe func(entry ChecklistEntry, path string) EntryStatus

// Verify checks each entry independently with probe and attaches fetch failures from report.
// report may be nil when verification runs on its own.
func Verify(root string, checklist []ChecklistEntry, report *Report, probe Probe) Verification {
	v := Verification{Root: root, Entries: make([]EntryResult, 0, len(checklist))}
	for _, entry := range checklist {
		path := entry.Resolve(root)
		res := EntryResult{Entry: entry, Path: path, Status: probe(entry, path)}
		if res.Status != EntryFound {
			if o, ok := report.Lookup(entry.Artifact); ok && o.Kind == OutcomeFailed {
				res.Reason = o.Err
			}
		}
		v.Entries = append(v.Entries, res)
	}
	return v
}
