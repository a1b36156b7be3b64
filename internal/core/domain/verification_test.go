package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/outfit/internal/core/domain"
)

func TestVerify(t *testing.T) {
	root := filepath.Join("/srv", "models")
	checklist := []domain.ChecklistEntry{
		{Artifact: "a", Path: "a.onnx"},
		{Artifact: "b", Path: "b/config.json"},
		{Artifact: "c", Path: "c.bin"},
	}
	fetchErr := errors.New("hub unreachable")
	report := &domain.Report{Outcomes: []domain.Outcome{
		{Artifact: "a", Kind: domain.OutcomeSkipped},
		{Artifact: "b", Kind: domain.OutcomeFailed, Err: fetchErr},
		{Artifact: "c", Kind: domain.OutcomeFetched},
	}}
	statuses := map[string]domain.EntryStatus{
		filepath.Join(root, "a.onnx"):           domain.EntryFound,
		filepath.Join(root, "b", "config.json"): domain.EntryMissing,
		filepath.Join(root, "c.bin"):            domain.EntryCorrupt,
	}

	var probed []string
	v := domain.Verify(root, checklist, report, func(_ domain.ChecklistEntry, path string) domain.EntryStatus {
		probed = append(probed, path)
		return statuses[path]
	})

	require.Len(t, v.Entries, 3)
	assert.Len(t, probed, 3, "every entry is probed independently")
	assert.Equal(t, root, v.Root)

	assert.Equal(t, domain.EntryFound, v.Entries[0].Status)
	assert.NoError(t, v.Entries[0].Reason)

	assert.Equal(t, domain.EntryMissing, v.Entries[1].Status)
	assert.Equal(t, fetchErr, v.Entries[1].Reason)

	assert.Equal(t, domain.EntryCorrupt, v.Entries[2].Status)
	assert.NoError(t, v.Entries[2].Reason, "successful fetch carries no reason")

	assert.False(t, v.Ready())
	assert.Len(t, v.Missing(), 2)
}

func TestVerify_Ready(t *testing.T) {
	v := domain.Verify("/m", domain.DefaultChecklist(), nil, func(domain.ChecklistEntry, string) domain.EntryStatus {
		return domain.EntryFound
	})

	assert.True(t, v.Ready())
	assert.Empty(t, v.Missing())
}

func TestVerify_EmptyChecklistIsReady(t *testing.T) {
	v := domain.Verify("/m", nil, nil, nil)

	assert.True(t, v.Ready())
	assert.Empty(t, v.Entries)
}

func TestEntryStatus_String(t *testing.T) {
	assert.Equal(t, "FOUND", domain.EntryFound.String())
	assert.Equal(t, "MISSING", domain.EntryMissing.String())
	assert.Equal(t, "CORRUPT", domain.EntryCorrupt.String())
	assert.Equal(t, "UNKNOWN", domain.EntryStatus(42).String())
}
