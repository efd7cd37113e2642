package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reprise/internal/model"
)

func TestWithClozeDeletion_AppendsWithoutMutating(t *testing.T) {
	original := m.Motif{
		UUID:           "m-1",
		ClozeDeletions: []m.ClozeDeletion{{UUID: "a"}},
	}

	updated := WithClozeDeletion(original, m.ClozeDeletion{UUID: "b"})

	require.Len(t, updated.ClozeDeletions, 2)
	assert.Equal(t, "b", updated.ClozeDeletions[1].UUID)
	assert.Len(t, original.ClozeDeletions, 1)
}

func TestWithClozeDeletion_ReplacesByUUID(t *testing.T) {
	original := m.Motif{
		UUID: "m-1",
		ClozeDeletions: []m.ClozeDeletion{
			{UUID: "a", MaskTuples: m.IntervalSet{{Start: 0, End: 1}}},
			{UUID: "b", MaskTuples: m.IntervalSet{{Start: 3, End: 4}}},
		},
	}

	updated := WithClozeDeletion(original, m.ClozeDeletion{UUID: "a", MaskTuples: m.IntervalSet{{Start: 5, End: 6}}})

	require.Len(t, updated.ClozeDeletions, 2)
	assert.Equal(t, m.IntervalSet{{Start: 5, End: 6}}, updated.ClozeDeletions[0].MaskTuples)
	assert.Equal(t, m.IntervalSet{{Start: 0, End: 1}}, original.ClozeDeletions[0].MaskTuples)
}

func TestWithoutClozeDeletion(t *testing.T) {
	original := m.Motif{
		UUID:           "m-1",
		ClozeDeletions: []m.ClozeDeletion{{UUID: "a"}, {UUID: "b"}},
	}

	updated := WithoutClozeDeletion(original, "a")

	assert.Equal(t, []m.ClozeDeletion{{UUID: "b"}}, updated.ClozeDeletions)
	assert.Len(t, original.ClozeDeletions, 2)
}

func TestReplaceMotif(t *testing.T) {
	motifs := []m.Motif{{UUID: "1", Content: "one"}, {UUID: "2", Content: "two"}}

	updated := ReplaceMotif(motifs, m.Motif{UUID: "2", Content: "deux"})

	assert.Equal(t, "deux", updated[1].Content)
	assert.Equal(t, "two", motifs[1].Content)
}

func TestBuildReprisal(t *testing.T) {
	motif := m.Motif{
		UUID:    "m-1",
		Content: "The quick brown fox",
		ClozeDeletions: []m.ClozeDeletion{
			{UUID: "a", MaskTuples: m.IntervalSet{{Start: 4, End: 8}}},
			{UUID: "b", MaskTuples: m.IntervalSet{{Start: 16, End: 18}}},
		},
	}

	reprisal, err := BuildReprisal(motif, DefaultMaskToken)
	require.NoError(t, err)

	assert.Equal(t, "The  ___  brown  ___ ", reprisal.Masked)
	assert.Equal(t, motif.Content, JoinSegments(reprisal.Segments))
	assert.Equal(t, []m.Segment{
		{Text: "The "},
		{Text: "quick", Flagged: true},
		{Text: " brown "},
		{Text: "fox", Flagged: true},
	}, reprisal.Segments)
}

func TestBuildReprisal_OverlappingDeletionsMaskOnce(t *testing.T) {
	motif := m.Motif{
		UUID:    "m-1",
		Content: "0123456789",
		ClozeDeletions: []m.ClozeDeletion{
			{UUID: "a", MaskTuples: m.IntervalSet{{Start: 2, End: 5}}},
			{UUID: "b", MaskTuples: m.IntervalSet{{Start: 4, End: 7}}},
		},
	}

	reprisal, err := BuildReprisal(motif, "_")
	require.NoError(t, err)

	assert.Equal(t, "01_89", reprisal.Masked)
}

func TestBuildReprisal_WithoutDeletions(t *testing.T) {
	reprisal, err := BuildReprisal(m.Motif{UUID: "m-1", Content: "plain"}, DefaultMaskToken)
	require.NoError(t, err)

	assert.Equal(t, "plain", reprisal.Masked)
	assert.Equal(t, []m.Segment{{Text: "plain"}}, reprisal.Segments)
}

func TestBuildReprisal_RejectsCorruptDeletion(t *testing.T) {
	motif := m.Motif{
		UUID:           "m-1",
		Content:        "short",
		ClozeDeletions: []m.ClozeDeletion{{UUID: "a", MaskTuples: m.IntervalSet{{Start: 3, End: 12}}}},
	}

	_, err := BuildReprisal(motif, "_")

	assert.ErrorIs(t, err, ErrInvalidIndex)
	assert.Contains(t, err.Error(), "m-1")
}
