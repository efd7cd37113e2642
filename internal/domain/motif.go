package domain

import (
	"fmt"

	m "github.com/mouse-blink/reprise/internal/model"
)

// WithClozeDeletion returns a copy of motif where cd replaces the deletion
// with the same UUID, or is appended when there is none. motif is not modified.
func WithClozeDeletion(motif m.Motif, cd m.ClozeDeletion) m.Motif {
	deletions := make([]m.ClozeDeletion, 0, len(motif.ClozeDeletions)+1)
	replaced := false

	for _, existing := range motif.ClozeDeletions {
		if existing.UUID == cd.UUID {
			deletions = append(deletions, cd)
			replaced = true

			continue
		}

		deletions = append(deletions, existing)
	}

	if !replaced {
		deletions = append(deletions, cd)
	}

	motif.ClozeDeletions = deletions

	return motif
}

// WithoutClozeDeletion returns a copy of motif without the deletion uuid.
func WithoutClozeDeletion(motif m.Motif, uuid string) m.Motif {
	deletions := make([]m.ClozeDeletion, 0, len(motif.ClozeDeletions))

	for _, existing := range motif.ClozeDeletions {
		if existing.UUID != uuid {
			deletions = append(deletions, existing)
		}
	}

	motif.ClozeDeletions = deletions

	return motif
}

// ReplaceMotif returns a copy of motifs with the entry sharing motif's UUID replaced.
func ReplaceMotif(motifs []m.Motif, motif m.Motif) []m.Motif {
	out := make([]m.Motif, len(motifs))

	for i, existing := range motifs {
		if existing.UUID == motif.UUID {
			out[i] = motif
			continue
		}

		out[i] = existing
	}

	return out
}

// BuildReprisal masks every cloze deletion of motif with token and prepares the
// reveal segments. Deletions are validated one by one and merged before masking.
func BuildReprisal(motif m.Motif, token string) (m.Reprisal, error) {
	sets := make([]m.IntervalSet, 0, len(motif.ClozeDeletions))
	for _, cd := range motif.ClozeDeletions {
		sets = append(sets, cd.MaskTuples)
	}

	segments, err := Reveal(motif.Content, sets...)
	if err != nil {
		return m.Reprisal{}, fmt.Errorf("motif %s: %w", motif.UUID, err)
	}

	masked, err := Mask(motif.Content, Merge(sets...), token)
	if err != nil {
		return m.Reprisal{}, fmt.Errorf("motif %s: %w", motif.UUID, err)
	}

	return m.Reprisal{
		Motif:    motif,
		Masked:   masked,
		Segments: segments,
	}, nil
}
