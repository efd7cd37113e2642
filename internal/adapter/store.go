// Package adapter contains the persistence adapters behind the reprise CLI.
package adapter

import (
	"context"
	"errors"

	m "github.com/mouse-blink/reprise/internal/model"
)

// ErrNotFound is returned when a uuid does not name a stored record.
var ErrNotFound = errors.New("not found")

// Store persists motifs, citations and cloze deletions. The domain layer only
// sends and receives interval sets through it; implementations may be remote
// (HTTPStore) or local (SQLiteStore).
//
//nolint:interfacebloat // One collaborator owns every persisted record.
type Store interface {
	// ListMotifs returns one page of motifs, each with its cloze deletions.
	// Pages are 1-based.
	ListMotifs(ctx context.Context, page, pageSize int) (m.MotifPage, error)

	// GetMotif returns a single motif with its cloze deletions.
	GetMotif(ctx context.Context, uuid string) (m.Motif, error)

	// CreateMotif stores new content with an optional citation title.
	CreateMotif(ctx context.Context, content, citation string) (m.Motif, error)

	// UpdateMotif replaces the content of a motif. An empty citation leaves
	// the stored citation untouched. Existing cloze deletions are kept as they
	// are, even when they no longer fit the new content.
	UpdateMotif(ctx context.Context, uuid, content, citation string) (m.Motif, error)

	// DeleteMotif removes a motif together with its cloze deletions.
	DeleteMotif(ctx context.Context, uuid string) error

	// ListCitations returns every citation.
	ListCitations(ctx context.Context) ([]m.Citation, error)

	// AddCitation stores a new citation title.
	AddCitation(ctx context.Context, title string) (m.Citation, error)

	// CreateClozeDeletion attaches a new interval set to a motif.
	CreateClozeDeletion(ctx context.Context, motifUUID string, set m.IntervalSet) (m.ClozeDeletion, error)

	// UpdateClozeDeletion replaces the interval set of an existing deletion.
	UpdateClozeDeletion(ctx context.Context, uuid string, set m.IntervalSet) (m.ClozeDeletion, error)

	// DeleteClozeDeletion removes a deletion by identity.
	DeleteClozeDeletion(ctx context.Context, uuid string) error

	// Reprise selects the motifs to quiz next, with their cloze deletions.
	Reprise(ctx context.Context) ([]m.Motif, error)

	// Close releases any held resources.
	Close() error
}
