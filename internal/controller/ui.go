// Package controller provides the output adapters of the reprise CLI: a plain
// text renderer and an interactive terminal UI.
package controller

import (
	"errors"

	m "github.com/mouse-blink/reprise/internal/model"
)

// ErrNotInteractive is returned by UIs that cannot host the bin editor.
var ErrNotInteractive = errors.New("interactive editing requires a terminal, pass --bins instead")

// EditAction is what the user chose to do with an edited cloze deletion.
type EditAction int

// Available EditAction values.
const (
	EditCancel EditAction = iota
	EditSave
	EditDelete
)

func (a EditAction) String() string {
	switch a {
	case EditSave:
		return "save"
	case EditDelete:
		return "delete"
	default:
		return "cancel"
	}
}

// Selection is the bin state the editor drives. Pointer events map onto it
// one to one: a press on a bin, entering another bin while the button is
// held, releasing the button and leaving the editing surface.
type Selection interface {
	Press(index int) error
	Enter(index int) error
	Release()
	Leave()
	Has(index int) bool
	Len() int
	Intervals() m.IntervalSet
}

// EditRequest describes one editing session.
type EditRequest struct {
	Motif     m.Motif
	ClozeUUID string // empty when creating a new deletion
	Selection Selection
}

// EditResult is the outcome of an editing session.
type EditResult struct {
	Action    EditAction
	Intervals m.IntervalSet
}

// MotifListing is one page of motifs with the known citations.
type MotifListing struct {
	Motifs     []m.MotifPreview
	Citations  []m.Citation
	Page       int
	PageSize   int
	TotalCount int
}

// UI defines the interface for presenting reprise data.
// Implementations can use different output methods (simple text, TUI, etc).
// Display methods receiving a non-nil err render the degraded state and
// return err.
type UI interface {
	DisplayMotifs(listing MotifListing, err error) error
	DisplayMotifCreated(motif m.Motif) error
	DisplayMotifUpdated(preview m.MotifPreview) error
	DisplayMotifDeleted(uuid string) error
	DisplayCitations(citations []m.Citation, err error) error
	DisplayCitationAdded(citation m.Citation) error
	DisplayClozeDeletionSaved(preview m.MotifPreview, cd m.ClozeDeletion) error
	DisplayClozeDeletionDeleted(uuid string) error
	DisplayReprisals(reprisals []m.Reprisal, err error) error
	EditClozeDeletion(req EditRequest) (EditResult, error)
}
