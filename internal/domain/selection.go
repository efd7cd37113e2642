package domain

import (
	"fmt"
	"slices"

	m "github.com/mouse-blink/reprise/internal/model"
)

// DragState is the interaction state of a Selection.
type DragState int

const (
	// Idle means no gesture is in progress.
	Idle DragState = iota
	// Dragging means a press happened and every entered bin toggles until release.
	Dragging
)

func (s DragState) String() string {
	if s == Dragging {
		return "dragging"
	}

	return "idle"
}

// Selection is the editable set of bins over one motif's content.
// Every press and every enter while dragging toggles exactly one bin, so
// crossing a bin twice during one drag toggles it back.
type Selection struct {
	length int
	bins   map[int]struct{}
	state  DragState
}

// NewSelection creates an empty selection over content of length runes.
func NewSelection(length int) *Selection {
	return &Selection{
		length: length,
		bins:   make(map[int]struct{}),
	}
}

// NewSelectionFrom seeds a selection with every index covered by set.
func NewSelectionFrom(length int, set m.IntervalSet) (*Selection, error) {
	s := NewSelection(length)

	for i, interval := range set {
		if err := checkInterval(i, interval, length); err != nil {
			return nil, fmt.Errorf("invalid seed: %w", err)
		}
	}

	for _, index := range Expand(set) {
		s.bins[index] = struct{}{}
	}

	return s, nil
}

// Press toggles index and starts a drag.
func (s *Selection) Press(index int) error {
	if err := s.check(index); err != nil {
		return err
	}

	s.toggle(index)
	s.state = Dragging

	return nil
}

// Enter toggles index when a drag is in progress and is a no-op otherwise.
func (s *Selection) Enter(index int) error {
	if err := s.check(index); err != nil {
		return err
	}

	if s.state == Dragging {
		s.toggle(index)
	}

	return nil
}

// Release ends the drag without touching membership.
func (s *Selection) Release() {
	s.state = Idle
}

// Leave is called when the pointer leaves the editing surface; it ends any drag.
func (s *Selection) Leave() {
	s.state = Idle
}

// State returns the current drag state.
func (s *Selection) State() DragState {
	return s.state
}

// Has reports whether index is selected.
func (s *Selection) Has(index int) bool {
	_, ok := s.bins[index]
	return ok
}

// Len returns the number of selected bins.
func (s *Selection) Len() int {
	return len(s.bins)
}

// Indices returns the selected bins in ascending order.
func (s *Selection) Indices() []int {
	indices := make([]int, 0, len(s.bins))
	for index := range s.bins {
		indices = append(indices, index)
	}

	slices.Sort(indices)

	return indices
}

// Intervals coalesces the selection into its canonical interval set.
func (s *Selection) Intervals() m.IntervalSet {
	return Coalesce(s.Indices())
}

func (s *Selection) check(index int) error {
	if index < 0 || index >= s.length {
		return fmt.Errorf("%w: bin %d outside content of length %d", ErrInvalidIndex, index, s.length)
	}

	return nil
}

func (s *Selection) toggle(index int) {
	if _, ok := s.bins[index]; ok {
		delete(s.bins, index)
		return
	}

	s.bins[index] = struct{}{}
}
