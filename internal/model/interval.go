// Package model defines the data structures shared by the cloze-deletion engine,
// the stores and the UIs.
package model

import (
	"encoding/json"
	"fmt"
)

// Interval is a closed range of rune offsets [Start, End] inside a motif's content.
// On the wire it is the two-element array [start, end] (a "mask tuple").
type Interval struct {
	Start int
	End   int
}

// Len returns the number of runes covered by the interval.
func (i Interval) Len() int {
	return i.End - i.Start + 1
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Start, i.End)
}

// MarshalJSON encodes the interval as [start, end].
func (i Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{i.Start, i.End})
}

// UnmarshalJSON decodes a [start, end] pair.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("mask tuple: %w", err)
	}

	if len(pair) != 2 {
		return fmt.Errorf("mask tuple: expected 2 elements, got %d", len(pair))
	}

	i.Start, i.End = pair[0], pair[1]

	return nil
}

// IntervalSet is the canonical persisted form of one cloze deletion: intervals
// sorted ascending by Start, pairwise disjoint and never touching.
// The invariant is established by the coalescer and checked by the validator;
// the type itself does not enforce it.
type IntervalSet []Interval

// MarshalJSON encodes the set as [[s,e],...]; an empty set encodes as [].
func (s IntervalSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]Interval(s))
}

// Covered returns the total number of runes covered by the set.
func (s IntervalSet) Covered() int {
	total := 0
	for _, interval := range s {
		total += interval.Len()
	}

	return total
}

// Clone returns a copy that shares no backing array with s.
func (s IntervalSet) Clone() IntervalSet {
	if s == nil {
		return nil
	}

	out := make(IntervalSet, len(s))
	copy(out, s)

	return out
}
