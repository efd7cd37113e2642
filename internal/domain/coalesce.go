package domain

import (
	"slices"

	m "github.com/mouse-blink/reprise/internal/model"
)

// Coalesce turns a set of selected indices into the canonical interval set:
// one closed interval per maximal run of consecutive indices, ascending.
// Order of the input is irrelevant and duplicates are ignored.
func Coalesce(indices []int) m.IntervalSet {
	if len(indices) == 0 {
		return m.IntervalSet{}
	}

	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	set := make(m.IntervalSet, 0, len(sorted))
	start := sorted[0]

	for i, index := range sorted {
		if i == len(sorted)-1 || sorted[i+1] != index+1 {
			set = append(set, m.Interval{Start: start, End: index})

			if i < len(sorted)-1 {
				start = sorted[i+1]
			}
		}
	}

	return set
}

// Expand lists every index covered by set, in interval order.
func Expand(set m.IntervalSet) []int {
	indices := make([]int, 0, set.Covered())

	for _, interval := range set {
		for i := interval.Start; i <= interval.End; i++ {
			indices = append(indices, i)
		}
	}

	return indices
}

// Merge returns the union of the given sets as one canonical set. Overlapping
// and touching intervals from different sets are fused.
func Merge(sets ...m.IntervalSet) m.IntervalSet {
	var all m.IntervalSet
	for _, set := range sets {
		all = append(all, set...)
	}

	if len(all) == 0 {
		return m.IntervalSet{}
	}

	slices.SortFunc(all, func(a, b m.Interval) int {
		return a.Start - b.Start
	})

	merged := m.IntervalSet{all[0]}

	for _, interval := range all[1:] {
		last := &merged[len(merged)-1]
		if interval.Start <= last.End+1 {
			last.End = max(last.End, interval.End)
			continue
		}

		merged = append(merged, interval)
	}

	return merged
}
