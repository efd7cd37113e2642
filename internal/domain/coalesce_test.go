package domain

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reprise/internal/model"
)

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    m.IntervalSet
	}{
		{
			name:    "empty selection",
			indices: nil,
			want:    m.IntervalSet{},
		},
		{
			name:    "singleton",
			indices: []int{7},
			want:    m.IntervalSet{{Start: 7, End: 7}},
		},
		{
			name:    "one run",
			indices: []int{4, 5, 6, 7, 8},
			want:    m.IntervalSet{{Start: 4, End: 8}},
		},
		{
			name:    "two runs",
			indices: []int{0, 1, 2, 10, 11},
			want:    m.IntervalSet{{Start: 0, End: 2}, {Start: 10, End: 11}},
		},
		{
			name:    "unordered input",
			indices: []int{11, 2, 10, 0, 1},
			want:    m.IntervalSet{{Start: 0, End: 2}, {Start: 10, End: 11}},
		},
		{
			name:    "duplicates are ignored",
			indices: []int{3, 3, 4, 4},
			want:    m.IntervalSet{{Start: 3, End: 4}},
		},
		{
			name:    "gap of one splits runs",
			indices: []int{1, 3, 5},
			want:    m.IntervalSet{{Start: 1, End: 1}, {Start: 3, End: 3}, {Start: 5, End: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coalesce(tt.indices))
		})
	}
}

func TestCoalesce_DoesNotModifyInput(t *testing.T) {
	indices := []int{5, 1, 3}

	Coalesce(indices)

	assert.Equal(t, []int{5, 1, 3}, indices)
}

func TestCoalesce_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		length := 1 + rng.Intn(60)

		picks := rng.Intn(length + 1)

		selected := make(map[int]struct{})
		for i := 0; i < picks; i++ {
			selected[rng.Intn(length)] = struct{}{}
		}

		indices := make([]int, 0, len(selected))
		for index := range selected {
			indices = append(indices, index)
		}

		set := Coalesce(indices)

		require.NoError(t, Validate(set, length), "coalesced set must be canonical for %v", indices)

		expanded := Expand(set)
		slices.Sort(indices)
		assert.Equal(t, indices, expanded, "union of intervals must equal the selection")

		assert.Equal(t, set, Coalesce(Expand(set)), "coalescing must be idempotent")
	}
}

func TestExpand(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 10, 11}, Expand(m.IntervalSet{{Start: 0, End: 2}, {Start: 10, End: 11}}))
	assert.Empty(t, Expand(nil))
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		sets []m.IntervalSet
		want m.IntervalSet
	}{
		{
			name: "no sets",
			want: m.IntervalSet{},
		},
		{
			name: "disjoint sets interleave",
			sets: []m.IntervalSet{
				{{Start: 5, End: 7}},
				{{Start: 0, End: 2}, {Start: 10, End: 12}},
			},
			want: m.IntervalSet{{Start: 0, End: 2}, {Start: 5, End: 7}, {Start: 10, End: 12}},
		},
		{
			name: "overlapping sets fuse",
			sets: []m.IntervalSet{
				{{Start: 0, End: 4}},
				{{Start: 3, End: 8}},
			},
			want: m.IntervalSet{{Start: 0, End: 8}},
		},
		{
			name: "touching sets fuse",
			sets: []m.IntervalSet{
				{{Start: 0, End: 2}},
				{{Start: 3, End: 5}},
			},
			want: m.IntervalSet{{Start: 0, End: 5}},
		},
		{
			name: "contained interval is absorbed",
			sets: []m.IntervalSet{
				{{Start: 0, End: 10}},
				{{Start: 2, End: 3}},
			},
			want: m.IntervalSet{{Start: 0, End: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.sets...))
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	a := m.IntervalSet{{Start: 3, End: 8}}
	b := m.IntervalSet{{Start: 0, End: 4}}

	Merge(a, b)

	assert.Equal(t, m.IntervalSet{{Start: 3, End: 8}}, a)
	assert.Equal(t, m.IntervalSet{{Start: 0, End: 4}}, b)
}
