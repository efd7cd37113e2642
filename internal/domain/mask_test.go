package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/reprise/internal/model"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		content string
		set     m.IntervalSet
		token   string
		want    string
	}{
		{
			name:    "single word",
			content: "The quick brown fox",
			set:     m.IntervalSet{{Start: 4, End: 8}},
			token:   " ___ ",
			want:    "The  ___  brown fox",
		},
		{
			name:    "drift shifts later intervals",
			content: "abcdefghijklmnopqrst",
			set:     m.IntervalSet{{Start: 2, End: 4}, {Start: 10, End: 12}},
			token:   "_",
			want:    "ab_fghij_nopqrst",
		},
		{
			name:    "token longer than span",
			content: "a b c",
			set:     m.IntervalSet{{Start: 0, End: 0}, {Start: 4, End: 4}},
			token:   "[...]",
			want:    "[...] b [...]",
		},
		{
			name:    "whole content",
			content: "abc",
			set:     m.IntervalSet{{Start: 0, End: 2}},
			token:   "_",
			want:    "_",
		},
		{
			name:    "empty token removes spans",
			content: "abcdef",
			set:     m.IntervalSet{{Start: 1, End: 1}, {Start: 3, End: 4}},
			token:   "",
			want:    "acf",
		},
		{
			name:    "multibyte runes",
			content: "café crème",
			set:     m.IntervalSet{{Start: 5, End: 9}},
			token:   "…",
			want:    "café …",
		},
		{
			name:    "empty set leaves content unchanged",
			content: "The quick brown fox",
			set:     m.IntervalSet{},
			token:   "_",
			want:    "The quick brown fox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mask(tt.content, tt.set, tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMask_RejectsInvalidSets(t *testing.T) {
	content := "abcdefghij"

	tests := []struct {
		name string
		set  m.IntervalSet
		want error
	}{
		{"out of range", m.IntervalSet{{Start: 8, End: 12}}, ErrInvalidIndex},
		{"unsorted", m.IntervalSet{{Start: 5, End: 6}, {Start: 1, End: 2}}, ErrUnsortedIntervals},
		{"overlapping", m.IntervalSet{{Start: 1, End: 5}, {Start: 4, End: 6}}, ErrOverlappingIntervals},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mask(content, tt.set, "_")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMask_SelectionToMaskedText(t *testing.T) {
	content := "The quick brown fox"
	s := NewSelection(len(content))

	require.NoError(t, s.Press(16))
	require.NoError(t, s.Enter(17))
	require.NoError(t, s.Enter(18))
	s.Release()

	masked, err := Mask(content, s.Intervals(), "_")
	require.NoError(t, err)

	assert.Equal(t, "The quick brown _", masked)
}
