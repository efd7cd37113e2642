package domain

import (
	"fmt"

	m "github.com/mouse-blink/reprise/internal/model"
)

// Preview flags every rune of content covered by set. It backs the hover
// preview of a single cloze deletion, where nothing is removed.
func Preview(content string, set m.IntervalSet) ([]bool, error) {
	length := len([]rune(content))

	if err := Validate(set, length); err != nil {
		return nil, fmt.Errorf("cannot preview content: %w", err)
	}

	flags := make([]bool, length)

	for _, interval := range set {
		for i := interval.Start; i <= interval.End; i++ {
			flags[i] = true
		}
	}

	return flags, nil
}

// PreviewSegments groups the Preview flags into runs ready for rendering.
func PreviewSegments(content string, set m.IntervalSet) ([]m.Segment, error) {
	flags, err := Preview(content, set)
	if err != nil {
		return nil, err
	}

	runes := []rune(content)
	segments := make([]m.Segment, 0, 2*len(set)+1)

	for start := 0; start < len(runes); {
		end := start
		for end < len(runes) && flags[end] == flags[start] {
			end++
		}

		segments = append(segments, m.Segment{Text: string(runes[start:end]), Flagged: flags[start]})
		start = end
	}

	return segments, nil
}

// Reveal splits content into alternating plain and flagged segments for the
// unmasked review of a reprisal. Every set is validated on its own and the
// sets are then merged, so deletions that overlap each other are revealed as
// one span. Joining the segment texts yields content unchanged.
func Reveal(content string, sets ...m.IntervalSet) ([]m.Segment, error) {
	runes := []rune(content)

	for i, set := range sets {
		if err := Validate(set, len(runes)); err != nil {
			return nil, fmt.Errorf("cannot reveal cloze deletion %d: %w", i, err)
		}
	}

	merged := Merge(sets...)
	segments := make([]m.Segment, 0, 2*len(merged)+1)
	last := 0

	for _, interval := range merged {
		if interval.Start > last {
			segments = append(segments, m.Segment{Text: string(runes[last:interval.Start])})
		}

		segments = append(segments, m.Segment{Text: string(runes[interval.Start : interval.End+1]), Flagged: true})
		last = interval.End + 1
	}

	if last < len(runes) {
		segments = append(segments, m.Segment{Text: string(runes[last:])})
	}

	return segments, nil
}

// JoinSegments concatenates segment texts.
func JoinSegments(segments []m.Segment) string {
	size := 0
	for _, segment := range segments {
		size += len(segment.Text)
	}

	buf := make([]byte, 0, size)
	for _, segment := range segments {
		buf = append(buf, segment.Text...)
	}

	return string(buf)
}
