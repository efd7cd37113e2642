package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/reprise/internal/model"
)

var (
	// ErrInvalidIndex is returned for an index outside [0, length).
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidInterval is returned for an interval whose start is after its end.
	ErrInvalidInterval = errors.New("invalid interval")
	// ErrUnsortedIntervals is returned when intervals are not ascending by start.
	ErrUnsortedIntervals = errors.New("unsorted intervals")
	// ErrOverlappingIntervals is returned when two intervals share an index.
	ErrOverlappingIntervals = errors.New("overlapping intervals")
	// ErrTouchingIntervals is returned when one interval ends right before the next starts.
	ErrTouchingIntervals = errors.New("touching intervals")
	// ErrEmptySelection is returned when saving a selection with no bins.
	ErrEmptySelection = errors.New("empty selection")
)

// Validate checks that set is a canonical interval set over content of the
// given rune length. Intervals are checked in order and the first violation
// is reported.
func Validate(set m.IntervalSet, length int) error {
	for i, interval := range set {
		if err := checkInterval(i, interval, length); err != nil {
			return err
		}

		if i == 0 {
			continue
		}

		prev := set[i-1]

		switch {
		case interval.Start < prev.Start:
			return fmt.Errorf("%w: interval %d %s starts before interval %d %s", ErrUnsortedIntervals, i, interval, i-1, prev)
		case interval.Start <= prev.End:
			return fmt.Errorf("%w: interval %d %s overlaps interval %d %s", ErrOverlappingIntervals, i, interval, i-1, prev)
		case interval.Start == prev.End+1:
			return fmt.Errorf("%w: interval %d %s touches interval %d %s", ErrTouchingIntervals, i, interval, i-1, prev)
		}
	}

	return nil
}

// checkInterval reports the bounds and order errors of one interval on its own.
func checkInterval(i int, interval m.Interval, length int) error {
	if interval.Start < 0 || interval.End >= length {
		return fmt.Errorf("%w: interval %d %s outside content of length %d", ErrInvalidIndex, i, interval, length)
	}

	if interval.Start > interval.End {
		return fmt.Errorf("%w: interval %d %s has start after end", ErrInvalidInterval, i, interval)
	}

	return nil
}
