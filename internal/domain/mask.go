package domain

import (
	"fmt"

	m "github.com/mouse-blink/reprise/internal/model"
)

// DefaultMaskToken replaces each masked span in a reprisal.
const DefaultMaskToken = " ___ "

// Mask replaces every interval of set in content with token.
//
// Intervals are given in original-content coordinates and spliced in ascending
// order against the partially masked string, so each splice is shifted left by
// the drift: runes removed so far minus token runes inserted so far.
// The set must pass Validate; an empty set returns content unchanged.
func Mask(content string, set m.IntervalSet, token string) (string, error) {
	runes := []rune(content)

	if err := Validate(set, len(runes)); err != nil {
		return "", fmt.Errorf("cannot mask content: %w", err)
	}

	if len(set) == 0 {
		return content, nil
	}

	tokenRunes := []rune(token)
	result := runes
	drift := 0

	for _, interval := range set {
		start := interval.Start - drift
		end := interval.End - drift

		spliced := make([]rune, 0, len(result)-(end-start+1)+len(tokenRunes))
		spliced = append(spliced, result[:start]...)
		spliced = append(spliced, tokenRunes...)
		spliced = append(spliced, result[end+1:]...)
		result = spliced

		drift += interval.Len() - len(tokenRunes)
	}

	return string(result), nil
}
