package controller

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/reprise/internal/model"
)

const accentColor = lipgloss.Color("6")

var (
	titleStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	flaggedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	plainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	binSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(accentColor).
				Bold(true)
	binCursorStyle = lipgloss.NewStyle().Underline(true).Reverse(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

// renderSegments styles flagged runs and leaves the rest plain.
func renderSegments(segments []m.Segment) string {
	var b strings.Builder

	for _, segment := range segments {
		if segment.Flagged {
			b.WriteString(flaggedStyle.Render(segment.Text))
			continue
		}

		b.WriteString(plainStyle.Render(segment.Text))
	}

	return b.String()
}

// flattenRune maps line breaks and other control runes onto visible glyphs
// so text stays on one row. A negative result drops the rune.
func flattenRune(r rune) rune {
	switch {
	case r == '\n':
		return '↵'
	case r == '\t':
		return '→'
	case r == '\r':
		return -1
	case unicode.IsControl(r):
		return '·'
	}

	return r
}

func flattenSegments(segments []m.Segment) []m.Segment {
	out := make([]m.Segment, 0, len(segments))

	for _, segment := range segments {
		text := strings.Map(flattenRune, segment.Text)
		if text == "" {
			continue
		}

		out = append(out, m.Segment{Text: text, Flagged: segment.Flagged})
	}

	return out
}

// truncateSegments flattens segments onto one row and cuts them down to
// width display cells, ending with an ellipsis when something was dropped.
func truncateSegments(segments []m.Segment, width int) []m.Segment {
	if width <= 0 {
		return nil
	}

	segments = flattenSegments(segments)

	total := 0
	for _, segment := range segments {
		total += lipgloss.Width(segment.Text)
	}

	if total <= width {
		return segments
	}

	const ellipsis = "…"

	budget := width - lipgloss.Width(ellipsis)
	out := make([]m.Segment, 0, len(segments))

	for _, segment := range segments {
		if budget <= 0 {
			break
		}

		kept := make([]rune, 0, len(segment.Text))

		for _, r := range segment.Text {
			rWidth := lipgloss.Width(string(r))
			if rWidth > budget {
				budget = 0
				break
			}

			kept = append(kept, r)
			budget -= rWidth
		}

		if len(kept) > 0 {
			out = append(out, m.Segment{Text: string(kept), Flagged: segment.Flagged})
		}
	}

	return append(out, m.Segment{Text: ellipsis})
}

func truncateToWidth(text string, width int) string {
	return joinSegmentTexts(truncateSegments([]m.Segment{{Text: text}}, width))
}

func joinSegmentTexts(segments []m.Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(segment.Text)
	}

	return b.String()
}
