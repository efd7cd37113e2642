package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/reprise/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a TUI that writes to output and reads keys and mouse
// events from input.
func NewTUI(output io.Writer, input io.Reader) *TUI {
	return &TUI{output: output, input: input}
}

// DisplayMotifs prints every motif with its cloze deletions highlighted.
func (t *TUI) DisplayMotifs(listing MotifListing, err error) error {
	if err != nil {
		t.printf("%s\n", errorStyle.Render(fmt.Sprintf("motifs error: %v", err)))
		return err
	}

	width, _ := t.size()

	var b strings.Builder

	b.WriteString(titleStyle.Render("Motifs") + " ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("page %d, %d of %d, %d citations",
		max(listing.Page, 1), len(listing.Motifs), listing.TotalCount, len(listing.Citations))) + "\n\n")

	for _, preview := range listing.Motifs {
		motif := preview.Motif

		b.WriteString(titleStyle.Render(motif.UUID))

		if motif.Citation != "" {
			b.WriteString("  " + mutedStyle.Render(motif.Citation))
		}

		b.WriteString("\n  " + plainStyle.Render(truncateToWidth(motif.Content, width-2)) + "\n")

		for _, deletion := range preview.Deletions {
			b.WriteString("    " + mutedStyle.Render(deletion.ClozeDeletion.UUID) + "  ")

			if deletion.Err != nil {
				b.WriteString(errorStyle.Render(deletion.Err.Error()) + "\n")
				continue
			}

			b.WriteString(renderSegments(truncateSegments(deletion.Segments, width-4)) + "\n")
		}

		b.WriteString("\n")
	}

	t.printf("%s", b.String())

	return nil
}

// DisplayMotifCreated prints the identity of a new motif.
func (t *TUI) DisplayMotifCreated(motif m.Motif) error {
	t.printf("%s %s\n", titleStyle.Render("created motif"), motif.UUID)
	return nil
}

// DisplayMotifUpdated prints the edited motif with its deletions.
func (t *TUI) DisplayMotifUpdated(preview m.MotifPreview) error {
	t.printf("%s %s\n", titleStyle.Render("updated motif"), preview.Motif.UUID)

	width, _ := t.size()

	for _, deletion := range preview.Deletions {
		if deletion.Err != nil {
			t.printf("  %s  %s\n", mutedStyle.Render(deletion.ClozeDeletion.UUID), errorStyle.Render(deletion.Err.Error()))
			continue
		}

		t.printf("  %s  %s\n", mutedStyle.Render(deletion.ClozeDeletion.UUID),
			renderSegments(truncateSegments(deletion.Segments, width-4)))
	}

	return nil
}

// DisplayMotifDeleted confirms a motif deletion.
func (t *TUI) DisplayMotifDeleted(uuid string) error {
	t.printf("%s %s\n", titleStyle.Render("deleted motif"), uuid)
	return nil
}

// DisplayCitations prints the citation titles.
func (t *TUI) DisplayCitations(citations []m.Citation, err error) error {
	if err != nil {
		t.printf("%s\n", errorStyle.Render(fmt.Sprintf("citations error: %v", err)))
		return err
	}

	t.printf("%s %s\n", titleStyle.Render("Citations"), mutedStyle.Render(fmt.Sprintf("%d", len(citations))))

	for _, citation := range citations {
		t.printf("  %s  %s\n", plainStyle.Render(citation.Title), mutedStyle.Render(citation.UUID))
	}

	return nil
}

// DisplayCitationAdded prints the identity of a new citation.
func (t *TUI) DisplayCitationAdded(citation m.Citation) error {
	t.printf("%s %q %s\n", titleStyle.Render("added citation"), citation.Title, mutedStyle.Render(citation.UUID))
	return nil
}

// DisplayClozeDeletionSaved prints the saved deletion over its motif.
func (t *TUI) DisplayClozeDeletionSaved(preview m.MotifPreview, cd m.ClozeDeletion) error {
	t.printf("%s %s %s\n", titleStyle.Render("saved cloze deletion"), cd.UUID, mutedStyle.Render(formatTuples(cd.MaskTuples)))

	for _, deletion := range preview.Deletions {
		if deletion.ClozeDeletion.UUID == cd.UUID && deletion.Err == nil {
			t.printf("  %s\n", renderSegments(deletion.Segments))
		}
	}

	return nil
}

// DisplayClozeDeletionDeleted confirms a deletion.
func (t *TUI) DisplayClozeDeletionDeleted(uuid string) error {
	t.printf("%s %s\n", titleStyle.Render("deleted cloze deletion"), uuid)
	return nil
}

// DisplayReprisals runs the interactive reprisal list.
func (t *TUI) DisplayReprisals(reprisals []m.Reprisal, err error) error {
	if err != nil {
		t.printf("%s\n", errorStyle.Render(fmt.Sprintf("reprise error: %v", err)))
		return err
	}

	if len(reprisals) == 0 {
		t.printf("%s\n", mutedStyle.Render("no motifs to reprise"))
		return nil
	}

	model := newReprisalModel(reprisals)

	if width, height := t.size(); height > 0 {
		updated, _ := model.Update(tea.WindowSizeMsg{Width: width, Height: height})
		model = updated.(reprisalModel)
	}

	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run reprisal view: %w", err)
	}

	return nil
}

// EditClozeDeletion runs the bin editor until the user saves, deletes or cancels.
func (t *TUI) EditClozeDeletion(req EditRequest) (EditResult, error) {
	model := newEditorModel(req)

	if width, height := t.size(); width > 0 {
		model.width = width
		model.height = height
		model.help.Width = width
	}

	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := program.Run()
	if err != nil {
		return EditResult{}, fmt.Errorf("failed to run cloze editor: %w", err)
	}

	edited, ok := final.(editorModel)
	if !ok {
		return EditResult{Action: EditCancel}, nil
	}

	return edited.result, nil
}

// size returns the terminal size of the output, or the default width when
// the output is not a terminal.
func (t *TUI) size() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return defaultWidth, 0
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
