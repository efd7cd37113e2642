package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/reprise/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayMotifs prints a table of motifs followed by a preview of every
// cloze deletion, flagged spans in brackets.
func (s *SimpleUI) DisplayMotifs(listing MotifListing, err error) error {
	if err != nil {
		s.printf("motifs error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"UUID", "Citation", "Content", "Deletions"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	for _, preview := range listing.Motifs {
		motif := preview.Motif
		table.Append([]string{motif.UUID, motif.Citation, motif.Content, strconv.Itoa(len(motif.ClozeDeletions))})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Page %d", max(listing.Page, 1)),
		fmt.Sprintf("%d citations", len(listing.Citations)),
		"",
		fmt.Sprintf("%d motifs", listing.TotalCount),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, preview := range listing.Motifs {
		if len(preview.Deletions) == 0 {
			continue
		}

		s.printf("\n%s\n", preview.Motif.UUID)

		for _, deletion := range preview.Deletions {
			s.printf("  %s  %s\n", deletion.ClozeDeletion.UUID, bracketPreview(deletion))
		}
	}

	return nil
}

// DisplayMotifCreated prints the identity of a new motif.
func (s *SimpleUI) DisplayMotifCreated(motif m.Motif) error {
	s.printf("created motif %s\n", motif.UUID)
	return nil
}

// DisplayMotifUpdated prints the new content and every deletion over it, so
// deletions the edit broke show their error.
func (s *SimpleUI) DisplayMotifUpdated(preview m.MotifPreview) error {
	s.printf("updated motif %s\n", preview.Motif.UUID)

	for _, deletion := range preview.Deletions {
		s.printf("  %s  %s\n", deletion.ClozeDeletion.UUID, bracketPreview(deletion))
	}

	return nil
}

// DisplayMotifDeleted confirms a motif deletion.
func (s *SimpleUI) DisplayMotifDeleted(uuid string) error {
	s.printf("deleted motif %s\n", uuid)
	return nil
}

// DisplayCitations prints the citation titles.
func (s *SimpleUI) DisplayCitations(citations []m.Citation, err error) error {
	if err != nil {
		s.printf("citations error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Title", "UUID"})
	for _, citation := range citations {
		table.Append([]string{citation.Title, citation.UUID})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(citations)), ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCitationAdded prints the identity of a new citation.
func (s *SimpleUI) DisplayCitationAdded(citation m.Citation) error {
	s.printf("added citation %q (%s)\n", citation.Title, citation.UUID)
	return nil
}

// DisplayClozeDeletionSaved prints the saved tuples and the resulting preview.
func (s *SimpleUI) DisplayClozeDeletionSaved(preview m.MotifPreview, cd m.ClozeDeletion) error {
	s.printf("saved cloze deletion %s %s\n", cd.UUID, formatTuples(cd.MaskTuples))

	for _, deletion := range preview.Deletions {
		if deletion.ClozeDeletion.UUID == cd.UUID {
			s.printf("  %s\n", bracketPreview(deletion))
		}
	}

	return nil
}

// DisplayClozeDeletionDeleted confirms a deletion.
func (s *SimpleUI) DisplayClozeDeletionDeleted(uuid string) error {
	s.printf("deleted cloze deletion %s\n", uuid)
	return nil
}

// DisplayReprisals prints each reprisal masked, then revealed.
func (s *SimpleUI) DisplayReprisals(reprisals []m.Reprisal, err error) error {
	if err != nil {
		s.printf("reprise error: %v\n", err)
		return err
	}

	if len(reprisals) == 0 {
		s.printf("no motifs to reprise\n")
		return nil
	}

	for i, reprisal := range reprisals {
		s.printf("%d. %s\n", i+1, reprisal.Masked)
		s.printf("   %s\n", bracketSegments(reprisal.Segments))

		if reprisal.Motif.Citation != "" {
			s.printf("   (%s)\n", reprisal.Motif.Citation)
		}
	}

	return nil
}

// EditClozeDeletion is not available without a terminal.
func (s *SimpleUI) EditClozeDeletion(_ EditRequest) (EditResult, error) {
	return EditResult{}, ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func bracketPreview(deletion m.DeletionPreview) string {
	if deletion.Err != nil {
		return fmt.Sprintf("%s invalid: %v", formatTuples(deletion.ClozeDeletion.MaskTuples), deletion.Err)
	}

	return bracketSegments(deletion.Segments)
}

func bracketSegments(segments []m.Segment) string {
	var b strings.Builder

	for _, segment := range segments {
		if segment.Flagged {
			b.WriteString("[" + segment.Text + "]")
			continue
		}

		b.WriteString(segment.Text)
	}

	return b.String()
}

func formatTuples(set m.IntervalSet) string {
	parts := make([]string, 0, len(set))
	for _, interval := range set {
		parts = append(parts, fmt.Sprintf("[%d,%d]", interval.Start, interval.End))
	}

	return "[" + strings.Join(parts, ",") + "]"
}
