package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/reprise/internal/domain"
	m "github.com/mouse-blink/reprise/internal/model"
)

const clozeEditLongDescription = `Create or edit a cloze deletion on a motif.

On a terminal the motif opens as a grid of bins: drag across bins with the
mouse, or move with the arrow keys and toggle with space, then press enter
to save or d to delete the deletion.

With --bins the editor is skipped. Each comma separated range is applied
as one drag over the current selection, so dragging over already selected
bins clears them again:
  reprise cloze edit 3f0c8a52-8a8e-4b43-9d3c-2a3f3c0b9a11 --bins 4-8,10`

// clozeCmd groups the cloze deletion commands.
var clozeCmd = newClozeCmd()
var clozeUUIDFlag string
var clozeBinsFlag string

func newClozeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloze",
		Short: "Create, edit or delete cloze deletions",
		Args:  cobra.NoArgs,
	}

	cmd.AddCommand(newClozeEditCmd(), newClozeDeleteCmd())

	return cmd
}

func newClozeEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <motif-uuid>",
		Short: "Create or edit a cloze deletion",
		Long:  clozeEditLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var bins m.IntervalSet

			if cmd.Flags().Changed("bins") {
				parsed, err := parseBinsFlag(clozeBinsFlag)
				if err != nil {
					return err
				}

				bins = parsed
			}

			return workflow.EditClozeDeletion(cmd.Context(), domain.EditArgs{
				MotifUUID: args[0],
				ClozeUUID: clozeUUIDFlag,
				Bins:      bins,
			})
		},
	}
	cmd.Flags().StringVar(&clozeUUIDFlag, "cloze", "", "cloze deletion to edit; empty creates a new one")
	cmd.Flags().StringVar(&clozeBinsFlag, "bins", "", "bin ranges to drag, e.g. 4-8,10")

	return cmd
}

func newClozeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <cloze-uuid>",
		Short: "Delete a cloze deletion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.DeleteClozeDeletion(cmd.Context(), domain.DeleteArgs{ClozeUUID: args[0]})
		},
	}
}

// parseBinsFlag parses "4-8,10" into one gesture per range. Ranges keep the
// order they were given in; "8-4" is passed through and rejected later as a
// backwards drag.
func parseBinsFlag(value string) (m.IntervalSet, error) {
	gestures := m.IntervalSet{}

	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		startText, endText, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(strings.TrimSpace(startText))
		if err != nil {
			return nil, fmt.Errorf("invalid bin range %q: %w", part, err)
		}

		end := start

		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(endText))
			if err != nil {
				return nil, fmt.Errorf("invalid bin range %q: %w", part, err)
			}
		}

		gestures = append(gestures, m.Interval{Start: start, End: end})
	}

	return gestures, nil
}

func init() {
	rootCmd.AddCommand(clozeCmd)
}
