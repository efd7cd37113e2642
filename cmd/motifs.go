package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/reprise/internal/domain"
)

const motifsLongDescription = `List motifs one page at a time. Every cloze deletion is printed under its
motif with the hidden span marked, so a deletion that no longer fits its
motif shows up here first.`

// motifsCmd represents the motifs command.
var motifsCmd = newMotifsCmd()
var motifsPageFlag int
var motifsPageSizeFlag int
var motifCitationFlag string
var motifEditCitationFlag string

func newMotifsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motifs",
		Short: "List motifs with their cloze deletions",
		Long:  motifsLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pageSize := motifsPageSizeFlag
			if pageSize <= 0 {
				pageSize = cfg.PageSize
			}

			return workflow.Motifs(cmd.Context(), domain.MotifsArgs{
				Page:     max(motifsPageFlag, 1),
				PageSize: pageSize,
			})
		},
	}
	cmd.Flags().IntVarP(&motifsPageFlag, "page", "p", 1, "page to show, starting at 1")
	cmd.Flags().IntVarP(&motifsPageSizeFlag, "page-size", "n", 0, "motifs per page (default from config)")

	cmd.AddCommand(newMotifsAddCmd(), newMotifsEditCmd(), newMotifsDeleteCmd())

	return cmd
}

func newMotifsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a motif; pass - to read the content from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args[0])
			if err != nil {
				return err
			}

			return workflow.AddMotif(cmd.Context(), domain.AddMotifArgs{
				Content:  content,
				Citation: motifCitationFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&motifCitationFlag, "citation", "c", "", "citation title; unknown titles are added")

	return cmd
}

func newMotifsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <motif-uuid> <content>",
		Short: "Replace the content of a motif; pass - to read it from stdin",
		Long: `Replace the content of a motif. Cloze deletions are kept as they are and
are not shifted with the text, so any deletion that no longer fits the new
content is reported and should be edited or deleted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readContent(cmd, args[1])
			if err != nil {
				return err
			}

			return workflow.EditMotif(cmd.Context(), domain.EditMotifArgs{
				UUID:     args[0],
				Content:  content,
				Citation: motifEditCitationFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&motifEditCitationFlag, "citation", "c", "", "new citation title; empty keeps the current one")

	return cmd
}

func newMotifsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <motif-uuid>",
		Short: "Delete a motif and its cloze deletions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.DeleteMotif(cmd.Context(), domain.DeleteMotifArgs{UUID: args[0]})
		},
	}
}

// readContent returns arg, or everything on stdin when arg is "-". A single
// trailing newline from the input is dropped.
func readContent(cmd *cobra.Command, arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read content from stdin: %w", err)
	}

	content := strings.TrimSuffix(string(data), "\n")

	return strings.TrimSuffix(content, "\r"), nil
}

func init() {
	rootCmd.AddCommand(motifsCmd)
}
