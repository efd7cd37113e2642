package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reprise/internal/domain"
)

// citationsCmd represents the citations command.
var citationsCmd = newCitationsCmd()

func newCitationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "citations",
		Short: "List citations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Citations(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title>",
		Short: "Add a citation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.AddCitation(cmd.Context(), domain.AddCitationArgs{Title: args[0]})
		},
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(citationsCmd)
}
