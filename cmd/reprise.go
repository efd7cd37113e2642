package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/reprise/internal/domain"
)

// repriseCmd represents the reprise command.
var repriseCmd = newRepriseCmd()
var repriseTokenFlag string

func newRepriseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reprise",
		Short: "Drill the motifs due for review",
		Long: `Fetch the motifs due for review and show each one with its cloze
deletions masked. On a terminal, select a motif and press enter to reveal it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token := cfg.MaskToken
			if cmd.Flags().Changed("token") {
				token = repriseTokenFlag
			}

			return workflow.Reprise(cmd.Context(), domain.RepriseArgs{Token: token})
		},
	}
	cmd.Flags().StringVarP(&repriseTokenFlag, "token", "t", "", "text shown in place of each hidden span (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(repriseCmd)
}
