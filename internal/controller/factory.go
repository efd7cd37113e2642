package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewUI returns the interactive TUI when useTTY is set and the plain table
// output otherwise. Both write to the command's output; the TUI also reads
// keys and mouse events from the command's input.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if !useTTY {
		return NewSimpleUI(cmd)
	}

	return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin())
}

// IsTTY reports whether w is a terminal that can host the cloze editor.
// Redirected files, pipes and character devices such as /dev/null are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
