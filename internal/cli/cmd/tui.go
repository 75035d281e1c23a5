package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bytesize/internal/ui"
)

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [size]",
		Short: "Convert sizes interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return &ExitError{Code: ExitCLIError, Err: errors.New("tui requires an interactive terminal")}
			}
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			if err := ui.Run(cmd.Context(), initial); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return nil
		},
	}
	return cmd
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}
