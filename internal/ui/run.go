package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the interactive converter with initial typed into the input.
// It returns when the user quits or ctx is done.
func Run(ctx context.Context, initial string) error {
	prog := tea.NewProgram(NewModel(initial), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}
