package controller

import (
	"context"
	"tokentrack/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramOptions controls how the bubbletea program is attached to the
// terminal.
type ProgramOptions struct {
	AltScreen bool
	// Start is the command returned by Machine.Start when the machine was
	// started before the program. When nil, Init starts the machine.
	Start tea.Cmd
}

// NewProgram creates the bubbletea program driving m. The program stops when
// ctx is cancelled.
func NewProgram(ctx context.Context, m *model.Model, opts ProgramOptions) *tea.Program {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	return tea.NewProgram(AppModel{model: m, start: opts.Start}, programOpts...)
}
