package controller

import (
	"errors"
	"tokentrack/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg forwards the new terminal dimensions to the machine,
// which recomputes the layout mode.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	if err := m.Machine.HandleResize(msg.Width, msg.Height); err != nil && !errors.Is(err, model.ErrStopped) {
		recordFault(m, err)
	}
	m.Help.Width = msg.Width
	return m, nil
}
