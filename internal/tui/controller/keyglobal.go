package controller

import (
	"errors"
	"strings"
	"time"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/model"
	"tokentrack/internal/tui/view"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

const copyStatusDuration = 3 * time.Second

// handleKeyMsgGlobal handles key presses. Open overlays capture input first.
func handleKeyMsgGlobal(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) && msg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.Overlay {
	case model.OverlayHelp:
		if key.Matches(msg, m.Keys.Esc) || key.Matches(msg, m.Keys.Help) {
			m.Overlay = model.OverlayNone
			return m, nil
		}
		if key.Matches(msg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil

	case model.OverlayLog:
		switch {
		case key.Matches(msg, m.Keys.Esc), key.Matches(msg, m.Keys.ToggleLog):
			m.Overlay = model.OverlayNone
			return m, nil
		case key.Matches(msg, m.Keys.Quit):
			return quit(m)
		case key.Matches(msg, m.Keys.CopyError):
			return copyToClipboard(m, strings.Join(m.ActivityLog, "\n"), "Logs copied to clipboard")
		}
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return quit(m)

	case key.Matches(msg, m.Keys.Help):
		m.Overlay = model.OverlayHelp
		return m, nil

	case key.Matches(msg, m.Keys.ToggleLog):
		m.Overlay = model.OverlayLog
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog))
		m.LogViewport.GotoBottom()
		m.ActivityLogDirty = false
		return m, nil

	case key.Matches(msg, m.Keys.Refresh):
		return handleRefreshKey(m)

	case key.Matches(msg, m.Keys.Reload):
		return m, func() tea.Msg { return model.ReloadRequestMsg{} }

	case key.Matches(msg, m.Keys.CopyError):
		fault := m.Machine.Fault()
		if fault == nil {
			return m, m.SetStatusMessage("No diagnostic to copy", model.StatusBarInfo, copyStatusDuration)
		}
		return copyToClipboard(m, fault.Error(), "Diagnostic copied to clipboard")

	case key.Matches(msg, m.Keys.ToggleDark):
		m.IsDark = !m.IsDark
		design.Initialize(m.IsDark, highContrast(m))
		m.Spinner.Style = m.Spinner.Style.Foreground(design.Colors.Primary)
		return m, nil
	}

	return m, nil
}

// handleRefreshKey refreshes the dashboard, or retries from the Error screen.
func handleRefreshKey(m *model.Model) (*model.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		err    error
		status string
	)
	switch m.Machine.State() {
	case model.StateDashboard:
		cmd, err = m.Machine.RequestRefresh()
		status = "Refreshing..."
	case model.StateError:
		cmd, err = m.Machine.Retry()
		status = "Retrying..."
	default:
		return m, m.SetStatusMessage("Already loading", model.StatusBarWarning, copyStatusDuration)
	}
	if err != nil {
		if !errors.Is(err, model.ErrStopped) {
			recordFault(m, err)
		}
		return m, nil
	}
	m.RefreshGeneration++
	return m, tea.Batch(cmd, m.SetStatusMessage(status, model.StatusBarInfo, copyStatusDuration))
}

func copyToClipboard(m *model.Model, content, success string) (*model.Model, tea.Cmd) {
	if err := writeClipboard(content); err != nil {
		LogError(err, "Failed to copy to clipboard")
		return m, m.SetStatusMessage("Failed to copy to clipboard", model.StatusBarError, copyStatusDuration)
	}
	return m, m.SetStatusMessage(success, model.StatusBarSuccess, copyStatusDuration)
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	if err := m.Machine.Shutdown(); err != nil && !errors.Is(err, model.ErrStopped) {
		LogError(err, "Shutdown failed")
	}
	m.ClearStatusMessage()
	m.QuitApp = true
	return m, tea.Quit
}
