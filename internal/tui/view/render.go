// Package view renders the dashboard for each screen state.
package view

import (
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/model"
)

// Chrome heights around the dashboard body.
const (
	headerHeight    = 1
	statusBarHeight = 1
	footerHeight    = 1
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.QuitApp || m.Machine.Stopped() {
		return ""
	}

	width, height := m.Machine.Width(), m.Machine.Height()
	if width == 0 || height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.Overlay {
	case model.OverlayHelp:
		return renderHelpOverlay(m, width, height)
	case model.OverlayLog:
		return renderLogOverlay(m, width, height)
	}

	switch m.Machine.State() {
	case model.StateDashboard:
		return renderDashboard(m, width, height)
	case model.StateError:
		return renderError(m, width, height)
	default:
		return renderLoading(m, width, height)
	}
}
