package view

import (
	"strings"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model, width, height int) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	m.Help.ShowAll = true
	m.Help.Width = width - design.CenteredOverlayContainerStyle.GetHorizontalFrameSize()
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpView)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model, width, height int) string {
	title := design.LogPanelTitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(title)

	overlayWidth := int(float64(width) * 0.8)
	overlayHeight := int(float64(height) * 0.7)

	vpWidth := overlayWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	vpHeight := overlayHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if vpWidth < 0 {
		vpWidth = 0
	}
	if vpHeight < 0 {
		vpHeight = 0
	}

	if m.LogViewport.Width != vpWidth || m.LogViewport.Height != vpHeight || m.ActivityLogDirty {
		m.LogViewport.Width = vpWidth
		m.LogViewport.Height = vpHeight
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog))
		m.ActivityLogDirty = false
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayWidth - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
}

// PrepareLogContent applies color styles based on log level keywords.
func PrepareLogContent(lines []string) string {
	if len(lines) == 0 {
		return design.DimStyle.Render("No log entries yet.")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.Contains(line, "[ERROR]"):
			out[i] = design.LogErrorStyle.Render(line)
		case strings.Contains(line, "[WARN]"):
			out[i] = design.LogWarnStyle.Render(line)
		case strings.Contains(line, "[DEBUG]"):
			out[i] = design.LogDebugStyle.Render(line)
		default:
			out[i] = design.LogInfoStyle.Render(line)
		}
	}
	return strings.Join(out, "\n")
}
