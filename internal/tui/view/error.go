package view

import (
	"strings"
	"tokentrack/internal/tui/components"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/layout"
	"tokentrack/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const maxErrorPanelWidth = 90

func renderError(m *model.Model, width, height int) string {
	fault := m.Machine.Fault()
	title := "Error"
	detail := "unknown error"
	if fault != nil {
		title = fault.Kind.String()
		if fault.Err != nil {
			detail = fault.Err.Error()
		}
	}

	panelWidth := width
	if panelWidth > maxErrorPanelWidth {
		panelWidth = maxErrorPanelWidth
	}
	inner := panelWidth - design.ErrorPanelStyle.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	wrapped := lipgloss.NewStyle().Width(inner).Render(detail)

	source := m.Machine.Settings().Source()
	if source == "" {
		source = "built-in defaults"
	}

	lines := []string{
		wrapped,
		"",
		design.DimStyle.Render("Settings: " + source),
		"",
		hint(m.Keys.Refresh.Help().Key, "retry with the current settings"),
		hint(m.Keys.Reload.Help().Key, "reload the configuration file"),
		hint(m.Keys.CopyError.Help().Key, "copy this diagnostic"),
		hint(m.Keys.Quit.Help().Key, "quit"),
	}
	content := strings.Join(lines, "\n")

	panelHeight := lipgloss.Height(content) + 2 + design.ErrorPanelStyle.GetVerticalFrameSize()
	if panelHeight > height-statusBarHeight {
		panelHeight = height - statusBarHeight
	}

	glyphs := components.GlyphSet(m.Machine.Settings().Display().Unicode)
	panel := components.NewPanel(title).
		WithIcon(glyphs.Error).
		WithType(components.PanelTypeError).
		WithContent(content).
		WithDimensions(panelWidth, panelHeight).
		Render()

	body := layout.Center(width, height-statusBarHeight, panel)
	bar := components.NewStatusBar(width).WithLeftText("Dashboard unavailable")
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, bar.Render())
}

func hint(k, desc string) string {
	return design.KeyHintStyle.Render("["+k+"]") + " " + desc
}
