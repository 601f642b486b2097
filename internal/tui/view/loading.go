package view

import (
	"fmt"
	"strings"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/layout"
	"tokentrack/internal/tui/model"
)

func renderLoading(m *model.Model, width, height int) string {
	display := m.Machine.Settings().Display()

	title := design.TitleStyle.Render(model.AppName)
	subtitle := design.SubtitleStyle.Render(fmt.Sprintf("%s • %s", model.Codename, versionLabel(m.Version)))

	indicator := "..."
	if display.Animations {
		indicator = m.Spinner.View()
	}
	status := fmt.Sprintf("%s Initializing providers", indicator)
	if attempt := m.Machine.Attempt(); attempt > 1 {
		status += fmt.Sprintf(" (attempt %d)", attempt)
	}

	lines := []string{title, subtitle, design.TextInfoStyle.Render(status)}
	if n := len(m.Machine.Settings().Providers()); n > 0 {
		lines = append(lines, design.DimStyle.Render(fmt.Sprintf("%d configured", n)))
	}

	card := design.LoadingCardStyle.Render(strings.Join(lines, "\n"))
	return layout.Center(width, height, card)
}

func versionLabel(v string) string {
	if v == "" {
		return "dev"
	}
	if strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
