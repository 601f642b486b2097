package view

import (
	"fmt"
	"strings"
	"time"
	"tokentrack/internal/tui/components"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/layout"
	"tokentrack/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	graphPanelTitle    = "Provider Neural Graph"
	overviewPanelTitle = "Financial Overview"
	noProvidersText    = "No providers configured"
)

func renderDashboard(m *model.Model, width, height int) string {
	mode := m.Machine.Layout()
	glyphs := components.GlyphSet(m.Machine.Settings().Display().Unicode)
	snap, _ := m.Machine.Snapshot()

	pad := mode.Padding()
	spacing := mode.GroupSpacing()
	innerWidth := width - pad*2
	if innerWidth < 1 {
		innerWidth = 1
	}

	area := layout.NewArea(innerWidth, height)
	bodyHeight := area.ContentHeight(headerHeight, statusBarHeight, footerHeight, spacing*3)

	graph := components.NewPanel(graphPanelTitle).
		WithIcon(glyphs.Graph).
		WithContent(providerGraph(snap, glyphs))
	overview := components.NewPanel(overviewPanelTitle).
		WithIcon(glyphs.Overview).
		WithContent(financialOverview(snap))

	var body string
	switch mode {
	case layout.Narrow:
		top, bottom := layout.NewArea(innerWidth, bodyHeight).SplitHorizontal(0.5)
		body = layout.JoinVertical(0,
			graph.WithDimensions(innerWidth, top).Render(),
			overview.WithDimensions(innerWidth, bottom).Render(),
		)
	default:
		gap := 0
		if mode == layout.Wide {
			gap = design.SpaceSM
		}
		left, right := layout.NewArea(innerWidth-gap, bodyHeight).SplitVertical(0.5)
		body = layout.JoinHorizontal(gap,
			graph.WithDimensions(left, bodyHeight).Render(),
			overview.WithDimensions(right, bodyHeight).Render(),
		)
	}

	header := components.NewHeader(model.AppName).
		WithSubtitle(versionLabel(m.Version)).
		WithRightContent(liveStatus(m)).
		WithWidth(innerWidth).
		Render()

	keys := m.Keys
	footer := components.NewFooter(innerWidth, keys.Refresh, keys.Reload, keys.Help, keys.ToggleLog, keys.Quit).Render()

	view := layout.JoinVertical(spacing, header, body, renderStatusBar(m, snap, innerWidth), footer)
	if pad > 0 {
		view = lipgloss.NewStyle().Padding(0, pad).Render(view)
	}
	return view
}

func providerGraph(snap model.Snapshot, g components.Glyphs) string {
	if len(snap.Providers) == 0 {
		return design.DimStyle.Render(noProvidersText)
	}
	lines := make([]string, 0, len(snap.Providers))
	for _, p := range snap.Providers {
		lines = append(lines, components.ProviderLine(g, p.Name, p.Kind, p.Enabled))
	}
	return strings.Join(lines, "\n")
}

// financialOverview shows placeholders until provider integrations report
// usage.
func financialOverview(snap model.Snapshot) string {
	active := int64(snap.ActiveCount())
	return strings.Join([]string{
		"Total Usage: --- tokens",
		"Total Cost: $---.--",
		fmt.Sprintf("Active Providers: %s", humanize.Comma(active)),
	}, "\n")
}

func liveStatus(m *model.Model) string {
	if m.DryRun {
		return design.TextWarningStyle.Render("DRY RUN")
	}
	return design.TextSuccessStyle.Render("● Live")
}

func renderStatusBar(m *model.Model, snap model.Snapshot, width int) string {
	bar := components.NewStatusBar(width).
		WithLeftText(components.FormatProviderCount(len(snap.Providers))).
		WithRightText(refreshSummary(m.Machine.Settings().RefreshInterval(), snap.LoadedAt))
	if m.StatusBarMessage != "" {
		bar = bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

func refreshSummary(interval time.Duration, loadedAt time.Time) string {
	mode := "manual refresh"
	if interval > 0 {
		mode = "auto every " + interval.String()
	}
	if loadedAt.IsZero() {
		return mode
	}
	return fmt.Sprintf("%s • updated %s", mode, humanize.Time(loadedAt))
}
