package layout

import (
	"strings"
	"tokentrack/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Area describes the space available to the dashboard body.
type Area struct {
	Width  int
	Height int
}

// NewArea creates a new area of the given size.
func NewArea(width, height int) Area {
	return Area{Width: width, Height: height}
}

// SplitHorizontal splits the area into a top and bottom part by percentage.
// Both parts are at least design.MinPanelHeight tall.
func (a Area) SplitHorizontal(topPercent float64) (topHeight, bottomHeight int) {
	height := a.Height
	if height < design.MinPanelHeight*2 {
		height = design.MinPanelHeight * 2
	}
	if topPercent <= 0 || topPercent >= 1 {
		topPercent = 0.5
	}

	topHeight = int(float64(height) * topPercent)
	bottomHeight = height - topHeight

	if topHeight < design.MinPanelHeight {
		topHeight = design.MinPanelHeight
		bottomHeight = height - topHeight
	}
	if bottomHeight < design.MinPanelHeight {
		bottomHeight = design.MinPanelHeight
		topHeight = height - bottomHeight
	}
	return topHeight, bottomHeight
}

// SplitVertical splits the area into a left and right part by percentage.
// Both parts are at least design.MinPanelWidth wide.
func (a Area) SplitVertical(leftPercent float64) (leftWidth, rightWidth int) {
	width := a.Width
	if width < design.MinPanelWidth*2 {
		width = design.MinPanelWidth * 2
	}
	if leftPercent <= 0 || leftPercent >= 1 {
		leftPercent = 0.5
	}

	leftWidth = int(float64(width) * leftPercent)
	rightWidth = width - leftWidth

	if leftWidth < design.MinPanelWidth {
		leftWidth = design.MinPanelWidth
		rightWidth = width - leftWidth
	}
	if rightWidth < design.MinPanelWidth {
		rightWidth = design.MinPanelWidth
		leftWidth = width - rightWidth
	}
	return leftWidth, rightWidth
}

// ContentHeight returns the height left after the header, status bar and
// footer have been drawn.
func (a Area) ContentHeight(chrome ...int) int {
	h := a.Height
	for _, c := range chrome {
		h -= c
	}
	if h < 0 {
		return 0
	}
	return h
}

// JoinHorizontal joins blocks side by side with gap columns between them.
func JoinHorizontal(gap int, blocks ...string) string {
	if gap <= 0 || len(blocks) < 2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// JoinVertical stacks blocks with spacing blank lines between them.
func JoinVertical(spacing int, blocks ...string) string {
	if spacing <= 0 || len(blocks) < 2 {
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}
	gap := strings.Repeat("\n", spacing-1)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Center centers content within the given dimensions.
func Center(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
