package components

import (
	"strings"
	"tokentrack/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel represents a reusable bordered panel with a title line
type Panel struct {
	Title   string
	Icon    string
	Content string
	Width   int
	Height  int
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the outer panel dimensions, border included
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets the glyph drawn before the title
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// Render returns the styled panel. Content that does not fit is cut, the
// last visible line becoming "...".
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}
	clip := lipgloss.NewStyle().MaxWidth(innerWidth)

	var lines []string
	if title := p.renderTitle(); title != "" {
		lines = append(lines, clip.Render(title))
		if p.Content != "" {
			lines = append(lines, "")
		}
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 {
			if len(contentLines) > available {
				contentLines = append(contentLines[:available-1], "...")
			}
			for _, line := range contentLines {
				lines = append(lines, clip.Render(line))
			}
		}
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		MaxHeight(p.Height).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel type
func (p *Panel) getStyle() lipgloss.Style {
	base := design.PanelStyle
	switch p.Type {
	case PanelTypeSuccess:
		return base.BorderForeground(design.Colors.Success)
	case PanelTypeError:
		return design.ErrorPanelStyle
	case PanelTypeWarning:
		return base.BorderForeground(design.Colors.Warning)
	case PanelTypeInfo:
		return base.BorderForeground(design.Colors.Info)
	default:
		return base
	}
}

func (p *Panel) renderTitle() string {
	if p.Title == "" {
		return ""
	}
	title := design.PanelTitleStyle.Render(p.Title)
	if p.Icon != "" {
		title = design.PanelTitleStyle.Render(p.Icon) + " " + title
	}
	return title
}
