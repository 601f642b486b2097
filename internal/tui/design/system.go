package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
// Following 4px base unit for consistent spacing
const (
	SpaceNone = 0
	SpaceXS   = 1 // 4px
	SpaceSM   = 2 // 8px
	SpaceMD   = 3 // 12px
	SpaceLG   = 4 // 16px

	// Component dimensions
	MinPanelHeight = 8
	MinPanelWidth  = 20
)

// Palette is the set of semantic colors every style is derived from.
type Palette struct {
	Primary       lipgloss.AdaptiveColor
	Success       lipgloss.AdaptiveColor
	Error         lipgloss.AdaptiveColor
	Warning       lipgloss.AdaptiveColor
	Info          lipgloss.AdaptiveColor
	Background    lipgloss.AdaptiveColor
	Surface       lipgloss.AdaptiveColor
	SurfaceAlt    lipgloss.AdaptiveColor
	Border        lipgloss.AdaptiveColor
	BorderFocus   lipgloss.AdaptiveColor
	Text          lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextMuted     lipgloss.AdaptiveColor
	Overlay       lipgloss.AdaptiveColor
}

// NormalPalette is the default palette.
var NormalPalette = Palette{
	Primary:       lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
	Success:       lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"},
	Error:         lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"},
	Warning:       lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"},
	Info:          lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#3B82F6"},
	Background:    lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F0F0F"},
	Surface:       lipgloss.AdaptiveColor{Light: "#F9FAFB", Dark: "#1A1A1A"},
	SurfaceAlt:    lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#262626"},
	Border:        lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#404040"},
	BorderFocus:   lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
	Text:          lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"},
}

// HighContrastPalette trades the soft greys for pure black and white and
// saturated state colors.
var HighContrastPalette = Palette{
	Primary:       lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#FFFF00"},
	Success:       lipgloss.AdaptiveColor{Light: "#006600", Dark: "#00FF00"},
	Error:         lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF3333"},
	Warning:       lipgloss.AdaptiveColor{Light: "#994C00", Dark: "#FFB000"},
	Info:          lipgloss.AdaptiveColor{Light: "#0033CC", Dark: "#00FFFF"},
	Background:    lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
	Surface:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
	SurfaceAlt:    lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#202020"},
	Border:        lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	BorderFocus:   lipgloss.AdaptiveColor{Light: "#0000CC", Dark: "#FFFF00"},
	Text:          lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	TextSecondary: lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
	TextMuted:     lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"},
	Overlay:       lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"},
}

// Active palette and the styles derived from it. Rebuilt by Initialize.
var (
	Colors Palette

	TextStyle          lipgloss.Style
	TextSecondaryStyle lipgloss.Style
	TextSuccessStyle   lipgloss.Style
	TextErrorStyle     lipgloss.Style
	TextWarningStyle   lipgloss.Style
	TextInfoStyle      lipgloss.Style
	DimStyle           lipgloss.Style

	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	ErrorPanelStyle lipgloss.Style
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	KeyHintStyle    lipgloss.Style

	StatusBarStyle        lipgloss.Style
	StatusBarSuccessStyle lipgloss.Style
	StatusBarErrorStyle   lipgloss.Style
	StatusBarWarningStyle lipgloss.Style
	StatusBarInfoStyle    lipgloss.Style

	LoadingCardStyle              lipgloss.Style
	TitleStyle                    lipgloss.Style
	SubtitleStyle                 lipgloss.Style
	HelpTitleStyle                lipgloss.Style
	CenteredOverlayContainerStyle lipgloss.Style
	LogOverlayStyle               lipgloss.Style
	LogPanelTitleStyle            lipgloss.Style

	LogInfoStyle  lipgloss.Style
	LogWarnStyle  lipgloss.Style
	LogErrorStyle lipgloss.Style
	LogDebugStyle lipgloss.Style

	IconSuccessStyle lipgloss.Style
	IconDefaultStyle lipgloss.Style
	QuitKeyStyle     lipgloss.Style
)

func init() {
	applyPalette(NormalPalette)
}

func applyPalette(p Palette) {
	Colors = p

	TextStyle = lipgloss.NewStyle().Foreground(p.Text)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(p.TextSecondary)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextInfoStyle = lipgloss.NewStyle().Foreground(p.Info)
	DimStyle = lipgloss.NewStyle().Foreground(p.TextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Foreground(p.Text).
		Padding(SpaceSM-1, SpaceSM) // Account for border

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	ErrorPanelStyle = PanelStyle.
		BorderForeground(p.Error).
		Border(lipgloss.ThickBorder())

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Background(p.Surface).
		Foreground(p.Text).
		Padding(0, SpaceSM)

	FooterStyle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Padding(0, SpaceSM)

	KeyHintStyle = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
		Background(p.SurfaceAlt).
		Foreground(p.Text).
		Padding(0, SpaceSM).
		Height(1)
	StatusBarSuccessStyle = StatusBarStyle.Background(p.Success).Foreground(p.Background)
	StatusBarErrorStyle = StatusBarStyle.Background(p.Error).Foreground(p.Background)
	StatusBarWarningStyle = StatusBarStyle.Background(p.Warning).Foreground(p.Background)
	StatusBarInfoStyle = StatusBarStyle.Background(p.Info).Foreground(p.Background)

	LoadingCardStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Primary).
		Padding(SpaceXS, SpaceLG).
		Align(lipgloss.Center)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		MarginBottom(SpaceXS)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		MarginBottom(SpaceXS)

	HelpTitleStyle = lipgloss.NewStyle().
		Bold(true).
		MarginBottom(1).
		Align(lipgloss.Center).
		Foreground(p.Text)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Background(p.Overlay).
		Foreground(p.Text).
		Padding(1, 2)

	LogOverlayStyle = CenteredOverlayContainerStyle

	LogPanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginBottom(1).
		Foreground(p.Text)

	LogInfoStyle = lipgloss.NewStyle().Foreground(p.Text)
	LogWarnStyle = lipgloss.NewStyle().Foreground(p.Warning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
	LogDebugStyle = lipgloss.NewStyle().Foreground(p.TextMuted).Italic(true)

	IconSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	IconDefaultStyle = lipgloss.NewStyle().Foreground(p.TextSecondary)
	QuitKeyStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
}

// Layout Helpers
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// Initialize sets up the design system for the detected background and the
// requested contrast.
func Initialize(isDarkMode, highContrast bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
	if highContrast {
		applyPalette(HighContrastPalette)
		return
	}
	applyPalette(NormalPalette)
}
