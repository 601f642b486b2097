package app

import (
	"os"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Size used when stdout is not a terminal or its size cannot be read.
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Terminal describes the terminal the dashboard starts in.
type Terminal struct {
	Width       int
	Height      int
	Interactive bool
	Profile     termenv.Profile
	Dark        bool
}

// For mocking in tests
var detectTerminal = DetectTerminal

// DetectTerminal reads the size, color profile and background of stdout.
// The color profile honors NO_COLOR and CLICOLOR_FORCE.
func DetectTerminal() Terminal {
	t := Terminal{
		Width:  fallbackWidth,
		Height: fallbackHeight,
		Dark:   true,
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		t.Interactive = true
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			t.Width, t.Height = w, h
		}
	}

	out := termenv.NewOutput(os.Stdout)
	t.Profile = out.EnvColorProfile()
	if t.Interactive {
		t.Dark = out.HasDarkBackground()
	}
	return t
}

// ResolveDark decides the background the palette is built for. An explicit
// theme wins over the detected background.
func ResolveDark(theme config.ThemeMode, detectedDark bool) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return detectedDark
	}
}

// applyDisplay configures lipgloss and the design system once at startup and
// returns whether the dark palette is active.
func applyDisplay(t Terminal, display config.DisplaySettings) bool {
	lipgloss.SetColorProfile(t.Profile)
	dark := ResolveDark(display.Theme, t.Dark)
	design.Initialize(dark, display.Contrast == config.ContrastHigh)
	return dark
}
