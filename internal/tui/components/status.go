package components

import (
	"fmt"
	"tokentrack/internal/tui/design"
)

// Provider glyphs, with ASCII fallbacks for terminals without unicode.
const (
	GlyphEnabled       = "◉"
	GlyphDisabled      = "○"
	GlyphGraph         = "◉"
	GlyphOverview      = "⬢"
	GlyphError         = "✖"
	asciiGlyphEnabled  = "*"
	asciiGlyphDisabled = "-"
	asciiGlyphGraph    = "@"
	asciiGlyphOverview = "#"
	asciiGlyphError    = "x"
)

// Glyphs picks the unicode or ASCII glyph set.
type Glyphs struct {
	Enabled  string
	Disabled string
	Graph    string
	Overview string
	Error    string
}

// GlyphSet returns the glyphs to use for the given unicode preference.
func GlyphSet(unicode bool) Glyphs {
	if unicode {
		return Glyphs{GlyphEnabled, GlyphDisabled, GlyphGraph, GlyphOverview, GlyphError}
	}
	return Glyphs{asciiGlyphEnabled, asciiGlyphDisabled, asciiGlyphGraph, asciiGlyphOverview, asciiGlyphError}
}

// ProviderLine renders one provider as "◉ name (kind)".
func ProviderLine(g Glyphs, name, kind string, enabled bool) string {
	if enabled {
		return fmt.Sprintf("%s %s (%s)", design.IconSuccessStyle.Render(g.Enabled), name, kind)
	}
	return design.DimStyle.Render(fmt.Sprintf("%s %s (%s)", g.Disabled, name, kind))
}
