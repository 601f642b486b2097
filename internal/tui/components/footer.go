package components

import (
	"strings"
	"tokentrack/internal/tui/design"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Footer renders a single line of key hints such as "[r] refresh  [q] quit".
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// NewFooter creates a footer for the given bindings. Disabled bindings are
// skipped when rendering.
func NewFooter(width int, bindings ...key.Binding) *Footer {
	return &Footer{Width: width, Bindings: bindings}
}

// Render returns the styled footer. Hints that do not fit are dropped from
// the right.
func (f *Footer) Render() string {
	available := f.Width - design.SpaceSM*2
	var hints []string
	used := 0
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hint := design.KeyHintStyle.Render("["+h.Key+"]") + " " + h.Desc
		w := lipgloss.Width(hint)
		if len(hints) > 0 {
			w += 2
		}
		if used+w > available {
			break
		}
		used += w
		hints = append(hints, hint)
	}

	return design.FooterStyle.
		Width(f.Width).
		MaxWidth(f.Width).
		Render(strings.Join(hints, "  "))
}
