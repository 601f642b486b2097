package components

import (
	"strings"
	"testing"
	"tokentrack/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHeader_Render(t *testing.T) {
	out := NewHeader("TokenTrack").
		WithSubtitle("v1.0.0").
		WithRightContent("Live").
		WithWidth(60).
		Render()

	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "TokenTrack")
	assert.Contains(t, out, "Live")

	narrow := NewHeader("A very long application title").WithRightContent("Live").WithWidth(20).Render()
	assert.LessOrEqual(t, lipgloss.Width(narrow), 20)
}

func TestStatusBar_Render(t *testing.T) {
	tests := []struct {
		name     string
		bar      *StatusBar
		contains []string
		missing  []string
	}{
		{
			name:     "left and right",
			bar:      NewStatusBar(80).WithLeftText("Ready").WithRightText("manual refresh"),
			contains: []string{"Ready", "manual refresh"},
		},
		{
			name:     "message replaces text",
			bar:      NewStatusBar(80).WithLeftText("Ready").WithMessage("Copied", model.StatusBarSuccess),
			contains: []string{"Copied"},
			missing:  []string{"Ready"},
		},
		{
			name:     "empty message keeps text",
			bar:      NewStatusBar(80).WithLeftText("Ready").WithMessage("", model.StatusBarError),
			contains: []string{"Ready"},
		},
		{
			name:     "too narrow for both sides",
			bar:      NewStatusBar(20).WithLeftText("Ready • 3 providers configured").WithRightText("auto 30s"),
			contains: []string{"Ready"},
			missing:  []string{"auto 30s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.bar.Render()
			assert.Equal(t, tt.bar.Width, lipgloss.Width(out))
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.missing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestFormatProviderCount(t *testing.T) {
	assert.Equal(t, "Ready • 0 providers configured", FormatProviderCount(0))
	assert.Equal(t, "Ready • 1 provider configured", FormatProviderCount(1))
}

func TestFooter_Render(t *testing.T) {
	keys := model.DefaultKeyMap()
	out := NewFooter(80, keys.Refresh, keys.Help, keys.Quit).Render()

	assert.Contains(t, out, "[r]")
	assert.Contains(t, out, "quit")
	assert.Equal(t, 80, lipgloss.Width(out))

	disabled := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled())
	out = NewFooter(80, disabled, keys.Quit).Render()
	assert.NotContains(t, out, "hidden")

	tiny := NewFooter(14, keys.Refresh, keys.Help, keys.Quit).Render()
	assert.NotContains(t, tiny, "quit")
}

func TestProviderLine(t *testing.T) {
	g := GlyphSet(true)
	assert.Contains(t, ProviderLine(g, "primary", "openai", true), "◉")
	assert.Contains(t, ProviderLine(g, "backup", "mock", false), "○ backup (mock)")

	ascii := GlyphSet(false)
	line := ProviderLine(ascii, "primary", "openai", true)
	assert.Contains(t, line, "primary (openai)")
	assert.False(t, strings.ContainsAny(line, "◉○"))
}
