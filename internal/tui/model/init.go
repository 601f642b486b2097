package model

import (
	"time"
	"tokentrack/internal/tui/design"
	"tokentrack/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh / retry"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "toggle log overlay"),
		),
		CopyError: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy diagnostic"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// Options configures NewModel.
type Options struct {
	Version    string
	RunID      string
	DebugMode  bool
	IsDark     bool
	LogChannel <-chan logging.LogEntry
	LoadConfig ConfigLoader
	// ConfigChanges delivers a value whenever the configuration file changes.
	ConfigChanges <-chan struct{}
}

// NewModel constructs the UI model around an existing machine.
func NewModel(machine *Machine, opts Options) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.Colors.Primary)

	settings := machine.Settings()
	return &Model{
		Machine:       machine,
		Keys:          DefaultKeyMap(),
		Help:          help.New(),
		Spinner:       s,
		LogViewport:   viewport.New(0, 0),
		Overlay:       OverlayNone,
		LogChannel:    opts.LogChannel,
		ActivityLog:   []string{},
		LoadConfig:    opts.LoadConfig,
		ConfigChanges: opts.ConfigChanges,
		Version:       opts.Version,
		RunID:         opts.RunID,
		DebugMode:     opts.DebugMode,
		DryRun:        settings.App().DryRun,
		IsDark:        opts.IsDark,
	}
}

// Init returns the commands that run for the lifetime of the program: the
// spinner, the log listener and the config watcher listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogs(m.LogChannel),
		WaitForConfigChange(m.ConfigChanges),
	)
}

// ScheduleRefresh starts a new refresh tick generation. Older pending ticks
// become stale. It returns nil when no interval is configured.
func (m *Model) ScheduleRefresh() tea.Cmd {
	m.RefreshGeneration++
	interval := m.Machine.Settings().RefreshInterval()
	if interval <= 0 {
		return nil
	}
	return RefreshTick(interval, m.RefreshGeneration)
}

// RefreshTick fires a RefreshTickMsg for generation after interval.
func RefreshTick(interval time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return RefreshTickMsg{Generation: generation}
	})
}
