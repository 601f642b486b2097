package model

import (
	"time"
	"tokentrack/internal/config"
	"tokentrack/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Product identity shown on the loading screen and by `version`.
const (
	AppName  = "TokenTrack"
	Codename = "Neural Nexus"
)

// Overlay is the modal drawn on top of the current screen, if any.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayLog
)

// String provides a human-readable representation of the Overlay.
func (o Overlay) String() string {
	switch o {
	case OverlayNone:
		return "None"
	case OverlayHelp:
		return "Help"
	case OverlayLog:
		return "Log"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines    = 1000
	DefaultStatusClearTime = 5 * time.Second
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Refresh    key.Binding
	Reload     key.Binding
	Help       key.Binding
	ToggleLog  key.Binding
	CopyError  key.Binding
	ToggleDark key.Binding
	Esc        key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Reload, k.CopyError},
		{k.Help, k.ToggleLog, k.ToggleDark},
		{k.Esc, k.Quit},
	}
}

// ConfigLoader reads the configuration again for an explicit reload.
type ConfigLoader func() (config.Settings, error)

// Model is the bubbletea model of the dashboard. Screen lifecycle decisions
// are delegated to Machine; Model only holds presentation state.
type Model struct {
	Machine *Machine

	Keys        KeyMap
	Help        help.Model
	Spinner     spinner.Model
	LogViewport viewport.Model
	Overlay     Overlay

	// Log plumbing
	LogChannel       <-chan logging.LogEntry
	ActivityLog      []string
	ActivityLogDirty bool

	// Configuration reload plumbing
	LoadConfig    ConfigLoader
	ConfigChanges <-chan struct{}

	// Refresh ticks are only scheduled when the interval is positive.
	RefreshGeneration uint64

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	Version   string
	RunID     string
	DebugMode bool
	DryRun    bool
	IsDark    bool
	QuitApp   bool
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage removes the transient status bar message.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
		m.StatusBarClearCancel = nil
	}
}
