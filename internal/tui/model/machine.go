package model

import (
	"context"
	"fmt"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/layout"
	"tokentrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const machineSubsystem = "StateMachine"

// Machine drives the screen lifecycle. It is not safe for concurrent use:
// only the bubbletea Update loop calls it, and initialization work runs as a
// tea.Cmd whose result comes back as an InitResultMsg.
type Machine struct {
	settings    config.Settings
	initializer Initializer

	state  ScreenState
	layout layout.Mode
	width  int
	height int

	fault    *Fault
	snapshot *Snapshot

	// attempt numbers Loading computations; only the result of the current
	// one is applied while pending is set.
	attempt uint64
	pending bool
	cancel  context.CancelFunc

	started bool
	stopped bool
}

// NewMachine returns a machine in the Loading state that has not started
// initializing yet. A nil initializer selects ProviderInitializer.
func NewMachine(settings config.Settings, initializer Initializer) *Machine {
	if initializer == nil {
		initializer = ProviderInitializer{}
	}
	return &Machine{
		settings:    settings,
		initializer: initializer,
		state:       StateLoading,
		layout:      layout.ForWidth(0),
	}
}

// Start begins the first Loading attempt. Calling it again has no effect.
func (m *Machine) Start() (tea.Cmd, error) {
	if m.stopped {
		return nil, ErrStopped
	}
	if m.started {
		return nil, nil
	}
	m.started = true
	logging.Debug(machineSubsystem, "Starting with %d configured providers", len(m.settings.Providers()))
	return m.beginAttempt(), nil
}

// RequestRefresh re-enters Loading from Dashboard. From Loading or Error it
// logs a warning and leaves the state unchanged.
func (m *Machine) RequestRefresh() (tea.Cmd, error) {
	if m.stopped {
		return nil, ErrStopped
	}
	if m.state != StateDashboard {
		logging.Warn(machineSubsystem, "Refresh ignored while in %s state", m.state)
		return nil, nil
	}
	if err := m.transition(StateLoading); err != nil {
		return nil, err
	}
	return m.beginAttempt(), nil
}

// Retry re-enters Loading from Error with the current Settings, without
// reading the configuration again.
func (m *Machine) Retry() (tea.Cmd, error) {
	if m.stopped {
		return nil, ErrStopped
	}
	if m.state != StateError {
		logging.Warn(machineSubsystem, "Retry ignored while in %s state", m.state)
		return nil, nil
	}
	if err := m.transition(StateLoading); err != nil {
		return nil, err
	}
	return m.beginAttempt(), nil
}

// Reload replaces the Settings and starts a new Loading attempt from any
// state. An attempt that is still in flight is cancelled and its result will
// be ignored.
func (m *Machine) Reload(settings config.Settings) (tea.Cmd, error) {
	if m.stopped {
		return nil, ErrStopped
	}
	m.settings = settings
	m.started = true
	if m.state != StateLoading {
		if err := m.transition(StateLoading); err != nil {
			return nil, err
		}
	}
	logging.Info(machineSubsystem, "Reloading with %d configured providers", len(settings.Providers()))
	return m.beginAttempt(), nil
}

// HandleResize records the terminal size and recomputes the layout mode. It
// never changes the screen state.
func (m *Machine) HandleResize(width, height int) error {
	if m.stopped {
		return ErrStopped
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.layout = layout.ForWidth(width)
	return nil
}

// HandleInitResult applies the outcome of a Loading attempt. Results of
// superseded or cancelled attempts are dropped.
func (m *Machine) HandleInitResult(msg InitResultMsg) error {
	if m.stopped {
		return ErrStopped
	}
	if !m.pending || msg.Attempt != m.attempt {
		logging.Debug(machineSubsystem, "Dropping stale initialization result (attempt %d, current %d)", msg.Attempt, m.attempt)
		return nil
	}
	m.finishAttempt()

	if msg.Err != nil {
		return m.enterError(&Fault{Kind: InitializationFailed, Err: msg.Err})
	}

	snap := msg.Snapshot
	m.snapshot = &snap
	if err := m.transition(StateDashboard); err != nil {
		return err
	}
	m.layout = layout.ForWidth(m.width)
	logging.Info(machineSubsystem, "Dashboard ready (%d providers, layout %s)", len(snap.Providers), m.layout)
	return nil
}

// Fail moves the machine to Error from any state. The Settings and the last
// snapshot are kept so the user can retry.
func (m *Machine) Fail(err error) error {
	if m.stopped {
		return ErrStopped
	}
	if err == nil {
		return nil
	}
	return m.enterError(AsFault(err))
}

// Shutdown cancels any in-flight initialization. Every later call, including
// a second Shutdown, returns ErrStopped.
func (m *Machine) Shutdown() error {
	if m.stopped {
		return ErrStopped
	}
	m.finishAttempt()
	m.stopped = true
	logging.Debug(machineSubsystem, "Shut down in %s state", m.state)
	return nil
}

func (m *Machine) enterError(f *Fault) error {
	m.finishAttempt()
	if err := m.transition(StateError); err != nil {
		return err
	}
	m.fault = f
	logging.Error(machineSubsystem, f.Err, "Entered error state: %s", f.Kind)
	return nil
}

func (m *Machine) transition(to ScreenState) error {
	if !CanTransition(m.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.state, to)
	}
	logging.Debug(machineSubsystem, "%s -> %s", m.state, to)
	m.state = to
	if to != StateError {
		m.fault = nil
	}
	return nil
}

// beginAttempt cancels the previous attempt and returns the command running
// the new one.
func (m *Machine) beginAttempt() tea.Cmd {
	m.finishAttempt()

	ctx, cancel := context.WithCancel(context.Background())
	m.attempt++
	m.pending = true
	m.cancel = cancel

	attempt := m.attempt
	settings := m.settings
	initializer := m.initializer
	return func() tea.Msg {
		snap, err := initializer.Initialize(ctx, settings)
		if err == nil && ctx.Err() != nil {
			err = ctx.Err()
		}
		return InitResultMsg{Attempt: attempt, Snapshot: snap, Err: err}
	}
}

func (m *Machine) finishAttempt() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.pending = false
}

// State returns the current screen state.
func (m *Machine) State() ScreenState { return m.state }

// Layout returns the layout mode for the last reported width.
func (m *Machine) Layout() layout.Mode { return m.layout }

// Settings returns the settings the machine was last seeded with.
func (m *Machine) Settings() config.Settings { return m.settings }

// Width returns the last reported terminal width.
func (m *Machine) Width() int { return m.width }

// Height returns the last reported terminal height.
func (m *Machine) Height() int { return m.height }

// Attempt returns the number of the most recent Loading attempt.
func (m *Machine) Attempt() uint64 { return m.attempt }

// Loading reports whether an initialization attempt is in flight.
func (m *Machine) Loading() bool { return m.pending }

// Started reports whether Start has been called.
func (m *Machine) Started() bool { return m.started }

// Stopped reports whether Shutdown has been called.
func (m *Machine) Stopped() bool { return m.stopped }

// Fault returns the diagnostic of the Error state, or nil.
func (m *Machine) Fault() *Fault { return m.fault }

// Err returns the diagnostic of the Error state as an error, or nil.
func (m *Machine) Err() error {
	if m.fault == nil {
		return nil
	}
	return m.fault
}

// Snapshot returns the last successful initialization result.
func (m *Machine) Snapshot() (Snapshot, bool) {
	if m.snapshot == nil {
		return Snapshot{}, false
	}
	return *m.snapshot, true
}
