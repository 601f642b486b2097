package controller

import (
	"errors"
	"fmt"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/model"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update is the entry point of the controller. A panic raised while handling
// msg is recovered and reported through the Error screen.
func Update(msg tea.Msg, m *model.Model) (result *model.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			recordFault(m, fmt.Errorf("panic while handling %T: %v", msg, r))
			result, cmd = m, nil
		}
	}()
	return mainControllerDispatch(m, msg)
}

func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	if _, isSpinnerTick := msg.(spinner.TickMsg); !isSpinnerTick {
		LogDebug(m, "Dispatching %T in %s state", msg, m.Machine.State())
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.InitResultMsg:
		return handleInitResultMsg(m, msg)

	case model.RefreshTickMsg:
		return handleRefreshTickMsg(m, msg)

	case model.ConfigChangedMsg:
		cmd := m.SetStatusMessage("Configuration file changed. Press R to reload.", model.StatusBarInfo, model.DefaultStatusClearTime)
		return m, tea.Batch(cmd, model.WaitForConfigChange(m.ConfigChanges))

	case model.ReloadRequestMsg:
		return handleReload(m)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
		return m, model.ListenForLogs(m.LogChannel)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		m.StatusBarClearCancel = nil
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func handleInitResultMsg(m *model.Model, msg model.InitResultMsg) (*model.Model, tea.Cmd) {
	current := m.Machine.Loading() && msg.Attempt == m.Machine.Attempt()
	if err := m.Machine.HandleInitResult(msg); err != nil {
		if !errors.Is(err, model.ErrStopped) {
			recordFault(m, err)
		}
		return m, nil
	}
	if !current {
		return m, nil
	}

	switch m.Machine.State() {
	case model.StateDashboard:
		snap, _ := m.Machine.Snapshot()
		LogInfo("Dashboard ready with %d active providers", snap.ActiveCount())
		return m, m.ScheduleRefresh()
	case model.StateError:
		return m, m.SetStatusMessage("Initialization failed. Press r to retry.", model.StatusBarError, model.DefaultStatusClearTime)
	}
	return m, nil
}

func handleRefreshTickMsg(m *model.Model, msg model.RefreshTickMsg) (*model.Model, tea.Cmd) {
	if msg.Generation != m.RefreshGeneration {
		return m, nil
	}
	if m.Machine.State() != model.StateDashboard {
		return m, nil
	}
	cmd, err := m.Machine.RequestRefresh()
	if err != nil && !errors.Is(err, model.ErrStopped) {
		recordFault(m, err)
	}
	return m, cmd
}

// handleReload reads the configuration again and restarts Loading with it.
// When the new configuration is unusable the machine moves to Error and the
// previous Settings stay in effect.
func handleReload(m *model.Model) (*model.Model, tea.Cmd) {
	if m.LoadConfig == nil {
		LogWarn("Reload requested but no configuration loader is set")
		return m, m.SetStatusMessage("Reload is not available", model.StatusBarWarning, model.DefaultStatusClearTime)
	}

	settings, err := m.LoadConfig()
	if err != nil {
		LogError(err, "Configuration reload failed")
		recordFault(m, &model.Fault{Kind: model.ConfigReloadFailed, Err: err})
		return m, m.SetStatusMessage("Reload failed; previous settings kept", model.StatusBarError, model.DefaultStatusClearTime)
	}

	cmd, err := m.Machine.Reload(settings)
	if err != nil {
		if !errors.Is(err, model.ErrStopped) {
			recordFault(m, err)
		}
		return m, nil
	}
	applyDisplaySettings(m, settings)
	m.DryRun = settings.App().DryRun
	// Invalidate pending refresh ticks of the previous settings.
	m.RefreshGeneration++
	status := m.SetStatusMessage("Configuration reloaded", model.StatusBarSuccess, model.DefaultStatusClearTime)
	return m, tea.Batch(cmd, status)
}

// applyDisplaySettings rebuilds the design system for a reloaded
// configuration. An "auto" theme keeps the currently active background.
func applyDisplaySettings(m *model.Model, settings config.Settings) {
	display := settings.Display()
	switch display.Theme {
	case config.ThemeDark:
		m.IsDark = true
	case config.ThemeLight:
		m.IsDark = false
	}
	design.Initialize(m.IsDark, display.Contrast == config.ContrastHigh)
	m.Spinner.Style = m.Spinner.Style.Foreground(design.Colors.Primary)
}

// recordFault moves the machine to the Error state. It is a no-op once the
// machine has been shut down.
func recordFault(m *model.Model, err error) {
	if err == nil || m == nil || m.Machine == nil {
		return
	}
	LogError(err, "Recording fault")
	if ferr := m.Machine.Fail(err); ferr != nil && !errors.Is(ferr, model.ErrStopped) {
		LogError(ferr, "Could not enter error state")
	}
}

func highContrast(m *model.Model) bool {
	return m.Machine.Settings().Display().Contrast == config.ContrastHigh
}
