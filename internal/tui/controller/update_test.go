package controller

import (
	"context"
	"errors"
	"testing"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/design"
	"tokentrack/internal/tui/layout"
	"tokentrack/internal/tui/model"
	"tokentrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotInitializer(snap model.Snapshot, err error) model.Initializer {
	return model.InitializerFunc(func(context.Context, config.Settings) (model.Snapshot, error) {
		return snap, err
	})
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// startedModel returns a model whose machine is in Loading with a pending
// first attempt, together with that attempt's command.
func startedModel(t *testing.T, initializer model.Initializer) (*model.Model, tea.Cmd) {
	t.Helper()
	machine := model.NewMachine(config.Defaults(), initializer)
	m := model.NewModel(machine, model.Options{Version: "test"})
	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)
	cmd, err := machine.Start()
	require.NoError(t, err)
	return m, cmd
}

func dashboardModel(t *testing.T) *model.Model {
	t.Helper()
	m, cmd := startedModel(t, snapshotInitializer(model.Snapshot{}, nil))
	m, _ = Update(cmd(), m)
	require.Equal(t, model.StateDashboard, m.Machine.State())
	return m
}

func errorModel(t *testing.T) *model.Model {
	t.Helper()
	m, cmd := startedModel(t, snapshotInitializer(model.Snapshot{}, errors.New("provider registry unavailable")))
	m, _ = Update(cmd(), m)
	require.Equal(t, model.StateError, m.Machine.State())
	return m
}

func TestAppModel_Update_WindowSizeMsg(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   layout.Mode
	}{
		{"narrow", 80, 24, layout.Narrow},
		{"normal", 120, 40, layout.Normal},
		{"wide", 160, 50, layout.Wide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewAppModel(model.NewModel(model.NewMachine(config.Defaults(), nil), model.Options{}))

			updated, cmd := app.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			assert.Nil(t, cmd)

			m := updated.(AppModel).Model()
			assert.Equal(t, tt.want, m.Machine.Layout())
			assert.Equal(t, tt.width, m.Machine.Width())
			assert.Equal(t, tt.height, m.Machine.Height())
			assert.Equal(t, tt.width, m.Help.Width)
			assert.Equal(t, model.StateLoading, m.Machine.State())
		})
	}
}

func TestAppModel_Init_StartsLoading(t *testing.T) {
	m := model.NewModel(model.NewMachine(config.Defaults(), nil), model.Options{})
	app := NewAppModel(m)

	cmd := app.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Machine.Started())
	assert.True(t, m.Machine.Loading())
	assert.Equal(t, model.StateLoading, m.Machine.State())
}

func TestUpdate_InitResultMsg_Dashboard(t *testing.T) {
	m, cmd := startedModel(t, snapshotInitializer(model.Snapshot{}, nil))
	generation := m.RefreshGeneration

	m, _ = Update(cmd(), m)

	assert.Equal(t, model.StateDashboard, m.Machine.State())
	assert.Equal(t, layout.Normal, m.Machine.Layout())
	assert.Equal(t, generation+1, m.RefreshGeneration)
}

func TestUpdate_InitResultMsg_Failure(t *testing.T) {
	m := errorModel(t)

	fault := m.Machine.Fault()
	require.NotNil(t, fault)
	assert.Equal(t, model.InitializationFailed, fault.Kind)
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
	assert.Contains(t, m.StatusBarMessage, "retry")
}

func TestUpdate_InitResultMsg_StaleIgnored(t *testing.T) {
	m, _ := startedModel(t, snapshotInitializer(model.Snapshot{}, nil))

	m, cmd := Update(model.InitResultMsg{Attempt: m.Machine.Attempt() + 7}, m)

	assert.Nil(t, cmd)
	assert.Equal(t, model.StateLoading, m.Machine.State())
	assert.True(t, m.Machine.Loading())
}

func TestUpdate_RefreshKey(t *testing.T) {
	t.Run("dashboard refreshes", func(t *testing.T) {
		m := dashboardModel(t)
		attempt := m.Machine.Attempt()

		m, cmd := Update(runeKey("r"), m)

		assert.NotNil(t, cmd)
		assert.Equal(t, model.StateLoading, m.Machine.State())
		assert.Equal(t, attempt+1, m.Machine.Attempt())
	})

	t.Run("error retries", func(t *testing.T) {
		m := errorModel(t)

		m, cmd := Update(runeKey("r"), m)

		assert.NotNil(t, cmd)
		assert.Equal(t, model.StateLoading, m.Machine.State())
		assert.Nil(t, m.Machine.Fault())
	})

	t.Run("loading is a no-op", func(t *testing.T) {
		m, _ := startedModel(t, nil)
		attempt := m.Machine.Attempt()

		m, _ = Update(runeKey("r"), m)

		assert.Equal(t, model.StateLoading, m.Machine.State())
		assert.Equal(t, attempt, m.Machine.Attempt())
		assert.Equal(t, "Already loading", m.StatusBarMessage)
	})
}

func TestUpdate_RefreshTickMsg(t *testing.T) {
	m := dashboardModel(t)

	m, cmd := Update(model.RefreshTickMsg{Generation: m.RefreshGeneration - 1}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, model.StateDashboard, m.Machine.State())

	m, cmd = Update(model.RefreshTickMsg{Generation: m.RefreshGeneration}, m)
	assert.NotNil(t, cmd)
	assert.Equal(t, model.StateLoading, m.Machine.State())
}

func TestUpdate_Reload(t *testing.T) {
	t.Run("success restarts loading", func(t *testing.T) {
		m := errorModel(t)
		t.Cleanup(func() { design.Initialize(true, false) })
		m.LoadConfig = func() (config.Settings, error) { return config.Defaults(), nil }
		attempt := m.Machine.Attempt()

		m, cmd := Update(runeKey("R"), m)
		require.NotNil(t, cmd)
		assert.Equal(t, model.StateError, m.Machine.State(), "the key only requests a reload")
		require.Equal(t, model.ReloadRequestMsg{}, cmd())

		m, cmd = Update(model.ReloadRequestMsg{}, m)

		assert.NotNil(t, cmd)
		assert.Equal(t, model.StateLoading, m.Machine.State())
		assert.Equal(t, attempt+1, m.Machine.Attempt())
		assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
	})

	t.Run("failure keeps previous settings", func(t *testing.T) {
		m := dashboardModel(t)
		before := m.Machine.Settings()
		m.LoadConfig = func() (config.Settings, error) {
			return config.Settings{}, errors.New("refresh_interval: must not be negative")
		}

		m, _ = Update(model.ReloadRequestMsg{}, m)

		require.Equal(t, model.StateError, m.Machine.State())
		assert.Equal(t, model.ConfigReloadFailed, m.Machine.Fault().Kind)
		assert.Equal(t, before.Source(), m.Machine.Settings().Source())
		assert.Equal(t, before.RefreshInterval(), m.Machine.Settings().RefreshInterval())
	})

	t.Run("unavailable without loader", func(t *testing.T) {
		m := dashboardModel(t)

		m, _ = Update(model.ReloadRequestMsg{}, m)

		assert.Equal(t, model.StateDashboard, m.Machine.State())
		assert.Equal(t, model.StatusBarWarning, m.StatusBarMessageType)
	})
}

func TestUpdate_QuitShutsDownMachine(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			m, _ := startedModel(t, nil)

			m, cmd := Update(msg, m)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.QuitApp)
			assert.True(t, m.Machine.Stopped())
			assert.False(t, m.Machine.Loading())
		})
	}
}

func TestUpdate_AfterShutdownIgnoresMessages(t *testing.T) {
	m := dashboardModel(t)
	m, _ = Update(runeKey("q"), m)

	m, cmd := Update(tea.WindowSizeMsg{Width: 200, Height: 60}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.Machine.Width())

	m, cmd = Update(model.RefreshTickMsg{Generation: m.RefreshGeneration}, m)
	assert.Nil(t, cmd)
	assert.Equal(t, model.StateDashboard, m.Machine.State())
}

func TestUpdate_Overlays(t *testing.T) {
	m := dashboardModel(t)

	m, _ = Update(runeKey("?"), m)
	assert.Equal(t, model.OverlayHelp, m.Overlay)

	// Keys other than close are swallowed by the help overlay.
	m, _ = Update(runeKey("r"), m)
	assert.Equal(t, model.StateDashboard, m.Machine.State())

	m, _ = Update(tea.KeyMsg{Type: tea.KeyEsc}, m)
	assert.Equal(t, model.OverlayNone, m.Overlay)

	m, _ = Update(runeKey("l"), m)
	assert.Equal(t, model.OverlayLog, m.Overlay)
	m, _ = Update(runeKey("l"), m)
	assert.Equal(t, model.OverlayNone, m.Overlay)
}

func TestUpdate_CopyToClipboard(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	t.Run("diagnostic from error screen", func(t *testing.T) {
		m := errorModel(t)

		m, _ = Update(runeKey("y"), m)

		assert.Contains(t, copied, "provider registry unavailable")
		assert.Contains(t, copied, "Initialization failed")
		assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)
	})

	t.Run("activity log from log overlay", func(t *testing.T) {
		m := dashboardModel(t)
		m.ActivityLog = []string{"first", "second"}
		m.Overlay = model.OverlayLog

		m, _ = Update(runeKey("y"), m)

		assert.Equal(t, "first\nsecond", copied)
		assert.Equal(t, model.OverlayLog, m.Overlay)
	})

	t.Run("nothing to copy", func(t *testing.T) {
		copied = ""
		m := dashboardModel(t)

		m, _ = Update(runeKey("y"), m)

		assert.Empty(t, copied)
		assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)
	})

	t.Run("clipboard failure", func(t *testing.T) {
		writeClipboard = func(string) error { return errors.New("no clipboard utility") }
		m := errorModel(t)

		m, _ = Update(runeKey("y"), m)

		assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)
		assert.Equal(t, model.StateError, m.Machine.State())
	})
}

func TestUpdate_ToggleDark(t *testing.T) {
	t.Cleanup(func() { design.Initialize(true, false) })
	m := dashboardModel(t)
	m.IsDark = true

	m, _ = Update(runeKey("D"), m)
	assert.False(t, m.IsDark)

	m, _ = Update(runeKey("D"), m)
	assert.True(t, m.IsDark)
}

func TestUpdate_NewLogEntryMsg(t *testing.T) {
	m := dashboardModel(t)
	ch := make(chan logging.LogEntry, 1)
	m.LogChannel = ch

	m, cmd := Update(model.NewLogEntryMsg{Entry: logging.LogEntry{
		Level:     logging.LevelWarn,
		Subsystem: "Config",
		Message:   "provider disabled",
	}}, m)

	require.NotNil(t, cmd)
	require.Len(t, m.ActivityLog, 1)
	assert.Contains(t, m.ActivityLog[0], "[WARN] [Config] provider disabled")
	assert.True(t, m.ActivityLogDirty)
}

func TestUpdate_ConfigChangedMsg(t *testing.T) {
	m := dashboardModel(t)

	m, _ = Update(model.ConfigChangedMsg{}, m)

	assert.Contains(t, m.StatusBarMessage, "Press R to reload")
	assert.Equal(t, model.StateDashboard, m.Machine.State())
}

func TestUpdate_ClearStatusBarMsg(t *testing.T) {
	m := dashboardModel(t)
	m.SetStatusMessage("hello", model.StatusBarWarning, model.DefaultStatusClearTime)

	m, _ = Update(model.ClearStatusBarMsg{}, m)

	assert.Empty(t, m.StatusBarMessage)
	assert.Equal(t, model.StatusBarInfo, m.StatusBarMessageType)
}

func TestUpdate_RecoversPanic(t *testing.T) {
	m := dashboardModel(t)
	m.LoadConfig = func() (config.Settings, error) { panic("corrupt settings cache") }

	assert.NotPanics(t, func() {
		m, _ = Update(model.ReloadRequestMsg{}, m)
	})

	require.Equal(t, model.StateError, m.Machine.State())
	fault := m.Machine.Fault()
	require.NotNil(t, fault)
	assert.Equal(t, model.UnhandledFault, fault.Kind)
	assert.Contains(t, fault.Error(), "corrupt settings cache")
}

func TestAppModel_View(t *testing.T) {
	m := dashboardModel(t)
	app := NewAppModel(m)

	assert.NotEmpty(t, app.View())

	updated, _ := app.Update(runeKey("q"))
	assert.Empty(t, updated.View())
}
