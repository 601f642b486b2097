package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/controller"
	"tokentrack/internal/tui/model"
	"tokentrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const lifecycleSubsystem = "TUI-Lifecycle"

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, a *Application) error {
	logging.Info(lifecycleSubsystem, "Starting dashboard (run %s)", a.runID)

	var fileOutput io.Writer
	if path := a.settings.App().LogFile; path != "" {
		f, err := logging.OpenRotatingFile(path, logging.DefaultMaxFileBytes, logging.DefaultFileBackups)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		fileOutput = f
	}

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(tuiLogLevel(a.settings), fileOutput)
	defer logging.CloseTUIChannel()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := model.NewModel(a.machine, model.Options{
		Version:       a.config.Version,
		RunID:         a.runID,
		DebugMode:     a.config.Debug,
		IsDark:        a.isDark,
		LogChannel:    logChan,
		LoadConfig:    a.reloadSettings,
		ConfigChanges: watchConfig(ctx, a.config.LoadOptions()),
	})

	p := controller.NewProgram(ctx, m, controller.ProgramOptions{
		AltScreen: !a.config.NoAltScreen,
		Start:     a.startCmd,
	})

	// Run the TUI until user exits
	_, err := p.Run()
	if shutdownErr := a.machine.Shutdown(); shutdownErr != nil && !errors.Is(shutdownErr, model.ErrStopped) {
		logging.Error(lifecycleSubsystem, shutdownErr, "Shutdown failed")
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logging.Info(lifecycleSubsystem, "Dashboard stopped: %v", ctx.Err())
			return nil
		}
		logging.Error(lifecycleSubsystem, err, "Error running TUI program")
		return err
	}
	logging.Info(lifecycleSubsystem, "TUI exited.")
	return nil
}

// watchConfig notifies about changes of the configuration file. Failing to
// watch is not fatal; the dashboard then only reloads on request.
func watchConfig(ctx context.Context, opts config.LoadOptions) <-chan struct{} {
	path, _, err := config.ResolvePath(opts)
	if err != nil {
		logging.Warn(lifecycleSubsystem, "Not watching configuration: %v", err)
		return nil
	}
	changes, err := config.Watch(ctx, path, config.DefaultWatchDebounce)
	if err != nil {
		logging.Warn(lifecycleSubsystem, "Not watching configuration %s: %v", path, err)
		return nil
	}
	logging.Debug(lifecycleSubsystem, "Watching %s for changes", path)
	return changes
}
