package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"tokentrack/internal/config"
	"tokentrack/internal/tui/model"
	"tokentrack/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const bootstrapSubsystem = "Bootstrap"

// For mocking in tests
var logOutput io.Writer = os.Stderr

// Application is the main application structure that bootstraps and runs the
// dashboard
type Application struct {
	config   *Config
	settings config.Settings
	terminal Terminal
	isDark   bool
	runID    string

	machine  *model.Machine
	startCmd tea.Cmd
}

// NewApplication loads and validates the configuration, detects the terminal
// and starts the screen state machine. Nothing is drawn until Run. An invalid
// or missing configuration is returned as an error and the UI never starts.
func NewApplication(cfg *Config) (*Application, error) {
	return newApplication(cfg, nil)
}

func newApplication(cfg *Config, initializer model.Initializer) (*Application, error) {
	logging.InitForCLI(cliLogLevel(cfg), logOutput)

	runID := uuid.NewString()
	logging.Debug(bootstrapSubsystem, "Starting run %s", runID)

	settings, err := config.Load(cfg.LoadOptions())
	if err != nil {
		// Reported by the caller.
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if settings.Source() != "" {
		logging.Info(bootstrapSubsystem, "Loaded configuration from %s", settings.Source())
	} else {
		logging.Info(bootstrapSubsystem, "Using built-in default configuration")
	}

	t := detectTerminal()
	isDark := applyDisplay(t, settings.Display())
	logging.Debug(bootstrapSubsystem, "Terminal %dx%d (interactive=%t, dark=%t)", t.Width, t.Height, t.Interactive, isDark)

	machine := model.NewMachine(settings, initializer)
	if err := machine.HandleResize(t.Width, t.Height); err != nil {
		return nil, fmt.Errorf("failed to apply terminal size: %w", err)
	}
	startCmd, err := machine.Start()
	if err != nil {
		return nil, fmt.Errorf("failed to start dashboard: %w", err)
	}

	return &Application{
		config:   cfg,
		settings: settings,
		terminal: t,
		isDark:   isDark,
		runID:    runID,
		machine:  machine,
		startCmd: startCmd,
	}, nil
}

// Run executes the dashboard until the user quits or ctx is cancelled
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a)
}

// Settings returns the validated settings the application started with.
func (a *Application) Settings() config.Settings { return a.settings }

// Machine returns the screen state machine.
func (a *Application) Machine() *model.Machine { return a.machine }

// RunID identifies this process in log output.
func (a *Application) RunID() string { return a.runID }

// reloadSettings reads the configuration again with the original command
// line options.
func (a *Application) reloadSettings() (config.Settings, error) {
	return config.Load(a.config.LoadOptions())
}

func cliLogLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	if cfg.LogLevel != "" {
		if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
			return level
		}
	}
	return logging.LevelInfo
}

// tuiLogLevel resolves the level of the activity log from the validated
// settings, which already include command-line overrides.
func tuiLogLevel(settings config.Settings) logging.LogLevel {
	level, err := logging.ParseLevel(settings.App().LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
