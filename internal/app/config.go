package app

import (
	"tokentrack/internal/config"
)

// Config holds the application configuration taken from the command line
type Config struct {
	// ConfigPath is an explicit configuration file or directory. Empty means
	// the default location.
	ConfigPath string

	// Strict rejects unknown configuration fields
	Strict bool

	// Debug settings
	Debug    bool
	LogLevel string

	// DryRun marks the session as not touching any provider
	DryRun bool

	// NoAltScreen keeps the dashboard in the normal terminal buffer
	NoAltScreen bool

	// Version is shown on the loading screen
	Version string
}

// LoadOptions returns the options config.Load is called with.
func (c *Config) LoadOptions() config.LoadOptions {
	opts := config.LoadOptions{
		Path:     c.ConfigPath,
		Strict:   c.Strict,
		LogLevel: c.LogLevel,
		DryRun:   c.DryRun,
	}
	if c.Debug {
		opts.LogLevel = "debug"
	}
	return opts
}
