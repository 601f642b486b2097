// Package config loads and validates the tokentrack configuration.
//
// A configuration source (TOML by default, YAML when the file ends in .yaml
// or .yml) is first parsed into an untyped Node tree. The tree is then
// walked once by the validator, which records every problem it finds instead
// of stopping at the first one, and only a fully valid tree produces a
// Settings value. Settings is immutable: all fields are unexported and the
// accessors hand out copies.
//
// # Sources
//
// The default location is $XDG_CONFIG_HOME/tokentrack/config.toml (see
// DefaultPath). A missing default file is not an error; Defaults are used
// instead. A path given explicitly with --config must exist, otherwise Load
// returns a *NotFoundError that matches ErrConfigNotFound. A directory path
// resolves to config.toml inside it.
//
// The following environment variables are applied on top of the file and go
// through the same validation as file values:
//
//	TOKENTRACK_THEME             display.theme
//	TOKENTRACK_CONTRAST          display.contrast
//	TOKENTRACK_REFRESH_INTERVAL  refresh_interval
//	TOKENTRACK_LOG_LEVEL         app.log_level
//
// # Schema
//
//	version = "1.0.0"        # semantic version, major must be 1
//	refresh_interval = 30    # seconds, 0..86400, 0 = manual only
//
//	[display]
//	theme = "auto"           # auto | dark | light
//	contrast = "normal"      # normal | high
//	animations = true
//	unicode = true
//
//	[app]
//	log_level = "info"       # debug | info | warn | error
//	log_file = ""
//	dry_run = false
//
//	[[providers]]
//	name = "Mock Provider"   # required, unique
//	kind = "mock"            # required; unknown kinds only warn
//	enabled = true
//	credential_ref = ""      # opaque, never dereferenced
//	[providers.options]      # free-form, carried as-is
//
// Unknown fields are ignored unless LoadOptions.Strict is set, in which case
// each one is reported as a violation.
//
// # Errors
//
// Every problem, including a syntax error in the file itself, is returned as
// a *ValidationError holding one Violation per invalid field. Syntax errors
// use the path "<document>".
package config
