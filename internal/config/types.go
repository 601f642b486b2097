package config

import (
	"time"
)

// ThemeMode selects the color scheme of the dashboard.
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// ContrastMode selects between the regular and the high-contrast palette.
type ContrastMode string

const (
	ContrastNormal ContrastMode = "normal"
	ContrastHigh   ContrastMode = "high"
)

// Provider kinds the dashboard knows by name. Other kinds are accepted and
// carried through; they only produce a warning during validation.
var knownProviderKinds = []string{"mock", "openai", "anthropic", "gcp", "azure"}

// DisplaySettings holds the presentation preferences.
type DisplaySettings struct {
	Theme      ThemeMode    `toml:"theme" yaml:"theme"`
	Contrast   ContrastMode `toml:"contrast" yaml:"contrast"`
	Animations bool         `toml:"animations" yaml:"animations"`
	Unicode    bool         `toml:"unicode" yaml:"unicode"`
}

// AppSettings holds process-level preferences.
type AppSettings struct {
	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogFile  string `toml:"log_file,omitempty" yaml:"log_file,omitempty"`
	DryRun   bool   `toml:"dry_run" yaml:"dry_run"`
}

// ProviderStanza describes one future data source. Nothing in the dashboard
// interprets CredentialRef or Options; they are carried without loss.
type ProviderStanza struct {
	Name          string         `toml:"name" yaml:"name"`
	Kind          string         `toml:"kind" yaml:"kind"`
	Enabled       bool           `toml:"enabled" yaml:"enabled"`
	CredentialRef string         `toml:"credential_ref,omitempty" yaml:"credential_ref,omitempty"`
	Options       map[string]any `toml:"options,omitempty" yaml:"options,omitempty"`
}

// Settings is the validated, read-only configuration snapshot for one run.
// The zero value is not meaningful; obtain one from Load or Defaults.
type Settings struct {
	version         string
	display         DisplaySettings
	app             AppSettings
	refreshInterval time.Duration
	providers       []ProviderStanza
	source          string
}

// Version returns the schema version the configuration declared.
func (s Settings) Version() string { return s.version }

// Display returns the presentation preferences.
func (s Settings) Display() DisplaySettings { return s.display }

// App returns the process-level preferences.
func (s Settings) App() AppSettings { return s.app }

// RefreshInterval returns the automatic refresh period. Zero means refreshes
// only happen on explicit user request.
func (s Settings) RefreshInterval() time.Duration { return s.refreshInterval }

// Source returns the file the settings were read from, or "" for defaults.
func (s Settings) Source() string { return s.source }

// Providers returns a copy of all provider stanzas in file order.
func (s Settings) Providers() []ProviderStanza {
	out := make([]ProviderStanza, len(s.providers))
	for i, p := range s.providers {
		out[i] = p.clone()
	}
	return out
}

// EnabledProviders returns a copy of the stanzas with Enabled set.
func (s Settings) EnabledProviders() []ProviderStanza {
	var out []ProviderStanza
	for _, p := range s.providers {
		if p.Enabled {
			out = append(out, p.clone())
		}
	}
	return out
}

func (p ProviderStanza) clone() ProviderStanza {
	p.Options = cloneMap(p.Options)
	return p
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// fileView is the on-disk shape used when encoding Settings.
type fileView struct {
	Version         string           `toml:"version" yaml:"version"`
	RefreshInterval int64            `toml:"refresh_interval" yaml:"refresh_interval"`
	Display         DisplaySettings  `toml:"display" yaml:"display"`
	App             AppSettings      `toml:"app" yaml:"app"`
	Providers       []ProviderStanza `toml:"providers,omitempty" yaml:"providers,omitempty"`
}

func (s Settings) toFileView() fileView {
	return fileView{
		Version:         s.version,
		RefreshInterval: int64(s.refreshInterval / time.Second),
		Display:         s.display,
		App:             s.app,
		Providers:       s.Providers(),
	}
}
