package config

// DefaultSchemaVersion is written by `config init` and assumed when a file
// omits the version key.
const DefaultSchemaVersion = "1.0.0"

// MaxRefreshIntervalSeconds bounds refresh_interval to one day.
const MaxRefreshIntervalSeconds = 86400

// Defaults returns the settings used when no configuration file exists:
// automatic theme, normal contrast, manual refresh and no providers.
func Defaults() Settings {
	return Settings{
		version: DefaultSchemaVersion,
		display: DisplaySettings{
			Theme:      ThemeAuto,
			Contrast:   ContrastNormal,
			Animations: true,
			Unicode:    true,
		},
		app: AppSettings{
			LogLevel: "info",
		},
	}
}

// starterProviders is the example stanza written into a fresh config file.
func starterProviders() []ProviderStanza {
	return []ProviderStanza{
		{
			Name:    "Mock Provider",
			Kind:    "mock",
			Enabled: true,
			Options: map[string]any{
				"generate_realistic_data": true,
				"data_points":             int64(100),
			},
		},
	}
}
