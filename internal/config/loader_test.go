package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withEnv replaces the environment lookup for the duration of the test.
func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	original := lookupEnv
	lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = original })
}

// withConfigDir points the default config location at dir.
func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	original := osUserConfigDir
	osUserConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { osUserConfigDir = original })
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T: %v", err, err)
	return verr
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	withEnv(t, nil)
	withConfigDir(t, t.TempDir())

	s, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, Defaults().Display(), s.Display())
	assert.Equal(t, ThemeAuto, s.Display().Theme)
	assert.Equal(t, ContrastNormal, s.Display().Contrast)
	assert.Equal(t, time.Duration(0), s.RefreshInterval())
	assert.Empty(t, s.Providers())
	assert.Empty(t, s.Source())
	assert.Equal(t, DefaultSchemaVersion, s.Version())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	withEnv(t, nil)
	missing := filepath.Join(t.TempDir(), "nope.toml")

	_, err := Load(LoadOptions{Path: missing})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, missing, nf.Path)
}

func TestLoad_DirectoryResolvesToConfigFile(t *testing.T) {
	withEnv(t, nil)
	dir := t.TempDir()
	path := writeConfig(t, dir, configFileName, "refresh_interval = 15\n")

	s, err := Load(LoadOptions{Path: dir})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, s.RefreshInterval())
	assert.Equal(t, path, s.Source())
}

func TestLoad_DefaultPathIsRead(t *testing.T) {
	withEnv(t, nil)
	dir := t.TempDir()
	withConfigDir(t, dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appConfigDir), 0o755))
	writeConfig(t, filepath.Join(dir, appConfigDir), configFileName, "[display]\ntheme = \"light\"\n")

	s, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, s.Display().Theme)
}

func TestLoad_FullDocument(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.toml", `
version = "1.2.0"
refresh_interval = 60

[display]
theme = "Dark"
contrast = "high"
animations = false
unicode = false

[app]
log_level = "debug"
log_file = "/tmp/tokentrack.log"
dry_run = true

[[providers]]
name = "primary"
kind = "openai"
credential_ref = "env:OPENAI_API_KEY"

[providers.options]
region = "eu"
limits = [1, 2, 3]

[[providers]]
name = "backup"
kind = "anthropic"
enabled = false
`)

	s, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", s.Version())
	assert.Equal(t, time.Minute, s.RefreshInterval())
	assert.Equal(t, DisplaySettings{Theme: ThemeDark, Contrast: ContrastHigh}, s.Display())
	assert.Equal(t, AppSettings{LogLevel: "debug", LogFile: "/tmp/tokentrack.log", DryRun: true}, s.App())

	providers := s.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, "primary", providers[0].Name)
	assert.True(t, providers[0].Enabled, "enabled defaults to true")
	assert.Equal(t, "env:OPENAI_API_KEY", providers[0].CredentialRef)
	assert.Equal(t, "eu", providers[0].Options["region"])
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, providers[0].Options["limits"])
	assert.False(t, providers[1].Enabled)

	enabled := s.EnabledProviders()
	require.Len(t, enabled, 1)
	assert.Equal(t, "primary", enabled[0].Name)
}

func TestLoad_NegativeRefreshInterval(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.toml", "refresh_interval = -5\n")

	_, err := Load(LoadOptions{Path: path})
	verr := requireValidationError(t, err)

	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "refresh_interval", verr.Violations[0].Path)
	assert.Contains(t, verr.Violations[0].Reason, "negative")
	assert.Equal(t, path, verr.Source)
}

func TestLoad_ReportsEveryViolation(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.toml", `
version = "2.0.0"
refresh_interval = "soon"

[display]
theme = "neon"
contrast = 3

[app]
log_level = "verbose"

[[providers]]
kind = "mock"
`)

	_, err := Load(LoadOptions{Path: path})
	verr := requireValidationError(t, err)

	expected := []string{
		"version",
		"refresh_interval",
		"display.theme",
		"display.contrast",
		"app.log_level",
		"providers[0].name",
	}
	require.Len(t, verr.Violations, len(expected), verr.Error())
	for _, p := range expected {
		assert.True(t, verr.Has(p), "missing violation for %s", p)
	}
	assert.Contains(t, err.Error(), "6 problems")
}

func TestLoad_ProviderRules(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "duplicate names",
			content: `
[[providers]]
name = "a"
kind = "mock"
[[providers]]
name = "a"
kind = "mock"
`,
			wantErr: "providers[1].name",
		},
		{
			name: "missing kind",
			content: `
[[providers]]
name = "a"
`,
			wantErr: "providers[0].kind",
		},
		{
			name: "options must be a table",
			content: `
[[providers]]
name = "a"
kind = "mock"
options = "fast"
`,
			wantErr: "providers[0].options",
		},
		{
			name:    "providers must be an array",
			content: "providers = 3\n",
			wantErr: "providers",
		},
		{
			name: "unknown kind is accepted",
			content: `
[[providers]]
name = "a"
kind = "bedrock"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withEnv(t, nil)
			path := writeConfig(t, t.TempDir(), "config.toml", tt.content)

			s, err := Load(LoadOptions{Path: path})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, s.Providers(), 1)
				return
			}
			verr := requireValidationError(t, err)
			assert.True(t, verr.Has(tt.wantErr), verr.Error())
		})
	}
}

func TestLoad_UnknownFields(t *testing.T) {
	withEnv(t, nil)
	content := `
colour = "blue"

[display]
theme = "dark"
sparkles = true
`
	path := writeConfig(t, t.TempDir(), "config.toml", content)

	s, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Display().Theme)

	_, err = Load(LoadOptions{Path: path, Strict: true})
	verr := requireValidationError(t, err)
	assert.Len(t, verr.Violations, 2)
	assert.True(t, verr.Has("colour"))
	assert.True(t, verr.Has("display.sparkles"))
}

func TestLoad_SyntaxError(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.toml", "refresh_interval = = 5\n")

	_, err := Load(LoadOptions{Path: path})
	verr := requireValidationError(t, err)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, documentPath, verr.Violations[0].Path)
	assert.Contains(t, verr.Violations[0].Reason, "invalid TOML")
}

func TestLoad_YAML(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.yaml", `
version: "1.0.0"
refresh_interval: 10
display:
  theme: light
providers:
  - name: yaml-provider
    kind: gcp
    options:
      project: demo
`)

	s, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, s.RefreshInterval())
	assert.Equal(t, ThemeLight, s.Display().Theme)
	require.Len(t, s.Providers(), 1)
	assert.Equal(t, "demo", s.Providers()[0].Options["project"])
}

func TestLoad_EmptyYAMLUsesDefaults(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.yml", "")

	s, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, Defaults().Display(), s.Display())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
refresh_interval = 30
[display]
theme = "dark"
`)

	t.Run("valid overrides win over the file", func(t *testing.T) {
		withEnv(t, map[string]string{
			EnvTheme:           "light",
			EnvContrast:        "high",
			EnvRefreshInterval: "5",
			EnvLogLevel:        "warn",
		})
		s, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, ThemeLight, s.Display().Theme)
		assert.Equal(t, ContrastHigh, s.Display().Contrast)
		assert.Equal(t, 5*time.Second, s.RefreshInterval())
		assert.Equal(t, "warn", s.App().LogLevel)
	})

	t.Run("invalid overrides are violations", func(t *testing.T) {
		withEnv(t, map[string]string{
			EnvRefreshInterval: "often",
			EnvTheme:           "plaid",
		})
		_, err := Load(LoadOptions{Path: path})
		verr := requireValidationError(t, err)
		assert.Len(t, verr.Violations, 2)
		assert.True(t, verr.Has("refresh_interval"))
		assert.True(t, verr.Has("display.theme"))
	})
}

func TestLoad_FlagOverrides(t *testing.T) {
	withEnv(t, map[string]string{EnvLogLevel: "warn"})
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", "[app]\nlog_level = \"info\"\n")

	s, err := Load(LoadOptions{Path: path, LogLevel: "debug", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", s.App().LogLevel)
	assert.True(t, s.App().DryRun)

	_, err = Load(LoadOptions{Path: path, LogLevel: "chatty"})
	verr := requireValidationError(t, err)
	assert.True(t, verr.Has("app.log_level"))
}

func TestSettings_ProvidersAreCopies(t *testing.T) {
	withEnv(t, nil)
	path := writeConfig(t, t.TempDir(), "config.toml", `
[[providers]]
name = "a"
kind = "mock"
[providers.options]
depth = 1
`)
	s, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)

	got := s.Providers()
	got[0].Name = "changed"
	got[0].Options["depth"] = int64(99)

	again := s.Providers()
	assert.Equal(t, "a", again[0].Name)
	assert.Equal(t, int64(1), again[0].Options["depth"])
}

func TestWriteDefaultFile_RoundTrip(t *testing.T) {
	withEnv(t, nil)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefaultFile(path, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	s, err := Load(LoadOptions{Path: path, Strict: true})
	require.NoError(t, err)
	require.Len(t, s.Providers(), 1)
	assert.Equal(t, "Mock Provider", s.Providers()[0].Name)
	assert.Equal(t, "mock", s.Providers()[0].Kind)
	assert.Equal(t, int64(100), s.Providers()[0].Options["data_points"])

	err = WriteDefaultFile(path, false)
	assert.Error(t, err, "existing file must not be replaced without force")
	assert.NoError(t, WriteDefaultFile(path, true))
}

type failingCloser struct {
	bytes.Buffer
	closeErr error
}

func (f *failingCloser) Close() error { return f.closeErr }

func TestWriteStarter_ReportsCloseError(t *testing.T) {
	ok := &failingCloser{}
	require.NoError(t, writeStarter(ok))
	assert.Contains(t, ok.String(), "Mock Provider")

	broken := &failingCloser{closeErr: errors.New("disk full")}
	err := writeStarter(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestEncode_YAMLLoadsBack(t *testing.T) {
	withEnv(t, nil)
	s := Defaults()
	s.providers = starterProviders()
	s.refreshInterval = 45 * time.Second

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, s, FormatYAML))

	path := writeConfig(t, t.TempDir(), "config.yaml", buf.String())
	loaded, err := Load(LoadOptions{Path: path, Strict: true})
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, loaded.RefreshInterval())
	assert.Equal(t, s.Display(), loaded.Display())
	require.Len(t, loaded.Providers(), 1)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatTOML},
		{in: "TOML", want: FormatTOML},
		{in: "yml", want: FormatYAML},
		{in: "yaml", want: FormatYAML},
		{in: "json", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWatch_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", "refresh_interval = 1\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path, 20*time.Millisecond)
	require.NoError(t, err)

	// Writes to other files in the directory are ignored.
	writeConfig(t, dir, "other.toml", "x = 1\n")
	writeConfig(t, dir, "config.toml", "refresh_interval = 2\n")

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification received")
	}

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-changes:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
