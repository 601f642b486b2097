package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the serialization used by Encode.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "toml", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use toml or yaml)", s)
	}
}

// Encode writes s in the on-disk layout understood by Load.
func Encode(w io.Writer, s Settings, format Format) error {
	view := s.toFileView()
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(view); err != nil {
			enc.Close()
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	if err := toml.NewEncoder(w).Encode(view); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}
	return nil
}

const starterHeader = `# tokentrack configuration
#
# refresh_interval is in seconds; 0 means refresh only when you press r.
# Provider stanzas are carried as-is: credential_ref is an opaque reference
# (for example "env:OPENAI_API_KEY") and is never read by the dashboard.

`

// WriteDefaultFile writes a starter configuration with a mock provider to
// path. An existing file is only replaced when force is set.
func WriteDefaultFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeStarter(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeStarter writes the starter document and closes w. A failed close is
// reported like a failed write.
func writeStarter(w io.WriteCloser) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	s := Defaults()
	s.providers = starterProviders()

	if _, err := io.WriteString(w, starterHeader); err != nil {
		return err
	}
	return Encode(w, s, FormatTOML)
}
