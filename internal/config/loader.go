package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"tokentrack/pkg/logging"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserConfigDir = os.UserConfigDir
var lookupEnv = os.LookupEnv

const (
	appConfigDir   = "tokentrack"
	configFileName = "config.toml"
)

// Environment variables applied on top of the file before validation.
const (
	EnvTheme           = "TOKENTRACK_THEME"
	EnvContrast        = "TOKENTRACK_CONTRAST"
	EnvRefreshInterval = "TOKENTRACK_REFRESH_INTERVAL"
	EnvLogLevel        = "TOKENTRACK_LOG_LEVEL"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an explicit configuration file or directory. When empty the
	// default path is used and a missing file means "use defaults".
	Path string
	// Strict reports unknown fields as violations instead of ignoring them.
	Strict bool
	// LogLevel and DryRun are command-line overrides. They take precedence
	// over both the file and the environment.
	LogLevel string
	DryRun   bool
}

// DefaultPath returns the configuration file location under the user's
// configuration directory, e.g. ~/.config/tokentrack/config.toml.
func DefaultPath() (string, error) {
	dir, err := osUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appConfigDir, configFileName), nil
}

// ResolvePath returns the file Load would read for opts, and whether it was
// requested explicitly.
func ResolvePath(opts LoadOptions) (string, bool, error) {
	if opts.Path == "" {
		p, err := DefaultPath()
		return p, false, err
	}
	p := opts.Path
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		p = filepath.Join(p, configFileName)
	}
	return p, true, nil
}

// Load reads, parses and validates the configuration. It returns either fully
// validated Settings or an error; a *ValidationError lists every problem found.
func Load(opts LoadOptions) (Settings, error) {
	path, explicit, err := ResolvePath(opts)
	if err != nil {
		logging.Warn(configSubsystem, "Could not determine user config path: %v; using defaults", err)
		path = ""
	}

	var root *Node
	if path != "" {
		root, err = readTree(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if explicit {
				return Settings{}, &NotFoundError{Path: path}
			}
			logging.Debug(configSubsystem, "No configuration file at %s, using defaults", path)
			path = ""
		case err != nil:
			return Settings{}, err
		}
	}
	if root == nil {
		root = newTable()
	}

	applyEnvOverrides(root)
	applyFlagOverrides(root, opts)

	s, violations := validate(root, opts.Strict)
	if len(violations) > 0 {
		return Settings{}, &ValidationError{Source: path, Violations: violations}
	}
	s.source = path
	if path != "" {
		logging.Info(configSubsystem, "Loaded configuration from %s (%d providers)", path, len(s.providers))
	}
	return s, nil
}

// readTree parses the file at path into a Node tree. Syntax errors come back
// as a *ValidationError so they are reported like any other violation.
func readTree(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(f).Decode(&raw)
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if err != nil {
			return nil, documentError(path, "invalid YAML: %v", err)
		}
	default:
		var doc map[string]any
		if _, err := toml.NewDecoder(f).Decode(&doc); err != nil {
			return nil, documentError(path, "invalid TOML: %v", err)
		}
		raw = doc
	}

	root, err := buildTree(raw)
	if err != nil {
		return nil, documentError(path, "%v", err)
	}
	return root, nil
}

func documentError(path, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Source:     path,
		Violations: []Violation{{Path: documentPath, Reason: fmt.Sprintf(format, args...)}},
	}
}

// applyEnvOverrides writes TOKENTRACK_* values into the tree so they go
// through the same validation as file values.
func applyEnvOverrides(root *Node) {
	if root.Kind != KindTable {
		return
	}
	if v, ok := lookupEnv(EnvTheme); ok {
		setIn(root, "display", "theme", stringNode(v))
	}
	if v, ok := lookupEnv(EnvContrast); ok {
		setIn(root, "display", "contrast", stringNode(v))
	}
	if v, ok := lookupEnv(EnvRefreshInterval); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			root.Set("refresh_interval", intNode(n))
		} else {
			root.Set("refresh_interval", stringNode(v))
		}
	}
	if v, ok := lookupEnv(EnvLogLevel); ok {
		setIn(root, "app", "log_level", stringNode(v))
	}
}

func applyFlagOverrides(root *Node, opts LoadOptions) {
	if root.Kind != KindTable {
		return
	}
	if opts.LogLevel != "" {
		setIn(root, "app", "log_level", stringNode(opts.LogLevel))
	}
	if opts.DryRun {
		setIn(root, "app", "dry_run", &Node{Kind: KindBool, Bool: true})
	}
}

// setIn stores child at section.key, creating the section if absent. A
// section that exists with the wrong type is left alone for the validator.
func setIn(root *Node, section, key string, child *Node) {
	sec, ok := root.Get(section)
	if !ok {
		sec = newTable()
		root.Set(section, sec)
	}
	if sec.Kind != KindTable {
		return
	}
	sec.Set(key, child)
}
