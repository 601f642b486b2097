package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"tokentrack/pkg/logging"

	"github.com/Masterminds/semver/v3"
)

const configSubsystem = "Config"

var (
	topLevelKeys = []string{"version", "refresh_interval", "display", "app", "providers"}
	displayKeys  = []string{"theme", "contrast", "animations", "unicode"}
	appKeys      = []string{"log_level", "log_file", "dry_run"}
	providerKeys = []string{"name", "kind", "enabled", "credential_ref", "options"}

	themeModes    = []string{string(ThemeAuto), string(ThemeDark), string(ThemeLight)}
	contrastModes = []string{string(ContrastNormal), string(ContrastHigh)}
	logLevels     = []string{"debug", "info", "warn", "error"}
)

// validator walks the tree once and records every violation it meets.
// Each invalid field contributes exactly one violation.
type validator struct {
	strict     bool
	violations []Violation
}

func (v *validator) fail(path, format string, args ...interface{}) {
	v.violations = append(v.violations, Violation{Path: path, Reason: fmt.Sprintf(format, args...)})
}

func (v *validator) checkUnknown(tbl *Node, parent string, known []string) {
	for _, k := range tbl.Keys() {
		if slices.Contains(known, k) {
			continue
		}
		path := joinPath(parent, k)
		if v.strict {
			v.fail(path, "unknown field")
			continue
		}
		logging.Debug(configSubsystem, "Ignoring unknown configuration field %s", path)
	}
}

func (v *validator) typeMismatch(path string, want Kind, got *Node) {
	v.fail(path, "expected %s, got %s", want, got.Kind)
}

func (v *validator) stringField(tbl *Node, parent, key string, dst *string) bool {
	n, ok := tbl.Get(key)
	if !ok {
		return false
	}
	if n.Kind != KindString {
		v.typeMismatch(joinPath(parent, key), KindString, n)
		return false
	}
	*dst = n.Str
	return true
}

func (v *validator) enumField(tbl *Node, parent, key string, allowed []string, dst *string) {
	var s string
	if !v.stringField(tbl, parent, key, &s) {
		return
	}
	normalized := strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(allowed, normalized) {
		v.fail(joinPath(parent, key), "invalid value %q, must be one of: %s", s, strings.Join(allowed, ", "))
		return
	}
	*dst = normalized
}

func (v *validator) boolField(tbl *Node, parent, key string, dst *bool) {
	n, ok := tbl.Get(key)
	if !ok {
		return
	}
	if n.Kind != KindBool {
		v.typeMismatch(joinPath(parent, key), KindBool, n)
		return
	}
	*dst = n.Bool
}

func (v *validator) intField(tbl *Node, parent, key string, dst *int64) bool {
	n, ok := tbl.Get(key)
	if !ok {
		return false
	}
	if n.Kind != KindInteger {
		v.typeMismatch(joinPath(parent, key), KindInteger, n)
		return false
	}
	*dst = n.Int
	return true
}

// section returns the child table named key. A present non-table value is a
// violation and yields nil.
func (v *validator) section(root *Node, key string) *Node {
	n, ok := root.Get(key)
	if !ok {
		return nil
	}
	if n.Kind != KindTable {
		v.typeMismatch(key, KindTable, n)
		return nil
	}
	return n
}

// validate turns a parsed tree into Settings. The returned Settings are only
// meaningful when no violations were reported.
func validate(root *Node, strict bool) (Settings, []Violation) {
	v := &validator{strict: strict}
	s := Defaults()

	if root == nil || root.Kind == KindNull {
		root = newTable()
	}
	if root.Kind != KindTable {
		v.fail(documentPath, "expected a table at the top level, got %s", root.Kind)
		return Settings{}, v.violations
	}
	v.checkUnknown(root, "", topLevelKeys)

	v.validateVersion(root, &s)
	v.validateRefresh(root, &s)

	if display := v.section(root, "display"); display != nil {
		v.checkUnknown(display, "display", displayKeys)
		theme, contrast := string(s.display.Theme), string(s.display.Contrast)
		v.enumField(display, "display", "theme", themeModes, &theme)
		v.enumField(display, "display", "contrast", contrastModes, &contrast)
		s.display.Theme, s.display.Contrast = ThemeMode(theme), ContrastMode(contrast)
		v.boolField(display, "display", "animations", &s.display.Animations)
		v.boolField(display, "display", "unicode", &s.display.Unicode)
	}

	if app := v.section(root, "app"); app != nil {
		v.checkUnknown(app, "app", appKeys)
		v.enumField(app, "app", "log_level", logLevels, &s.app.LogLevel)
		v.stringField(app, "app", "log_file", &s.app.LogFile)
		v.boolField(app, "app", "dry_run", &s.app.DryRun)
	}

	s.providers = v.validateProviders(root)

	if len(v.violations) > 0 {
		return Settings{}, v.violations
	}
	return s, nil
}

func (v *validator) validateVersion(root *Node, s *Settings) {
	var raw string
	if !v.stringField(root, "", "version", &raw) {
		return
	}
	ver, err := semver.NewVersion(raw)
	if err != nil {
		v.fail("version", "invalid semantic version %q", raw)
		return
	}
	if ver.Major() != 1 {
		v.fail("version", "unsupported schema version %s, expected 1.x", ver.Original())
		return
	}
	s.version = ver.Original()
}

func (v *validator) validateRefresh(root *Node, s *Settings) {
	var secs int64
	if !v.intField(root, "", "refresh_interval", &secs) {
		return
	}
	switch {
	case secs < 0:
		v.fail("refresh_interval", "must not be negative (got %d); use 0 for manual refresh only", secs)
	case secs > MaxRefreshIntervalSeconds:
		v.fail("refresh_interval", "must be at most %d seconds (got %d)", MaxRefreshIntervalSeconds, secs)
	default:
		s.refreshInterval = time.Duration(secs) * time.Second
	}
}

func (v *validator) validateProviders(root *Node) []ProviderStanza {
	n, ok := root.Get("providers")
	if !ok {
		return nil
	}
	if n.Kind != KindArray {
		v.typeMismatch("providers", KindArray, n)
		return nil
	}

	var out []ProviderStanza
	seen := make(map[string]int)
	for i, item := range n.Items {
		path := indexPath("providers", i)
		if item.Kind != KindTable {
			v.typeMismatch(path, KindTable, item)
			continue
		}
		v.checkUnknown(item, path, providerKeys)

		p := ProviderStanza{Enabled: true}
		valid := true

		if v.requiredString(item, path, "name", &p.Name) {
			if first, dup := seen[p.Name]; dup {
				v.fail(joinPath(path, "name"), "duplicate provider name %q (first defined at %s)", p.Name, indexPath("providers", first))
				valid = false
			} else {
				seen[p.Name] = i
			}
		} else {
			valid = false
		}

		if v.requiredString(item, path, "kind", &p.Kind) {
			p.Kind = strings.ToLower(p.Kind)
			if !slices.Contains(knownProviderKinds, p.Kind) {
				logging.Warn(configSubsystem, "Unknown provider kind %q for %s; allowed: %s", p.Kind, path, strings.Join(knownProviderKinds, ", "))
			}
		} else {
			valid = false
		}

		v.boolField(item, path, "enabled", &p.Enabled)
		v.stringField(item, path, "credential_ref", &p.CredentialRef)

		if opts, ok := item.Get("options"); ok {
			if opts.Kind != KindTable {
				v.typeMismatch(joinPath(path, "options"), KindTable, opts)
				valid = false
			} else {
				p.Options = opts.Value().(map[string]any)
			}
		}

		if valid {
			out = append(out, p)
		}
	}
	return out
}

func (v *validator) requiredString(tbl *Node, parent, key string, dst *string) bool {
	path := joinPath(parent, key)
	if _, ok := tbl.Get(key); !ok {
		v.fail(path, "required field is missing")
		return false
	}
	if !v.stringField(tbl, parent, key, dst) {
		return false
	}
	if strings.TrimSpace(*dst) == "" {
		v.fail(path, "must not be empty")
		return false
	}
	*dst = strings.TrimSpace(*dst)
	return true
}
