package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConfigNotFound is matched by errors.Is for a missing explicit config path.
var ErrConfigNotFound = errors.New("configuration file not found")

// NotFoundError reports an explicitly requested configuration file that does
// not exist. A missing default file is never reported this way.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("configuration file %s does not exist", e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// documentPath is the violation path used for problems with the file as a
// whole, such as a syntax error.
const documentPath = "<document>"

// Violation is one field-level configuration problem.
type Violation struct {
	Path   string
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Reason)
}

// ValidationError aggregates every violation found in a configuration source.
type ValidationError struct {
	Source     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "invalid configuration in %s", e.Source)
	} else {
		b.WriteString("invalid configuration")
	}
	fmt.Fprintf(&b, " (%d problem", len(e.Violations))
	if len(e.Violations) != 1 {
		b.WriteString("s")
	}
	b.WriteString(")")
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Has reports whether a violation was recorded for path.
func (e *ValidationError) Has(path string) bool {
	for _, v := range e.Violations {
		if v.Path == path {
			return true
		}
	}
	return false
}
