package app

import (
	"errors"
	"tokentrack/internal/config"
)

// Process exit codes.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitInvalidConfig  = 2
	ExitConfigNotFound = 3
)

// ExitCode maps an error returned by the application to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var verr *config.ValidationError
	switch {
	case errors.As(err, &verr):
		return ExitInvalidConfig
	case errors.Is(err, config.ErrConfigNotFound):
		return ExitConfigNotFound
	default:
		return ExitFailure
	}
}
