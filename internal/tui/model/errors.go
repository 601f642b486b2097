package model

import (
	"errors"
	"fmt"
)

// ErrStopped is returned by every Machine operation after Shutdown.
var ErrStopped = errors.New("state machine stopped")

// ErrInvalidTransition is wrapped when an operation would leave the screen
// lifecycle.
var ErrInvalidTransition = errors.New("invalid screen transition")

// FaultKind classifies an error that happened after the UI started.
type FaultKind int

const (
	// InitializationFailed is a failure of the Loading step.
	InitializationFailed FaultKind = iota
	// UnhandledFault is any other error raised while the UI is running.
	UnhandledFault
	// ConfigReloadFailed is a user-requested reload whose configuration did
	// not load or validate. The previous Settings stay in effect.
	ConfigReloadFailed
)

func (k FaultKind) String() string {
	switch k {
	case InitializationFailed:
		return "Initialization failed"
	case UnhandledFault:
		return "Unhandled fault"
	case ConfigReloadFailed:
		return "Configuration reload failed"
	default:
		return "Unknown fault"
	}
}

// Fault is the diagnostic kept while the machine is in the Error state.
type Fault struct {
	Kind FaultKind
	Err  error
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// AsFault classifies err. An error that already is a *Fault keeps its kind,
// anything else becomes an UnhandledFault.
func AsFault(err error) *Fault {
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return &Fault{Kind: UnhandledFault, Err: err}
}
