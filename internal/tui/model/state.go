package model

// ScreenState is the top-level mode of the application.
type ScreenState int

const (
	StateLoading ScreenState = iota
	StateDashboard
	StateError
)

func (s ScreenState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateDashboard:
		return "Dashboard"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// allowedTransitions lists every edge of the screen lifecycle. Loading is
// only re-entered from Dashboard or Error through an explicit user action.
var allowedTransitions = map[ScreenState][]ScreenState{
	StateLoading:   {StateDashboard, StateError},
	StateDashboard: {StateLoading, StateError},
	StateError:     {StateLoading, StateError},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to ScreenState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
