// Package layout classifies the terminal width into a layout mode and splits
// the available area between dashboard panels.
package layout

// Width breakpoints. A width below NarrowBelow is Narrow, a width above
// WideAbove is Wide, everything in between (both ends included) is Normal.
const (
	NarrowBelow = 100
	WideAbove   = 140
)

// Mode is the presentation density derived from the terminal width.
type Mode int

const (
	// Narrow stacks panels vertically.
	Narrow Mode = iota
	// Normal places panels side by side.
	Normal
	// Wide adds padding and spacing between panel groups.
	Wide
)

func (m Mode) String() string {
	switch m {
	case Narrow:
		return "narrow"
	case Normal:
		return "normal"
	case Wide:
		return "wide"
	default:
		return "unknown"
	}
}

// ForWidth returns the layout mode for a terminal width in columns. It is a
// pure function of width with no hysteresis.
func ForWidth(width int) Mode {
	switch {
	case width < NarrowBelow:
		return Narrow
	case width > WideAbove:
		return Wide
	default:
		return Normal
	}
}

// Padding is the horizontal padding applied around panel groups.
func (m Mode) Padding() int {
	if m == Wide {
		return 2
	}
	return 0
}

// GroupSpacing is the number of blank lines between panel groups.
func (m Mode) GroupSpacing() int {
	if m == Wide {
		return 1
	}
	return 0
}
