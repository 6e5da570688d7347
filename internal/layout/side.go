package layout

import (
	"fmt"
	"strings"
)

// Side names one end of a splitter along its main axis.
type Side int

const (
	SideNone Side = iota
	SideStart
	SideEnd
)

func (s Side) String() string {
	switch s {
	case SideStart:
		return "start"
	case SideEnd:
		return "end"
	default:
		return "none"
	}
}

// Opposite returns the other end. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideStart:
		return SideEnd
	case SideEnd:
		return SideStart
	default:
		return SideNone
	}
}

// ParseSide accepts "start"/"end" and the horizontal/vertical aliases
// "left"/"right"/"top"/"bottom".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SideNone, nil
	case "start", "left", "top":
		return SideStart, nil
	case "end", "right", "bottom":
		return SideEnd, nil
	}
	return SideNone, fmt.Errorf("%w: %q", ErrInvalidSide, s)
}

// Orientation is the main axis of a splitter. Horizontal splitters place
// their panes side by side.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}
