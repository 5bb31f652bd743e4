package domain

import "strings"

// RegionState tracks whether the current line lies inside a tagged region.
type RegionState int

const (
	StateInactive RegionState = iota // Initial state, lines are copied verbatim
	StateActive                      // Lines are run through the byte flipper
)

func (s RegionState) String() string {
	switch s {
	case StateInactive:
		return "INACTIVE"
	case StateActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// HasStartTag reports whether line opens a region.
func HasStartTag(line string) bool {
	return strings.Contains(line, StartTag)
}

// HasEndTag reports whether line closes a region.
func HasEndTag(line string) bool {
	return strings.Contains(line, EndTag)
}
