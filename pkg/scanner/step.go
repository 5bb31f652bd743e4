package scanner

import "github.com/aretw0/byteflip/pkg/domain"

// Transition is the outcome of feeding one line to the state machine.
type Transition struct {
	// Transform is true when the line must go through the byte flipper.
	Transform bool
	// Next is the state in effect for the following line.
	Next domain.RegionState
	// Closed is true when the line ended the active region.
	Closed bool
	// Opened is true when the line started a region.
	Opened bool
}

// Step applies the region rules to a single line.
//
// An active region is closed by a line containing the end tag; that line then
// falls through to the inactive rule, so it also reopens a region when it
// carries the start tag. Tag lines are never transformed.
func Step(state domain.RegionState, line string) Transition {
	var t Transition

	if state == domain.StateActive {
		if !domain.HasEndTag(line) {
			return Transition{Transform: true, Next: domain.StateActive}
		}
		t.Closed = true
		state = domain.StateInactive
	}

	t.Next = state
	if domain.HasStartTag(line) {
		t.Opened = true
		t.Next = domain.StateActive
	}
	return t
}
