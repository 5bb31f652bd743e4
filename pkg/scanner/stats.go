package scanner

import "github.com/aretw0/byteflip/pkg/domain"

// Stats summarizes a completed scan.
type Stats struct {
	Lines            int
	LinesTransformed int
	LiteralsFlipped  int
	RegionsOpened    int
	RegionsClosed    int
	FinalState       domain.RegionState
}

// Unterminated reports whether the input ended inside a region.
func (s Stats) Unterminated() bool {
	return s.FinalState == domain.StateActive
}
