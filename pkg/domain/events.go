package domain

// EventType defines the category of the event.
type EventType string

const (
	EventRegionEnter EventType = "region_enter"
	EventRegionLeave EventType = "region_leave"
)

// RegionEvent describes a region boundary.
// Line is the 1-based number of the tag line that caused the transition.
type RegionEvent struct {
	Type   EventType `json:"type"`
	Line   int       `json:"line"`
	Region int       `json:"region"` // 1-based ordinal of the region in the input
}

// ScanHooks defines callbacks for scanner observability.
// Nil hooks are skipped.
type ScanHooks struct {
	OnRegionEnter func(*RegionEvent)
	OnRegionLeave func(*RegionEvent)
}
