package domain

import "time"

// FilterOptions defines optional filters applied to flight results before
// ranking. A nil pointer or empty value disables the corresponding filter.
type FilterOptions struct {
	// MaxPrice excludes offers priced above this amount (search currency)
	MaxPrice *float64 `json:"maxPrice,omitempty"`

	// MaxStops excludes offers with more stops than this value
	// (0 = direct flights only)
	MaxStops *int `json:"maxStops,omitempty"`

	// Carriers restricts results to these airline codes (case-insensitive)
	Carriers []string `json:"carriers,omitempty"`

	// DepartureWindow restricts results to offers departing inside the window
	DepartureWindow *TimeWindow `json:"departureWindow,omitempty"`
}

// TimeWindow is an inclusive time range used for filtering.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window (inclusive on both ends).
func (w *TimeWindow) Contains(t time.Time) bool {
	if w == nil {
		return true
	}
	return !t.Before(w.Start) && !t.After(w.End)
}
