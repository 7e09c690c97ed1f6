package domain

// SortOption defines the available ranking policies for flight results.
type SortOption string

// Available ranking policies.
const (
	// SortCheapest orders offers by ascending price (default)
	SortCheapest SortOption = "cheapest"

	// SortBest orders offers by a composite score of price, stops, and duration
	SortBest SortOption = "best"
)

// IsValid checks if the sort option is a recognized value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortCheapest, SortBest:
		return true
	default:
		return false
	}
}
