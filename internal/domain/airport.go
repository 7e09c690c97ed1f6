package domain

// Airport is immutable reference data describing a searchable airport.
// Instances are uniquely identified by Code and are never mutated after load.
type Airport struct {
	// Code is the IATA airport code (e.g., "KHI")
	Code string `json:"code"`

	// Name is the full airport name (e.g., "Jinnah International Airport")
	Name string `json:"name"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the country the airport is located in
	Country string `json:"country"`

	// EntityID is the upstream provider's entity identifier, used when
	// issuing flight searches against the remote API
	EntityID string `json:"entityId"`

	// DisplayCode is the short code shown in the UI (usually equals Code)
	DisplayCode string `json:"displayCode"`

	// Lat and Lng are the airport coordinates (0 when unknown)
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
