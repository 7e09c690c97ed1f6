// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, response formatting, and error
// mapping; domain types carry the JSON shapes the UI consumes directly.
package http

import "time"

// SearchFlightsRequest is the request body for POST /flights/search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "KHI")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "DXB")
	Destination string `json:"destination"`

	// OriginEntityID / DestinationEntityID are the upstream entity IDs
	// resolved during airport search (optional; default to the codes)
	OriginEntityID      string `json:"originEntityId,omitempty"`
	DestinationEntityID string `json:"destinationEntityId,omitempty"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// CabinClass is economy, premium_economy, business, or first (optional)
	CabinClass string `json:"cabinClass,omitempty"`

	// Adults is the number of adult passengers (1-9, default 1)
	Adults int `json:"adults,omitempty"`

	// SortBy is the ranking policy: cheapest or best (default cheapest)
	SortBy string `json:"sortBy,omitempty"`

	// Currency, Market, and CountryCode localize the search (optional)
	Currency    string `json:"currency,omitempty"`
	Market      string `json:"market,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`

	// Filters contains optional result filters
	Filters *FilterDTO `json:"filters,omitempty"`
}

// FilterDTO represents optional filters for flight search.
type FilterDTO struct {
	// MaxPrice excludes offers priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"900"`

	// MaxStops excludes offers with more stops (0 = direct only)
	MaxStops *int `json:"maxStops,omitempty" example:"0"`

	// Carriers restricts results to these airline codes
	Carriers []string `json:"carriers,omitempty" example:"EK,QR"`

	// DepartureWindow restricts results to offers departing in the window
	DepartureWindow *TimeWindowDTO `json:"departureWindow,omitempty"`
}

// TimeWindowDTO is an inclusive RFC3339 time range.
type TimeWindowDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// missingFields returns field-level messages for absent required fields.
// These surface synchronously, before any retrieval work starts; deeper
// shape checks live on the domain criteria.
func (r *SearchFlightsRequest) missingFields() map[string]string {
	details := make(map[string]string)
	if r.Origin == "" {
		details["origin"] = "origin is required"
	}
	if r.Destination == "" {
		details["destination"] = "destination is required"
	}
	if r.Date == "" {
		details["date"] = "date is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
