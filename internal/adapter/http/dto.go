package http

import "github.com/skysearch/flight-search-gateway/internal/domain"

// AirportSearchResponse is the body for airport search and nearby lookups.
type AirportSearchResponse struct {
	// Query echoes the search text ("" for nearby lookups)
	Query string `json:"query"`

	// Total is the number of suggestions
	Total int `json:"total"`

	// Airports is the suggestion list
	Airports []domain.Airport `json:"airports"`
}

// SearchFlightsResponse is the body for flight search.
type SearchFlightsResponse struct {
	// Criteria echoes the effective criteria after defaulting
	Criteria domain.SearchCriteria `json:"criteria"`

	// Metadata describes how the result was produced
	Metadata domain.SearchMetadata `json:"metadata"`

	// Offers is the filtered, ranked offer list
	Offers []domain.FlightOffer `json:"offers"`
}
