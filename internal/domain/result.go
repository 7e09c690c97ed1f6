package domain

// SearchResult is the ranked outcome of a flight search, together with
// metadata the results view renders around the list.
type SearchResult struct {
	// Offers is the filtered, ranked offer list
	Offers []FlightOffer `json:"offers"`

	// Metadata describes how the result was produced
	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata describes how a search result was produced.
type SearchMetadata struct {
	// TotalResults is the number of offers after filtering
	TotalResults int `json:"totalResults"`

	// Source names the flight source that produced the offers
	// ("remote" or "synthetic")
	Source string `json:"source"`

	// Degraded is true when the primary source failed and the offers came
	// from the fallback instead
	Degraded bool `json:"degraded"`

	// SearchTimeMs is the total retrieval duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`

	// CheapestPrice is the minimum offer price, shown next to the sort
	// toggle in the results view (0 when there are no offers)
	CheapestPrice float64 `json:"cheapestPrice"`
}
