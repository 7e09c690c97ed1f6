package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchCriteria is the value object handed to the retrieval layer for a
// flight search. It is never mutated after construction.
type SearchCriteria struct {
	// OriginCode is the IATA code of the departure airport (e.g., "KHI")
	OriginCode string `json:"originCode"`

	// DestinationCode is the IATA code of the arrival airport (e.g., "DXB")
	DestinationCode string `json:"destinationCode"`

	// OriginEntityID and DestinationEntityID are the upstream entity
	// identifiers resolved during airport search
	OriginEntityID      string `json:"originEntityId"`
	DestinationEntityID string `json:"destinationEntityId"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`

	// CabinClass is the requested cabin (default: economy)
	CabinClass string `json:"cabinClass"`

	// Adults is the number of adult passengers (default: 1)
	Adults int `json:"adults"`

	// SortBy is the ranking policy for results (default: cheapest)
	SortBy SortOption `json:"sortBy"`

	// Currency, Market, and CountryCode localize the remote request
	Currency    string `json:"currency"`
	Market      string `json:"market"`
	CountryCode string `json:"countryCode"`
}

var (
	// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
	iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

	// dateRegex matches dates in YYYY-MM-DD format.
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// validCabins defines the cabins accepted by the remote API.
var validCabins = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// Validate checks the criteria for completeness and well-formedness.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.OriginCode == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(s.OriginCode) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.OriginCode)
	}

	if s.DestinationCode == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(s.DestinationCode) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.DestinationCode)
	}

	if s.OriginCode == s.DestinationCode {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.Date) {
		return fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.Date)
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("%w: date is not a valid calendar date: %s", ErrInvalidRequest, s.Date)
	}

	if s.Adults < 1 {
		return fmt.Errorf("%w: adults must be at least 1", ErrInvalidRequest)
	}
	if s.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}

	if s.CabinClass != "" && !validCabins[s.CabinClass] {
		return fmt.Errorf("%w: cabinClass must be one of: economy, premium_economy, business, first; got %q", ErrInvalidRequest, s.CabinClass)
	}

	if s.SortBy != "" && !s.SortBy.IsValid() {
		return fmt.Errorf("%w: sortBy must be one of: cheapest, best; got %q", ErrInvalidRequest, s.SortBy)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	if s.Adults == 0 {
		s.Adults = 1
	}
	if s.CabinClass == "" {
		s.CabinClass = "economy"
	}
	if s.SortBy == "" {
		s.SortBy = SortCheapest
	}
	if s.Currency == "" {
		s.Currency = "USD"
	}
	if s.Market == "" {
		s.Market = "en-US"
	}
	if s.CountryCode == "" {
		s.CountryCode = "US"
	}
	if s.OriginEntityID == "" {
		s.OriginEntityID = s.OriginCode
	}
	if s.DestinationEntityID == "" {
		s.DestinationEntityID = s.DestinationCode
	}
}
