package usecase

import (
	"strings"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// ApplyFilters returns the offers that pass every criterion in opts.
// A nil opts disables filtering entirely; nil or empty individual filters are
// skipped. The input slice is not mutated.
func ApplyFilters(offers []domain.FlightOffer, opts *domain.FilterOptions) []domain.FlightOffer {
	if opts == nil {
		return offers
	}

	var carrierSet map[string]struct{}
	if len(opts.Carriers) > 0 {
		carrierSet = make(map[string]struct{}, len(opts.Carriers))
		for _, code := range opts.Carriers {
			carrierSet[strings.ToUpper(code)] = struct{}{}
		}
	}

	result := make([]domain.FlightOffer, 0, len(offers))
	for _, o := range offers {
		if passesFilters(o, opts, carrierSet) {
			result = append(result, o)
		}
	}
	return result
}

func passesFilters(o domain.FlightOffer, opts *domain.FilterOptions, carrierSet map[string]struct{}) bool {
	if opts.MaxPrice != nil && o.Price.Amount > *opts.MaxPrice {
		return false
	}
	if opts.MaxStops != nil && stopsCount(o) > *opts.MaxStops {
		return false
	}
	if carrierSet != nil && !offerMatchesCarriers(o, carrierSet) {
		return false
	}
	if opts.DepartureWindow != nil {
		if len(o.Segments) == 0 || !opts.DepartureWindow.Contains(o.Segments[0].Departure.Time) {
			return false
		}
	}
	return true
}

// offerMatchesCarriers accepts an offer when any segment is operated by a
// whitelisted carrier.
func offerMatchesCarriers(o domain.FlightOffer, carrierSet map[string]struct{}) bool {
	for _, s := range o.Segments {
		if _, ok := carrierSet[strings.ToUpper(s.Carrier.Code)]; ok {
			return true
		}
	}
	return false
}
