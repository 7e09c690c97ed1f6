// Package usecase provides the business logic for airport and flight search:
// the retrieval gateway, result filtering, and the ranking engine.
package usecase

import (
	"sort"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// Rank returns the offers in total order under the given policy. The sort is
// stable: offers that compare equal keep their original relative order, so
// ranking an already-ranked list is a no-op. The input slice is not mutated.
//
// Policies:
//   - SortCheapest: ascending price.
//   - SortBest: ascending composite score; see bestScore.
//
// An empty or invalid policy falls back to SortCheapest.
func Rank(offers []domain.FlightOffer, policy domain.SortOption) []domain.FlightOffer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	if !policy.IsValid() {
		policy = domain.SortCheapest
	}

	switch policy {
	case domain.SortBest:
		// The price ratio term shares one denominator across the whole
		// set, computed up front rather than per comparison.
		denominator := CheapestPrice(offers)
		if denominator <= 0 {
			denominator = 1
		}

		type scored struct {
			offer domain.FlightOffer
			score float64
		}
		ranked := make([]scored, len(result))
		for i, o := range result {
			ranked[i] = scored{offer: o, score: bestScore(o, denominator)}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score < ranked[j].score
		})
		for i, r := range ranked {
			result[i] = r.offer
		}
	case domain.SortCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount < result[j].Price.Amount
		})
	}

	return result
}

// bestScore is the composite "best" ranking score. Lower is better:
//
//	score = price/cheapest + stops + totalMinutes/60
//
// cheapest is the minimum price over the full input set; callers substitute
// 1 when it is zero or negative so a zero-priced offer contributes 0 to the
// ratio term instead of an indeterminate value.
func bestScore(o domain.FlightOffer, cheapest float64) float64 {
	return o.Price.Amount/cheapest +
		float64(stopsCount(o)) +
		float64(o.TotalDuration.TotalMinutes())/60
}

// stopsCount derives the stop count from the segment topology, which is the
// authoritative source for the stops invariant.
func stopsCount(o domain.FlightOffer) int {
	if len(o.Segments) == 0 {
		return o.Stops
	}
	return len(o.Segments) - 1
}

// CheapestPrice returns the minimum price over the offers, or 0 for an empty
// set. Exposed because the results view displays it next to the sort toggle.
func CheapestPrice(offers []domain.FlightOffer) float64 {
	if len(offers) == 0 {
		return 0
	}
	cheapest := offers[0].Price.Amount
	for _, o := range offers[1:] {
		if o.Price.Amount < cheapest {
			cheapest = o.Price.Amount
		}
	}
	return cheapest
}
