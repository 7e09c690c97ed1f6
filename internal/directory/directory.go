// Package directory provides substring search over a static airport table.
// The table is loaded once at startup and never mutated, so lookups are pure
// functions with no side effects.
package directory

import (
	"strings"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// DefaultMinQueryLength is the minimum query length before any scan happens.
// Shorter queries return nothing; typeahead below three characters is noise.
const DefaultMinQueryLength = 3

// Directory filters a static airport list by substring match on name, city,
// or code.
type Directory struct {
	airports []domain.Airport
	minQuery int
}

// Option configures a Directory.
type Option func(*Directory)

// WithAirports replaces the default backing table. Mainly for tests.
func WithAirports(airports []domain.Airport) Option {
	return func(d *Directory) {
		d.airports = airports
	}
}

// WithMinQueryLength overrides the minimum query length.
func WithMinQueryLength(n int) Option {
	return func(d *Directory) {
		d.minQuery = n
	}
}

// New creates a Directory backed by the built-in airport table.
func New(opts ...Option) *Directory {
	d := &Directory{
		airports: defaultAirports,
		minQuery: DefaultMinQueryLength,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Match returns every airport whose name, city, or code contains query as a
// case-insensitive substring, in backing-table order (no relevance ranking).
// Queries shorter than the minimum length return nil without scanning.
func (d *Directory) Match(query string) []domain.Airport {
	if len(query) < d.minQuery {
		return nil
	}

	needle := strings.ToLower(query)

	var matches []domain.Airport
	for _, a := range d.airports {
		if strings.Contains(strings.ToLower(a.Name), needle) ||
			strings.Contains(strings.ToLower(a.City), needle) ||
			strings.Contains(strings.ToLower(a.Code), needle) {
			matches = append(matches, a)
		}
	}
	return matches
}

// Lookup returns the airport with the given IATA code, if present.
// The match is case-insensitive.
func (d *Directory) Lookup(code string) (domain.Airport, bool) {
	for _, a := range d.airports {
		if strings.EqualFold(a.Code, code) {
			return a, true
		}
	}
	return domain.Airport{}, false
}

// MinQueryLength returns the configured minimum query length.
func (d *Directory) MinQueryLength() int {
	return d.minQuery
}

// All returns the full backing table. Callers must not mutate the result.
func (d *Directory) All() []domain.Airport {
	return d.airports
}
