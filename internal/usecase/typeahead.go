package usecase

import (
	"context"
	"sync/atomic"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// TypeaheadSession guards an airport suggestion feed against out-of-order
// completion. Keystrokes beyond the debounce threshold each start an
// independent lookup, and nothing orders their completions: a slow lookup
// for "lah" can finish after the lookup for "lahore" and clobber the newer,
// user-visible suggestions. The session tags every lookup with a
// monotonically increasing token and discards any result that completes
// after a newer one has already been delivered. In-flight lookups are not
// cancelled, only ignored.
type TypeaheadSession struct {
	gateway *Gateway

	// next is the token for the next lookup.
	next atomic.Uint64

	// delivered is the highest token whose result has been handed out.
	delivered atomic.Uint64
}

// Suggestion is one delivered typeahead result.
type Suggestion struct {
	// Token orders this suggestion against others from the same session
	Token uint64

	// Query is the text the suggestion answers
	Query string

	// Airports is the suggestion list
	Airports []domain.Airport
}

// NewTypeaheadSession creates a session over the gateway.
func NewTypeaheadSession(gateway *Gateway) *TypeaheadSession {
	return &TypeaheadSession{gateway: gateway}
}

// Lookup performs an airport search for query and reports whether the result
// is still current. A false second return means a lookup issued after this
// one already delivered, and the stale result must be discarded. Errors from
// the underlying gateway propagate unchanged.
func (s *TypeaheadSession) Lookup(ctx context.Context, query string) (Suggestion, bool, error) {
	token := s.next.Add(1)

	airports, err := s.gateway.SearchAirports(ctx, query)
	if err != nil {
		return Suggestion{}, false, err
	}

	if !s.claim(token) {
		return Suggestion{}, false, nil
	}

	return Suggestion{
		Token:    token,
		Query:    query,
		Airports: airports,
	}, true, nil
}

// claim records token as delivered unless a newer token already was.
func (s *TypeaheadSession) claim(token uint64) bool {
	for {
		current := s.delivered.Load()
		if current >= token {
			return false
		}
		if s.delivered.CompareAndSwap(current, token) {
			return true
		}
	}
}
