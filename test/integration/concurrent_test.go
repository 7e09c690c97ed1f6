package integration

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/skysearch/flight-search-gateway/internal/adapter/http"
	"github.com/skysearch/flight-search-gateway/internal/usecase"
	"github.com/skysearch/flight-search-gateway/test/mock"
)

// TestConcurrent_FlightSearches fires parallel search requests and checks
// that each gets its own complete, ranked result.
func TestConcurrent_FlightSearches(t *testing.T) {
	primary := mock.NewFlightSource("remote").WithOffers(mock.SampleOffers()...)
	ts := NewTestServer(usecase.Options{Flights: primary})

	const numRequests = 10

	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.POST("/api/v1/flights/search", DefaultSearchRequest())
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d", i)

		var body httpAdapter.SearchFlightsResponse
		require.NoError(t, resp.Decode(&body), "request %d", i)
		assert.Len(t, body.Offers, 3, "request %d", i)
		assert.Equal(t, "offer-cheap", body.Offers[0].ID, "request %d", i)
	}
	assert.Equal(t, numRequests, primary.Calls())
}

// TestConcurrent_AirportSearchesShareTheCache hammers one query from many
// goroutines; the cache keeps the remote call count far below the request
// count and every caller sees the same answer.
func TestConcurrent_AirportSearchesShareTheCache(t *testing.T) {
	remote := mock.NewAirportSource()
	ts := NewTestServer(usecase.Options{
		Airports: remote,
		Flights:  mock.NewFlightSource("synthetic"),
	})

	// Seed the cache, then race readers against it.
	seed := ts.GET("/api/v1/airports/search?query=lahore")
	require.Equal(t, http.StatusOK, seed.Code)
	callsAfterSeed := remote.Calls()

	const numReaders = 20

	var wg sync.WaitGroup
	results := make([]Response, numReaders)
	for i := 0; i < numReaders; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.GET("/api/v1/airports/search?query=lahore")
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d", i)
		assert.Equal(t, seed.Body, resp.Body, "request %d", i)
	}
	assert.Equal(t, callsAfterSeed, remote.Calls())
}

// TestConcurrent_TypeaheadTokensAreMonotonic runs overlapping typeahead
// lookups; delivered tokens never regress.
func TestConcurrent_TypeaheadTokensAreMonotonic(t *testing.T) {
	ts := NewTestServer(usecase.Options{
		Airports: mock.NewAirportSource(),
		Flights:  mock.NewFlightSource("synthetic"),
	})
	session := usecase.NewTypeaheadSession(ts.Gateway)

	queries := []string{"lah", "laho", "lahor", "lahore", "karachi", "dubai"}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var delivered []uint64
	var lookupErrs []error

	for _, q := range queries {
		wg.Add(1)
		go func(query string) {
			defer wg.Done()
			suggestion, ok, err := session.Lookup(context.Background(), query)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				lookupErrs = append(lookupErrs, err)
				return
			}
			if ok {
				delivered = append(delivered, suggestion.Token)
			}
		}(q)
	}
	wg.Wait()

	require.Empty(t, lookupErrs)

	// At least one lookup delivers, and no delivered token exceeds the
	// session's high-water mark more than once.
	require.NotEmpty(t, delivered)
	seen := make(map[uint64]bool)
	for _, token := range delivered {
		assert.False(t, seen[token], "token %d delivered twice", token)
		seen[token] = true
	}
}
