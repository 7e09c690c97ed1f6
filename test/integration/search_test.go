package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/skysearch/flight-search-gateway/internal/adapter/http"
	"github.com/skysearch/flight-search-gateway/internal/adapter/synthetic"
	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
	"github.com/skysearch/flight-search-gateway/internal/usecase"
	"github.com/skysearch/flight-search-gateway/test/mock"
)

// TestFlightSearch_EndToEnd exercises a successful search through the HTTP
// layer, the gateway, and the ranking pipeline.
func TestFlightSearch_EndToEnd(t *testing.T) {
	primary := mock.NewFlightSource("remote").WithOffers(mock.SampleOffers()...)
	ts := NewTestServer(usecase.Options{Flights: primary})

	resp := ts.POST("/api/v1/flights/search", DefaultSearchRequest())

	require.Equal(t, http.StatusOK, resp.Code)

	var body httpAdapter.SearchFlightsResponse
	require.NoError(t, resp.Decode(&body))

	require.Len(t, body.Offers, 3)
	assert.Equal(t, "offer-cheap", body.Offers[0].ID)
	assert.Equal(t, "remote", body.Metadata.Source)
	assert.Equal(t, 3, body.Metadata.TotalResults)
	assert.Equal(t, 1, primary.Calls())
}

// TestFlightSearch_DegradesToSyntheticEndToEnd drives the real synthetic
// source behind a failing primary: the caller still gets a full result page.
func TestFlightSearch_DegradesToSyntheticEndToEnd(t *testing.T) {
	primary := mock.NewFlightSource("remote").
		WithError(&domain.TransportError{Op: "searchFlights", StatusCode: 503})
	fallback := usecase.NewSyntheticSource(synthetic.New(directory.New()), 0)

	ts := NewTestServer(usecase.Options{Flights: primary, Fallback: fallback})

	resp := ts.POST("/api/v1/flights/search", DefaultSearchRequest())

	require.Equal(t, http.StatusOK, resp.Code)

	var body httpAdapter.SearchFlightsResponse
	require.NoError(t, resp.Decode(&body))

	assert.True(t, body.Metadata.Degraded)
	assert.Equal(t, "synthetic", body.Metadata.Source)
	require.Len(t, body.Offers, synthetic.BatchSize)

	// Ranked cheapest-first by default.
	for i := 1; i < len(body.Offers); i++ {
		assert.LessOrEqual(t, body.Offers[i-1].Price.Amount, body.Offers[i].Price.Amount)
	}

	// The primary was tried exactly once; no retry.
	assert.Equal(t, 1, primary.Calls())
}

// TestFlightSearch_SyntheticOnlyMode mirrors the remote-disabled deployment:
// the synthetic source serves as the primary with no fallback.
func TestFlightSearch_SyntheticOnlyMode(t *testing.T) {
	primary := usecase.NewSyntheticSource(synthetic.New(directory.New()), 0)
	ts := NewTestServer(usecase.Options{Flights: primary})

	resp := ts.POST("/api/v1/flights/search", map[string]interface{}{
		"origin":      "LHE",
		"destination": "LHR",
		"date":        "2026-05-01",
		"sortBy":      "best",
	})

	require.Equal(t, http.StatusOK, resp.Code)

	var body httpAdapter.SearchFlightsResponse
	require.NoError(t, resp.Decode(&body))

	assert.Equal(t, "synthetic", body.Metadata.Source)
	assert.False(t, body.Metadata.Degraded)
	assert.Len(t, body.Offers, synthetic.BatchSize)
}

// TestAirportSearch_CacheLifecycle walks an airport search through the cache:
// first miss, fresh hit, then expiry after the TTL.
func TestAirportSearch_CacheLifecycle(t *testing.T) {
	remote := mock.NewAirportSource().WithAirports(
		domain.Airport{Code: "KDH", Name: "Kandahar International Airport"},
	)
	ts := NewTestServer(usecase.Options{
		Airports: remote,
		Flights:  mock.NewFlightSource("synthetic"),
	})

	first := ts.GET("/api/v1/airports/search?query=kand")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, remote.Calls())

	// Inside the TTL the cache answers.
	second := ts.GET("/api/v1/airports/search?query=kand")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, remote.Calls())
	assert.Equal(t, first.Body, second.Body)

	ts.Clock.Advance(10*time.Minute + time.Second)

	third := ts.GET("/api/v1/airports/search?query=kand")
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, 2, remote.Calls())
}

// TestAirportSearch_RemoteOutage verifies the full degradation path: a dead
// remote never surfaces an error, and local matches still render.
func TestAirportSearch_RemoteOutage(t *testing.T) {
	remote := mock.NewAirportSource().
		WithError(&domain.TransportError{Op: "searchAirport", StatusCode: 502})
	ts := NewTestServer(usecase.Options{
		Airports: remote,
		Flights:  mock.NewFlightSource("synthetic"),
	})

	resp := ts.GET("/api/v1/airports/search?query=lahore")

	require.Equal(t, http.StatusOK, resp.Code)

	var body httpAdapter.AirportSearchResponse
	require.NoError(t, resp.Decode(&body))
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "LHE", body.Airports[0].Code)
}

// TestHealth_EndToEnd confirms the health probe responds through the full
// router.
func TestHealth_EndToEnd(t *testing.T) {
	ts := NewTestServer(usecase.Options{Flights: mock.NewFlightSource("synthetic")})

	resp := ts.GET("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}
