package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skysearch/flight-search-gateway/internal/cache"
	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/logger"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/timeutil"
)

// stubAirportSource is a configurable AirportSource test double.
type stubAirportSource struct {
	airports []domain.Airport
	err      error
	calls    int
}

func (s *stubAirportSource) SearchAirports(_ context.Context, _ string) ([]domain.Airport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.airports, nil
}

func (s *stubAirportSource) NearbyAirports(_ context.Context, _, _ float64) ([]domain.Airport, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.airports, nil
}

// stubFlightSource is a configurable FlightSource test double.
type stubFlightSource struct {
	name   string
	offers []domain.FlightOffer
	err    error
	calls  int
}

func (s *stubFlightSource) Search(_ context.Context, _ domain.SearchCriteria) ([]domain.FlightOffer, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

func (s *stubFlightSource) Name() string {
	return s.name
}

func newTestGateway(t *testing.T, opts Options) (*Gateway, *timeutil.MockClock) {
	t.Helper()

	clock := timeutil.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	airportCache := cache.New[[]domain.Airport](10*time.Minute, clock)
	opts.Log = logger.Nop()

	return NewGateway(directory.New(), airportCache, opts), clock
}

func validCriteria() domain.SearchCriteria {
	return domain.SearchCriteria{
		OriginCode:      "KHI",
		DestinationCode: "DXB",
		Date:            "2026-04-10",
		Adults:          1,
	}
}

// ---------------------------------------------------------------
// SearchAirports
// ---------------------------------------------------------------

func TestSearchAirports_ShortQueryReturnsEmpty(t *testing.T) {
	remote := &stubAirportSource{}
	g, _ := newTestGateway(t, Options{Airports: remote})

	for _, query := range []string{"", "k", "kh"} {
		airports, err := g.SearchAirports(context.Background(), query)
		require.NoError(t, err)
		assert.Empty(t, airports)
	}
	assert.Zero(t, remote.calls)
}

func TestSearchAirports_LocalThresholdSkipsRemote(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{{Code: "ZZZ"}}}
	g, _ := newTestGateway(t, Options{Airports: remote})

	// "international" matches well over three local airports.
	airports, err := g.SearchAirports(context.Background(), "international")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(airports), 3)
	assert.Zero(t, remote.calls)
}

func TestSearchAirports_PreferLocalSkipsRemote(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{{Code: "ZZZ"}}}
	g, _ := newTestGateway(t, Options{Airports: remote, PreferLocal: true})

	airports, err := g.SearchAirports(context.Background(), "karachi")

	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "KHI", airports[0].Code)
	assert.Zero(t, remote.calls)
}

func TestSearchAirports_RemoteResultsComeFirst(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{
		{Code: "KDH", Name: "Kandahar International Airport", City: "Kandahar"},
	}}
	g, _ := newTestGateway(t, Options{Airports: remote})

	// "kara" matches only KHI locally (< 3 matches), so the remote is
	// consulted and its entries lead the combined list.
	airports, err := g.SearchAirports(context.Background(), "kara")

	require.NoError(t, err)
	require.Len(t, airports, 2)
	assert.Equal(t, "KDH", airports[0].Code)
	assert.Equal(t, "KHI", airports[1].Code)
	assert.Equal(t, 1, remote.calls)
}

func TestSearchAirports_CacheHitSkipsEverything(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{{Code: "KDH"}}}
	g, _ := newTestGateway(t, Options{Airports: remote})

	first, err := g.SearchAirports(context.Background(), "kara")
	require.NoError(t, err)

	second, err := g.SearchAirports(context.Background(), "KARA")
	require.NoError(t, err)

	// The second call hits the cache (keys are normalized) and the remote
	// is not consulted again.
	assert.Equal(t, first, second)
	assert.Equal(t, 1, remote.calls)
}

func TestSearchAirports_CacheExpiresAfterTTL(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{{Code: "KDH"}}}
	g, clock := newTestGateway(t, Options{Airports: remote})

	_, err := g.SearchAirports(context.Background(), "kara")
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)

	_, err = g.SearchAirports(context.Background(), "kara")
	require.NoError(t, err)
	assert.Equal(t, 2, remote.calls)
}

func TestSearchAirports_RemoteFailureDegradesToLocal(t *testing.T) {
	remote := &stubAirportSource{err: &domain.TransportError{Op: "searchAirport", StatusCode: 503}}
	g, _ := newTestGateway(t, Options{Airports: remote})

	airports, err := g.SearchAirports(context.Background(), "lahore")

	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "LHE", airports[0].Code)
}

func TestSearchAirports_DegradedResultIsSticky(t *testing.T) {
	remote := &stubAirportSource{err: errors.New("connection refused")}
	g, clock := newTestGateway(t, Options{Airports: remote})

	_, err := g.SearchAirports(context.Background(), "lahore")
	require.NoError(t, err)

	// The degraded result was cached: identical queries inside the TTL
	// window do not retry the remote even though it has "recovered".
	remote.err = nil
	remote.airports = []domain.Airport{{Code: "LHE"}, {Code: "ZZZ"}}

	airports, err := g.SearchAirports(context.Background(), "lahore")
	require.NoError(t, err)
	assert.Len(t, airports, 1)
	assert.Equal(t, 1, remote.calls)

	// Past the TTL the remote is consulted again.
	clock.Advance(11 * time.Minute)
	airports, err = g.SearchAirports(context.Background(), "lahore")
	require.NoError(t, err)
	assert.Len(t, airports, 3)
	assert.Equal(t, 2, remote.calls)
}

func TestSearchAirports_NoRemoteConfigured(t *testing.T) {
	g, _ := newTestGateway(t, Options{})

	airports, err := g.SearchAirports(context.Background(), "karachi")

	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "KHI", airports[0].Code)
}

// ---------------------------------------------------------------
// NearbyAirports
// ---------------------------------------------------------------

func TestNearbyAirports_Success(t *testing.T) {
	remote := &stubAirportSource{airports: []domain.Airport{{Code: "DXB"}, {Code: "SHJ"}}}
	g, _ := newTestGateway(t, Options{Airports: remote})

	airports, err := g.NearbyAirports(context.Background(), 25.25, 55.36)

	require.NoError(t, err)
	assert.Len(t, airports, 2)
}

func TestNearbyAirports_FailureYieldsEmpty(t *testing.T) {
	remote := &stubAirportSource{err: errors.New("timeout")}
	g, _ := newTestGateway(t, Options{Airports: remote})

	airports, err := g.NearbyAirports(context.Background(), 25.25, 55.36)

	require.NoError(t, err)
	assert.Empty(t, airports)
}

// ---------------------------------------------------------------
// SearchFlights
// ---------------------------------------------------------------

func TestSearchFlights_ValidationErrorIsSynchronous(t *testing.T) {
	primary := &stubFlightSource{name: "remote"}
	g, _ := newTestGateway(t, Options{Flights: primary})

	criteria := validCriteria()
	criteria.Date = ""

	_, err := g.SearchFlights(context.Background(), criteria, nil)

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, primary.calls)
}

func TestSearchFlights_PrimarySuccess(t *testing.T) {
	offers := []domain.FlightOffer{
		rankingOffer("expensive", 900, 120, 0),
		rankingOffer("cheap", 300, 400, 1),
	}
	primary := &stubFlightSource{name: "remote", offers: offers}
	g, _ := newTestGateway(t, Options{Flights: primary})

	result, err := g.SearchFlights(context.Background(), validCriteria(), nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "expensive"}, offerIDs(result.Offers))
	assert.Equal(t, "remote", result.Metadata.Source)
	assert.False(t, result.Metadata.Degraded)
	assert.Equal(t, 2, result.Metadata.TotalResults)
	assert.Equal(t, float64(300), result.Metadata.CheapestPrice)
}

func TestSearchFlights_TransportFailureDegradesToFallback(t *testing.T) {
	primary := &stubFlightSource{name: "remote", err: &domain.TransportError{Op: "searchFlights", StatusCode: 500}}
	fallback := &stubFlightSource{name: "synthetic", offers: []domain.FlightOffer{rankingOffer("synth", 420, 180, 0)}}
	g, _ := newTestGateway(t, Options{Flights: primary, Fallback: fallback})

	result, err := g.SearchFlights(context.Background(), validCriteria(), nil)

	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "synth", result.Offers[0].ID)
	assert.Equal(t, "synthetic", result.Metadata.Source)
	assert.True(t, result.Metadata.Degraded)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestSearchFlights_SchemaFailureDegradesToFallback(t *testing.T) {
	primary := &stubFlightSource{name: "remote", err: &domain.SchemaError{Op: "searchFlights", Reason: "data.flights missing"}}
	fallback := &stubFlightSource{name: "synthetic", offers: []domain.FlightOffer{rankingOffer("synth", 420, 180, 0)}}
	g, _ := newTestGateway(t, Options{Flights: primary, Fallback: fallback})

	result, err := g.SearchFlights(context.Background(), validCriteria(), nil)

	require.NoError(t, err)
	assert.True(t, result.Metadata.Degraded)
}

func TestSearchFlights_NonRecoverableErrorSurfaces(t *testing.T) {
	primary := &stubFlightSource{name: "remote", err: context.Canceled}
	fallback := &stubFlightSource{name: "synthetic"}
	g, _ := newTestGateway(t, Options{Flights: primary, Fallback: fallback})

	_, err := g.SearchFlights(context.Background(), validCriteria(), nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fallback.calls)
}

func TestSearchFlights_NoFallbackSurfacesError(t *testing.T) {
	primary := &stubFlightSource{name: "remote", err: &domain.TransportError{Op: "searchFlights", StatusCode: 502}}
	g, _ := newTestGateway(t, Options{Flights: primary})

	_, err := g.SearchFlights(context.Background(), validCriteria(), nil)

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestSearchFlights_FiltersApplyBeforeRanking(t *testing.T) {
	offers := []domain.FlightOffer{
		rankingOffer("direct", 900, 120, 0),
		rankingOffer("oneStop", 300, 400, 1),
	}
	primary := &stubFlightSource{name: "remote", offers: offers}
	g, _ := newTestGateway(t, Options{Flights: primary})

	result, err := g.SearchFlights(context.Background(), validCriteria(), &domain.FilterOptions{
		MaxStops: intPtr(0),
	})

	require.NoError(t, err)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "direct", result.Offers[0].ID)
	// Metadata reflects the filtered set, not the raw one.
	assert.Equal(t, 1, result.Metadata.TotalResults)
	assert.Equal(t, float64(900), result.Metadata.CheapestPrice)
}

func TestSearchFlights_BestPolicyFromCriteria(t *testing.T) {
	offers := []domain.FlightOffer{
		rankingOffer("oneStop", 300, 90, 1),
		rankingOffer("direct", 300, 120, 0),
	}
	primary := &stubFlightSource{name: "remote", offers: offers}
	g, _ := newTestGateway(t, Options{Flights: primary})

	criteria := validCriteria()
	criteria.SortBy = domain.SortBest

	result, err := g.SearchFlights(context.Background(), criteria, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"direct", "oneStop"}, offerIDs(result.Offers))
}
