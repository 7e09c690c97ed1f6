package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skysearch/flight-search-gateway/internal/cache"
	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// Gateway orchestrates airport and flight retrieval: cache consultation,
// local directory matching, remote lookup, and graceful degradation to
// synthetic data. The design philosophy is "always produce a renderable
// result" - remote failures are recovered locally and logged, never surfaced
// to the caller of a flight search.
type Gateway struct {
	directory *directory.Directory
	cache     *cache.Cache[[]domain.Airport]
	airports  AirportSource
	flights   FlightSource
	fallback  FlightSource

	// localMatchThreshold is how many local matches make a remote airport
	// lookup unnecessary.
	localMatchThreshold int

	// preferLocal skips the remote airport lookup unconditionally.
	preferLocal bool

	minQueryLength int
	log            zerolog.Logger
}

// Options configures a Gateway.
type Options struct {
	// Airports is the remote airport source; nil means local-only airport
	// search.
	Airports AirportSource

	// Flights is the primary flight source. Required.
	Flights FlightSource

	// Fallback serves flight searches when the primary fails. Optional;
	// when nil a failed primary search returns its error.
	Fallback FlightSource

	// PreferLocal skips remote airport lookups unconditionally.
	PreferLocal bool

	// MinQueryLength overrides the minimum airport query length (default 3).
	MinQueryLength int

	Log zerolog.Logger
}

// localMatchThreshold is the default number of local matches that makes a
// remote airport lookup unnecessary.
const localMatchThreshold = 3

// NewGateway creates a Gateway over the given directory and cache.
func NewGateway(dir *directory.Directory, airportCache *cache.Cache[[]domain.Airport], opts Options) *Gateway {
	minLen := opts.MinQueryLength
	if minLen <= 0 {
		minLen = directory.DefaultMinQueryLength
	}

	return &Gateway{
		directory:           dir,
		cache:               airportCache,
		airports:            opts.Airports,
		flights:             opts.Flights,
		fallback:            opts.Fallback,
		localMatchThreshold: localMatchThreshold,
		preferLocal:         opts.PreferLocal,
		minQueryLength:      minLen,
		log:                 opts.Log.With().Str("component", "gateway").Logger(),
	}
}

// SearchAirports resolves a free-text airport query.
//
// The retrieval policy, in order: short queries return empty without touching
// the cache; a fresh cache entry is returned verbatim; enough local matches
// (or the prefer-local flag) short-circuit the remote; otherwise the remote
// result is prepended to the local matches. Remote failures degrade to the
// local matches, and the degraded set is cached too - a transient outage is
// deliberately sticky for the TTL window rather than hammering a failing
// upstream on every keystroke.
func (g *Gateway) SearchAirports(ctx context.Context, query string) ([]domain.Airport, error) {
	if len(query) < g.minQueryLength {
		return []domain.Airport{}, nil
	}

	key := cache.Key(query)
	if cached, ok := g.cache.Get(key); ok {
		g.log.Debug().Str("query", query).Msg("airport search served from cache")
		return cached, nil
	}

	localMatches := g.directory.Match(query)

	if g.airports == nil || g.preferLocal || len(localMatches) >= g.localMatchThreshold {
		g.cache.Put(key, localMatches)
		return localMatches, nil
	}

	remote, err := g.airports.SearchAirports(ctx, query)
	if err != nil {
		g.log.Warn().Err(err).Str("query", query).Msg("remote airport lookup failed, degrading to local matches")
		g.cache.Put(key, localMatches)
		return localMatches, nil
	}

	combined := make([]domain.Airport, 0, len(remote)+len(localMatches))
	combined = append(combined, remote...)
	combined = append(combined, localMatches...)

	g.cache.Put(key, combined)
	return combined, nil
}

// NearbyAirports resolves airports close to a coordinate pair. There is no
// local equivalent of this lookup, so failures yield an empty list.
func (g *Gateway) NearbyAirports(ctx context.Context, lat, lng float64) ([]domain.Airport, error) {
	if g.airports == nil {
		return []domain.Airport{}, nil
	}

	airports, err := g.airports.NearbyAirports(ctx, lat, lng)
	if err != nil {
		g.log.Warn().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("nearby airport lookup failed")
		return []domain.Airport{}, nil
	}
	return airports, nil
}

// SearchFlights retrieves, filters, and ranks flight offers.
//
// Validation errors surface synchronously before any retrieval starts.
// A recoverable primary failure (transport or schema) degrades to the
// fallback source with the same criteria; no retry is attempted against the
// primary. Each call makes at most one remote request.
func (g *Gateway) SearchFlights(ctx context.Context, criteria domain.SearchCriteria, filters *domain.FilterOptions) (*domain.SearchResult, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	source := g.flights.Name()
	degraded := false

	offers, err := g.flights.Search(ctx, criteria)
	if err != nil {
		if g.fallback == nil || !domain.IsRecoverable(err) {
			return nil, err
		}

		g.log.Warn().Err(err).
			Str("origin", criteria.OriginCode).
			Str("destination", criteria.DestinationCode).
			Msg("primary flight source failed, degrading to fallback")

		offers, err = g.fallback.Search(ctx, criteria)
		if err != nil {
			return nil, err
		}
		source = g.fallback.Name()
		degraded = true
	}

	filtered := ApplyFilters(offers, filters)
	ranked := Rank(filtered, criteria.SortBy)

	return &domain.SearchResult{
		Offers: ranked,
		Metadata: domain.SearchMetadata{
			TotalResults:  len(ranked),
			Source:        source,
			Degraded:      degraded,
			SearchTimeMs:  time.Since(start).Milliseconds(),
			CheapestPrice: CheapestPrice(ranked),
		},
	}, nil
}
