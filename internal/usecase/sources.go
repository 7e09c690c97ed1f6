package usecase

import (
	"context"
	"time"

	"github.com/skysearch/flight-search-gateway/internal/adapter/synthetic"
	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// AirportSource is a remote provider of airport suggestions. The skyapi
// client is the production implementation; tests substitute doubles.
type AirportSource interface {
	// SearchAirports looks up airports matching a free-text query.
	SearchAirports(ctx context.Context, query string) ([]domain.Airport, error)

	// NearbyAirports looks up airports close to a coordinate pair.
	NearbyAirports(ctx context.Context, lat, lng float64) ([]domain.Airport, error)
}

// FlightSource produces flight offers for a set of search criteria. The two
// production variants are the remote skyapi client and SyntheticSource;
// which one serves as the primary is a configuration decision made at
// startup, not buried in the retrieval path.
type FlightSource interface {
	// Search returns offers for the criteria. Implementations must respect
	// context cancellation and perform at most one remote attempt.
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error)

	// Name identifies the source in logs and response metadata.
	Name() string
}

// SyntheticSource serves generated offers with an artificial latency so the
// loading experience matches a remote round-trip. It never fails except on
// context cancellation.
type SyntheticSource struct {
	synthesizer *synthetic.Synthesizer
	latency     time.Duration
}

// NewSyntheticSource creates a SyntheticSource. A zero latency disables the
// artificial delay.
func NewSyntheticSource(synthesizer *synthetic.Synthesizer, latency time.Duration) *SyntheticSource {
	return &SyntheticSource{
		synthesizer: synthesizer,
		latency:     latency,
	}
}

// Search implements FlightSource.
func (s *SyntheticSource) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.FlightOffer, error) {
	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.latency):
		}
	}
	return s.synthesizer.Synthesize(criteria.OriginCode, criteria.DestinationCode, criteria.Date), nil
}

// Name implements FlightSource.
func (s *SyntheticSource) Name() string {
	return "synthetic"
}

var _ FlightSource = (*SyntheticSource)(nil)
