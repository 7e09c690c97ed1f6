// Package mock provides hand-built test doubles for the retrieval gateway's
// sources, plus canned domain fixtures.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// AirportSource is a configurable test double for the remote airport source.
type AirportSource struct {
	mu       sync.Mutex
	airports []domain.Airport
	err      error
	calls    int
}

// NewAirportSource creates an AirportSource that returns no airports.
func NewAirportSource() *AirportSource {
	return &AirportSource{}
}

// WithAirports sets the airports every lookup returns.
func (m *AirportSource) WithAirports(airports ...domain.Airport) *AirportSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.airports = airports
	return m
}

// WithError makes every lookup fail with err.
func (m *AirportSource) WithError(err error) *AirportSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *AirportSource) SearchAirports(_ context.Context, _ string) ([]domain.Airport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.airports, nil
}

func (m *AirportSource) NearbyAirports(_ context.Context, _, _ float64) ([]domain.Airport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.airports, nil
}

// Calls reports how many lookups were made.
func (m *AirportSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// FlightSource is a configurable test double for a flight source.
type FlightSource struct {
	mu     sync.Mutex
	name   string
	offers []domain.FlightOffer
	err    error
	calls  int
}

// NewFlightSource creates a FlightSource with the given source name.
func NewFlightSource(name string) *FlightSource {
	return &FlightSource{name: name}
}

// WithOffers sets the offers every search returns.
func (m *FlightSource) WithOffers(offers ...domain.FlightOffer) *FlightSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers = offers
	return m
}

// WithError makes every search fail with err.
func (m *FlightSource) WithError(err error) *FlightSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

func (m *FlightSource) Search(_ context.Context, _ domain.SearchCriteria) ([]domain.FlightOffer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.offers, nil
}

func (m *FlightSource) Name() string {
	return m.name
}

// Calls reports how many searches were made.
func (m *FlightSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// SampleOffer builds a direct KHI-DXB offer with the given id and price.
func SampleOffer(id string, price float64) domain.FlightOffer {
	departure := time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(135 * time.Minute)

	return domain.FlightOffer{
		ID: id,
		Segments: []domain.Segment{
			{
				Departure: domain.SegmentPoint{
					Airport: domain.AirportRef{Code: "KHI", Name: "Jinnah International Airport"},
					Time:    departure,
				},
				Arrival: domain.SegmentPoint{
					Airport: domain.AirportRef{Code: "DXB", Name: "Dubai International Airport"},
					Time:    arrival,
				},
				Duration:     domain.DurationFromMinutes(135),
				Carrier:      domain.Carrier{Name: "Emirates", Code: "EK"},
				FlightNumber: "EK601",
			},
		},
		TotalDuration: domain.DurationFromMinutes(135),
		Price:         domain.Price{Amount: price, Currency: "USD"},
		Stops:         0,
		CabinClass:    "economy",
	}
}

// SampleOffers builds a small offer set with distinct prices.
func SampleOffers() []domain.FlightOffer {
	return []domain.FlightOffer{
		SampleOffer("offer-mid", 650),
		SampleOffer("offer-cheap", 410),
		SampleOffer("offer-expensive", 980),
	}
}
