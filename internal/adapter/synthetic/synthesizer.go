// Package synthetic generates structurally valid, randomized flight offers.
// It backs the gateway's fallback path: whenever the remote API is disabled,
// unreachable, or returns a malformed payload, the UI still gets a renderable
// result set. Values are random, the shape is not: every generated offer
// holds the stops/segments and departure/arrival invariants.
package synthetic

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// BatchSize is the fixed number of offers produced per search.
const BatchSize = 8

// hubCode is the stopover airport for one-stop itineraries.
const hubCode = "DXB"

// layoverMinutes is the fixed layover at the hub.
const layoverMinutes = 90

// carrierRoster is the fixed set of airlines offers are drawn from.
var carrierRoster = []domain.Carrier{
	{Name: "Emirates", Code: "EK", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Emirates-Logo.png"},
	{Name: "Qatar Airways", Code: "QR", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Qatar-Airways-Logo.png"},
	{Name: "Singapore Airlines", Code: "SQ", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Singapore-Airlines-Logo.png"},
	{Name: "British Airways", Code: "BA", Logo: "https://logos-world.net/wp-content/uploads/2020/03/British-Airways-Logo.png"},
	{Name: "Lufthansa", Code: "LH", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Lufthansa-Logo.png"},
	{Name: "Turkish Airlines", Code: "TK", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Turkish-Airlines-Logo.png"},
	{Name: "Air France", Code: "AF", Logo: "https://logos-world.net/wp-content/uploads/2020/03/Air-France-Logo.png"},
	{Name: "KLM", Code: "KL", Logo: "https://logos-world.net/wp-content/uploads/2020/03/KLM-Logo.png"},
}

// aircraftModels is the pool aircraft fields are drawn from.
var aircraftModels = []string{
	"Boeing 777-300ER",
	"Airbus A380-800",
	"Boeing 787-9",
	"Airbus A350-900",
	"Boeing 777-200LR",
	"Airbus A330-300",
	"Boeing 767-300ER",
	"Airbus A321neo",
}

// Synthesizer produces randomized flight offer sets for a route and date.
// It consults the airport directory for display names so synthetic results
// look like real ones.
type Synthesizer struct {
	directory *directory.Directory
}

// New creates a Synthesizer backed by the given airport directory.
func New(dir *directory.Directory) *Synthesizer {
	if dir == nil {
		dir = directory.New()
	}
	return &Synthesizer{directory: dir}
}

// Synthesize returns exactly BatchSize offers for the route, sorted ascending
// by price. Roughly 70% are direct and 30% route through the hub with a fixed
// layover. Reproducibility across calls is not a goal; structural validity is.
func (s *Synthesizer) Synthesize(originCode, destinationCode, date string) []domain.FlightOffer {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		day = time.Now().Truncate(24 * time.Hour)
	}

	origin := s.airportRef(originCode)
	destination := s.airportRef(destinationCode)

	offers := make([]domain.FlightOffer, 0, BatchSize)
	for i := 0; i < BatchSize; i++ {
		carrier := carrierRoster[i%len(carrierRoster)]
		direct := rand.Float64() > 0.3

		// One-stop itineraries need room for two legs plus the layover,
		// so they draw from a longer duration range.
		var totalMinutes int
		if direct {
			totalMinutes = 120 + rand.Intn(12*60)
		} else {
			totalMinutes = 6*60 + rand.Intn(8*60)
		}

		departure := day.Add(time.Duration(6+rand.Intn(16)) * time.Hour).
			Add(time.Duration(rand.Intn(60)) * time.Minute)
		arrival := departure.Add(time.Duration(totalMinutes) * time.Minute)

		var segments []domain.Segment
		if direct {
			segments = []domain.Segment{
				s.segment(origin, destination, departure, arrival, carrier),
			}
		} else {
			segments = s.oneStopSegments(origin, destination, departure, totalMinutes, carrier)
		}

		offers = append(offers, domain.FlightOffer{
			ID:            uuid.NewString(),
			Segments:      segments,
			TotalDuration: domain.DurationFromMinutes(totalMinutes),
			Price: domain.Price{
				Amount:   float64(300 + rand.Intn(1200)),
				Currency: "USD",
			},
			Stops:      len(segments) - 1,
			CabinClass: "economy",
			Aircraft:   aircraftModels[rand.Intn(len(aircraftModels))],
			BookingAgency: &domain.Agency{
				Name: "Expedia",
				Logo: "https://via.placeholder.com/20x20?text=E",
			},
			Emissions: &domain.Emissions{
				Amount: float64(180 + rand.Intn(120)),
				Unit:   "kg",
			},
		})
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price.Amount < offers[j].Price.Amount
	})
	return offers
}

// oneStopSegments splits an itinerary into two legs through the hub with a
// fixed layover between them. Leg durations sum with the layover to the
// offer's total duration.
func (s *Synthesizer) oneStopSegments(origin, destination domain.AirportRef, departure time.Time, totalMinutes int, carrier domain.Carrier) []domain.Segment {
	hub := s.airportRef(hubCode)

	firstLeg := (totalMinutes - layoverMinutes) * 6 / 10
	secondLeg := totalMinutes - layoverMinutes - firstLeg

	hubArrival := departure.Add(time.Duration(firstLeg) * time.Minute)
	hubDeparture := hubArrival.Add(layoverMinutes * time.Minute)
	arrival := hubDeparture.Add(time.Duration(secondLeg) * time.Minute)

	return []domain.Segment{
		s.segment(origin, hub, departure, hubArrival, carrier),
		s.segment(hub, destination, hubDeparture, arrival, carrier),
	}
}

// segment builds a single leg with a random flight number and aircraft.
func (s *Synthesizer) segment(from, to domain.AirportRef, departure, arrival time.Time, carrier domain.Carrier) domain.Segment {
	return domain.Segment{
		Departure: domain.SegmentPoint{Airport: from, Time: departure},
		Arrival:   domain.SegmentPoint{Airport: to, Time: arrival},
		Duration:  domain.DurationFromMinutes(int(arrival.Sub(departure).Minutes())),
		Carrier:   carrier,
		FlightNumber: fmt.Sprintf("%s%d",
			carrier.Code, 100+rand.Intn(900)),
		Aircraft: aircraftModels[rand.Intn(len(aircraftModels))],
	}
}

// airportRef resolves a code against the directory, falling back to a
// placeholder name for codes outside the static table.
func (s *Synthesizer) airportRef(code string) domain.AirportRef {
	if a, ok := s.directory.Lookup(code); ok {
		return domain.AirportRef{Code: a.Code, Name: a.Name}
	}
	return domain.AirportRef{Code: code, Name: code + " Airport"}
}
