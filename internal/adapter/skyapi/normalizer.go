package skyapi

import (
	"time"

	"github.com/skysearch/flight-search-gateway/internal/domain"
)

// normalizeAirports converts remote airport records to domain Airports,
// defaulting every field defensively. Records with no usable code under any
// of the known field names are dropped rather than emitted with an empty
// identifier.
func normalizeAirports(records []airportRecord) []domain.Airport {
	airports := make([]domain.Airport, 0, len(records))
	for _, r := range records {
		a, ok := normalizeAirport(r)
		if !ok {
			continue
		}
		airports = append(airports, a)
	}
	return airports
}

// normalizeAirport maps one record through the fallback chains:
// code: skyId -> iata -> code; name: presentation.title -> name;
// city: presentation.subtitle -> city; entityId: navigation params -> code.
func normalizeAirport(r airportRecord) (domain.Airport, bool) {
	code := firstNonEmpty(r.SkyID, r.IATA, r.Code)
	if code == "" {
		return domain.Airport{}, false
	}

	name := r.Name
	city := r.City
	if r.Presentation != nil {
		name = firstNonEmpty(r.Presentation.Title, name)
		city = firstNonEmpty(r.Presentation.Subtitle, city)
	}

	country := r.Country
	entityID := ""
	if r.Navigation != nil {
		country = firstNonEmpty(r.Navigation.EntityType, country)
		if r.Navigation.RelevantFlightParams != nil {
			entityID = r.Navigation.RelevantFlightParams.EntityID
		}
	}
	if country == "" {
		country = "Unknown"
	}
	entityID = firstNonEmpty(entityID, r.SkyID, code)

	a := domain.Airport{
		Code:        code,
		Name:        name,
		City:        city,
		Country:     country,
		EntityID:    entityID,
		DisplayCode: code,
	}
	if r.Coordinates != nil {
		a.Lat = r.Coordinates.Lat
		a.Lng = r.Coordinates.Lng
	}
	return a, true
}

// normalizeOffers converts remote offer records to domain FlightOffers.
// Offers whose segment times cannot be parsed are skipped; the gateway
// treats a fully-empty result the same as any other valid response.
func normalizeOffers(records []offerRecord) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, len(records))
	for _, r := range records {
		o, ok := normalizeOffer(r)
		if !ok {
			continue
		}
		offers = append(offers, o)
	}
	return offers
}

func normalizeOffer(r offerRecord) (domain.FlightOffer, bool) {
	if len(r.Segments) == 0 {
		return domain.FlightOffer{}, false
	}

	segments := make([]domain.Segment, 0, len(r.Segments))
	for _, sr := range r.Segments {
		s, ok := normalizeSegment(sr)
		if !ok {
			return domain.FlightOffer{}, false
		}
		segments = append(segments, s)
	}

	// The stops field is trusted when present but derived from the segment
	// count otherwise, keeping the stops == segments-1 invariant.
	stops := len(segments) - 1
	if r.Stops != nil {
		stops = *r.Stops
	}

	cabin := r.CabinClass
	if cabin == "" {
		cabin = "economy"
	}

	offer := domain.FlightOffer{
		ID:       r.ID,
		Segments: segments,
		TotalDuration: domain.Duration{
			Hours:   r.TotalDuration.Hours,
			Minutes: r.TotalDuration.Minutes,
		},
		Price: domain.Price{
			Amount:   r.Price.Amount,
			Currency: firstNonEmpty(r.Price.Currency, "USD"),
		},
		Stops:      stops,
		CabinClass: cabin,
	}
	if r.Aircraft != nil {
		offer.Aircraft = r.Aircraft.Model
	}
	if r.BookingAgency != nil {
		offer.BookingAgency = &domain.Agency{Name: r.BookingAgency.Name, Logo: r.BookingAgency.Logo}
	}
	if r.Emissions != nil {
		offer.Emissions = &domain.Emissions{Amount: r.Emissions.Amount, Unit: r.Emissions.Unit}
	}
	return offer, true
}

func normalizeSegment(sr segmentRecord) (domain.Segment, bool) {
	departure, err := parseTime(sr.Departure.Time)
	if err != nil {
		return domain.Segment{}, false
	}
	arrival, err := parseTime(sr.Arrival.Time)
	if err != nil {
		return domain.Segment{}, false
	}

	s := domain.Segment{
		Departure: domain.SegmentPoint{
			Airport: domain.AirportRef{Code: sr.Departure.Airport.Code, Name: sr.Departure.Airport.Name},
			Time:    departure,
		},
		Arrival: domain.SegmentPoint{
			Airport: domain.AirportRef{Code: sr.Arrival.Airport.Code, Name: sr.Arrival.Airport.Name},
			Time:    arrival,
		},
		Duration: domain.Duration{Hours: sr.Duration.Hours, Minutes: sr.Duration.Minutes},
		Carrier: domain.Carrier{
			Name: sr.Carrier.Name,
			Code: sr.Carrier.Code,
			Logo: sr.Carrier.Logo,
		},
		FlightNumber: sr.FlightNumber,
	}
	if sr.Aircraft != nil {
		s.Aircraft = sr.Aircraft.Model
	}
	return s, true
}

// parseTime accepts RFC3339 first, then the timezone-less variant some
// upstream responses use.
func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// firstNonEmpty returns the first non-empty string in values.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
