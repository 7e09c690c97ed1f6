package skyapi

// Wire types for the Sky-Scrapper style API. The upstream schema is not
// contractually guaranteed, so every field is optional here and defaulted
// during normalization.

// airportEnvelope wraps the airport search response payload.
type airportEnvelope struct {
	Data []airportRecord `json:"data"`
}

// airportRecord is one airport suggestion as delivered by the remote.
// Identifiers appear under several historical field names; normalization
// applies the skyId -> iata -> code fallback chain.
type airportRecord struct {
	SkyID        string               `json:"skyId"`
	IATA         string               `json:"iata"`
	Code         string               `json:"code"`
	Name         string               `json:"name"`
	City         string               `json:"city"`
	Country      string               `json:"country"`
	Presentation *airportPresentation `json:"presentation"`
	Navigation   *airportNavigation   `json:"navigation"`
	Coordinates  *coordinates         `json:"coordinates"`
}

type airportPresentation struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type airportNavigation struct {
	EntityType           string        `json:"entityType"`
	LocalizedName        string        `json:"localizedName"`
	RelevantFlightParams *flightParams `json:"relevantFlightParams"`
}

type flightParams struct {
	EntityID string `json:"entityId"`
	SkyID    string `json:"skyId"`
}

type coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// flightEnvelope wraps the flight search response payload. A response is
// structurally valid only when data.flights is present and is a sequence.
type flightEnvelope struct {
	Data *flightData `json:"data"`
}

type flightData struct {
	Flights []offerRecord `json:"flights"`
}

// offerRecord is one flight offer on the wire.
type offerRecord struct {
	ID            string          `json:"id"`
	Price         priceRecord     `json:"price"`
	Segments      []segmentRecord `json:"segments"`
	TotalDuration durationRecord  `json:"totalDuration"`
	Stops         *int            `json:"stops"`
	CabinClass    string          `json:"cabinClass"`
	Aircraft      *aircraftRecord `json:"aircraft"`
	BookingAgency *agencyRecord   `json:"bookingAgency"`
	Emissions     *emissionRecord `json:"emissions"`
}

type segmentRecord struct {
	Departure    pointRecord     `json:"departure"`
	Arrival      pointRecord     `json:"arrival"`
	Duration     durationRecord  `json:"duration"`
	Carrier      carrierRecord   `json:"carrier"`
	FlightNumber string          `json:"flightNumber"`
	Aircraft     *aircraftRecord `json:"aircraft"`
}

type pointRecord struct {
	Airport airportRefRecord `json:"airport"`
	Time    string           `json:"time"`
}

type airportRefRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type durationRecord struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type priceRecord struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type carrierRecord struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Logo string `json:"logo"`
}

type aircraftRecord struct {
	Model string `json:"model"`
}

type agencyRecord struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type emissionRecord struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
