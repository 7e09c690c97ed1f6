// Package domain contains the core business entities and rules for the flight
// search gateway. These entities are source-agnostic: offers look the same
// whether they came from the remote API or the synthetic generator.
package domain

import "time"

// FlightOffer is a single bookable itinerary returned by a flight search.
// Offers are produced once per search and are immutable thereafter.
type FlightOffer struct {
	// ID uniquely identifies this offer within a result set
	ID string `json:"id"`

	// Segments is the ordered, non-empty sequence of flight legs
	Segments []Segment `json:"segments"`

	// TotalDuration is the door-to-door duration including layovers.
	// It is trusted as given by the producing source, never re-derived.
	TotalDuration Duration `json:"totalDuration"`

	// Price is the total price for the itinerary
	Price Price `json:"price"`

	// Stops is the number of intermediate stops (len(Segments) - 1)
	Stops int `json:"stops"`

	// CabinClass is the booked cabin (economy, premium_economy, business, first)
	CabinClass string `json:"cabinClass"`

	// Aircraft is the aircraft model, when known
	Aircraft string `json:"aircraft,omitempty"`

	// BookingAgency is the agency selling this offer, when known
	BookingAgency *Agency `json:"bookingAgency,omitempty"`

	// Emissions is the estimated CO2 output for the itinerary, when known
	Emissions *Emissions `json:"emissions,omitempty"`
}

// Segment is one flight leg of an offer.
type Segment struct {
	// Departure and Arrival describe the endpoints of this leg
	Departure SegmentPoint `json:"departure"`
	Arrival   SegmentPoint `json:"arrival"`

	// Duration is the in-air duration of this leg
	Duration Duration `json:"duration"`

	// Carrier is the operating airline
	Carrier Carrier `json:"carrier"`

	// FlightNumber is the airline's flight number (e.g., "EK612")
	FlightNumber string `json:"flightNumber"`

	// Aircraft is the aircraft model for this leg, when known
	Aircraft string `json:"aircraft,omitempty"`
}

// SegmentPoint is a departure or arrival point of a segment.
type SegmentPoint struct {
	// Airport identifies the endpoint airport
	Airport AirportRef `json:"airport"`

	// Time is the scheduled local departure or arrival time
	Time time.Time `json:"time"`
}

// AirportRef is the minimal airport reference carried on a segment.
type AirportRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Carrier describes an operating airline.
type Carrier struct {
	Name string `json:"name"`
	Code string `json:"code"`
	Logo string `json:"logo,omitempty"`
}

// Duration is an hours/minutes pair as delivered by flight sources.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// TotalMinutes returns the duration as a flat minute count.
func (d Duration) TotalMinutes() int {
	return d.Hours*60 + d.Minutes
}

// DurationFromMinutes builds a Duration from a flat minute count.
func DurationFromMinutes(minutes int) Duration {
	return Duration{Hours: minutes / 60, Minutes: minutes % 60}
}

// Price is a monetary amount with its ISO 4217 currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Agency is the booking agency selling an offer.
type Agency struct {
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

// Emissions is an estimated CO2 output for an itinerary.
type Emissions struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}
