// Package http provides the HTTP handler layer for the flight lookup API.
// It handles request parsing, response formatting, and error mapping.
// Criteria validation belongs to the domain package.
package http

import (
	"strings"
)

// LookupFlightsRequest holds the query parameters of GET /flights.
// When the query key is present the request is a track lookup and the other fields are ignored.
type LookupFlightsRequest struct {
	// Departure is the IATA code of the departure airport (e.g., "JFK")
	Departure string `query:"departure"`

	// Arrival is the IATA code of the arrival airport (e.g., "LAX")
	Arrival string `query:"arrival"`

	// Date is the flight date in YYYY-MM-DD format
	Date string `query:"date"`

	// FlightNumber is the IATA flight designator (e.g., "UA1")
	FlightNumber string `query:"flightNumber"`

	// FlightIATA is an alias of FlightNumber
	FlightIATA string `query:"flightIata"`

	// Status restricts results to one flight status (optional)
	Status string `query:"status"`

	// Query is the flight number of a track lookup
	Query string `query:"query"`

	// IsTrack is set by the handler when the query key is present, even if empty
	IsTrack bool
}

// Normalize trims values, upper-cases codes and resolves the flightIata alias.
func (r *LookupFlightsRequest) Normalize() {
	r.Departure = strings.ToUpper(strings.TrimSpace(r.Departure))
	r.Arrival = strings.ToUpper(strings.TrimSpace(r.Arrival))
	r.Date = strings.TrimSpace(r.Date)
	r.FlightNumber = strings.ToUpper(strings.TrimSpace(r.FlightNumber))
	r.FlightIATA = strings.ToUpper(strings.TrimSpace(r.FlightIATA))
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Query = strings.ToUpper(strings.TrimSpace(r.Query))

	if r.FlightNumber == "" {
		r.FlightNumber = r.FlightIATA
	}
}
