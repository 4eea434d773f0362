package domain

import (
	"fmt"
	"strings"
)

// LookupMode selects how a LookupCriteria is resolved.
type LookupMode string

const (
	// ModeSearch matches any combination of departure, arrival, date and flight number.
	ModeSearch LookupMode = "search"

	// ModeTrack resolves an exact flight number to at most one flight.
	ModeTrack LookupMode = "track"
)

// Result limits sent upstream.
const (
	DefaultSearchLimit = 20
	TrackLimit         = 1
)

// LookupCriteria holds the optional filters of a flight lookup.
// Empty strings mean "not set"; the upstream client omits them from the request.
type LookupCriteria struct {
	// Mode selects search or track semantics
	Mode LookupMode `json:"mode"`

	// Departure is the IATA code of the departure airport (e.g., "JFK")
	Departure string `json:"departure,omitempty"`

	// Arrival is the IATA code of the arrival airport (e.g., "LAX")
	Arrival string `json:"arrival,omitempty"`

	// Date is the flight date in YYYY-MM-DD format
	Date string `json:"date,omitempty"`

	// FlightNumber is the IATA flight designator (e.g., "UA1")
	FlightNumber string `json:"flightNumber,omitempty"`

	// Status restricts results to one flight status
	Status string `json:"status,omitempty"`

	// Limit caps the number of upstream results; zero means the upstream default
	Limit int `json:"limit,omitempty"`
}

// ErrMissingSearchFilter is returned for a search without departure, arrival, date or flight number.
// It matches ErrInvalidRequest.
var ErrMissingSearchFilter = fmt.Errorf("%w: at least one search parameter is required", ErrInvalidRequest)

// NewSearchCriteria builds search-mode criteria with the fixed result cap.
func NewSearchCriteria(departure, arrival, date, flightNumber string) LookupCriteria {
	return LookupCriteria{
		Mode:         ModeSearch,
		Departure:    departure,
		Arrival:      arrival,
		Date:         date,
		FlightNumber: flightNumber,
		Limit:        DefaultSearchLimit,
	}
}

// NewTrackCriteria builds track-mode criteria for a single flight number.
func NewTrackCriteria(flightNumber string) LookupCriteria {
	return LookupCriteria{
		Mode:         ModeTrack,
		FlightNumber: flightNumber,
		Limit:        TrackLimit,
	}
}

// Normalize trims whitespace and upper-cases codes in place.
func (c *LookupCriteria) Normalize() {
	c.Departure = strings.ToUpper(strings.TrimSpace(c.Departure))
	c.Arrival = strings.ToUpper(strings.TrimSpace(c.Arrival))
	c.Date = strings.TrimSpace(c.Date)
	c.FlightNumber = strings.ToUpper(strings.TrimSpace(c.FlightNumber))
	c.Status = strings.ToLower(strings.TrimSpace(c.Status))
}

// HasSearchFilter reports whether at least one of departure, arrival, date or flight number is set.
func (c *LookupCriteria) HasSearchFilter() bool {
	return c.Departure != "" || c.Arrival != "" || c.Date != "" || c.FlightNumber != ""
}

// Validate checks the criteria for its mode.
// Filter values are not format-checked; the upstream API decides what matches.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (c *LookupCriteria) Validate() error {
	switch c.Mode {
	case ModeSearch:
		if !c.HasSearchFilter() {
			return ErrMissingSearchFilter
		}
	case ModeTrack:
		if c.FlightNumber == "" {
			return fmt.Errorf("%w: flight number is required", ErrInvalidRequest)
		}
	default:
		return fmt.Errorf("%w: unknown lookup mode %q", ErrInvalidRequest, c.Mode)
	}

	if c.Limit < 0 {
		return fmt.Errorf("%w: limit cannot be negative", ErrInvalidRequest)
	}

	return nil
}
