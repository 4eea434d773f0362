// Package mock provides test doubles for the flight lookup service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/flight-lookup/flight-lookup-service/internal/domain"
)

// Source is a configurable mock implementation of domain.FlightSource.
type Source struct {
	name      string
	flights   []domain.RawFlight
	err       error
	delay     time.Duration
	callCount int
	criteria  []domain.LookupCriteria
	mu        sync.Mutex
}

// NewSource creates a new mock source with the given name.
// The source is configured using the builder pattern methods.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithFlights configures the source to return the given records.
func (s *Source) WithFlights(flights []domain.RawFlight) *Source {
	s.flights = flights
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name returns the source identifier.
func (s *Source) Name() string {
	return s.name
}

// Search returns the configured records, honoring Limit like the upstream API does.
func (s *Source) Search(ctx context.Context, criteria domain.LookupCriteria) ([]domain.RawFlight, error) {
	s.record(criteria)

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	flights := s.flights
	if criteria.Limit > 0 && len(flights) > criteria.Limit {
		flights = flights[:criteria.Limit]
	}
	return append([]domain.RawFlight{}, flights...), nil
}

// GetByFlightNumber returns the first configured record whose designator matches, or nil.
func (s *Source) GetByFlightNumber(ctx context.Context, flightNumber string) (*domain.RawFlight, error) {
	s.record(domain.NewTrackCriteria(flightNumber))

	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}

	for i := range s.flights {
		if s.flights[i].Flight.IATA == flightNumber {
			f := s.flights[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (s *Source) record(criteria domain.LookupCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount++
	s.criteria = append(s.criteria, criteria)
}

func (s *Source) wait(ctx context.Context) error {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return ctx.Err()
}

// CallCount returns the number of upstream calls made.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// LastCriteria returns the criteria of the most recent call.
func (s *Source) LastCriteria() (domain.LookupCriteria, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.criteria) == 0 {
		return domain.LookupCriteria{}, false
	}
	return s.criteria[len(s.criteria)-1], true
}

// Reset clears recorded calls.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
	s.criteria = nil
}

var _ domain.FlightSource = (*Source)(nil)

// SampleFlights returns count JFK to LAX records, two hours apart, with designators UA1, UA2, ...
func SampleFlights(count int) []domain.RawFlight {
	flights := make([]domain.RawFlight, count)

	baseTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		departure := baseTime.Add(time.Duration(i*2) * time.Hour)
		arrival := departure.Add(6*time.Hour + 30*time.Minute)
		number := strconv.Itoa(i + 1)

		flights[i] = domain.RawFlight{
			FlightDate:   "2024-05-01",
			FlightStatus: domain.StatusScheduled,
			Departure: domain.RawEndpoint{
				Airport:   "John F Kennedy International",
				Timezone:  "America/New_York",
				IATA:      "JFK",
				ICAO:      "KJFK",
				Scheduled: departure.Format(time.RFC3339),
			},
			Arrival: domain.RawEndpoint{
				Airport:   "Los Angeles International",
				Timezone:  "America/Los_Angeles",
				IATA:      "LAX",
				ICAO:      "KLAX",
				Scheduled: arrival.Format(time.RFC3339),
			},
			Airline: domain.RawAirline{
				Name: "United Airlines",
				IATA: "UA",
				ICAO: "UAL",
			},
			Flight: domain.RawFlightIdentity{
				Number: number,
				IATA:   "UA" + number,
				ICAO:   "UAL" + number,
			},
		}
	}

	return flights
}
