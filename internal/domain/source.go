package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// FlightSource is a flight-data backend the lookup service queries.
// Implementations must be safe for concurrent use.
type FlightSource interface {
	// Name returns the backend identifier used in logs and metrics.
	Name() string

	// Search returns the records matching the criteria in upstream order.
	// A response without matches yields an empty slice and a nil error.
	Search(ctx context.Context, criteria LookupCriteria) ([]RawFlight, error)

	// GetByFlightNumber returns the first record for the flight number, or nil if there is none.
	GetByFlightNumber(ctx context.Context, flightNumber string) (*RawFlight, error)
}
