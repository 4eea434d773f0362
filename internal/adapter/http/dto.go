package http

import "github.com/flight-lookup/flight-lookup-service/internal/domain"

// SearchResponseDTO is the body of a successful search.
type SearchResponseDTO struct {
	Success bool                   `json:"success"`
	Flights []domain.DisplayFlight `json:"flights"`
	Count   int                    `json:"count"`
}

// TrackResponseDTO is the body of a successful track lookup: a list of zero or one flight.
type TrackResponseDTO []domain.DisplayFlight
