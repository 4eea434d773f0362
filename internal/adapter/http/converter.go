package http

import (
	"github.com/flight-lookup/flight-lookup-service/internal/domain"
)

// ToLookupCriteria converts a normalized request to domain.LookupCriteria.
func ToLookupCriteria(req *LookupFlightsRequest) domain.LookupCriteria {
	if req.IsTrack {
		return domain.NewTrackCriteria(req.Query)
	}

	criteria := domain.NewSearchCriteria(req.Departure, req.Arrival, req.Date, req.FlightNumber)
	criteria.Status = req.Status
	return criteria
}

// ToSearchResponse converts a search result to its response DTO.
func ToSearchResponse(result *domain.LookupResult) SearchResponseDTO {
	flights := []domain.DisplayFlight{}
	if result != nil && result.Flights != nil {
		flights = result.Flights
	}
	return SearchResponseDTO{
		Success: true,
		Flights: flights,
		Count:   len(flights),
	}
}

// ToTrackResponse converts a track result to its response DTO.
func ToTrackResponse(result *domain.LookupResult) TrackResponseDTO {
	if result.IsEmpty() {
		return TrackResponseDTO{}
	}
	return TrackResponseDTO{*result.First()}
}
