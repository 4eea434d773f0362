package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-lookup/flight-lookup-service/internal/adapter/http/response"
	"github.com/flight-lookup/flight-lookup-service/internal/domain"
	"github.com/flight-lookup/flight-lookup-service/internal/usecase"
)

// queryParam is the key that switches GET /flights to a track lookup.
const queryParam = "query"

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightLookupUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightLookupUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// LookupFlights handles GET /flights and GET /api/flights
//
// @Summary Look up flights
// @Description Search flights by departure, arrival, date and flight number, or track one flight with the query parameter.
// @Description When query is present the response is an array of zero or one flight.
// @Tags flights
// @Produce json
// @Param departure query string false "Departure airport IATA code" example(JFK)
// @Param arrival query string false "Arrival airport IATA code" example(LAX)
// @Param date query string false "Flight date (YYYY-MM-DD)" example(2024-05-01)
// @Param flightNumber query string false "IATA flight number" example(UA1)
// @Param flightIata query string false "Alias of flightNumber"
// @Param status query string false "Flight status filter" Enums(scheduled, active, landed, cancelled, incident, diverted)
// @Param query query string false "Flight number to track"
// @Success 200 {object} SwaggerSearchResponse "Search results"
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Flight not found"
// @Failure 500 {object} response.ErrorDetail "Configuration or upstream error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /flights [get]
func (h *FlightHandler) LookupFlights(c echo.Context) error {
	var req LookupFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Failed to parse query parameters")
	}
	req.IsTrack = c.QueryParams().Has(queryParam)
	req.Normalize()

	criteria := ToLookupCriteria(&req)

	// An empty track query is answered by the use case with an empty list.
	if !req.IsTrack {
		if err := criteria.Validate(); err != nil {
			return h.handleValidationError(c, err)
		}
	}

	result, err := h.useCase.Lookup(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	if req.IsTrack {
		return response.Cacheable(c, response.DefaultMaxAge, ToTrackResponse(result))
	}
	return response.Cacheable(c, response.DefaultMaxAge, ToSearchResponse(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrMissingSearchFilter) {
		return response.MissingSearchParameter(c)
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
// Only the inbound request's own deadline or cancellation yields 504; an upstream
// timeout is a transport failure and yields 500.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch ctxErr := c.Request().Context().Err(); {
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(ctxErr, context.Canceled):
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrFlightNotFound) {
		return response.NotFound(c)
	}

	var cfgErr *domain.ConfigurationError
	if errors.As(err, &cfgErr) {
		return response.ConfigurationError(c, cfgErr.Error())
	}

	// Upstream and transport failures surface their own message, never the request URL.
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		return response.UpstreamError(c, upErr.Error())
	}
	var trErr *domain.TransportError
	if errors.As(err, &trErr) {
		return response.UpstreamError(c, trErr.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
