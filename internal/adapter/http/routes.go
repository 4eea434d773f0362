package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the flight lookup API routes.
// /flights and /api/flights are served by the same handler.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with lookup-specific middleware.
// The health check is registered without it.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	e.GET("/flights", h.LookupFlights, middleware...)

	api := e.Group("/api", middleware...)
	api.GET("/flights", h.LookupFlights)
}
