// Package response provides standardized HTTP response builders for the flight lookup API.
// Every error body has the shape {"error": message, "code": code}.
package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the JSON body of every error response.
type ErrorDetail struct {
	// Error is a human-readable error message
	Error string `json:"error"`

	// Code is a machine-readable error code
	Code string `json:"code"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeValidationError    = "validation_error"
	CodeNotFound           = "not_found"
	CodeConfigurationError = "configuration_error"
	CodeUpstreamError      = "upstream_error"
	CodeTimeout            = "timeout"
	CodeInternalError      = "internal_error"
)

// Error messages used in API responses.
const (
	MsgMissingSearchParameter = "At least one search parameter is required"
	MsgFlightNotFound         = "Flight not found"
	MsgTimeout                = "Request timed out"
	MsgRequestCancelled       = "Request was cancelled"
	MsgInternalError          = "An unexpected error occurred"
)

// DefaultMaxAge is the client cache lifetime of successful lookups.
const DefaultMaxAge = 5 * time.Minute

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Cacheable writes a 200 OK response that clients and proxies may cache for maxAge.
func Cacheable(c echo.Context, maxAge time.Duration, data interface{}) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	return OK(c, data)
}
