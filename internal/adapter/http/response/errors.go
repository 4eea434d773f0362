package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Error: message,
		Code:  CodeInvalidRequest,
	})
}

// MissingSearchParameter writes the 400 response for a search without any filter.
func MissingSearchParameter(c echo.Context) error {
	return BadRequest(c, MsgMissingSearchParameter)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Error: message,
		Code:  CodeValidationError,
	})
}

// NotFound writes a 404 Not Found response for a flight lookup without a match.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Error: MsgFlightNotFound,
		Code:  CodeNotFound,
	})
}

// ConfigurationError writes a 500 response for missing server configuration.
func ConfigurationError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Error: message,
		Code:  CodeConfigurationError,
	})
}

// UpstreamError writes a 500 response carrying the flight-data API failure message.
func UpstreamError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Error: message,
		Code:  CodeUpstreamError,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Error: MsgTimeout,
		Code:  CodeTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Error: MsgRequestCancelled,
		Code:  CodeTimeout,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Error: MsgInternalError,
		Code:  CodeInternalError,
	})
}
