package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the lookup error taxonomy.
// Typed errors below match these through errors.Is.
var (
	// ErrInvalidRequest indicates the caller supplied insufficient or malformed input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConfiguration indicates the service is missing required configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrUpstream indicates the flight-data API answered with a failure.
	ErrUpstream = errors.New("upstream error")

	// ErrTransport indicates the flight-data API could not be reached.
	ErrTransport = errors.New("transport error")

	// ErrFlightNotFound indicates an exact flight-number lookup had no match.
	ErrFlightNotFound = errors.New("flight not found")
)

// ConfigurationError is returned before any network call when configuration is incomplete.
type ConfigurationError struct {
	Setting string
	Message string
}

// NewMissingCredentialError reports that the upstream access key is not configured.
func NewMissingCredentialError() *ConfigurationError {
	return &ConfigurationError{
		Setting: "FLIGHT_API_KEY",
		Message: "Flight API key is not configured",
	}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// UpstreamError is returned when the upstream API responds with a non-success status,
// an error envelope, or a body that cannot be decoded.
type UpstreamError struct {
	// StatusCode is the HTTP status of the upstream response
	StatusCode int

	// Code is the upstream error code, when the API reported one
	Code string

	// Message is the upstream error message, when the API reported one
	Message string

	// Err is the underlying decode error, if any
	Err error
}

// NewUpstreamStatusError creates an UpstreamError for a non-2xx status.
func NewUpstreamStatusError(statusCode int) *UpstreamError {
	return &UpstreamError{StatusCode: statusCode}
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("API response could not be decoded (status %d): %v", e.StatusCode, e.Err)
	case e.Code != "" || e.Message != "":
		return fmt.Sprintf("API request failed: %d %s: %s", e.StatusCode, e.Code, e.Message)
	default:
		return fmt.Sprintf("API request failed: %d", e.StatusCode)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is matches ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// TransportError is returned when the request never produced an HTTP response.
// Its message never includes the request URL.
type TransportError struct {
	Op  string
	Err error
}

// NewTransportError wraps a network-level failure.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// IsTransportError reports whether err is a network-level failure.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}
