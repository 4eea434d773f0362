package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger
//  3. Recover, innermost, so recovered panics are still logged as 500s
//
// Call it before registering routes.
func Setup(e *echo.Echo, log *logger.Logger) {
	SetupWithConfig(e, log, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log *logger.Logger, recoveryConfig RecoveryConfig) {
	e.Use(Chain(log, recoveryConfig)...)
}

// Chain returns the middleware stack as a slice for use with route groups.
func Chain(log *logger.Logger, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		RequestID(),
		RequestLogger(log),
		RecoverWithConfig(log, recoveryConfig),
	}
}
