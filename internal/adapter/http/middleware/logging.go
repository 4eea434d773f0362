package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs each completed request.
// 5xx responses log at error level, 4xx at warn, everything else at info.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()
			reqLog := log.WithRequestID(GetRequestID(c))

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
