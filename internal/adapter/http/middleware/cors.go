package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CORS allows cross-origin GET requests from the given origins.
// An empty list falls back to "*".
func CORS(origins []string) echo.MiddlewareFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        3600,
	})
}
