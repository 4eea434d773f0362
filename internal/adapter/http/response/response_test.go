package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(echo.Context) error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:       "bad request",
			write:      func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
			wantError:  "Invalid input",
		},
		{
			name:       "missing search parameter",
			write:      MissingSearchParameter,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
			wantError:  "At least one search parameter is required",
		},
		{
			name:       "validation message",
			write:      func(c echo.Context) error { return ValidationErrorWithMessage(c, "date is not a valid date") },
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidationError,
			wantError:  "date is not a valid date",
		},
		{
			name:       "not found",
			write:      NotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   CodeNotFound,
			wantError:  "Flight not found",
		},
		{
			name:       "configuration",
			write:      func(c echo.Context) error { return ConfigurationError(c, "Flight API key is not configured") },
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeConfigurationError,
			wantError:  "Flight API key is not configured",
		},
		{
			name:       "upstream",
			write:      func(c echo.Context) error { return UpstreamError(c, "API request failed: 500") },
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeUpstreamError,
			wantError:  "API request failed: 500",
		},
		{
			name:       "gateway timeout",
			write:      GatewayTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeTimeout,
			wantError:  MsgTimeout,
		},
		{
			name:       "request cancelled",
			write:      RequestCancelled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeTimeout,
			wantError:  MsgRequestCancelled,
		},
		{
			name:       "internal",
			write:      InternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
			wantError:  MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantError, result.Error)
		})
	}
}

func TestErrorDetail_JSONShape(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, NotFound(c))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "Flight not found", raw["error"])
	assert.Equal(t, "not_found", raw["code"])
	assert.Len(t, raw, 2)
}

func TestCacheable(t *testing.T) {
	_, c, rec := setupEcho()

	err := Cacheable(c, DefaultMaxAge, []string{"a"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "public, max-age=300", rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `["a"]`, rec.Body.String())

	_, c, rec = setupEcho()
	require.NoError(t, Cacheable(c, 90*time.Second, map[string]int{"count": 0}))
	assert.Equal(t, "public, max-age=90", rec.Header().Get("Cache-Control"))
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	require.NoError(t, OK(c, map[string]bool{"success": true}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}
