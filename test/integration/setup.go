// Package integration provides helpers and integration tests for the flight lookup service.
// Integration tests wire the HTTP handler, the lookup use case and either a mock source
// or the real AviationStack client pointed at a stub server.
package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-lookup/flight-lookup-service/internal/adapter/http"
	"github.com/flight-lookup/flight-lookup-service/internal/adapter/http/middleware"
	"github.com/flight-lookup/flight-lookup-service/internal/adapter/provider/aviationstack"
	"github.com/flight-lookup/flight-lookup-service/internal/domain"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/flight-lookup-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.FlightLookupUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.NewWithOutput(logger.DefaultConfig(), io.Discard))

	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against path and returns the response.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseSearchResponse parses the response body as a search envelope.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var resp httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseTrackResponse parses the response body as a track array.
func (r *Response) ParseTrackResponse() (httpAdapter.TrackResponseDTO, error) {
	var resp httpAdapter.TrackResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CreateUseCase creates a use case backed by the given source.
func CreateUseCase(source domain.FlightSource) usecase.FlightLookupUseCase {
	return usecase.NewFlightLookupUseCase(source, nil)
}

// NewUpstreamClient creates a real AviationStack client for a stub base URL.
func NewUpstreamClient(baseURL, accessKey string) *aviationstack.Client {
	return NewUpstreamClientWithTimeout(baseURL, accessKey, 2*time.Second)
}

// NewUpstreamClientWithTimeout creates a client whose HTTP exchanges are bounded by timeout.
func NewUpstreamClientWithTimeout(baseURL, accessKey string, timeout time.Duration) *aviationstack.Client {
	cfg := aviationstack.DefaultConfig()
	cfg.AccessKey = accessKey
	cfg.BaseURL = baseURL
	cfg.Timeout = timeout
	return aviationstack.NewClient(cfg, aviationstack.WithLogger(logger.Nop()))
}
