// Package aviationstack implements domain.FlightSource against the AviationStack flights API.
package aviationstack

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flight-lookup/flight-lookup-service/internal/domain"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/metrics"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/retry"
)

// Name is the upstream identifier used in logs and metrics.
const Name = "aviationstack"

const (
	// DefaultBaseURL is the public AviationStack v1 endpoint.
	DefaultBaseURL = "https://api.aviationstack.com/v1"

	defaultTimeout     = 10 * time.Second
	defaultCacheMaxAge = 5 * time.Minute

	flightsPath = "/flights"

	operationSearch = "search"
	operationTrack  = "track"
)

// Query keys understood by the /flights endpoint.
const (
	paramAccessKey    = "access_key"
	paramDepIATA      = "dep_iata"
	paramArrIATA      = "arr_iata"
	paramFlightIATA   = "flight_iata"
	paramFlightStatus = "flight_status"
	paramFlightDate   = "flight_date"
	paramLimit        = "limit"
)

// Config is everything the client needs; it never reads the environment itself.
type Config struct {
	// AccessKey is sent as access_key on every request
	AccessKey string

	// BaseURL is the API root without the /flights path
	BaseURL string

	// Timeout bounds a single HTTP exchange
	Timeout time.Duration

	// CacheMaxAge is advertised in the outbound Cache-Control header; zero omits it
	CacheMaxAge time.Duration

	// Retry controls re-attempts of transport failures
	Retry retry.Config
}

// DefaultConfig returns a Config with the public endpoint and a single attempt per call.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     defaultTimeout,
		CacheMaxAge: defaultCacheMaxAge,
		Retry:       retry.NoRetry,
	}
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for per-call diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records upstream calls on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// Client fetches flight records from AviationStack.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
	metrics    *metrics.Metrics
}

// Ensure Client implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Client)(nil)

// NewClient creates an AviationStack client.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithUpstream(Name)

	return c
}

// Name returns the upstream identifier.
func (c *Client) Name() string {
	return Name
}

// Search returns every record matching the criteria's filters, in upstream order.
// Empty filters are not sent.
func (c *Client) Search(ctx context.Context, criteria domain.LookupCriteria) ([]domain.RawFlight, error) {
	return c.fetch(ctx, operationSearch, searchParams(criteria))
}

// GetByFlightNumber returns the first record for an exact flight designator,
// or nil with no error when the API has no match.
func (c *Client) GetByFlightNumber(ctx context.Context, flightNumber string) (*domain.RawFlight, error) {
	params := url.Values{}
	params.Set(paramFlightIATA, flightNumber)
	params.Set(paramLimit, strconv.Itoa(domain.TrackLimit))

	flights, err := c.fetch(ctx, operationTrack, params)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, nil
	}
	return &flights[0], nil
}

func searchParams(criteria domain.LookupCriteria) url.Values {
	params := url.Values{}
	setIfPresent(params, paramDepIATA, criteria.Departure)
	setIfPresent(params, paramArrIATA, criteria.Arrival)
	setIfPresent(params, paramFlightDate, criteria.Date)
	setIfPresent(params, paramFlightIATA, criteria.FlightNumber)
	setIfPresent(params, paramFlightStatus, criteria.Status)
	if criteria.Limit > 0 {
		params.Set(paramLimit, strconv.Itoa(criteria.Limit))
	}
	return params
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

// fetch runs one logical upstream call, retrying transport failures when configured.
func (c *Client) fetch(ctx context.Context, operation string, params url.Values) ([]domain.RawFlight, error) {
	if c.cfg.AccessKey == "" {
		c.log.Warn().Str("operation", operation).Msg("Flight API key is not configured")
		return nil, domain.NewMissingCredentialError()
	}

	retryCfg := c.cfg.Retry.
		WithRetryIf(retry.SkipPermanent).
		WithOnRetry(func(attempt int, err error) {
			c.log.Warn().
				Err(err).
				Str("operation", operation).
				Int("attempt", attempt).
				Msg("Retrying upstream request")
		})

	start := time.Now()
	flights, err := retry.DoWithResult(ctx, func() ([]domain.RawFlight, error) {
		flights, err := c.do(ctx, params)
		if err != nil && !domain.IsTransportError(err) {
			// Only network failures are worth another attempt.
			return nil, retry.NewPermanent(err)
		}
		return flights, err
	}, retryCfg)
	elapsed := time.Since(start)

	var permanent *retry.Permanent
	if errors.As(err, &permanent) {
		err = permanent.Err
	}

	if err != nil {
		outcome := metrics.OutcomeError
		if domain.IsTransportError(err) {
			outcome = metrics.OutcomeTransport
		}
		c.metrics.ObserveUpstream(operation, outcome, elapsed)
		c.log.Warn().
			Err(err).
			Str("operation", operation).
			Dur("latency", elapsed).
			Msg("Upstream request failed")
		return nil, err
	}

	c.metrics.ObserveUpstream(operation, metrics.OutcomeSuccess, elapsed)
	c.log.Debug().
		Str("operation", operation).
		Int("count", len(flights)).
		Dur("latency", elapsed).
		Msg("Upstream request completed")

	return flights, nil
}

// flightsEnvelope mirrors the /flights response body.
type flightsEnvelope struct {
	Pagination *pagination         `json:"pagination"`
	Data       *[]domain.RawFlight `json:"data"`
	Error      *apiError           `json:"error"`
}

type pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, params url.Values) ([]domain.RawFlight, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set(paramAccessKey, c.cfg.AccessKey)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + flightsPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		// The URL carries the access key, so the parse error is not propagated verbatim.
		return nil, &domain.ConfigurationError{
			Setting: "FLIGHT_API_BASE_URL",
			Message: "Flight API base URL is invalid",
		}
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.CacheMaxAge > 0 {
		req.Header.Set("Cache-Control", "max-age="+strconv.Itoa(int(c.cfg.CacheMaxAge.Seconds())))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransportError("aviationstack request", stripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, domain.NewUpstreamStatusError(resp.StatusCode)
	}

	var envelope flightsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if envelope.Error != nil {
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}

	if envelope.Data == nil {
		return []domain.RawFlight{}, nil
	}

	if envelope.Pagination != nil {
		c.log.Debug().
			Int("returned", envelope.Pagination.Count).
			Int("total", envelope.Pagination.Total).
			Msg("Upstream pagination")
	}

	return *envelope.Data, nil
}

// stripURL drops the *url.Error wrapper, whose message embeds the full request URL.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
