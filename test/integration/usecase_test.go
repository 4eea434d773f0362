package integration

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-lookup/flight-lookup-service/internal/domain"
	"github.com/flight-lookup/flight-lookup-service/test/mock"
	"github.com/flight-lookup/flight-lookup-service/test/testutil"
)

// TestFlightLookup_SearchThroughClient verifies normalization of real upstream records.
func TestFlightLookup_SearchThroughClient(t *testing.T) {
	// Arrange
	upstream := mock.NewUpstream(testutil.LoadTestJSON(t, "aviationstack_flights.json"))
	defer upstream.Close()

	uc := CreateUseCase(NewUpstreamClient(upstream.URL(), "test-key"))

	// Act
	result, err := uc.Search(context.Background(), domain.LookupCriteria{
		Departure: "jfk",
		Arrival:   "lax",
		Date:      "2024-05-01",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.ModeSearch, result.Mode)
	assert.Equal(t, 2, result.Count)

	assert.Equal(t, "2024-05-01 04:00", result.Flights[0].Departure.LocalTime)
	assert.Equal(t, "2024-05-01 07:30", result.Flights[0].Arrival.LocalTime)

	query := upstream.LastQuery()
	assert.Equal(t, "JFK", query.Get("dep_iata"))
	assert.Equal(t, "LAX", query.Get("arr_iata"))
}

// TestFlightLookup_SearchIsIdempotent verifies repeated searches give equal results.
func TestFlightLookup_SearchIsIdempotent(t *testing.T) {
	upstream := mock.NewUpstream(testutil.LoadTestJSON(t, "aviationstack_flights.json"))
	defer upstream.Close()

	uc := CreateUseCase(NewUpstreamClient(upstream.URL(), "test-key"))
	criteria := domain.LookupCriteria{Departure: "JFK"}

	first, err := uc.Search(context.Background(), criteria)
	require.NoError(t, err)
	second, err := uc.Search(context.Background(), criteria)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, upstream.Requests())
}

// TestFlightLookup_TrackFirstRecord verifies track returns only the first upstream record.
func TestFlightLookup_TrackFirstRecord(t *testing.T) {
	upstream := mock.NewUpstream(testutil.LoadTestJSON(t, "aviationstack_flights.json"))
	defer upstream.Close()

	uc := CreateUseCase(NewUpstreamClient(upstream.URL(), "test-key"))

	result, err := uc.Track(context.Background(), "dl409")

	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	// The stub ignores filters, so the first record comes back.
	assert.Equal(t, "UA1", result.First().FlightIATA)
	assert.Equal(t, "DL409", upstream.LastQuery().Get("flight_iata"))
}

// TestFlightLookup_UpstreamTimeout verifies a slow upstream surfaces a deadline error.
func TestFlightLookup_UpstreamTimeout(t *testing.T) {
	// Arrange
	upstream := mock.NewUpstream(testutil.LoadTestJSON(t, "aviationstack_flights.json")).
		WithDelay(500 * time.Millisecond)
	defer upstream.Close()

	uc := CreateUseCase(NewUpstreamClient(upstream.URL(), "test-key"))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// Act
	start := time.Now()
	_, err := uc.Search(ctx, domain.LookupCriteria{Departure: "JFK"})
	elapsed := time.Since(start)

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, elapsed, 400*time.Millisecond)
}

// TestFlightLookup_ContextCancellation verifies cancellation stops a pending lookup.
func TestFlightLookup_ContextCancellation(t *testing.T) {
	source := mock.NewSource("mock").
		WithFlights(mock.SampleFlights(2)).
		WithDelay(time.Second)

	uc := CreateUseCase(source)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := uc.Search(ctx, domain.LookupCriteria{Departure: "JFK"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestFlightLookup_ErrorTaxonomy verifies each failure maps to its sentinel.
func TestFlightLookup_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      []byte
		accessKey string
		wantErr   error
	}{
		{
			name:      "missing credential",
			status:    http.StatusOK,
			body:      []byte(`{"data":[]}`),
			accessKey: "",
			wantErr:   domain.ErrConfiguration,
		},
		{
			name:      "non-2xx status",
			status:    http.StatusBadGateway,
			body:      []byte(`{}`),
			accessKey: "test-key",
			wantErr:   domain.ErrUpstream,
		},
		{
			name:      "error envelope with 200",
			status:    http.StatusOK,
			body:      testutil.LoadTestJSON(t, "aviationstack_error.json"),
			accessKey: "test-key",
			wantErr:   domain.ErrUpstream,
		},
		{
			name:      "malformed body",
			status:    http.StatusOK,
			body:      []byte(`{"data": [`),
			accessKey: "test-key",
			wantErr:   domain.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := mock.NewUpstream(tt.body).WithStatus(tt.status)
			defer upstream.Close()

			uc := CreateUseCase(NewUpstreamClient(upstream.URL(), tt.accessKey))

			_, err := uc.Search(context.Background(), domain.LookupCriteria{Departure: "JFK"})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

// TestFlightLookup_TransportFailure verifies an unreachable upstream is a transport error
// whose message does not carry the access key.
func TestFlightLookup_TransportFailure(t *testing.T) {
	upstream := mock.NewUpstream(nil)
	baseURL := upstream.URL()
	upstream.Close()

	uc := CreateUseCase(NewUpstreamClient(baseURL, "super-secret-key"))

	_, err := uc.Search(context.Background(), domain.LookupCriteria{Departure: "JFK"})

	require.Error(t, err)
	assert.True(t, domain.IsTransportError(err))
	assert.NotContains(t, err.Error(), "super-secret-key")
}

// TestFlightLookup_InvalidCriteriaSkipsUpstream verifies validation happens before any request.
func TestFlightLookup_InvalidCriteriaSkipsUpstream(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.LookupCriteria
	}{
		{name: "no filters", criteria: domain.LookupCriteria{}},
		{name: "blank filters", criteria: domain.LookupCriteria{Departure: " ", Date: "  "}},
		{name: "status alone", criteria: domain.LookupCriteria{Status: domain.StatusActive}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := mock.NewUpstream([]byte(`{"data":[]}`))
			defer upstream.Close()

			uc := CreateUseCase(NewUpstreamClient(upstream.URL(), "test-key"))

			_, err := uc.Search(context.Background(), tt.criteria)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrMissingSearchFilter))
			assert.Equal(t, 0, upstream.Requests())
		})
	}
}
