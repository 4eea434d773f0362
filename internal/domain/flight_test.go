package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawFlight_DecodeNullableFields(t *testing.T) {
	payload := `{
		"flight_date": "2024-05-01",
		"flight_status": "scheduled",
		"departure": {
			"airport": "John F Kennedy International",
			"timezone": "America/New_York",
			"iata": "JFK",
			"icao": "KJFK",
			"terminal": null,
			"gate": null,
			"delay": null,
			"scheduled": "2024-05-01T08:00:00+00:00",
			"estimated": "2024-05-01T08:00:00+00:00",
			"actual": null,
			"estimated_runway": null,
			"actual_runway": null
		},
		"arrival": {
			"airport": "Los Angeles International",
			"timezone": "America/Los_Angeles",
			"iata": "LAX",
			"icao": "KLAX",
			"terminal": "7",
			"gate": "71A",
			"baggage": null,
			"delay": 0,
			"scheduled": "2024-05-01T11:30:00+00:00",
			"estimated": null,
			"actual": null
		},
		"airline": {"name": "United Airlines", "iata": "UA", "icao": "UAL"},
		"flight": {"number": "1", "iata": "UA1", "icao": "UAL1", "codeshared": null},
		"aircraft": null,
		"live": null
	}`

	var f RawFlight
	require.NoError(t, json.Unmarshal([]byte(payload), &f))

	assert.Equal(t, StatusScheduled, f.FlightStatus)
	assert.Nil(t, f.Departure.Terminal)
	assert.Nil(t, f.Departure.Delay)
	assert.Nil(t, f.Departure.Actual)
	require.NotNil(t, f.Arrival.Delay)
	assert.Equal(t, 0, *f.Arrival.Delay, "zero delay must stay distinguishable from unknown")
	require.NotNil(t, f.Arrival.Gate)
	assert.Equal(t, "71A", *f.Arrival.Gate)
	assert.Nil(t, f.Aircraft)
	assert.Nil(t, f.Live)
	assert.Nil(t, f.Flight.Codeshared)
}

func TestRawFlight_CodeshareFlightNumber(t *testing.T) {
	tests := []struct {
		name   string
		flight RawFlight
		want   string
	}{
		{
			name:   "no codeshare",
			flight: RawFlight{},
			want:   "",
		},
		{
			name: "nested codeshared object",
			flight: RawFlight{
				Flight: RawFlightIdentity{Codeshared: &RawCodeshare{FlightNumber: "4521"}},
			},
			want: "4521",
		},
		{
			name: "list form wins over nested object",
			flight: RawFlight{
				Codeshare: []RawCodeshare{{FlightNumber: "100"}, {FlightNumber: "200"}},
				Flight:    RawFlightIdentity{Codeshared: &RawCodeshare{FlightNumber: "4521"}},
			},
			want: "100",
		},
		{
			name:   "empty list falls back to nested object",
			flight: RawFlight{Codeshare: []RawCodeshare{}, Flight: RawFlightIdentity{Codeshared: &RawCodeshare{FlightNumber: "77"}}},
			want:   "77",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flight.codeshareFlightNumber())
		})
	}
}
