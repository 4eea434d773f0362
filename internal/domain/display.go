package domain

import "strconv"

// DisplayFlight is the normalized flight shape returned to clients.
// It is a flattened subset of RawFlight; nullable fields stay nullable.
type DisplayFlight struct {
	// FlightNumber is the airline IATA code followed by the codeshare flight number, if any (e.g., "UA1234")
	FlightNumber string `json:"flightNumber"`

	// FlightIATA is the upstream flight designator (e.g., "UA1")
	FlightIATA string `json:"flightIata,omitempty"`

	// Airline is the operating airline name
	Airline string `json:"airline"`

	// Status is the upstream flight status (scheduled, active, landed, ...)
	Status string `json:"status"`

	Departure DisplayEndpoint `json:"departure"`
	Arrival   DisplayEndpoint `json:"arrival"`

	// Aircraft is the IATA aircraft type code; nil when the aircraft is not yet assigned
	Aircraft *string `json:"aircraft"`

	// Date is the flight date in YYYY-MM-DD format
	Date string `json:"date"`

	// ScheduledDuration is the scheduled gate-to-gate time, when both times parse
	ScheduledDuration *DurationInfo `json:"scheduledDuration,omitempty"`

	// Live is the latest position snapshot for airborne flights
	Live *LiveInfo `json:"live,omitempty"`
}

// DisplayEndpoint is the departure or arrival side of a DisplayFlight.
type DisplayEndpoint struct {
	// Airport is the airport name
	Airport string `json:"airport"`

	// Code is the IATA airport code
	Code string `json:"code"`

	// Time is the scheduled time as reported upstream
	Time string `json:"time"`

	// ActualTime is nil until the event has happened
	ActualTime *string `json:"actualTime"`

	// Delay is in minutes; nil means unknown and is distinct from zero
	Delay *int `json:"delay"`

	Timezone string  `json:"timezone,omitempty"`
	Terminal *string `json:"terminal,omitempty"`
	Gate     *string `json:"gate,omitempty"`

	// LocalTime is the scheduled time rendered in the airport's time zone (YYYY-MM-DD HH:MM)
	LocalTime string `json:"localTime,omitempty"`
}

// LiveInfo is a position snapshot.
type LiveInfo struct {
	Updated   string  `json:"updated"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
	Direction float64 `json:"direction"`
	Speed     float64 `json:"speed"`
	IsGround  bool    `json:"isGround"`
}

// DurationInfo contains a duration in minutes and a human-readable form.
type DurationInfo struct {
	// TotalMinutes is the total duration in minutes
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "2h 30m")
	Formatted string `json:"formatted"`
}

// NewDurationInfo creates a DurationInfo from total minutes and formats it.
func NewDurationInfo(totalMinutes int) DurationInfo {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	var formatted string
	switch {
	case hours > 0 && mins > 0:
		formatted = strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		formatted = strconv.Itoa(hours) + "h"
	default:
		formatted = strconv.Itoa(mins) + "m"
	}

	return DurationInfo{
		TotalMinutes: totalMinutes,
		Formatted:    formatted,
	}
}
