// Package domain contains the core entities and rules of the flight lookup service.
// RawFlight mirrors the upstream flight-data record; DisplayFlight is the only shape
// handed to presentation.
package domain

// Flight status values observed from the upstream API.
// The set is open: unknown values are passed through unchanged.
const (
	StatusScheduled = "scheduled"
	StatusActive    = "active"
	StatusLanded    = "landed"
	StatusCancelled = "cancelled"
	StatusIncident  = "incident"
	StatusDiverted  = "diverted"
	StatusDelayed   = "delayed"
)

// RawFlight is a single flight record as returned by the upstream API.
// It is untrusted input: every field that may be null upstream is a pointer or a nil-able slice.
type RawFlight struct {
	// FlightDate is the flight date in YYYY-MM-DD format
	FlightDate string `json:"flight_date"`

	// FlightStatus is the upstream status string (see Status* constants)
	FlightStatus string `json:"flight_status"`

	Departure RawEndpoint       `json:"departure"`
	Arrival   RawEndpoint       `json:"arrival"`
	Airline   RawAirline        `json:"airline"`
	Flight    RawFlightIdentity `json:"flight"`

	// Codeshare is the list form of codeshare entries some API versions return.
	Codeshare []RawCodeshare `json:"codeshare,omitempty"`

	// Aircraft is usually null before departure
	Aircraft *RawAircraft `json:"aircraft"`

	// Live is present only while the flight is airborne
	Live *RawLive `json:"live"`
}

// RawEndpoint describes the departure or arrival side of a flight.
type RawEndpoint struct {
	Airport  string  `json:"airport"`
	Timezone string  `json:"timezone"`
	IATA     string  `json:"iata"`
	ICAO     string  `json:"icao"`
	Terminal *string `json:"terminal"`
	Gate     *string `json:"gate"`

	// Baggage is the baggage claim belt; only reported for arrivals
	Baggage *string `json:"baggage,omitempty"`

	// Delay is the delay in minutes; nil means unknown, not zero
	Delay *int `json:"delay"`

	Scheduled       string  `json:"scheduled"`
	Estimated       *string `json:"estimated"`
	Actual          *string `json:"actual"`
	EstimatedRunway *string `json:"estimated_runway"`
	ActualRunway    *string `json:"actual_runway"`
}

// RawAirline identifies the operating airline.
type RawAirline struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
	ICAO string `json:"icao"`
}

// RawFlightIdentity holds the flight designators.
type RawFlightIdentity struct {
	Number     string        `json:"number"`
	IATA       string        `json:"iata"`
	ICAO       string        `json:"icao"`
	Codeshared *RawCodeshare `json:"codeshared"`
}

// RawCodeshare is the marketing carrier of a codeshared flight.
type RawCodeshare struct {
	AirlineName  string `json:"airline_name"`
	AirlineIATA  string `json:"airline_iata"`
	AirlineICAO  string `json:"airline_icao,omitempty"`
	FlightNumber string `json:"flight_number"`
	FlightIATA   string `json:"flight_iata,omitempty"`
	FlightICAO   string `json:"flight_icao,omitempty"`
}

// RawAircraft identifies the airframe.
type RawAircraft struct {
	Registration string `json:"registration"`
	IATA         string `json:"iata"`
	ICAO         string `json:"icao"`
	ICAO24       string `json:"icao24"`
}

// RawLive is a position snapshot of an airborne flight.
type RawLive struct {
	Updated         string  `json:"updated"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Altitude        float64 `json:"altitude"`
	Direction       float64 `json:"direction"`
	SpeedHorizontal float64 `json:"speed_horizontal"`
	SpeedVertical   float64 `json:"speed_vertical"`
	IsGround        bool    `json:"is_ground"`
}

// codeshareFlightNumber returns the first known codeshare flight number, or "".
// The list form takes precedence over the nested flight.codeshared object.
func (f *RawFlight) codeshareFlightNumber() string {
	if len(f.Codeshare) > 0 {
		return f.Codeshare[0].FlightNumber
	}
	if f.Flight.Codeshared != nil {
		return f.Flight.Codeshared.FlightNumber
	}
	return ""
}
