package http

// These types mirror domain.DisplayFlight with examples for the generated API documentation.

// SwaggerSearchResponse represents a successful search response.
// @Description Flights matching the search filters, in upstream order
type SwaggerSearchResponse struct {
	Success bool `json:"success" example:"true"`

	// Flights contains the normalized flights
	Flights []SwaggerFlight `json:"flights"`

	// Count is the number of flights returned
	Count int `json:"count" example:"2"`
}

// SwaggerFlight represents a normalized flight.
// @Description Flight status information
type SwaggerFlight struct {
	// FlightNumber is the airline IATA code followed by the codeshare flight number, if any
	FlightNumber string `json:"flightNumber" example:"UA7600"`

	// FlightIATA is the upstream flight designator
	FlightIATA string `json:"flightIata,omitempty" example:"UA1"`

	Airline string `json:"airline" example:"United Airlines"`
	Status  string `json:"status" example:"scheduled" enums:"scheduled,active,landed,cancelled,incident,diverted"`

	Departure SwaggerEndpoint `json:"departure"`
	Arrival   SwaggerEndpoint `json:"arrival"`

	// Aircraft is the IATA aircraft type; null until assigned
	Aircraft *string `json:"aircraft" example:"B77W"`

	Date string `json:"date" example:"2024-05-01"`

	ScheduledDuration *SwaggerDuration `json:"scheduledDuration,omitempty"`
	Live              *SwaggerLive     `json:"live,omitempty"`
}

// SwaggerEndpoint represents the departure or arrival side of a flight.
// @Description Airport, times and delay of one side of a flight
type SwaggerEndpoint struct {
	Airport string `json:"airport" example:"John F Kennedy International"`
	Code    string `json:"code" example:"JFK"`

	// Time is the scheduled time as reported upstream
	Time string `json:"time" example:"2024-05-01T08:00:00+00:00"`

	// ActualTime is null until the event has happened
	ActualTime *string `json:"actualTime" example:"2024-05-01T08:12:00+00:00"`

	// Delay is in minutes; null means unknown
	Delay *int `json:"delay" example:"12"`

	Timezone  string  `json:"timezone,omitempty" example:"America/New_York"`
	Terminal  *string `json:"terminal,omitempty" example:"7"`
	Gate      *string `json:"gate,omitempty" example:"B22"`
	LocalTime string  `json:"localTime,omitempty" example:"2024-05-01 04:00"`
}

// SwaggerDuration represents the scheduled gate-to-gate time.
type SwaggerDuration struct {
	TotalMinutes int    `json:"totalMinutes" example:"390"`
	Formatted    string `json:"formatted" example:"6h 30m"`
}

// SwaggerLive represents a position snapshot of an airborne flight.
type SwaggerLive struct {
	Updated   string  `json:"updated" example:"2024-05-01T10:02:00+00:00"`
	Latitude  float64 `json:"latitude" example:"39.86"`
	Longitude float64 `json:"longitude" example:"-104.67"`
	Altitude  float64 `json:"altitude" example:"10668"`
	Direction float64 `json:"direction" example:"262"`
	Speed     float64 `json:"speed" example:"870"`
	IsGround  bool    `json:"isGround" example:"false"`
}
