package domain

import (
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/timeutil"
)

// NormalizeFlights converts raw upstream records to DisplayFlights, preserving order.
// The result is never nil.
func NormalizeFlights(raw []RawFlight) []DisplayFlight {
	result := make([]DisplayFlight, 0, len(raw))
	for i := range raw {
		result = append(result, NormalizeFlight(raw[i]))
	}
	return result
}

// NormalizeFlight maps a raw upstream record to a DisplayFlight.
// It is total: optional fields that are missing stay empty and never cause a failure.
func NormalizeFlight(f RawFlight) DisplayFlight {
	display := DisplayFlight{
		FlightNumber: f.Airline.IATA + f.codeshareFlightNumber(),
		FlightIATA:   f.Flight.IATA,
		Airline:      f.Airline.Name,
		Status:       f.FlightStatus,
		Departure:    normalizeEndpoint(f.Departure),
		Arrival:      normalizeEndpoint(f.Arrival),
		Date:         f.FlightDate,
	}

	if f.Aircraft != nil && f.Aircraft.IATA != "" {
		aircraft := f.Aircraft.IATA
		display.Aircraft = &aircraft
	}

	if f.Live != nil {
		display.Live = &LiveInfo{
			Updated:   f.Live.Updated,
			Latitude:  f.Live.Latitude,
			Longitude: f.Live.Longitude,
			Altitude:  f.Live.Altitude,
			Direction: f.Live.Direction,
			Speed:     f.Live.SpeedHorizontal,
			IsGround:  f.Live.IsGround,
		}
	}

	display.ScheduledDuration = scheduledDuration(f.Departure.Scheduled, f.Arrival.Scheduled)

	return display
}

func normalizeEndpoint(e RawEndpoint) DisplayEndpoint {
	return DisplayEndpoint{
		Airport:    e.Airport,
		Code:       e.IATA,
		Time:       e.Scheduled,
		ActualTime: e.Actual,
		Delay:      e.Delay,
		Timezone:   e.Timezone,
		Terminal:   e.Terminal,
		Gate:       e.Gate,
		LocalTime:  localTime(e.Scheduled, e.Timezone),
	}
}

// localTime renders a timestamp in the given zone, or returns "" if either is unusable.
func localTime(timestamp, timezone string) string {
	if timestamp == "" || timezone == "" {
		return ""
	}
	t, err := timeutil.ParseTimestamp(timestamp)
	if err != nil {
		return ""
	}
	local, err := timeutil.InTimezone(t, timezone)
	if err != nil {
		return ""
	}
	return timeutil.FormatDateTimeShort(local)
}

// scheduledDuration returns nil unless both times parse and arrival is not before departure.
func scheduledDuration(departure, arrival string) *DurationInfo {
	dep, err := timeutil.ParseTimestamp(departure)
	if err != nil {
		return nil
	}
	arr, err := timeutil.ParseTimestamp(arrival)
	if err != nil {
		return nil
	}
	d := arr.Sub(dep)
	if d < 0 {
		return nil
	}
	info := NewDurationInfo(int(d.Minutes()))
	return &info
}
