// Package timeutil provides time-zone and timestamp helpers for flight times.
package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded time-zone locations keyed by IANA name.
var locationCache sync.Map

// Layouts accepted for upstream timestamps, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04:05",
}

// GetLocation returns a cached time-zone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// InTimezone converts a time to the specified time zone.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// ParseTimestamp parses an upstream ISO 8601 timestamp.
// Timestamps without an offset are read as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", value)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTimeShort formats a time as YYYY-MM-DD HH:MM.
func FormatDateTimeShort(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ClearLocationCache clears the cached locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
