// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-lookup/flight-lookup-service/internal/domain"
)

// LoadTestJSON loads a JSON file from the testdata directory.
// The filename should be relative to the testdata directory.
func LoadTestJSON(t *testing.T, filename string) []byte {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// testutil is in test/testutil
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	testDataPath := filepath.Join(projectRoot, "test", "testdata", filename)

	data, err := os.ReadFile(testDataPath)
	if err != nil {
		t.Fatalf("Failed to load test file %s: %v", filename, err)
	}
	return data
}

// LoadRawFlights decodes the data array of an upstream /flights fixture.
func LoadRawFlights(t *testing.T, filename string) []domain.RawFlight {
	t.Helper()

	var envelope struct {
		Data []domain.RawFlight `json:"data"`
	}
	if err := json.Unmarshal(LoadTestJSON(t, filename), &envelope); err != nil {
		t.Fatalf("Failed to decode test file %s: %v", filename, err)
	}
	return envelope.Data
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for nullable upstream fields such as gate or delay.
func Ptr[T any](v T) *T {
	return &v
}
