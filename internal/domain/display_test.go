package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDurationInfo(t *testing.T) {
	tests := []struct {
		name          string
		totalMinutes  int
		wantFormatted string
	}{
		{
			name:          "hours and minutes",
			totalMinutes:  150, // 2h 30m
			wantFormatted: "2h 30m",
		},
		{
			name:          "only hours",
			totalMinutes:  120, // 2h
			wantFormatted: "2h",
		},
		{
			name:          "only minutes",
			totalMinutes:  45,
			wantFormatted: "45m",
		},
		{
			name:          "zero minutes",
			totalMinutes:  0,
			wantFormatted: "0m",
		},
		{
			name:          "single digit minutes",
			totalMinutes:  65, // 1h 5m
			wantFormatted: "1h 5m",
		},
		{
			name:          "large duration",
			totalMinutes:  725, // 12h 5m
			wantFormatted: "12h 5m",
		},
		{
			name:          "exactly one hour",
			totalMinutes:  60,
			wantFormatted: "1h",
		},
		{
			name:          "one minute",
			totalMinutes:  1,
			wantFormatted: "1m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewDurationInfo(tt.totalMinutes)
			assert.Equal(t, tt.totalMinutes, result.TotalMinutes)
			assert.Equal(t, tt.wantFormatted, result.Formatted)
		})
	}
}
