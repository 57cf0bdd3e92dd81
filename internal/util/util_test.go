package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "negative", duration: -90 * time.Second, expected: "-1m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 5, 0, 0, 0, time.UTC)

	if got := FormatUntil(now.Add(2*time.Minute), now); got != "in 2m0s" {
		t.Fatalf("FormatUntil(future) = %s, want in 2m0s", got)
	}
	if got := FormatUntil(now.Add(-5*time.Minute), now); got != "5m0s ago" {
		t.Fatalf("FormatUntil(past) = %s, want 5m0s ago", got)
	}
}
