// Package util holds small formatting helpers for operator output.
package util

import (
	"strconv"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < 0 {
		return "-" + FormatDuration(-duration)
	}

	if duration < time.Minute {
		return strconv.Itoa(int(duration.Seconds())) + "s"
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return strconv.Itoa(m) + "m" + strconv.Itoa(s) + "s"
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return strconv.Itoa(h) + "h" + strconv.Itoa(m) + "m"
}

// FormatUntil describes how far t is from now, e.g. "in 2m0s" or "5m0s ago".
func FormatUntil(t, now time.Time) string {
	d := t.Sub(now)
	if d < 0 {
		return FormatDuration(-d) + " ago"
	}

	return "in " + FormatDuration(d)
}
