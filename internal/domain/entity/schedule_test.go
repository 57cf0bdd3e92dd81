package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	return loc
}

func TestResolveOccurrence_FajrKolkataFallsOnPreviousUTCDay(t *testing.T) {
	loc := mustLoad(t, "Asia/Kolkata")
	template := &ScheduleTemplate{
		MasjidID:   uuid.New(),
		PrayerName: PrayerFajr,
		AdhanTime:  "05:10",
		IqamahTime: "05:30",
	}

	occ, err := ResolveOccurrence(template, "2025-03-10", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC), occ.AdhanAt)
	require.NotNil(t, occ.IqamahAt)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *occ.IqamahAt)
	assert.Nil(t, occ.KhutbahAt)
	assert.Equal(t, "2025-03-10", occ.Date)
	assert.Equal(t, template.MasjidID, occ.MasjidID)
}

func TestResolveOccurrence_InvalidClock(t *testing.T) {
	template := &ScheduleTemplate{PrayerName: PrayerAsr, AdhanTime: "25:99"}

	_, err := ResolveOccurrence(template, "2025-03-10", time.UTC)
	assert.Error(t, err)
}

func TestResolveLocalTime_DSTTransitions(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	// Day before spring-forward: EST (UTC-5)
	before, err := ResolveLocalTime("2025-03-08", "06:00", ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 8, 11, 0, 0, 0, time.UTC), before)

	// Spring-forward day after the jump: EDT (UTC-4)
	after, err := ResolveLocalTime("2025-03-09", "06:00", ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC), after)

	// Fall-back day: EST again
	fall, err := ResolveLocalTime("2025-11-02", "06:00", ny)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 2, 11, 0, 0, 0, time.UTC), fall)
}

func TestResolveLocalTime_GapIsNormalized(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	// 02:30 does not exist on 2025-03-09; the result is still a valid instant on that day
	got, err := ResolveLocalTime("2025-03-09", "02:30", ny)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", got.In(ny).Format(DateLayout))
}

func TestLocalDate_UsesMasjidTimezone(t *testing.T) {
	kolkata := mustLoad(t, "Asia/Kolkata")
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC) // 05:09 IST on the 10th

	assert.Equal(t, "2025-03-10", LocalDate(now, kolkata, 0))
	assert.Equal(t, "2025-03-11", LocalDate(now, kolkata, 1))
	assert.Equal(t, "2025-03-09", LocalDate(now, time.UTC, 0))
}

func TestLocalDate_MonthRollover(t *testing.T) {
	now := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-02-01", LocalDate(now, time.UTC, 1))
}

func TestUTCDayRange(t *testing.T) {
	start, end := UTCDayRange(time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), end)
}
