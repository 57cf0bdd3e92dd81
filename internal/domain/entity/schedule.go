package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	// DateLayout is the calendar-date format of occurrences.
	DateLayout = "2006-01-02"
	// LocalTimeLayout is the wall-clock format of template times.
	LocalTimeLayout = "15:04"
)

// ScheduleTemplate is a masjid's recurring local prayer time.
// (MasjidID, PrayerName) is unique.
type ScheduleTemplate struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the template.
	MasjidID    uuid.UUID  `json:"masjid_id"`    // The masjid this template belongs to.
	PrayerName  PrayerName `json:"prayer_name"`  // The prayer this template schedules.
	AdhanTime   string     `json:"adhan_time"`   // Local adhan time (HH:MM).
	IqamahTime  string     `json:"iqamah_time"`  // Local iqamah time (HH:MM), empty when unset.
	KhutbahTime string     `json:"khutbah_time"` // Local khutbah time (HH:MM), empty when unset.
	IsJuma      bool       `json:"is_juma"`      // Marks the Friday congregational prayer.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when this template was created.
	UpdatedAt   time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}

// ScheduleOccurrence is a concrete dated instance of a template, resolved to UTC.
// (MasjidID, Date, PrayerName) is unique.
type ScheduleOccurrence struct {
	ID         uuid.UUID  `json:"id"`          // The Global Unique Identifier (GUID) for the occurrence.
	MasjidID   uuid.UUID  `json:"masjid_id"`   // The masjid this occurrence belongs to.
	Date       string     `json:"date"`        // Local calendar date (YYYY-MM-DD) in the masjid timezone.
	PrayerName PrayerName `json:"prayer_name"` // The prayer.
	AdhanAt    time.Time  `json:"adhan_at"`    // Adhan instant in UTC.
	IqamahAt   *time.Time `json:"iqamah_at"`   // Iqamah instant in UTC, if scheduled.
	KhutbahAt  *time.Time `json:"khutbah_at"`  // Khutbah instant in UTC, if scheduled.
	IsJuma     bool       `json:"is_juma"`     // Copied from the template.
	CreatedAt  time.Time  `json:"created_at"`  // Timestamp of when this occurrence was generated.
	UpdatedAt  time.Time  `json:"updated_at"`  // Timestamp of the last modification.
}

// LocalDate returns the calendar date offsetDays after the local day containing now.
func LocalDate(now time.Time, loc *time.Location, offsetDays int) string {
	local := now.In(loc)

	return time.Date(local.Year(), local.Month(), local.Day()+offsetDays, 0, 0, 0, 0, loc).Format(DateLayout)
}

// ResolveLocalTime interprets date and clock as wall time in loc and returns the UTC instant.
// Wall times inside a DST gap follow time.Date normalization.
func ResolveLocalTime(date, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+LocalTimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %s %s", date, clock)
	}

	return t.UTC(), nil
}

// ResolveOccurrence builds the occurrence of template on the given local date.
func ResolveOccurrence(template *ScheduleTemplate, date string, loc *time.Location) (*ScheduleOccurrence, error) {
	adhanAt, err := ResolveLocalTime(date, template.AdhanTime, loc)
	if err != nil {
		return nil, errors.Wrap(err, "adhan time")
	}

	iqamahAt, err := resolveOptional(date, template.IqamahTime, loc)
	if err != nil {
		return nil, errors.Wrap(err, "iqamah time")
	}

	khutbahAt, err := resolveOptional(date, template.KhutbahTime, loc)
	if err != nil {
		return nil, errors.Wrap(err, "khutbah time")
	}

	return &ScheduleOccurrence{
		MasjidID:   template.MasjidID,
		Date:       date,
		PrayerName: template.PrayerName,
		AdhanAt:    adhanAt,
		IqamahAt:   iqamahAt,
		KhutbahAt:  khutbahAt,
		IsJuma:     template.IsJuma,
	}, nil
}

func resolveOptional(date, clock string, loc *time.Location) (*time.Time, error) {
	if clock == "" {
		return nil, nil
	}

	t, err := ResolveLocalTime(date, clock, loc)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// UTCDayRange returns [00:00, 24:00) UTC of the calendar day containing t.
func UTCDayRange(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)

	return start, start.Add(24 * time.Hour)
}
