package postgres

import (
	"time"

	"masjidcast/internal/domain/entity"
)

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()

	return &u
}

// normalizeDate trims the time part the driver may append to DATE columns.
func normalizeDate(s string) string {
	if len(s) > len(entity.DateLayout) {
		return s[:len(entity.DateLayout)]
	}

	return s
}
