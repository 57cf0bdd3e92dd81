package repository

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for schedule persistence.
var (
	// ErrDuplicateOccurrence is returned when (masjid, date, prayer) already has an occurrence.
	ErrDuplicateOccurrence = errors.New("schedule occurrence already exists")
)

// ScheduleTemplateRepository defines persistence for recurring prayer templates.
type ScheduleTemplateRepository interface {
	// FindAllTemplates retrieves every template.
	FindAllTemplates(ctx context.Context) ([]*entity.ScheduleTemplate, error)

	// FindTemplatesByMasjid retrieves the templates of a masjid.
	FindTemplatesByMasjid(ctx context.Context, masjidID uuid.UUID) ([]*entity.ScheduleTemplate, error)

	// UpsertTemplate inserts or updates the template keyed by (masjid, prayer).
	UpsertTemplate(ctx context.Context, template *entity.ScheduleTemplate) error
}

// ScheduleOccurrenceRepository defines persistence for dated prayer occurrences.
type ScheduleOccurrenceRepository interface {
	// ExistsOccurrence reports whether (masjid, date, prayer) already has an occurrence.
	ExistsOccurrence(ctx context.Context, masjidID uuid.UUID, date string, prayer entity.PrayerName) (bool, error)

	// CreateOccurrence persists a new occurrence. Returns ErrDuplicateOccurrence on a unique violation.
	CreateOccurrence(ctx context.Context, occurrence *entity.ScheduleOccurrence) error

	// FindUpcomingOccurrences retrieves occurrences with adhan in [from, to) whose masjid
	// is approved and active.
	FindUpcomingOccurrences(ctx context.Context, from, to time.Time) ([]*entity.ScheduleOccurrence, error)

	// FindOccurrencesByMasjidAndDate retrieves a masjid's occurrences on a local date.
	FindOccurrencesByMasjidAndDate(ctx context.Context, masjidID uuid.UUID, date string) ([]*entity.ScheduleOccurrence, error)
}
