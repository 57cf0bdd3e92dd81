// Package usecase defines the application's business operations.
package usecase

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// ExpansionSummary counts what one expander run did.
type ExpansionSummary struct {
	Created int
	Skipped int
	Failed  int
}

// PlanSummary counts what one planner run did.
type PlanSummary struct {
	Created int
	Skipped int
	Failed  int
}

// TemplateInput is a recurring prayer time submitted by a masjid admin.
type TemplateInput struct {
	PrayerName  string `json:"prayer_name" validate:"required"`
	AdhanTime   string `json:"adhan_time" validate:"required"`
	IqamahTime  string `json:"iqamah_time"`
	KhutbahTime string `json:"khutbah_time"`
	IsJuma      bool   `json:"is_juma"`
}

// ScheduleUsecase maintains templates and their dated occurrences.
type ScheduleUsecase interface {
	// EnsureDailyOccurrences makes sure every template has an occurrence today and tomorrow
	// in its masjid's timezone. Per-template failures are counted, not returned.
	EnsureDailyOccurrences(ctx context.Context) (*ExpansionSummary, error)

	// UpsertTemplates replaces the given prayers' templates. Only the masjid admin may call it.
	UpsertTemplates(ctx context.Context, actorID, masjidID uuid.UUID, inputs []TemplateInput) ([]*entity.ScheduleTemplate, error)

	// GetSchedule returns the occurrences of a local date. An empty date means today.
	GetSchedule(ctx context.Context, masjidID uuid.UUID, date string) ([]*entity.ScheduleOccurrence, error)
}

// PlannerUsecase turns near-future occurrences into scheduled broadcasts.
type PlannerUsecase interface {
	// PlanUpcoming creates a broadcast for every occurrence with adhan in [now, now+window).
	PlanUpcoming(ctx context.Context, now time.Time, window time.Duration) (*PlanSummary, error)
}
