package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// expansionDays are the local-day offsets kept materialized: today and tomorrow.
var expansionDays = []int{0, 1}

type scheduleService struct {
	masjidRepo     repository.MasjidRepository
	templateRepo   repository.ScheduleTemplateRepository
	occurrenceRepo repository.ScheduleOccurrenceRepository
	logger         *slog.Logger
	now            func() time.Time
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	MasjidRepo     repository.MasjidRepository
	TemplateRepo   repository.ScheduleTemplateRepository
	OccurrenceRepo repository.ScheduleOccurrenceRepository
	Logger         *slog.Logger
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		masjidRepo:     params.MasjidRepo,
		templateRepo:   params.TemplateRepo,
		occurrenceRepo: params.OccurrenceRepo,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (s *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// EnsureDailyOccurrences expands every template into today's and tomorrow's occurrence.
func (s *scheduleService) EnsureDailyOccurrences(ctx context.Context) (*usecase.ExpansionSummary, error) {
	templates, err := s.templateRepo.FindAllTemplates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load schedule templates")
	}

	summary := &usecase.ExpansionSummary{}
	if len(templates) == 0 {
		return summary, nil
	}

	masjids, err := s.masjidsByID(ctx, templates)
	if err != nil {
		return nil, err
	}

	now := s.now()
	locations := make(map[string]*time.Location)

	for _, template := range templates {
		masjid, ok := masjids[template.MasjidID]
		if !ok {
			summary.Failed++
			s.log(ctx).Warn("[Scheduler] Template references unknown masjid", slog.String("template_id", template.ID.String()))

			continue
		}

		loc, err := cachedLocation(locations, masjid.Timezone)
		if err != nil {
			summary.Failed++
			s.log(ctx).Warn("[Scheduler] Skipping template with invalid timezone",
				slog.String("masjid_id", masjid.ID.String()),
				slog.String("timezone", masjid.Timezone),
				slog.Any("error", err),
			)

			continue
		}

		s.expandTemplate(ctx, template, loc, now, summary)
	}

	return summary, nil
}

func (s *scheduleService) expandTemplate(ctx context.Context, template *entity.ScheduleTemplate, loc *time.Location, now time.Time, summary *usecase.ExpansionSummary) {
	for _, offset := range expansionDays {
		date := entity.LocalDate(now, loc, offset)

		exists, err := s.occurrenceRepo.ExistsOccurrence(ctx, template.MasjidID, date, template.PrayerName)
		if err != nil {
			summary.Failed++
			s.log(ctx).Error("[Scheduler] Failed to check occurrence",
				slog.String("masjid_id", template.MasjidID.String()),
				slog.String("date", date),
				slog.Any("error", err),
			)

			continue
		}
		if exists {
			summary.Skipped++

			continue
		}

		occurrence, err := entity.ResolveOccurrence(template, date, loc)
		if err != nil {
			// The template itself is malformed, later dates would fail the same way
			summary.Failed++
			s.log(ctx).Warn("[Scheduler] Skipping template with invalid local time",
				slog.String("template_id", template.ID.String()),
				slog.Any("error", err),
			)

			return
		}

		occurrence.ID = uuid.New()
		occurrence.CreatedAt = now
		occurrence.UpdatedAt = now

		if err := s.occurrenceRepo.CreateOccurrence(ctx, occurrence); err != nil {
			if errors.Is(err, repository.ErrDuplicateOccurrence) {
				summary.Skipped++

				continue
			}

			summary.Failed++
			s.log(ctx).Error("[Scheduler] Failed to create occurrence",
				slog.String("masjid_id", template.MasjidID.String()),
				slog.String("date", date),
				slog.Any("error", err),
			)

			continue
		}

		summary.Created++
		s.log(ctx).Debug("[Scheduler] Occurrence created",
			slog.String("masjid_id", occurrence.MasjidID.String()),
			slog.String("prayer", occurrence.PrayerName.String()),
			slog.String("date", date),
			slog.Time("adhan_at", occurrence.AdhanAt),
		)
	}
}

func (s *scheduleService) masjidsByID(ctx context.Context, templates []*entity.ScheduleTemplate) (map[uuid.UUID]*entity.Masjid, error) {
	seen := make(map[uuid.UUID]struct{}, len(templates))
	ids := make([]uuid.UUID, 0, len(templates))
	for _, t := range templates {
		if _, ok := seen[t.MasjidID]; ok {
			continue
		}
		seen[t.MasjidID] = struct{}{}
		ids = append(ids, t.MasjidID)
	}

	masjids, err := s.masjidRepo.FindMasjidsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load masjids")
	}

	byID := make(map[uuid.UUID]*entity.Masjid, len(masjids))
	for _, m := range masjids {
		byID[m.ID] = m
	}

	return byID, nil
}

func cachedLocation(cache map[string]*time.Location, name string) (*time.Location, error) {
	if loc, ok := cache[name]; ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	cache[name] = loc

	return loc, nil
}

// UpsertTemplates validates and stores templates of a masjid
func (s *scheduleService) UpsertTemplates(ctx context.Context, actorID, masjidID uuid.UUID, inputs []usecase.TemplateInput) ([]*entity.ScheduleTemplate, error) {
	if _, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, masjidID); err != nil {
		return nil, err
	}

	now := s.now()
	templates := make([]*entity.ScheduleTemplate, 0, len(inputs))
	for _, input := range inputs {
		template, err := buildTemplate(masjidID, input, now)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	for _, template := range templates {
		if err := s.templateRepo.UpsertTemplate(ctx, template); err != nil {
			return nil, errors.Wrap(err, "failed to upsert schedule template")
		}
	}

	s.log(ctx).Info("Schedule templates updated", slog.String("masjid_id", masjidID.String()), slog.Int("count", len(templates)))

	return templates, nil
}

func buildTemplate(masjidID uuid.UUID, input usecase.TemplateInput, now time.Time) (*entity.ScheduleTemplate, error) {
	prayer := entity.PrayerName(input.PrayerName)
	if !prayer.IsValid() {
		return nil, domainerrors.ErrInvalidPrayer.WithDetails(input.PrayerName)
	}

	for _, clock := range []string{input.AdhanTime, input.IqamahTime, input.KhutbahTime} {
		if clock == "" {
			continue
		}
		if _, err := time.Parse(entity.LocalTimeLayout, clock); err != nil {
			return nil, domainerrors.ErrInvalidLocalTime.WithDetails(clock)
		}
	}
	if input.AdhanTime == "" {
		return nil, domainerrors.ErrInvalidLocalTime.WithDetails("adhan time is required")
	}

	return &entity.ScheduleTemplate{
		ID:          uuid.New(),
		MasjidID:    masjidID,
		PrayerName:  prayer,
		AdhanTime:   input.AdhanTime,
		IqamahTime:  input.IqamahTime,
		KhutbahTime: input.KhutbahTime,
		IsJuma:      input.IsJuma || prayer == entity.PrayerJumuah,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetSchedule returns a masjid's occurrences of a local date
func (s *scheduleService) GetSchedule(ctx context.Context, masjidID uuid.UUID, date string) ([]*entity.ScheduleOccurrence, error) {
	masjid, err := loadMasjid(ctx, s.masjidRepo, masjidID)
	if err != nil {
		return nil, err
	}

	if date == "" {
		loc, err := masjid.Location()
		if err != nil {
			return nil, domainerrors.ErrInvalidTimezone.WithDetails(masjid.Timezone)
		}
		date = entity.LocalDate(s.now(), loc, 0)
	} else if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date must use YYYY-MM-DD")
	}

	occurrences, err := s.occurrenceRepo.FindOccurrencesByMasjidAndDate(ctx, masjidID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find occurrences")
	}

	return occurrences, nil
}
