package impl

import (
	"context"
	"log/slog"
	"time"

	"masjidcast/config"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type plannerService struct {
	occurrenceRepo repository.ScheduleOccurrenceRepository
	broadcastRepo  repository.BroadcastRepository
	streamProvider string
	logger         *slog.Logger
}

// PlannerServiceParams holds dependencies for PlannerService, injected by Fx.
type PlannerServiceParams struct {
	fx.In

	Config         *config.Config
	OccurrenceRepo repository.ScheduleOccurrenceRepository
	BroadcastRepo  repository.BroadcastRepository
	Logger         *slog.Logger
}

// NewPlannerService creates a new planner service instance
func NewPlannerService(params PlannerServiceParams) usecase.PlannerUsecase {
	return &plannerService{
		occurrenceRepo: params.OccurrenceRepo,
		broadcastRepo:  params.BroadcastRepo,
		streamProvider: params.Config.Broadcast.StreamProvider,
		logger:         params.Logger,
	}
}

func (s *plannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PlanUpcoming creates a scheduled broadcast for every occurrence whose adhan falls in [now, now+window).
func (s *plannerService) PlanUpcoming(ctx context.Context, now time.Time, window time.Duration) (*usecase.PlanSummary, error) {
	occurrences, err := s.occurrenceRepo.FindUpcomingOccurrences(ctx, now, now.Add(window))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming occurrences")
	}

	summary := &usecase.PlanSummary{}
	for _, occurrence := range occurrences {
		created, err := s.planOccurrence(ctx, occurrence, now)
		switch {
		case err != nil:
			summary.Failed++
			s.log(ctx).Error("[Planner] Failed to plan occurrence",
				slog.String("masjid_id", occurrence.MasjidID.String()),
				slog.String("prayer", occurrence.PrayerName.String()),
				slog.Any("error", err),
			)
		case created:
			summary.Created++
		default:
			summary.Skipped++
		}
	}

	return summary, nil
}

func (s *plannerService) planOccurrence(ctx context.Context, occurrence *entity.ScheduleOccurrence, now time.Time) (bool, error) {
	dayStart, dayEnd := entity.UTCDayRange(occurrence.AdhanAt)

	exists, err := s.broadcastRepo.ExistsActiveForDay(ctx, occurrence.MasjidID, occurrence.PrayerName, dayStart, dayEnd)
	if err != nil {
		return false, errors.Wrap(err, "failed to check existing broadcast")
	}
	if exists {
		return false, nil
	}

	prayer := occurrence.PrayerName
	scheduledAt := occurrence.AdhanAt
	broadcast := &entity.Broadcast{
		ID:             uuid.New(),
		MasjidID:       occurrence.MasjidID,
		PrayerName:     &prayer,
		Status:         entity.BroadcastStatusScheduled,
		ScheduledAt:    &scheduledAt,
		StreamProvider: s.streamProvider,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	broadcast.RoomName = entity.RoomNameFor(broadcast.ID)

	if err := s.broadcastRepo.CreateBroadcast(ctx, broadcast); err != nil {
		if errors.Is(err, repository.ErrDuplicateBroadcast) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to create broadcast")
	}

	s.log(ctx).Info("[Planner] Broadcast scheduled",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("masjid_id", broadcast.MasjidID.String()),
		slog.String("prayer", prayer.String()),
		slog.Time("scheduled_at", scheduledAt),
	)

	return true, nil
}
