package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	mockRepo "masjidcast/internal/mocks/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type plannerServiceFixtures struct {
	service        usecase.PlannerUsecase
	occurrenceRepo *mockRepo.MockScheduleOccurrenceRepository
	broadcastRepo  *mockRepo.MockBroadcastRepository
}

func createTestPlannerService(t *testing.T) plannerServiceFixtures {
	occurrenceRepo := mockRepo.NewMockScheduleOccurrenceRepository(t)
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)

	service := NewPlannerService(PlannerServiceParams{
		Config:         testConfig(),
		OccurrenceRepo: occurrenceRepo,
		BroadcastRepo:  broadcastRepo,
		Logger:         discardLogger(),
	})

	return plannerServiceFixtures{
		service:        service,
		occurrenceRepo: occurrenceRepo,
		broadcastRepo:  broadcastRepo,
	}
}

func fajrOccurrence(masjidID uuid.UUID) *entity.ScheduleOccurrence {
	return &entity.ScheduleOccurrence{
		ID:         uuid.New(),
		MasjidID:   masjidID,
		Date:       "2025-03-10",
		PrayerName: entity.PrayerFajr,
		AdhanAt:    time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC),
	}
}

func TestPlannerService_PlanUpcoming_CreatesScheduledBroadcast(t *testing.T) {
	fx := createTestPlannerService(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC)
	occurrence := fajrOccurrence(uuid.New())

	fx.occurrenceRepo.EXPECT().
		FindUpcomingOccurrences(ctx, now, now.Add(2*time.Minute)).
		Return([]*entity.ScheduleOccurrence{occurrence}, nil)

	// The UTC day of 23:40Z on the 9th, not the local date of the occurrence
	fx.broadcastRepo.EXPECT().
		ExistsActiveForDay(ctx, occurrence.MasjidID, entity.PrayerFajr,
			time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)).
		Return(false, nil)

	var created *entity.Broadcast
	fx.broadcastRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.Broadcast")).
		Run(func(_ context.Context, broadcast *entity.Broadcast) { created = broadcast }).
		Return(nil)

	summary, err := fx.service.PlanUpcoming(ctx, now, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PlanSummary{Created: 1}, summary)

	require.NotNil(t, created)
	assert.Equal(t, entity.BroadcastStatusScheduled, created.Status)
	require.NotNil(t, created.ScheduledAt)
	assert.Equal(t, occurrence.AdhanAt, *created.ScheduledAt)
	assert.Equal(t, "fajr", created.PrayerString())
	assert.Equal(t, "livekit", created.StreamProvider)
	assert.Equal(t, entity.RoomNameFor(created.ID), created.RoomName)
}

func TestPlannerService_PlanUpcoming_SkipsExistingAndDuplicates(t *testing.T) {
	fx := createTestPlannerService(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC)

	existing := fajrOccurrence(uuid.New())
	raced := fajrOccurrence(uuid.New())

	fx.occurrenceRepo.EXPECT().
		FindUpcomingOccurrences(ctx, mock.Anything, mock.Anything).
		Return([]*entity.ScheduleOccurrence{existing, raced}, nil)
	fx.broadcastRepo.EXPECT().ExistsActiveForDay(ctx, existing.MasjidID, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	fx.broadcastRepo.EXPECT().ExistsActiveForDay(ctx, raced.MasjidID, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	fx.broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(repository.ErrDuplicateBroadcast)

	summary, err := fx.service.PlanUpcoming(ctx, now, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PlanSummary{Skipped: 2}, summary)
}

func TestPlannerService_PlanUpcoming_OneFailureDoesNotStopOthers(t *testing.T) {
	fx := createTestPlannerService(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC)

	broken := fajrOccurrence(uuid.New())
	fine := fajrOccurrence(uuid.New())

	fx.occurrenceRepo.EXPECT().
		FindUpcomingOccurrences(ctx, mock.Anything, mock.Anything).
		Return([]*entity.ScheduleOccurrence{broken, fine}, nil)
	fx.broadcastRepo.EXPECT().ExistsActiveForDay(ctx, broken.MasjidID, mock.Anything, mock.Anything, mock.Anything).Return(false, errors.New("timeout"))
	fx.broadcastRepo.EXPECT().ExistsActiveForDay(ctx, fine.MasjidID, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	fx.broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)

	summary, err := fx.service.PlanUpcoming(ctx, now, 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PlanSummary{Created: 1, Failed: 1}, summary)
}

func TestPlannerService_PlanUpcoming_QueryError(t *testing.T) {
	fx := createTestPlannerService(t)
	ctx := context.Background()

	fx.occurrenceRepo.EXPECT().
		FindUpcomingOccurrences(ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.PlanUpcoming(ctx, time.Now(), time.Minute)
	assert.Error(t, err)
}
