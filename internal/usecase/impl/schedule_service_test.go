package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	mockRepo "masjidcast/internal/mocks/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleServiceFixtures struct {
	service        *scheduleService
	masjidRepo     *mockRepo.MockMasjidRepository
	templateRepo   *mockRepo.MockScheduleTemplateRepository
	occurrenceRepo *mockRepo.MockScheduleOccurrenceRepository
}

func createTestScheduleService(t *testing.T, now time.Time) scheduleServiceFixtures {
	masjidRepo := mockRepo.NewMockMasjidRepository(t)
	templateRepo := mockRepo.NewMockScheduleTemplateRepository(t)
	occurrenceRepo := mockRepo.NewMockScheduleOccurrenceRepository(t)

	service := NewScheduleService(ScheduleServiceParams{
		MasjidRepo:     masjidRepo,
		TemplateRepo:   templateRepo,
		OccurrenceRepo: occurrenceRepo,
		Logger:         discardLogger(),
	}).(*scheduleService)
	service.now = fixedClock(now)

	return scheduleServiceFixtures{
		service:        service,
		masjidRepo:     masjidRepo,
		templateRepo:   templateRepo,
		occurrenceRepo: occurrenceRepo,
	}
}

func kolkataMasjid() *entity.Masjid {
	return &entity.Masjid{
		ID:          uuid.New(),
		Name:        "Jama Masjid",
		Timezone:    "Asia/Kolkata",
		Status:      entity.MasjidStatusApproved,
		IsActive:    true,
		AdminUserID: uuid.New(),
	}
}

func TestScheduleService_EnsureDailyOccurrences_KolkataFajr(t *testing.T) {
	// 05:09 IST on 2025-03-10
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC)
	fx := createTestScheduleService(t, now)
	ctx := context.Background()

	masjid := kolkataMasjid()
	template := &entity.ScheduleTemplate{
		ID:         uuid.New(),
		MasjidID:   masjid.ID,
		PrayerName: entity.PrayerFajr,
		AdhanTime:  "05:10",
		IqamahTime: "05:30",
	}

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return([]*entity.ScheduleTemplate{template}, nil)
	fx.masjidRepo.EXPECT().FindMasjidsByIDs(ctx, []uuid.UUID{masjid.ID}).Return([]*entity.Masjid{masjid}, nil)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, "2025-03-10", entity.PrayerFajr).Return(false, nil)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, "2025-03-11", entity.PrayerFajr).Return(false, nil)

	var created []*entity.ScheduleOccurrence
	fx.occurrenceRepo.EXPECT().
		CreateOccurrence(ctx, mock.AnythingOfType("*entity.ScheduleOccurrence")).
		Run(func(_ context.Context, occurrence *entity.ScheduleOccurrence) {
			created = append(created, occurrence)
		}).
		Return(nil).
		Times(2)

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ExpansionSummary{Created: 2}, summary)

	require.Len(t, created, 2)
	assert.Equal(t, "2025-03-10", created[0].Date)
	assert.Equal(t, time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC), created[0].AdhanAt)
	assert.Equal(t, "2025-03-11", created[1].Date)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 40, 0, 0, time.UTC), created[1].AdhanAt)
	assert.NotEqual(t, uuid.Nil, created[0].ID)
}

func TestScheduleService_EnsureDailyOccurrences_Idempotent(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestScheduleService(t, now)
	ctx := context.Background()

	masjid := kolkataMasjid()
	template := &entity.ScheduleTemplate{ID: uuid.New(), MasjidID: masjid.ID, PrayerName: entity.PrayerAsr, AdhanTime: "15:45"}

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return([]*entity.ScheduleTemplate{template}, nil).Times(2)
	fx.masjidRepo.EXPECT().FindMasjidsByIDs(ctx, []uuid.UUID{masjid.ID}).Return([]*entity.Masjid{masjid}, nil).Times(2)

	// First run sees nothing, second run sees both rows the first one wrote
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, mock.Anything, entity.PrayerAsr).Return(false, nil).Times(2)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, mock.Anything, entity.PrayerAsr).Return(true, nil).Times(2)
	fx.occurrenceRepo.EXPECT().CreateOccurrence(ctx, mock.Anything).Return(nil).Times(2)

	first, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Created)

	second, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
}

func TestScheduleService_EnsureDailyOccurrences_ConcurrentInsertCountsAsSkipped(t *testing.T) {
	fx := createTestScheduleService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	masjid := kolkataMasjid()
	template := &entity.ScheduleTemplate{ID: uuid.New(), MasjidID: masjid.ID, PrayerName: entity.PrayerIsha, AdhanTime: "20:00"}

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return([]*entity.ScheduleTemplate{template}, nil)
	fx.masjidRepo.EXPECT().FindMasjidsByIDs(ctx, mock.Anything).Return([]*entity.Masjid{masjid}, nil)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, mock.Anything, entity.PrayerIsha).Return(false, nil).Times(2)
	fx.occurrenceRepo.EXPECT().CreateOccurrence(ctx, mock.Anything).Return(repository.ErrDuplicateOccurrence).Times(2)

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ExpansionSummary{Skipped: 2}, summary)
}

func TestScheduleService_EnsureDailyOccurrences_NoTemplates(t *testing.T) {
	fx := createTestScheduleService(t, time.Now())
	ctx := context.Background()

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return(nil, nil)

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ExpansionSummary{}, summary)
}

func TestScheduleService_UpsertTemplates(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	fx := createTestScheduleService(t, now)
	ctx := context.Background()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.templateRepo.EXPECT().UpsertTemplate(ctx, mock.AnythingOfType("*entity.ScheduleTemplate")).Return(nil).Times(2)

	templates, err := fx.service.UpsertTemplates(ctx, masjid.AdminUserID, masjid.ID, []usecase.TemplateInput{
		{PrayerName: "fajr", AdhanTime: "05:10", IqamahTime: "05:30"},
		{PrayerName: "jumuah", AdhanTime: "12:30", KhutbahTime: "12:45"},
	})
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, entity.PrayerFajr, templates[0].PrayerName)
	assert.False(t, templates[0].IsJuma)
	assert.True(t, templates[1].IsJuma)
	assert.Equal(t, masjid.ID, templates[1].MasjidID)
}

func TestScheduleService_GetSchedule_DefaultsToLocalToday(t *testing.T) {
	now := time.Date(2025, 3, 9, 23, 39, 0, 0, time.UTC)
	fx := createTestScheduleService(t, now)
	ctx := context.Background()
	masjid := kolkataMasjid()

	occurrences := []*entity.ScheduleOccurrence{{ID: uuid.New(), MasjidID: masjid.ID, Date: "2025-03-10"}}

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.occurrenceRepo.EXPECT().FindOccurrencesByMasjidAndDate(ctx, masjid.ID, "2025-03-10").Return(occurrences, nil)

	got, err := fx.service.GetSchedule(ctx, masjid.ID, "")
	require.NoError(t, err)
	assert.Equal(t, occurrences, got)
}

func TestScheduleService_GetSchedule_InvalidDate(t *testing.T) {
	fx := createTestScheduleService(t, time.Now())
	ctx := context.Background()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

	_, err := fx.service.GetSchedule(ctx, masjid.ID, "10/03/2025")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
