package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_EnsureDailyOccurrences_TemplateLoadError(t *testing.T) {
	fx := createTestScheduleService(t, time.Now())
	ctx := context.Background()

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return(nil, errors.New("connection refused"))

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestScheduleService_EnsureDailyOccurrences_BadTemplatesDoNotAbortBatch(t *testing.T) {
	fx := createTestScheduleService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	good := kolkataMasjid()
	badZone := kolkataMasjid()
	badZone.Timezone = "Mars/Olympus_Mons"

	templates := []*entity.ScheduleTemplate{
		{ID: uuid.New(), MasjidID: badZone.ID, PrayerName: entity.PrayerFajr, AdhanTime: "05:00"},
		{ID: uuid.New(), MasjidID: good.ID, PrayerName: entity.PrayerDhuhr, AdhanTime: "25:99"},
		{ID: uuid.New(), MasjidID: uuid.New(), PrayerName: entity.PrayerAsr, AdhanTime: "15:00"},
		{ID: uuid.New(), MasjidID: good.ID, PrayerName: entity.PrayerMaghrib, AdhanTime: "18:30"},
	}

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return(templates, nil)
	fx.masjidRepo.EXPECT().FindMasjidsByIDs(ctx, mock.Anything).Return([]*entity.Masjid{good, badZone}, nil)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, good.ID, mock.Anything, entity.PrayerDhuhr).Return(false, nil).Once()
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, good.ID, mock.Anything, entity.PrayerMaghrib).Return(false, nil).Times(2)
	fx.occurrenceRepo.EXPECT().CreateOccurrence(ctx, mock.Anything).Return(nil).Times(2)

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ExpansionSummary{Created: 2, Failed: 3}, summary)
}

func TestScheduleService_EnsureDailyOccurrences_InsertErrorContinues(t *testing.T) {
	fx := createTestScheduleService(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()
	masjid := kolkataMasjid()
	template := &entity.ScheduleTemplate{ID: uuid.New(), MasjidID: masjid.ID, PrayerName: entity.PrayerIsha, AdhanTime: "20:00"}

	fx.templateRepo.EXPECT().FindAllTemplates(ctx).Return([]*entity.ScheduleTemplate{template}, nil)
	fx.masjidRepo.EXPECT().FindMasjidsByIDs(ctx, mock.Anything).Return([]*entity.Masjid{masjid}, nil)
	fx.occurrenceRepo.EXPECT().ExistsOccurrence(ctx, masjid.ID, mock.Anything, entity.PrayerIsha).Return(false, nil).Times(2)
	fx.occurrenceRepo.EXPECT().CreateOccurrence(ctx, mock.Anything).Return(errors.New("disk full")).Once()
	fx.occurrenceRepo.EXPECT().CreateOccurrence(ctx, mock.Anything).Return(nil).Once()

	summary, err := fx.service.EnsureDailyOccurrences(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ExpansionSummary{Created: 1, Failed: 1}, summary)
}

func TestScheduleService_UpsertTemplates_NotAdmin(t *testing.T) {
	fx := createTestScheduleService(t, time.Now())
	ctx := context.Background()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

	_, err := fx.service.UpsertTemplates(ctx, uuid.New(), masjid.ID, []usecase.TemplateInput{{PrayerName: "fajr", AdhanTime: "05:00"}})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestScheduleService_UpsertTemplates_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.TemplateInput
		wantErr error
	}{
		{"unknown prayer", usecase.TemplateInput{PrayerName: "tahajjud", AdhanTime: "03:00"}, domainerrors.ErrInvalidPrayer},
		{"bad adhan", usecase.TemplateInput{PrayerName: "fajr", AdhanTime: "5am"}, domainerrors.ErrInvalidLocalTime},
		{"bad iqamah", usecase.TemplateInput{PrayerName: "fajr", AdhanTime: "05:00", IqamahTime: "24:00"}, domainerrors.ErrInvalidLocalTime},
		{"missing adhan", usecase.TemplateInput{PrayerName: "asr"}, domainerrors.ErrInvalidLocalTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestScheduleService(t, time.Now())
			ctx := context.Background()
			masjid := kolkataMasjid()

			fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

			_, err := fx.service.UpsertTemplates(ctx, masjid.AdminUserID, masjid.ID, []usecase.TemplateInput{tt.input})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestScheduleService_GetSchedule_MasjidNotFound(t *testing.T) {
	fx := createTestScheduleService(t, time.Now())
	ctx := context.Background()
	masjidID := uuid.New()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjidID).Return(nil, repository.ErrMasjidNotFound)

	_, err := fx.service.GetSchedule(ctx, masjidID, "2025-03-10")
	assert.ErrorIs(t, err, domainerrors.ErrMasjidNotFound)
}
