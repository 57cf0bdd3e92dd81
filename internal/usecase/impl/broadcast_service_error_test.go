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

func TestBroadcastService_StartBroadcast_TerminalStatusConflicts(t *testing.T) {
	for _, status := range []entity.BroadcastStatus{entity.BroadcastStatusCompleted, entity.BroadcastStatusFailed} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestBroadcastService(t, false)
			ctx := context.Background()
			masjid := kolkataMasjid()
			broadcast := scheduledFajr(masjid)
			broadcast.Status = status

			fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
			fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

			_, err := fx.service.StartBroadcast(ctx, masjid.AdminUserID, broadcast.ID)
			assert.ErrorIs(t, err, domainerrors.ErrBroadcastAlreadyEnded)
			assert.Equal(t, 409, domainerrors.StatusOf(err))
		})
	}
}

func TestBroadcastService_EndBroadcast_TerminalStatusConflicts(t *testing.T) {
	for _, status := range []entity.BroadcastStatus{entity.BroadcastStatusCompleted, entity.BroadcastStatusFailed} {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestBroadcastService(t, false)
			ctx := context.Background()
			masjid := kolkataMasjid()
			broadcast := scheduledFajr(masjid)
			broadcast.Status = status

			fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
			fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

			_, err := fx.service.EndBroadcast(ctx, masjid.AdminUserID, broadcast.ID, nil)
			assert.ErrorIs(t, err, domainerrors.ErrBroadcastAlreadyEnded)
			assert.Equal(t, 409, domainerrors.StatusOf(err))
		})
	}
}

func TestBroadcastService_StartBroadcast_AlreadyLive(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := liveBroadcast(masjid, time.Date(2025, 3, 9, 23, 35, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

	_, err := fx.service.StartBroadcast(ctx, masjid.AdminUserID, broadcast.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastAlreadyLive)
}

func TestBroadcastService_StartBroadcast_NotAdmin(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := scheduledFajr(masjid)

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

	_, err := fx.service.StartBroadcast(ctx, uuid.New(), broadcast.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBroadcastService_StartBroadcast_NotFound(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	broadcastID := uuid.New()

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcastID).Return(nil, repository.ErrBroadcastNotFound)

	_, err := fx.service.StartBroadcast(ctx, uuid.New(), broadcastID)
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastNotFound)
}

func TestBroadcastService_StartBroadcast_RoomProviderErrorLeavesStatus(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := scheduledFajr(masjid)

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.rooms.EXPECT().CreateRoom(ctx, broadcast.RoomName).
		Return(domainerrors.NewProviderError("livekit", errors.New("503 service unavailable")))

	_, err := fx.service.StartBroadcast(ctx, masjid.AdminUserID, broadcast.ID)
	require.Error(t, err)
	assert.True(t, domainerrors.IsProviderError(err))
	assert.Equal(t, 502, domainerrors.StatusOf(err))
	assert.Equal(t, entity.BroadcastStatusScheduled, broadcast.Status)
}

func TestBroadcastService_StartBroadcast_ConcurrentStartConflicts(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := scheduledFajr(masjid)

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.rooms.EXPECT().CreateRoom(ctx, broadcast.RoomName).Return(nil)
	fx.rooms.EXPECT().MintAccessToken(mock.Anything, broadcast.RoomName, true).Return("jwt", nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broadcast.ID, startable, mock.Anything).Return(repository.ErrBroadcastStateChanged)

	_, err := fx.service.StartBroadcast(ctx, masjid.AdminUserID, broadcast.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestBroadcastService_StartBroadcast_FollowUpFailuresAreLogged(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := scheduledFajr(masjid)

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.rooms.EXPECT().CreateRoom(ctx, broadcast.RoomName).Return(nil)
	fx.rooms.EXPECT().MintAccessToken(mock.Anything, broadcast.RoomName, true).Return("jwt", nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broadcast.ID, startable, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishBroadcastEvent(ctx, mock.Anything).Return(errors.New("topic not found"))
	fx.queue.EXPECT().Enqueue(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	out, err := fx.service.StartBroadcast(ctx, masjid.AdminUserID, broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BroadcastStatusLive, out.Broadcast.Status)
}

func TestBroadcastService_EndBroadcast_RoomReleaseFailureIsLogged(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	masjid := kolkataMasjid()
	broadcast := liveBroadcast(masjid, time.Date(2025, 3, 9, 23, 35, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broadcast.ID, endableStatuses, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishBroadcastEvent(ctx, mock.Anything).Return(nil)
	fx.rooms.EXPECT().DeleteRoom(ctx, broadcast.RoomName).
		Return(domainerrors.NewProviderError("livekit", errors.New("timeout")))

	_, err := fx.service.EndBroadcast(ctx, masjid.AdminUserID, broadcast.ID, nil)
	assert.NoError(t, err)
}

func TestBroadcastService_HandleAutoEnd_ConcurrentEndIsNoop(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	startedAt := time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC)
	broadcast := liveBroadcast(kolkataMasjid(), startedAt)
	fx.setNow(startedAt.Add(maxDuration))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broadcast.ID, liveOnly, mock.Anything).Return(repository.ErrBroadcastStateChanged)

	assert.NoError(t, fx.service.HandleAutoEnd(ctx, &usecase.AutoEndPayload{BroadcastID: broadcast.ID}))
}

func TestBroadcastService_HandleAutoEnd_TransitionErrorIsRetried(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	startedAt := time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC)
	broadcast := liveBroadcast(kolkataMasjid(), startedAt)
	fx.setNow(startedAt.Add(maxDuration))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broadcast.ID, liveOnly, mock.Anything).Return(errors.New("connection reset"))

	err := fx.service.HandleAutoEnd(ctx, &usecase.AutoEndPayload{BroadcastID: broadcast.ID})
	require.Error(t, err)
	assert.False(t, domainerrors.IsClientError(err))
}

func TestBroadcastService_HandleAutoEnd_MissingBroadcast(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	broadcastID := uuid.New()

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcastID).Return(nil, repository.ErrBroadcastNotFound)

	err := fx.service.HandleAutoEnd(ctx, &usecase.AutoEndPayload{BroadcastID: broadcastID})
	assert.True(t, domainerrors.IsClientError(err))
}

func TestBroadcastService_SweepExpired_ErrorDoesNotStopOthers(t *testing.T) {
	fx := createTestBroadcastService(t, false)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)
	fx.setNow(now)

	masjid := kolkataMasjid()
	broken := liveBroadcast(masjid, now.Add(-time.Hour))
	fine := liveBroadcast(masjid, now.Add(-time.Hour))

	fx.broadcastRepo.EXPECT().FindExpiredLive(ctx, mock.Anything).Return([]*entity.Broadcast{broken, fine}, nil)
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, broken.ID, liveOnly, mock.Anything).Return(errors.New("deadlock detected"))
	fx.broadcastRepo.EXPECT().TransitionBroadcast(ctx, fine.ID, liveOnly, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishBroadcastEvent(ctx, mock.Anything).Return(nil)
	fx.rooms.EXPECT().DeleteRoom(ctx, fine.RoomName).Return(nil)

	summary, err := fx.service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.SweepSummary{Completed: 1, Failed: 1}, summary)
}

func TestBroadcastService_CreateBroadcast_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("masjid not approved", func(t *testing.T) {
		fx := createTestBroadcastService(t, false)
		masjid := kolkataMasjid()
		masjid.Status = entity.MasjidStatusPending
		fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

		_, err := fx.service.CreateBroadcast(ctx, masjid.AdminUserID, &usecase.CreateBroadcastInput{MasjidID: masjid.ID})
		assert.ErrorIs(t, err, domainerrors.ErrMasjidNotApproved)
	})

	t.Run("unknown prayer", func(t *testing.T) {
		fx := createTestBroadcastService(t, false)
		masjid := kolkataMasjid()
		prayer := "duha"
		fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

		_, err := fx.service.CreateBroadcast(ctx, masjid.AdminUserID, &usecase.CreateBroadcastInput{MasjidID: masjid.ID, PrayerName: &prayer})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrayer)
	})

	t.Run("duplicate for the day", func(t *testing.T) {
		fx := createTestBroadcastService(t, false)
		masjid := kolkataMasjid()
		fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
		fx.broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(repository.ErrDuplicateBroadcast)

		_, err := fx.service.CreateBroadcast(ctx, masjid.AdminUserID, &usecase.CreateBroadcastInput{MasjidID: masjid.ID})
		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestBroadcastService_IssueListenerToken_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("not live", func(t *testing.T) {
		fx := createTestBroadcastService(t, false)
		broadcast := scheduledFajr(kolkataMasjid())
		fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)

		_, err := fx.service.IssueListenerToken(ctx, uuid.New(), broadcast.ID)
		assert.ErrorIs(t, err, domainerrors.ErrBroadcastNotLive)
	})

	t.Run("not subscribed", func(t *testing.T) {
		fx := createTestBroadcastService(t, false)
		masjid := kolkataMasjid()
		broadcast := liveBroadcast(masjid, time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))
		userID := uuid.New()
		fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
		fx.subscriptionRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(nil, repository.ErrSubscriptionNotFound)

		_, err := fx.service.IssueListenerToken(ctx, userID, broadcast.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotSubscribed)
	})
}
