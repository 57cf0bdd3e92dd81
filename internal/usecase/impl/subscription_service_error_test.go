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
)

func TestSubscriptionService_Follow_MasjidNotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	masjidID := uuid.New()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjidID).Return(nil, repository.ErrMasjidNotFound)

	_, err := fx.service.Follow(ctx, uuid.New(), masjidID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrMasjidNotFound)
}

func TestSubscriptionService_Follow_MasjidNotApproved(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	masjid := kolkataMasjid()
	masjid.Status = entity.MasjidStatusRejected

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)

	_, err := fx.service.Follow(ctx, uuid.New(), masjid.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrMasjidNotApproved)
}

func TestSubscriptionService_Follow_DeviceFailureRollsBack(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.expectTransaction(ctx, true)
	fx.txSubRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(nil, repository.ErrSubscriptionNotFound)
	fx.txSubRepo.EXPECT().CreateSubscription(ctx, mock.Anything).Return(nil)
	fx.txDeviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "d").Return(nil, repository.ErrDeviceNotFound)
	fx.txDeviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.Follow(ctx, userID, masjid.ID, &usecase.DeviceInfo{DeviceID: "d", Platform: "ios", VoIPToken: "v"})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenTaken)
}

func TestSubscriptionService_Follow_ConcurrentFollowConflicts(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.expectTransaction(ctx, false)
	fx.txSubRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(nil, repository.ErrSubscriptionNotFound)
	fx.txSubRepo.EXPECT().CreateSubscription(ctx, mock.Anything).Return(repository.ErrDuplicateSubscription)

	_, err := fx.service.Follow(ctx, userID, masjid.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSubscriptionService_FollowByQR_InvalidCode(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.qrcodeService.EXPECT().ParseFollowQR("garbage").Return(uuid.Nil, errors.New("failed to unmarshal QR code data"))

	_, err := fx.service.FollowByQR(ctx, uuid.New(), "garbage", nil)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
}

func TestSubscriptionService_Unfollow_NotFound(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID, masjidID := uuid.New(), uuid.New()

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjidID).Return(nil, repository.ErrSubscriptionNotFound)

	err := fx.service.Unfollow(ctx, userID, masjidID)
	assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
}

func TestSubscriptionService_UpdatePreferences_UnknownPrayer(t *testing.T) {
	fx := createTestSubscriptionService(t)

	_, err := fx.service.UpdatePreferences(context.Background(), uuid.New(), uuid.New(), entity.SubscriptionPreferences{
		MutedPrayers: []string{"fajr", "witr"},
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrayer)
}

func TestSubscriptionService_SetMute_PastDeadline(t *testing.T) {
	fx := createTestSubscriptionService(t)
	past := subscriptionNow.Add(-time.Minute)

	_, err := fx.service.SetMute(context.Background(), uuid.New(), uuid.New(), &usecase.MuteInput{MuteUntil: &past})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
