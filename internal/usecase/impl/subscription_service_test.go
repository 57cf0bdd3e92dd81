package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	mockRepo "masjidcast/internal/mocks/repository"
	mockSvc "masjidcast/internal/mocks/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var subscriptionNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	masjidRepo       *mockRepo.MockMasjidRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	txManager        *mockRepo.MockTransactionManager
	txFactory        *mockRepo.MockRepositoryFactory
	txSubRepo        *mockRepo.MockSubscriptionRepository
	txDeviceRepo     *mockRepo.MockDeviceRepository
	qrcodeService    *mockSvc.MockQRCodeService
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	fx := subscriptionServiceFixtures{
		masjidRepo:       mockRepo.NewMockMasjidRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		txFactory:        mockRepo.NewMockRepositoryFactory(t),
		txSubRepo:        mockRepo.NewMockSubscriptionRepository(t),
		txDeviceRepo:     mockRepo.NewMockDeviceRepository(t),
		qrcodeService:    mockSvc.NewMockQRCodeService(t),
	}

	service := NewSubscriptionService(SubscriptionServiceParams{
		MasjidRepo:       fx.masjidRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		TxManager:        fx.txManager,
		QRCodeService:    fx.qrcodeService,
		Logger:           discardLogger(),
	})
	service.(*subscriptionService).now = fixedClock(subscriptionNow)
	fx.service = service

	return fx
}

// expectTransaction runs the transaction body against the tx-scoped mocks.
func (fx subscriptionServiceFixtures) expectTransaction(ctx context.Context, withDevice bool) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.txFactory)
		})
	fx.txFactory.EXPECT().NewSubscriptionRepository().Return(fx.txSubRepo)
	if withDevice {
		fx.txFactory.EXPECT().NewDeviceRepository().Return(fx.txDeviceRepo)
	}
}

func TestSubscriptionService_Follow_WithDevice(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	masjid := kolkataMasjid()

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.expectTransaction(ctx, true)
	fx.txSubRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(nil, repository.ErrSubscriptionNotFound)
	fx.txSubRepo.EXPECT().
		CreateSubscription(ctx, mock.MatchedBy(func(s *entity.Subscription) bool {
			return s.UserID == userID && s.MasjidID == masjid.ID && s.SubscribedAt.Equal(subscriptionNow)
		})).
		Return(nil)
	fx.txDeviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "pixel-8").Return(nil, repository.ErrDeviceNotFound)
	fx.txDeviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

	sub, err := fx.service.Follow(ctx, userID, masjid.ID, &usecase.DeviceInfo{
		DeviceID: "pixel-8",
		Platform: "android",
		FCMToken: "fcm-token",
	})
	require.NoError(t, err)
	assert.Equal(t, masjid.ID, sub.MasjidID)
	assert.NotNil(t, sub.Preferences.MutedPrayers)
}

func TestSubscriptionService_Follow_ExistingSubscriptionIsReturned(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	masjid := kolkataMasjid()
	existing := &entity.Subscription{ID: uuid.New(), UserID: userID, MasjidID: masjid.ID}

	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.expectTransaction(ctx, false)
	fx.txSubRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(existing, nil)

	sub, err := fx.service.Follow(ctx, userID, masjid.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, sub)
}

func TestSubscriptionService_FollowByQR(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	masjid := kolkataMasjid()
	qrData := `{"masjid_id":"` + masjid.ID.String() + `","type":"follow"}`

	fx.qrcodeService.EXPECT().ParseFollowQR(qrData).Return(masjid.ID, nil)
	fx.masjidRepo.EXPECT().FindMasjidByID(ctx, masjid.ID).Return(masjid, nil)
	fx.expectTransaction(ctx, false)
	fx.txSubRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, userID, masjid.ID).Return(nil, repository.ErrSubscriptionNotFound)
	fx.txSubRepo.EXPECT().CreateSubscription(ctx, mock.Anything).Return(nil)

	sub, err := fx.service.FollowByQR(ctx, userID, qrData, nil)
	require.NoError(t, err)
	assert.Equal(t, masjid.ID, sub.MasjidID)
}

func TestSubscriptionService_Unfollow(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	sub := subscriptionFor(uuid.New())

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, sub.UserID, sub.MasjidID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().DeleteSubscription(ctx, sub.ID).Return(nil)

	assert.NoError(t, fx.service.Unfollow(ctx, sub.UserID, sub.MasjidID))
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	userID := uuid.New()
	subs := []*entity.Subscription{{ID: uuid.New(), UserID: userID}}

	fx.subscriptionRepo.EXPECT().FindSubscriptionsByUser(ctx, userID).Return(subs, nil)

	got, err := fx.service.ListSubscriptions(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, subs, got)
}

func TestSubscriptionService_UpdatePreferences_DeduplicatesPrayers(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	sub := subscriptionFor(uuid.New())
	want := entity.SubscriptionPreferences{MutedPrayers: []string{"fajr", "isha"}, WakeOnSilent: true}

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, sub.UserID, sub.MasjidID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().UpdatePreferences(ctx, sub.ID, want).Return(nil)

	got, err := fx.service.UpdatePreferences(ctx, sub.UserID, sub.MasjidID, entity.SubscriptionPreferences{
		MutedPrayers: []string{"fajr", "isha", "fajr"},
		WakeOnSilent: true,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got.Preferences)
}

func TestSubscriptionService_SetMute(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	sub := subscriptionFor(uuid.New())
	until := subscriptionNow.Add(8 * time.Hour)

	fx.subscriptionRepo.EXPECT().FindSubscriptionByUserAndMasjid(ctx, sub.UserID, sub.MasjidID).Return(sub, nil)
	fx.subscriptionRepo.EXPECT().UpdateMute(ctx, sub.ID, false, &until).Return(nil)

	got, err := fx.service.SetMute(ctx, sub.UserID, sub.MasjidID, &usecase.MuteInput{MuteUntil: &until})
	require.NoError(t, err)
	assert.True(t, got.IsSilenced(subscriptionNow))
	assert.False(t, got.IsSilenced(until.Add(time.Second)))
}
