package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"
	mockRepo "masjidcast/internal/mocks/repository"
	mockSvc "masjidcast/internal/mocks/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayServiceFixtures struct {
	service       usecase.RelayUsecase
	broadcastRepo *mockRepo.MockBroadcastRepository
	relays        *mockSvc.MockRelayManager
}

func createTestRelayService(t *testing.T) relayServiceFixtures {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	relays := mockSvc.NewMockRelayManager(t)

	return relayServiceFixtures{
		service: NewRelayService(RelayServiceParams{
			BroadcastRepo: broadcastRepo,
			Relays:        relays,
			Logger:        discardLogger(),
		}),
		broadcastRepo: broadcastRepo,
		relays:        relays,
	}
}

func TestRelayService_HandleRelayStart_PersistsOutput(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	output := &service.RelayOutput{
		PlaybackURL: "https://cdn.example.com/hls/" + broadcast.ID.String() + "/index.m3u8",
		EgressID:    "EG_abc",
		RelayURL:    "rtmp://relay.example.com/live/" + broadcast.ID.String(),
	}

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.relays.EXPECT().StartRelay(ctx, broadcast.ID, broadcast.RoomName).Return(output, nil)
	fx.broadcastRepo.EXPECT().UpdateStreamMetadata(ctx, broadcast.ID, entity.StreamMetadata{
		AudioURL: output.PlaybackURL,
		RelayURL: output.RelayURL,
		EgressID: "EG_abc",
	}).Return(nil)

	err := fx.service.HandleRelayStart(ctx, &usecase.RelayJobPayload{BroadcastID: broadcast.ID})
	require.NoError(t, err)
}

func TestRelayService_HandleRelayStart_NotLiveIsNoop(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcast := scheduledFajr(kolkataMasjid())
	broadcast.Status = entity.BroadcastStatusCompleted

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)

	assert.NoError(t, fx.service.HandleRelayStart(ctx, &usecase.RelayJobPayload{BroadcastID: broadcast.ID}))
}

func TestRelayService_HandleRelayStart_AlreadyRunningIsNoop(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.relays.EXPECT().StartRelay(ctx, broadcast.ID, "custom-room").Return(nil, domainerrors.ErrRelayAlreadyRunning)

	assert.NoError(t, fx.service.HandleRelayStart(ctx, &usecase.RelayJobPayload{BroadcastID: broadcast.ID, RoomName: "custom-room"}))
}

func TestRelayService_HandleRelayStart_MetadataFailureStopsRelay(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.relays.EXPECT().StartRelay(ctx, broadcast.ID, broadcast.RoomName).Return(&service.RelayOutput{}, nil)
	fx.broadcastRepo.EXPECT().UpdateStreamMetadata(ctx, broadcast.ID, entity.StreamMetadata{}).Return(errors.New("connection reset"))
	fx.relays.EXPECT().StopRelay(ctx, broadcast.ID).Return(nil)

	assert.Error(t, fx.service.HandleRelayStart(ctx, &usecase.RelayJobPayload{BroadcastID: broadcast.ID}))
}

func TestRelayService_HandleRelayStart_DisabledIsReturned(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcast := liveBroadcast(kolkataMasjid(), time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC))

	fx.broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	fx.relays.EXPECT().StartRelay(ctx, broadcast.ID, broadcast.RoomName).Return(nil, domainerrors.ErrRelayDisabled)

	err := fx.service.HandleRelayStart(ctx, &usecase.RelayJobPayload{BroadcastID: broadcast.ID})
	assert.ErrorIs(t, err, domainerrors.ErrRelayDisabled)
}

func TestRelayService_HandleRelayStop(t *testing.T) {
	fx := createTestRelayService(t)
	ctx := context.Background()
	broadcastID := uuid.New()

	fx.relays.EXPECT().StopRelay(ctx, broadcastID).Return(nil)

	assert.NoError(t, fx.service.HandleRelayStop(ctx, &usecase.RelayJobPayload{BroadcastID: broadcastID}))
	assert.ErrorIs(t, fx.service.HandleRelayStop(ctx, &usecase.RelayJobPayload{}), domainerrors.ErrValidationFailed)
}
