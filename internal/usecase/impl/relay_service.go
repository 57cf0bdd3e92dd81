package impl

import (
	"context"
	"log/slog"

	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type relayService struct {
	broadcastRepo repository.BroadcastRepository
	relays        service.RelayManager
	logger        *slog.Logger
}

// RelayServiceParams holds dependencies for RelayService, injected by Fx.
type RelayServiceParams struct {
	fx.In

	BroadcastRepo repository.BroadcastRepository
	Relays        service.RelayManager
	Logger        *slog.Logger
}

// NewRelayService creates a new relay service instance
func NewRelayService(params RelayServiceParams) usecase.RelayUsecase {
	return &relayService{
		broadcastRepo: params.BroadcastRepo,
		relays:        params.Relays,
		logger:        params.Logger,
	}
}

func (s *relayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleRelayStart starts the relay of a live broadcast and stores its output on the broadcast.
func (s *relayService) HandleRelayStart(ctx context.Context, payload *usecase.RelayJobPayload) error {
	if payload.BroadcastID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("broadcast ID is required")
	}

	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, payload.BroadcastID)
	if err != nil {
		return err
	}

	if broadcast.Status != entity.BroadcastStatusLive {
		s.log(ctx).Info("[Relay] Broadcast not live, relay not started",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.String("status", broadcast.Status.String()),
		)

		return nil
	}

	roomName := payload.RoomName
	if roomName == "" {
		roomName = broadcast.RoomName
	}

	output, err := s.relays.StartRelay(ctx, broadcast.ID, roomName)
	if err != nil {
		if errors.Is(err, domainerrors.ErrRelayAlreadyRunning) {
			return nil
		}

		return errors.Wrap(err, "failed to start relay")
	}

	metadata := entity.StreamMetadata{
		AudioURL: output.PlaybackURL,
		RelayURL: output.RelayURL,
		EgressID: output.EgressID,
	}
	if err := s.broadcastRepo.UpdateStreamMetadata(ctx, broadcast.ID, metadata); err != nil {
		// An orphaned relay would keep running until shutdown
		if stopErr := s.relays.StopRelay(ctx, broadcast.ID); stopErr != nil {
			s.log(ctx).Error("[Relay] Failed to stop relay after metadata error",
				slog.String("broadcast_id", broadcast.ID.String()),
				slog.Any("error", stopErr),
			)
		}

		return errors.Wrap(err, "failed to store relay output")
	}

	s.log(ctx).Info("[Relay] Relay attached",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("playback_url", output.PlaybackURL),
		slog.String("egress_id", output.EgressID),
	)

	return nil
}

// HandleRelayStop stops the relay of a broadcast. Unknown broadcasts are a no-op.
func (s *relayService) HandleRelayStop(ctx context.Context, payload *usecase.RelayJobPayload) error {
	if payload.BroadcastID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("broadcast ID is required")
	}

	if err := s.relays.StopRelay(ctx, payload.BroadcastID); err != nil {
		return errors.Wrap(err, "failed to stop relay")
	}

	return nil
}
