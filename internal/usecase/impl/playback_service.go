package impl

import (
	"context"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type playbackService struct {
	broadcastRepo    repository.BroadcastRepository
	subscriptionRepo repository.SubscriptionRepository
	signer           service.PlaybackSigner
	store            service.PlaybackStore
	urlTTL           time.Duration
	now              func() time.Time
}

// PlaybackServiceParams holds dependencies for PlaybackService, injected by Fx.
type PlaybackServiceParams struct {
	fx.In

	Config           *config.Config
	BroadcastRepo    repository.BroadcastRepository
	SubscriptionRepo repository.SubscriptionRepository
	Signer           service.PlaybackSigner
	Store            service.PlaybackStore
}

// NewPlaybackService creates a new HLS playback service instance
func NewPlaybackService(params PlaybackServiceParams) usecase.PlaybackUsecase {
	return &playbackService{
		broadcastRepo:    params.BroadcastRepo,
		subscriptionRepo: params.SubscriptionRepo,
		signer:           params.Signer,
		store:            params.Store,
		urlTTL:           params.Config.HLS.URLTTL,
		now:              time.Now,
	}
}

// GetPlaybackURL signs the playlist URL of a relayed broadcast for a follower of its masjid.
func (s *playbackService) GetPlaybackURL(ctx context.Context, userID, broadcastID uuid.UUID) (*usecase.PlaybackURL, error) {
	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, broadcastID)
	if err != nil {
		return nil, err
	}

	if broadcast.Status != entity.BroadcastStatusLive {
		return nil, domainerrors.ErrBroadcastNotLive
	}

	if err := ensureSubscribed(ctx, s.subscriptionRepo, userID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	url, expiresAt := s.signer.SignedURL(broadcast.ID, s.urlTTL)

	return &usecase.PlaybackURL{URL: url, ExpiresAt: expiresAt}, nil
}

// OpenAsset serves a playlist or segment to a signed URL holder or to a subscriber.
func (s *playbackService) OpenAsset(ctx context.Context, req *usecase.AssetRequest) (*service.PlaybackAsset, error) {
	if req.Signature != "" && s.signer.Verify(req.BroadcastID, req.Exp, req.Signature, s.now()) {
		return s.store.Open(ctx, req.BroadcastID, req.File)
	}

	if req.UserID == nil {
		return nil, domainerrors.ErrPlaybackDenied
	}

	broadcast, err := loadBroadcast(ctx, s.broadcastRepo, req.BroadcastID)
	if err != nil {
		return nil, err
	}

	if err := ensureSubscribed(ctx, s.subscriptionRepo, *req.UserID, broadcast.MasjidID); err != nil {
		return nil, err
	}

	return s.store.Open(ctx, broadcast.ID, req.File)
}
