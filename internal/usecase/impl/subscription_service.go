package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

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

type subscriptionService struct {
	masjidRepo       repository.MasjidRepository
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	MasjidRepo       repository.MasjidRepository
	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		masjidRepo:       params.MasjidRepo,
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Follow subscribes the user to an approved masjid. The optional device is registered in the same transaction.
func (s *subscriptionService) Follow(ctx context.Context, userID, masjidID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.Subscription, error) {
	masjid, err := loadMasjid(ctx, s.masjidRepo, masjidID)
	if err != nil {
		return nil, err
	}
	if masjid.Status != entity.MasjidStatusApproved {
		return nil, domainerrors.ErrMasjidNotApproved
	}

	now := s.now()
	var subscription *entity.Subscription

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		sub, err := findOrCreateSubscription(ctx, factory.NewSubscriptionRepository(), userID, masjidID, now)
		if err != nil {
			return err
		}

		if deviceInfo != nil {
			if _, err := upsertDevice(ctx, factory.NewDeviceRepository(), userID, deviceInfo, now); err != nil {
				return err
			}
		}

		subscription = sub

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Masjid followed",
		slog.String("user_id", userID.String()),
		slog.String("masjid_id", masjidID.String()),
	)

	return subscription, nil
}

func findOrCreateSubscription(ctx context.Context, repo repository.SubscriptionRepository, userID, masjidID uuid.UUID, now time.Time) (*entity.Subscription, error) {
	existing, err := repo.FindSubscriptionByUserAndMasjid(ctx, userID, masjidID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find subscription by user and masjid")
	}

	subscription := &entity.Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		MasjidID:     masjidID,
		Preferences:  entity.SubscriptionPreferences{MutedPrayers: []string{}},
		SubscribedAt: now,
		UpdatedAt:    now,
	}

	if err := repo.CreateSubscription(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscription) {
			return nil, domainerrors.ErrConflict.WithDetails("already following this masjid")
		}

		return nil, errors.Wrap(err, "failed to create subscription")
	}

	return subscription, nil
}

// FollowByQR follows the masjid encoded in a scanned QR code
func (s *subscriptionService) FollowByQR(ctx context.Context, userID uuid.UUID, qrData string, deviceInfo *usecase.DeviceInfo) (*entity.Subscription, error) {
	masjidID, err := s.qrcodeService.ParseFollowQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return s.Follow(ctx, userID, masjidID, deviceInfo)
}

// Unfollow removes the subscription
func (s *subscriptionService) Unfollow(ctx context.Context, userID, masjidID uuid.UUID) error {
	subscription, err := s.findSubscription(ctx, userID, masjidID)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepo.DeleteSubscription(ctx, subscription.ID); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

// ListSubscriptions returns the masjids the user follows
func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.FindSubscriptionsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return subscriptions, nil
}

// UpdatePreferences replaces muted prayers and the wake-on-silent flag
func (s *subscriptionService) UpdatePreferences(ctx context.Context, userID, masjidID uuid.UUID, prefs entity.SubscriptionPreferences) (*entity.Subscription, error) {
	muted := make([]string, 0, len(prefs.MutedPrayers))
	for _, name := range prefs.MutedPrayers {
		if !entity.PrayerName(name).IsValid() {
			return nil, domainerrors.ErrInvalidPrayer.WithDetails(name)
		}
		if !slices.Contains(muted, name) {
			muted = append(muted, name)
		}
	}
	prefs.MutedPrayers = muted

	subscription, err := s.findSubscription(ctx, userID, masjidID)
	if err != nil {
		return nil, err
	}

	if err := s.subscriptionRepo.UpdatePreferences(ctx, subscription.ID, prefs); err != nil {
		return nil, errors.Wrap(err, "failed to update subscription preferences")
	}

	subscription.Preferences = prefs
	subscription.UpdatedAt = s.now()

	return subscription, nil
}

// SetMute mutes or unmutes every alert of a masjid
func (s *subscriptionService) SetMute(ctx context.Context, userID, masjidID uuid.UUID, input *usecase.MuteInput) (*entity.Subscription, error) {
	now := s.now()
	if input.MuteUntil != nil && !input.MuteUntil.After(now) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("mute_until must be in the future")
	}

	subscription, err := s.findSubscription(ctx, userID, masjidID)
	if err != nil {
		return nil, err
	}

	if err := s.subscriptionRepo.UpdateMute(ctx, subscription.ID, input.IsMuted, input.MuteUntil); err != nil {
		return nil, errors.Wrap(err, "failed to update subscription mute")
	}

	subscription.IsMuted = input.IsMuted
	subscription.MuteUntil = input.MuteUntil
	subscription.UpdatedAt = now

	return subscription, nil
}

func (s *subscriptionService) findSubscription(ctx context.Context, userID, masjidID uuid.UUID) (*entity.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindSubscriptionByUserAndMasjid(ctx, userID, masjidID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user and masjid")
	}

	return subscription, nil
}
