package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription relationship.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM, err := fromSubscriptionDomain(subscription)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMasjidNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.SubscribedAt = subscriptionM.SubscribedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindSubscriptionByUserAndMasjid retrieves a subscription by user and masjid IDs.
func (repo *subscriptionRepository) FindSubscriptionByUserAndMasjid(ctx context.Context, userID, masjidID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND masjid_id = ?", userID, masjidID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user and masjid")
	}

	return toSubscriptionDomain(&subscriptionM)
}

// FindSubscriptionsByUser retrieves all subscriptions for a specific user.
func (repo *subscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("subscribed_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toSubscriptionDomains(ctx, subscriptionModels), nil
}

// UpdatePreferences replaces the preferences of a subscription.
func (repo *subscriptionRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, preferences entity.SubscriptionPreferences) error {
	raw, err := marshalPreferences(preferences)
	if err != nil {
		return err
	}

	return repo.update(ctx, id, map[string]any{"preferences": raw}, "failed to update subscription preferences")
}

// UpdateMute sets the mute flag and the optional mute deadline.
func (repo *subscriptionRepository) UpdateMute(ctx context.Context, id uuid.UUID, isMuted bool, muteUntil *time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"is_muted":   isMuted,
		"mute_until": muteUntil,
	}, "failed to update subscription mute")
}

func (repo *subscriptionRepository) update(ctx context.Context, id uuid.UUID, updates map[string]any, msg string) error {
	updates["updated_at"] = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscription removes a subscription by its ID.
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindRecipientsByMasjid loads the masjid's subscriptions, then the active devices of those
// users in one query, and pairs them.
func (repo *subscriptionRepository) FindRecipientsByMasjid(ctx context.Context, masjidID uuid.UUID) ([]*entity.NotificationRecipient, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("masjid_id = ?", masjidID).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by masjid")
	}

	if len(subscriptionModels) == 0 {
		return []*entity.NotificationRecipient{}, nil
	}

	subscriptions := toSubscriptionDomains(ctx, subscriptionModels)
	if len(subscriptions) == 0 {
		return []*entity.NotificationRecipient{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(subscriptions))
	byUser := make(map[uuid.UUID]*entity.Subscription, len(subscriptions))
	for _, sub := range subscriptions {
		userIDs = append(userIDs, sub.UserID)
		byUser[sub.UserID] = sub
	}

	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Order("user_id, created_at").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices for subscribers")
	}

	recipients := make([]*entity.NotificationRecipient, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		sub, ok := byUser[deviceM.UserID]
		if !ok {
			continue
		}
		recipients = append(recipients, &entity.NotificationRecipient{
			Subscription: sub,
			Device:       toDeviceDomain(deviceM),
		})
	}

	return recipients, nil
}

// --- Mapper Functions ---

func marshalPreferences(preferences entity.SubscriptionPreferences) (datatypes.JSON, error) {
	if preferences.MutedPrayers == nil {
		preferences.MutedPrayers = []string{}
	}

	raw, err := json.Marshal(preferences)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal subscription preferences")
	}

	return datatypes.JSON(raw), nil
}

func unmarshalPreferences(raw datatypes.JSON) (entity.SubscriptionPreferences, error) {
	var preferences entity.SubscriptionPreferences
	if len(raw) == 0 {
		return preferences, nil
	}

	if err := json.Unmarshal(raw, &preferences); err != nil {
		return preferences, errors.Wrap(err, "failed to unmarshal subscription preferences")
	}

	return preferences, nil
}

// toSubscriptionDomains logs and skips rows whose preferences cannot be decoded.
func toSubscriptionDomains(ctx context.Context, models []*model.SubscriptionModel) []*entity.Subscription {
	subscriptions := make([]*entity.Subscription, 0, len(models))
	for _, subscriptionM := range models {
		sub, err := toSubscriptionDomain(subscriptionM)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).WarnContext(ctx, "[DB] Skipping subscription with unreadable preferences",
				slog.String("subscription_id", subscriptionM.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions
}

func toSubscriptionDomain(data *model.SubscriptionModel) (*entity.Subscription, error) {
	if data == nil {
		return nil, nil
	}

	preferences, err := unmarshalPreferences(data.Preferences)
	if err != nil {
		return nil, err
	}

	return &entity.Subscription{
		ID:           data.ID,
		UserID:       data.UserID,
		MasjidID:     data.MasjidID,
		Preferences:  preferences,
		IsMuted:      data.IsMuted,
		MuteUntil:    utcPtr(data.MuteUntil),
		SubscribedAt: data.SubscribedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

func fromSubscriptionDomain(data *entity.Subscription) (*model.SubscriptionModel, error) {
	if data == nil {
		return nil, nil
	}

	preferences, err := marshalPreferences(data.Preferences)
	if err != nil {
		return nil, err
	}

	return &model.SubscriptionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		MasjidID:     data.MasjidID,
		Preferences:  preferences,
		IsMuted:      data.IsMuted,
		MuteUntil:    data.MuteUntil,
		SubscribedAt: data.SubscribedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}
