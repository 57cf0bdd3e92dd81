package repository

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when trying to create a subscription that already exists.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for subscription-related database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new subscription relationship.
	CreateSubscription(ctx context.Context, subscription *entity.Subscription) error

	// FindSubscriptionByUserAndMasjid retrieves a subscription by user and masjid IDs.
	FindSubscriptionByUserAndMasjid(ctx context.Context, userID, masjidID uuid.UUID) (*entity.Subscription, error)

	// FindSubscriptionsByUser retrieves all subscriptions for a specific user.
	FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// UpdatePreferences replaces the preferences of a subscription.
	UpdatePreferences(ctx context.Context, id uuid.UUID, preferences entity.SubscriptionPreferences) error

	// UpdateMute sets the mute flag and the optional mute deadline.
	UpdateMute(ctx context.Context, id uuid.UUID, isMuted bool, muteUntil *time.Time) error

	// DeleteSubscription removes a subscription by its ID.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	// FindRecipientsByMasjid joins every subscription of the masjid with the subscriber's active devices.
	FindRecipientsByMasjid(ctx context.Context, masjidID uuid.UUID) ([]*entity.NotificationRecipient, error)
}
