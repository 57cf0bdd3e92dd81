package usecase

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// MuteInput silences a masjid indefinitely or until MuteUntil.
type MuteInput struct {
	IsMuted   bool       `json:"is_muted"`
	MuteUntil *time.Time `json:"mute_until"`
}

// SubscriptionUsecase defines the interface for following masjids
type SubscriptionUsecase interface {
	// Follow subscribes the user to a masjid and optionally registers a device, atomically
	Follow(ctx context.Context, userID, masjidID uuid.UUID, device *DeviceInfo) (*entity.Subscription, error)

	// FollowByQR follows the masjid encoded in a scanned QR code
	FollowByQR(ctx context.Context, userID uuid.UUID, qrData string, device *DeviceInfo) (*entity.Subscription, error)

	// Unfollow removes the subscription
	Unfollow(ctx context.Context, userID, masjidID uuid.UUID) error

	// ListSubscriptions returns the masjids the user follows
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// UpdatePreferences replaces muted prayers and the wake-on-silent flag
	UpdatePreferences(ctx context.Context, userID, masjidID uuid.UUID, prefs entity.SubscriptionPreferences) (*entity.Subscription, error)

	// SetMute mutes or unmutes every alert of a masjid
	SetMute(ctx context.Context, userID, masjidID uuid.UUID, input *MuteInput) (*entity.Subscription, error)
}
