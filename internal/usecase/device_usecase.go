package usecase

import (
	"context"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceID     string `json:"device_id" validate:"required"`
	Platform     string `json:"platform" validate:"required,oneof=android ios web"`
	FCMToken     string `json:"fcm_token"`
	VoIPToken    string `json:"voip_token"`
	WakeOnSilent bool   `json:"wake_on_silent"`
}

// DeviceTokens carries push token changes. Nil fields are left untouched.
type DeviceTokens struct {
	FCMToken  *string `json:"fcm_token"`
	VoIPToken *string `json:"voip_token"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes an existing one
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	// UpdateTokens updates the push tokens of a device the user owns
	UpdateTokens(ctx context.Context, userID, deviceID uuid.UUID, tokens *DeviceTokens) (*entity.UserDevice, error)

	// GetUserDevices retrieves all devices for a user
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RemoveDevice deletes a device the user owns
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
