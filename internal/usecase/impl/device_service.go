package impl

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	now        func() time.Time
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice registers a new device or refreshes an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	return upsertDevice(ctx, s.deviceRepo, userID, deviceInfo, s.now())
}

// upsertDevice creates the device or refreshes its tokens when the client device ID is known.
// A re-registered device is reactivated.
func upsertDevice(ctx context.Context, repo repository.DeviceRepository, userID uuid.UUID, info *usecase.DeviceInfo, now time.Time) (*entity.UserDevice, error) {
	platform := entity.Platform(info.Platform)
	if !platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown platform " + info.Platform)
	}
	if info.FCMToken == "" && info.VoIPToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("a push token is required")
	}

	device, err := repo.FindDeviceByUserAndDeviceID(ctx, userID, info.DeviceID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to find device")
	}

	if device != nil {
		device.Platform = platform
		device.FCMToken = info.FCMToken
		device.VoIPToken = info.VoIPToken
		device.IsWakeOnSilentEnabled = info.WakeOnSilent
		device.IsActive = true
		device.UpdatedAt = now

		if err := repo.UpdateDevice(ctx, device); err != nil {
			return nil, mapDeviceWriteError(err, "failed to update device")
		}

		return device, nil
	}

	device = &entity.UserDevice{
		ID:                    uuid.New(),
		UserID:                userID,
		DeviceID:              info.DeviceID,
		Platform:              platform,
		FCMToken:              info.FCMToken,
		VoIPToken:             info.VoIPToken,
		IsActive:              true,
		IsWakeOnSilentEnabled: info.WakeOnSilent,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := repo.CreateDevice(ctx, device); err != nil {
		return nil, mapDeviceWriteError(err, "failed to create device")
	}

	return device, nil
}

func mapDeviceWriteError(err error, message string) error {
	if errors.Is(err, repository.ErrDuplicateDevice) {
		return domainerrors.ErrDeviceTokenTaken
	}

	return errors.Wrap(err, message)
}

// UpdateTokens updates the push tokens of a device the user owns
func (s *deviceService) UpdateTokens(ctx context.Context, userID, deviceID uuid.UUID, tokens *usecase.DeviceTokens) (*entity.UserDevice, error) {
	device, err := s.ownedDevice(ctx, userID, deviceID)
	if err != nil {
		return nil, err
	}

	if tokens.FCMToken != nil {
		device.FCMToken = *tokens.FCMToken
	}
	if tokens.VoIPToken != nil {
		device.VoIPToken = *tokens.VoIPToken
	}
	if device.PushToken() != "" {
		device.IsActive = true
	}
	device.UpdatedAt = s.now()

	if err := s.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, mapDeviceWriteError(err, "failed to update device tokens")
	}

	return device, nil
}

// GetUserDevices retrieves all devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// RemoveDevice deletes a device the user owns
func (s *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	// Other users' devices are reported as missing
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
