package repository

import (
	"context"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a device ID or push token is already registered.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDeviceByUserAndDeviceID retrieves the device a client registered under deviceID.
	FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateDevice writes tokens, platform and flags of an existing device.
	UpdateDevice(ctx context.Context, device *entity.UserDevice) error

	// DeactivateDevices marks devices inactive so they stop receiving pushes.
	DeactivateDevices(ctx context.Context, ids []uuid.UUID) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
