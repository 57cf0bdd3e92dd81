package postgres

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceWritableColumns are the columns UpdateDevice may change. Ownership and device_id are fixed.
var deviceWritableColumns = []string{
	"platform",
	"fcm_token",
	"voip_token",
	"is_active",
	"is_wake_on_silent_enabled",
	"updated_at",
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func deviceOwnedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	}
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	row := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		// (user_id, device_id) or a push token already held by another row
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = row.ID
	device.CreatedAt = row.CreatedAt
	device.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	return repo.first(ctx, "failed to find device by ID", func(tx *gorm.DB) *gorm.DB {
		return tx.Where("id = ?", id)
	})
}

func (repo *deviceRepository) FindDeviceByUserAndDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error) {
	return repo.first(ctx, "failed to find device by user and device ID", deviceOwnedBy(userID), func(tx *gorm.DB) *gorm.DB {
		return tx.Where("device_id = ?", deviceID)
	})
}

// FindDevicesByUser includes inactive devices, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Scopes(deviceOwnedBy(userID)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = toDeviceDomain(row)
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.UserDevice) error {
	row := fromDeviceDomain(device)
	row.UpdatedAt = time.Now().UTC()

	// Select forces NULL tokens and false flags to be written.
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{ID: device.ID}).
		Select(deviceWritableColumns).
		Updates(row)

	switch {
	case result.Error != nil && isUniqueConstraintViolation(result.Error):
		return repository.ErrDuplicateDevice
	case result.Error != nil:
		return errors.Wrap(result.Error, "failed to update device")
	case result.RowsAffected == 0:
		return repository.ErrDeviceNotFound
	}

	device.UpdatedAt = row.UpdatedAt

	return nil
}

// DeactivateDevices stops pushes to devices whose tokens the provider rejected.
func (repo *deviceRepository) DeactivateDevices(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id IN ? AND is_active", ids).
		UpdateColumns(map[string]any{"is_active": false, "updated_at": time.Now().UTC()}).Error

	return errors.Wrap(err, "failed to deactivate devices")
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserDeviceModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) first(ctx context.Context, msg string, scopes ...func(*gorm.DB) *gorm.DB) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	err := repo.db.WithContext(ctx).Scopes(scopes...).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, msg)
	}

	return toDeviceDomain(&row), nil
}

func toDeviceDomain(row *model.UserDeviceModel) *entity.UserDevice {
	if row == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:                    row.ID,
		UserID:                row.UserID,
		DeviceID:              row.DeviceID,
		Platform:              entity.Platform(row.Platform),
		FCMToken:              derefString(row.FCMToken),
		VoIPToken:             derefString(row.VoIPToken),
		IsActive:              row.IsActive,
		IsWakeOnSilentEnabled: row.IsWakeOnSilentEnabled,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}

// fromDeviceDomain stores empty tokens as NULL so the unique indexes ignore them.
func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	if device == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:                    device.ID,
		UserID:                device.UserID,
		DeviceID:              device.DeviceID,
		Platform:              string(device.Platform),
		FCMToken:              nilIfEmpty(device.FCMToken),
		VoIPToken:             nilIfEmpty(device.VoIPToken),
		IsActive:              device.IsActive,
		IsWakeOnSilentEnabled: device.IsWakeOnSilentEnabled,
		CreatedAt:             device.CreatedAt,
		UpdatedAt:             device.UpdatedAt,
	}
}
