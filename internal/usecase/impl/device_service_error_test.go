package impl

import (
	"context"
	"testing"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()

	_, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{DeviceID: "d", Platform: "symbian", FCMToken: "t"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{DeviceID: "d", Platform: "android"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_TokenTaken(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "d").Return(nil, repository.ErrDeviceNotFound)
	fx.deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "d", Platform: "android", FCMToken: "shared"})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenTaken)
}

func TestDeviceService_RegisterDevice_FindError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByUserAndDeviceID(ctx, userID, "d").Return(nil, errors.New("database error"))

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{DeviceID: "d", Platform: "web", FCMToken: "t"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find device")
}

func TestDeviceService_UpdateTokens_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()
	token := "t"

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	_, err := fx.service.UpdateTokens(ctx, uuid.New(), deviceID, &usecase.DeviceTokens{FCMToken: &token})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_UpdateTokens_OtherUsersDevice(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	deviceID := uuid.New()
	token := "t"

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	_, err := fx.service.UpdateTokens(ctx, uuid.New(), deviceID, &usecase.DeviceTokens{FCMToken: &token})
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestDeviceService_RemoveDevice_DeleteError(t *testing.T) {
	fx := createTestDeviceService(t)
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(errors.New("database error"))

	err := fx.service.RemoveDevice(ctx, userID, deviceID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}
