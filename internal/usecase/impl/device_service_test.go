package impl

import (
	"context"
	"testing"
	"time"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	mockRepo "masjidcast/internal/mocks/repository"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)
	service.(*deviceService).now = fixedClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		DeviceID:     "device-123",
		Platform:     "ios",
		FCMToken:     "test-fcm-token",
		VoIPToken:    "test-voip-token",
		WakeOnSilent: true,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, entity.PlatformIOS, device.Platform)
	assert.Equal(t, "test-voip-token", device.VoIPToken)
	assert.True(t, device.UsesVoIP())
	assert.True(t, device.IsActive)
	assert.True(t, device.IsWakeOnSilentEnabled)
}

func TestDeviceService_RegisterDevice_RefreshesExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
		FCMToken: "old-token",
		IsActive: false,
	}

	fx.deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(existing, nil)

	fx.deviceRepo.EXPECT().
		UpdateDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.ID == existing.ID && d.FCMToken == "new-token" && d.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		DeviceID: "device-123",
		Platform: "android",
		FCMToken: "new-token",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
}

func TestDeviceService_UpdateTokens(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		Platform:  entity.PlatformIOS,
		FCMToken:  "fcm",
		VoIPToken: "old-voip",
		IsActive:  true,
	}
	voip := "new-voip"

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(existing, nil)
	fx.deviceRepo.EXPECT().UpdateDevice(ctx, existing).Return(nil)

	device, err := fx.service.UpdateTokens(ctx, userID, existing.ID, &usecase.DeviceTokens{VoIPToken: &voip})
	require.NoError(t, err)
	assert.Equal(t, "fcm", device.FCMToken)
	assert.Equal(t, "new-voip", device.VoIPToken)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{{ID: uuid.New(), UserID: userID}}

	fx.deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(devices, nil)

	got, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, devices, got)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	assert.NoError(t, fx.service.RemoveDevice(ctx, userID, deviceID))
}
