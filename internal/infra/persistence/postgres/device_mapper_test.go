package postgres

import (
	"testing"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceMapper_EmptyTokensBecomeNull(t *testing.T) {
	in := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		DeviceID: "pixel-8",
		Platform: entity.PlatformAndroid,
		FCMToken: "fcm-1",
		IsActive: true,
	}

	row := fromDeviceDomain(in)
	require.NotNil(t, row.FCMToken)
	assert.Equal(t, "fcm-1", *row.FCMToken)
	assert.Nil(t, row.VoIPToken)

	assert.Equal(t, in, toDeviceDomain(row))
}

func TestDeviceMapper_Nil(t *testing.T) {
	assert.Nil(t, fromDeviceDomain(nil))
	assert.Nil(t, toDeviceDomain(nil))
}
