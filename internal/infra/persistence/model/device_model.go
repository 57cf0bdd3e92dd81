package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
type UserDeviceModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device"`
	DeviceID              string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform              string    `gorm:"type:varchar(20);not null"`
	FCMToken              *string   `gorm:"type:varchar(512);uniqueIndex"`
	VoIPToken             *string   `gorm:"column:voip_token;type:varchar(512);uniqueIndex"`
	IsActive              bool      `gorm:"not null;default:true"`
	IsWakeOnSilentEnabled bool      `gorm:"not null;default:false"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
