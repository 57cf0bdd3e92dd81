package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents a log entry for a single push sent to a user device.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BroadcastID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null"`
	EventType    string    `gorm:"type:varchar(10);not null"`
	Status       string    `gorm:"type:varchar(10);not null;default:'queued'"`
	Provider     string    `gorm:"type:varchar(20);not null"`
	MessageID    string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
