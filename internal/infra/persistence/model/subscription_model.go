package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
// It represents a user following a masjid.
type SubscriptionModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_masjid"`
	MasjidID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_user_masjid;index"`
	Preferences  datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"` // {"mutedPrayers": ["fajr"], "wakeOnSilent": true}
	IsMuted      bool           `gorm:"not null;default:false"`
	MuteUntil    *time.Time     `gorm:"type:timestamptz"`
	SubscribedAt time.Time      `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
