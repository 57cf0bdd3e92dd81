package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastModel is the GORM-specific struct for the 'broadcasts' table.
//
// idx_broadcasts_masjid_prayer_day keeps one non-failed broadcast per masjid, prayer and
// day. Ad-hoc sessions have no prayer and are not constrained.
type BroadcastModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MasjidID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_broadcasts_masjid_prayer_day,priority:1,where:status <> 'failed' AND prayer_name IS NOT NULL"`
	PrayerName     *string    `gorm:"type:varchar(20);uniqueIndex:idx_broadcasts_masjid_prayer_day,priority:2"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ScheduledAt    *time.Time `gorm:"type:timestamptz"`
	StartedAt      *time.Time `gorm:"type:timestamptz"`
	EndedAt        *time.Time `gorm:"type:timestamptz"`
	EndedReason    string     `gorm:"type:varchar(40)"`
	BroadcastDay   string     `gorm:"type:date;not null;uniqueIndex:idx_broadcasts_masjid_prayer_day,priority:3"` // UTC day of scheduled_at, or created_at for ad-hoc sessions
	StreamProvider string     `gorm:"type:varchar(40);not null"`
	RoomName       string     `gorm:"type:text"`
	AudioURL       string     `gorm:"type:text"`
	RelayURL       string     `gorm:"type:text"`
	EgressID       string     `gorm:"type:text"`
	RecordingURL   string     `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BroadcastModel) TableName() string {
	return "broadcasts"
}
