package model

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleTemplateModel is the GORM-specific struct for the 'schedule_templates' table.
type ScheduleTemplateModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MasjidID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_templates_masjid_prayer"`
	PrayerName  string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_schedule_templates_masjid_prayer"`
	AdhanTime   string    `gorm:"type:varchar(5);not null"`
	IqamahTime  *string   `gorm:"type:varchar(5)"`
	KhutbahTime *string   `gorm:"type:varchar(5)"`
	IsJuma      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleTemplateModel) TableName() string {
	return "schedule_templates"
}

// ScheduleOccurrenceModel is the GORM-specific struct for the 'schedule_occurrences' table.
type ScheduleOccurrenceModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MasjidID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_schedule_occurrences_masjid_date_prayer"`
	Date       string     `gorm:"type:date;not null;uniqueIndex:idx_schedule_occurrences_masjid_date_prayer"`
	PrayerName string     `gorm:"type:varchar(20);not null;uniqueIndex:idx_schedule_occurrences_masjid_date_prayer"`
	AdhanAt    time.Time  `gorm:"type:timestamptz;not null;index"`
	IqamahAt   *time.Time `gorm:"type:timestamptz"`
	KhutbahAt  *time.Time `gorm:"type:timestamptz"`
	IsJuma     bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ScheduleOccurrenceModel) TableName() string {
	return "schedule_occurrences"
}
