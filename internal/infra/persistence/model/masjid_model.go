package model

import (
	"time"

	"github.com/google/uuid"
)

// MasjidModel is the GORM-specific struct for the 'masjids' table.
type MasjidModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:text;not null"`
	Timezone    string    `gorm:"type:varchar(64);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	IsActive    bool      `gorm:"not null;default:true"`
	AdminUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MasjidModel) TableName() string {
	return "masjids"
}
