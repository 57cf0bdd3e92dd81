package entity

import (
	"time"

	"github.com/google/uuid"
)

// MasjidStatus is the approval state of a masjid.
type MasjidStatus string

const (
	MasjidStatusPending  MasjidStatus = "pending"
	MasjidStatusApproved MasjidStatus = "approved"
	MasjidStatusRejected MasjidStatus = "rejected"
)

// Masjid is the tenant organization broadcasting prayer calls.
type Masjid struct {
	ID          uuid.UUID    `json:"id"`            // The Global Unique Identifier (GUID) for the masjid.
	Name        string       `json:"name"`          // Display name.
	Timezone    string       `json:"timezone"`      // IANA timezone used to resolve local prayer times.
	Status      MasjidStatus `json:"status"`        // Approval state.
	IsActive    bool         `json:"is_active"`     // Inactive masjids are ignored by the planner.
	AdminUserID uuid.UUID    `json:"admin_user_id"` // The account that manages this masjid.
	CreatedAt   time.Time    `json:"created_at"`    // Timestamp of when this masjid was registered.
	UpdatedAt   time.Time    `json:"updated_at"`    // Timestamp of the last modification.
}

// IsBroadcastable reports whether the planner may create broadcasts for the masjid.
func (m *Masjid) IsBroadcastable() bool {
	return m.Status == MasjidStatusApproved && m.IsActive
}

// Location loads the masjid's timezone.
func (m *Masjid) Location() (*time.Location, error) {
	return time.LoadLocation(m.Timezone)
}
