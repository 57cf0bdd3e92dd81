package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SubscriptionPreferences holds per-masjid listener choices.
type SubscriptionPreferences struct {
	MutedPrayers []string `json:"mutedPrayers"`
	WakeOnSilent bool     `json:"wakeOnSilent"`
}

// MutesPrayer reports whether start alerts for prayer are muted.
func (p SubscriptionPreferences) MutesPrayer(prayer string) bool {
	return prayer != "" && slices.Contains(p.MutedPrayers, prayer)
}

// Subscription represents a user following a masjid.
type Subscription struct {
	ID           uuid.UUID               `json:"id"`            // The Global Unique Identifier (GUID) for the subscription.
	UserID       uuid.UUID               `json:"user_id"`       // The ID of the user who subscribed.
	MasjidID     uuid.UUID               `json:"masjid_id"`     // The ID of the masjid being followed.
	Preferences  SubscriptionPreferences `json:"preferences"`   // Listener preferences.
	IsMuted      bool                    `json:"is_muted"`      // Silences every alert for this masjid.
	MuteUntil    *time.Time              `json:"mute_until"`    // Silences every alert until this instant.
	SubscribedAt time.Time               `json:"subscribed_at"` // Timestamp of when the subscription was created.
	UpdatedAt    time.Time               `json:"updated_at"`    // Timestamp of the last modification.
}

// IsSilenced reports whether the subscription suppresses every alert at now.
func (s *Subscription) IsSilenced(now time.Time) bool {
	if s.IsMuted {
		return true
	}

	return s.MuteUntil != nil && s.MuteUntil.After(now)
}
