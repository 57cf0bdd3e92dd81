package entity

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastStatus is the lifecycle state of a broadcast.
type BroadcastStatus string

const (
	BroadcastStatusPending   BroadcastStatus = "pending"
	BroadcastStatusScheduled BroadcastStatus = "scheduled"
	BroadcastStatusLive      BroadcastStatus = "live"
	BroadcastStatusCompleted BroadcastStatus = "completed"
	BroadcastStatusFailed    BroadcastStatus = "failed"
)

// Reasons recorded when a broadcast is closed.
const (
	EndedReasonMaxDuration = "max_duration_reached"
	EndedReasonManual      = "manual"
)

// String returns the string representation of the BroadcastStatus.
func (s BroadcastStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s BroadcastStatus) IsTerminal() bool {
	return s == BroadcastStatusCompleted || s == BroadcastStatusFailed
}

// CanStart reports whether a broadcast in this status may go live.
func (s BroadcastStatus) CanStart() bool {
	return s == BroadcastStatusPending || s == BroadcastStatusScheduled
}

// Broadcast is a single live-audio session of a masjid.
type Broadcast struct {
	ID             uuid.UUID       `json:"id"`              // The Global Unique Identifier (GUID) for the broadcast.
	MasjidID       uuid.UUID       `json:"masjid_id"`       // The masjid that owns the broadcast.
	PrayerName     *PrayerName     `json:"prayer_name"`     // Prayer this broadcast belongs to, nil for ad-hoc sessions.
	Status         BroadcastStatus `json:"status"`          // Lifecycle state.
	ScheduledAt    *time.Time      `json:"scheduled_at"`    // Planned start in UTC.
	StartedAt      *time.Time      `json:"started_at"`      // Set when the broadcast goes live.
	EndedAt        *time.Time      `json:"ended_at"`        // Set when the broadcast is closed.
	EndedReason    string          `json:"ended_reason"`    // Why the broadcast was closed.
	StreamProvider string          `json:"stream_provider"` // Conferencing provider tag.
	RoomName       string          `json:"room_name"`       // Conferencing room name.
	AudioURL       string          `json:"audio_url"`       // HLS playback URL when relayed.
	RelayURL       string          `json:"relay_url"`       // Relay ingest URL, set while the broadcast is relayed.
	EgressID       string          `json:"egress_id"`       // Provider egress handle feeding the relay.
	RecordingURL   string          `json:"recording_url"`   // Recording supplied on manual end.
	CreatedAt      time.Time       `json:"created_at"`      // Timestamp of when this broadcast was created.
	UpdatedAt      time.Time       `json:"updated_at"`      // Timestamp of the last modification.
}

// RoomNameFor derives the conferencing room name of a broadcast.
func RoomNameFor(id uuid.UUID) string {
	return "broadcast-" + id.String()
}

// PrayerString returns the prayer name or an empty string.
func (b *Broadcast) PrayerString() string {
	if b.PrayerName == nil {
		return ""
	}

	return b.PrayerName.String()
}

// Elapsed returns how long the broadcast has been live at now.
func (b *Broadcast) Elapsed(now time.Time) time.Duration {
	if b.StartedAt == nil {
		return 0
	}

	return now.Sub(*b.StartedAt)
}

// IsExpired reports whether a live broadcast has reached maxDuration.
func (b *Broadcast) IsExpired(now time.Time, maxDuration time.Duration) bool {
	return b.Status == BroadcastStatusLive && b.StartedAt != nil && b.Elapsed(now) >= maxDuration
}

// AutoEndAt returns the instant the broadcast must be closed.
func (b *Broadcast) AutoEndAt(maxDuration time.Duration) time.Time {
	if b.StartedAt == nil {
		return time.Time{}
	}

	return b.StartedAt.Add(maxDuration)
}

// StreamMetadata is the relay output attached to a live broadcast.
type StreamMetadata struct {
	AudioURL string
	RelayURL string
	EgressID string
}
