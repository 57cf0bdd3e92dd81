package service

import (
	"context"
)

// BroadcastEvent asks the fan-out engine to alert subscribers of a broadcast transition.
type BroadcastEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	BroadcastID string `json:"broadcast_id"`
	MasjidID    string `json:"masjid_id"`
	PrayerName  string `json:"prayer_name,omitempty"`
	EventType   string `json:"event_type"` // start or end
}

// EventPublisher defines the interface for publishing events to the fan-out engine
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast event for async processing
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
