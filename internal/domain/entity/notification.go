package entity

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastEventType distinguishes start and end alerts.
type BroadcastEventType string

const (
	BroadcastEventStart BroadcastEventType = "start"
	BroadcastEventEnd   BroadcastEventType = "end"
)

// IsValid checks if the event type is known.
func (t BroadcastEventType) IsValid() bool {
	return t == BroadcastEventStart || t == BroadcastEventEnd
}

// NotificationStatus is the delivery result of a notification log.
type NotificationStatus string

const (
	NotificationStatusQueued NotificationStatus = "queued"
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// NotificationLog records a single push attempt to a user device.
type NotificationLog struct {
	ID           uuid.UUID          `json:"id"`            // The Global Unique Identifier (GUID) for the log entry.
	BroadcastID  uuid.UUID          `json:"broadcast_id"`  // The broadcast that triggered the push.
	UserID       uuid.UUID          `json:"user_id"`       // The ID of the user who received the notification.
	DeviceID     uuid.UUID          `json:"device_id"`     // The ID of the device that received the notification.
	EventType    BroadcastEventType `json:"event_type"`    // start or end.
	Status       NotificationStatus `json:"status"`        // Delivery result.
	Provider     string             `json:"provider"`      // fcm or apns_voip.
	MessageID    string             `json:"message_id"`    // Provider message ID on success.
	ErrorMessage string             `json:"error_message"` // Error message if the notification failed.
	SentAt       time.Time          `json:"sent_at"`       // Timestamp of the attempt.
}

// NotificationRecipient pairs a subscription with one of its user's active devices.
type NotificationRecipient struct {
	Subscription *Subscription
	Device       *UserDevice
}
