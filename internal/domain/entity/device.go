package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the client operating system of a device.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// IsValid checks if the Platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID                    uuid.UUID `json:"id"`                        // The Global Unique Identifier (GUID) for the device.
	UserID                uuid.UUID `json:"user_id"`                   // The ID of the user who owns this device.
	DeviceID              string    `json:"device_id"`                 // Unique device identifier from the client.
	Platform              Platform  `json:"platform"`                  // Device platform (android, ios, web).
	FCMToken              string    `json:"fcm_token"`                 // Firebase Cloud Messaging token, empty when unset.
	VoIPToken             string    `json:"voip_token"`                // APNs VoIP token, empty when unset.
	IsActive              bool      `json:"is_active"`                 // Indicates if this device is active for notifications.
	IsWakeOnSilentEnabled bool      `json:"is_wake_on_silent_enabled"` // Requests a full-screen alert on silent mode.
	CreatedAt             time.Time `json:"created_at"`                // Timestamp of when this device was registered.
	UpdatedAt             time.Time `json:"updated_at"`                // Timestamp of the last modification.
}

// UsesVoIP reports whether pushes go through APNs VoIP.
func (d *UserDevice) UsesVoIP() bool {
	return d.Platform == PlatformIOS && d.VoIPToken != ""
}

// PushToken returns the token used for the device's push channel.
func (d *UserDevice) PushToken() string {
	if d.UsesVoIP() {
		return d.VoIPToken
	}

	return d.FCMToken
}
