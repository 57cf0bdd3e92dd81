package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscription_IsSilenced(t *testing.T) {
	now := time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{name: "muted", sub: Subscription{IsMuted: true}, want: true},
		{name: "mute until future", sub: Subscription{MuteUntil: &later}, want: true},
		{name: "mute until past", sub: Subscription{MuteUntil: &earlier}, want: false},
		{name: "open", sub: Subscription{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sub.IsSilenced(now))
		})
	}
}

func TestSubscriptionPreferences_MutesPrayer(t *testing.T) {
	prefs := SubscriptionPreferences{MutedPrayers: []string{"fajr"}}

	assert.True(t, prefs.MutesPrayer("fajr"))
	assert.False(t, prefs.MutesPrayer("isha"))
	assert.False(t, prefs.MutesPrayer(""))
}

func TestUserDevice_PushChannel(t *testing.T) {
	ios := &UserDevice{Platform: PlatformIOS, FCMToken: "fcm", VoIPToken: "voip"}
	iosNoVoIP := &UserDevice{Platform: PlatformIOS, FCMToken: "fcm"}
	android := &UserDevice{Platform: PlatformAndroid, FCMToken: "fcm", VoIPToken: "voip"}

	assert.True(t, ios.UsesVoIP())
	assert.Equal(t, "voip", ios.PushToken())
	assert.False(t, iosNoVoIP.UsesVoIP())
	assert.Equal(t, "fcm", iosNoVoIP.PushToken())
	assert.False(t, android.UsesVoIP())
	assert.Equal(t, "fcm", android.PushToken())
}
