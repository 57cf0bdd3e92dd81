package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBroadcastStatus_Transitions(t *testing.T) {
	tests := []struct {
		status   BroadcastStatus
		terminal bool
		canStart bool
	}{
		{BroadcastStatusPending, false, true},
		{BroadcastStatusScheduled, false, true},
		{BroadcastStatusLive, false, false},
		{BroadcastStatusCompleted, true, false},
		{BroadcastStatusFailed, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.canStart, tt.status.CanStart())
		})
	}
}

func TestBroadcast_IsExpired(t *testing.T) {
	started := time.Date(2025, 3, 9, 23, 40, 0, 0, time.UTC)
	b := &Broadcast{Status: BroadcastStatusLive, StartedAt: &started}
	maxDuration := 15 * time.Minute

	assert.False(t, b.IsExpired(started.Add(14*time.Minute), maxDuration))
	assert.True(t, b.IsExpired(started.Add(maxDuration), maxDuration))
	assert.True(t, b.IsExpired(started.Add(time.Hour), maxDuration))
	assert.Equal(t, started.Add(maxDuration), b.AutoEndAt(maxDuration))

	b.Status = BroadcastStatusCompleted
	assert.False(t, b.IsExpired(started.Add(time.Hour), maxDuration))
}

func TestBroadcast_ElapsedWithoutStart(t *testing.T) {
	b := &Broadcast{Status: BroadcastStatusScheduled}

	assert.Zero(t, b.Elapsed(time.Now()))
	assert.True(t, b.AutoEndAt(time.Minute).IsZero())
	assert.Empty(t, b.PrayerString())
}

func TestRoomNameFor(t *testing.T) {
	id := uuid.MustParse("7b0f8f5e-3f43-4c39-9a43-8a1f2f4e9b10")

	assert.Equal(t, "broadcast-7b0f8f5e-3f43-4c39-9a43-8a1f2f4e9b10", RoomNameFor(id))
}
