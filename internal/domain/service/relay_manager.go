package service

import (
	"context"

	"github.com/google/uuid"
)

// RelayOutput describes a running relay.
type RelayOutput struct {
	PlaybackURL string
	EgressID    string
	RelayURL    string
}

// RelayManager owns the HLS transcoders of live broadcasts. At most one relay runs per broadcast.
type RelayManager interface {
	// StartRelay starts egress and the transcoder for a broadcast.
	StartRelay(ctx context.Context, broadcastID uuid.UUID, roomName string) (*RelayOutput, error)

	// StopRelay stops the relay of a broadcast. Unknown IDs are ignored.
	StopRelay(ctx context.Context, broadcastID uuid.UUID) error

	// IsRunning reports whether a relay is registered for the broadcast.
	IsRunning(broadcastID uuid.UUID) bool
}
