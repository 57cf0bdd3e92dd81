package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RelayJobPayload is the payload of relay start and stop jobs.
type RelayJobPayload struct {
	BroadcastID uuid.UUID `json:"broadcastId"`
	RoomName    string    `json:"roomName,omitempty"`
}

// RelayUsecase reacts to lifecycle transitions of relayed broadcasts.
type RelayUsecase interface {
	// HandleRelayStart starts the relay of a live broadcast and stores its output.
	HandleRelayStart(ctx context.Context, payload *RelayJobPayload) error

	// HandleRelayStop stops the relay of a broadcast.
	HandleRelayStop(ctx context.Context, payload *RelayJobPayload) error
}
