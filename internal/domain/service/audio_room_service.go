package service

import (
	"context"
)

// AudioRoomService manages conferencing rooms on a LiveKit-compatible server.
type AudioRoomService interface {
	// CreateRoom creates the room. An existing room is not an error.
	CreateRoom(ctx context.Context, room string) error

	// DeleteRoom closes the room and disconnects its participants.
	DeleteRoom(ctx context.Context, room string) error

	// MintAccessToken returns a join token for identity. Only publishers may send audio.
	MintAccessToken(identity, room string, canPublish bool) (string, error)

	// StartAudioEgress streams the room's audio to url and returns the egress ID.
	StartAudioEgress(ctx context.Context, room, url string, bitrateKbps int) (string, error)

	// StopEgress stops a running egress.
	StopEgress(ctx context.Context, egressID string) error
}
