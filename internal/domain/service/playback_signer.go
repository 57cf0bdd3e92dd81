package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// PlaybackSigner signs and verifies time-limited HLS playback URLs.
type PlaybackSigner interface {
	// SignedURL returns the playlist URL of a broadcast valid until now+ttl.
	SignedURL(broadcastID uuid.UUID, ttl time.Duration) (url string, expiresAt time.Time)

	// Verify reports whether sig authorizes the broadcast until exp at now.
	Verify(broadcastID uuid.UUID, exp int64, sig string, now time.Time) bool
}

// PlaybackAsset is an open HLS file.
type PlaybackAsset struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// PlaybackStore reads relay output.
type PlaybackStore interface {
	// Open opens file of a broadcast. Only playlists and segments are served.
	Open(ctx context.Context, broadcastID uuid.UUID, file string) (*PlaybackAsset, error)
}
