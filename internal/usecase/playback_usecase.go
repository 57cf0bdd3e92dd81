package usecase

import (
	"context"
	"time"

	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
)

// PlaybackURL is a signed HLS playlist URL.
type PlaybackURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AssetRequest identifies an HLS file and the credentials presented for it.
type AssetRequest struct {
	BroadcastID uuid.UUID
	File        string
	Exp         int64
	Signature   string
	// UserID is set when the caller also presented a valid access token
	UserID *uuid.UUID
}

// PlaybackUsecase grants access to relayed audio.
type PlaybackUsecase interface {
	// GetPlaybackURL signs the playlist URL of a live broadcast for a follower of its masjid.
	GetPlaybackURL(ctx context.Context, userID, broadcastID uuid.UUID) (*PlaybackURL, error)

	// OpenAsset opens a playlist or segment after checking the signature or the subscription.
	OpenAsset(ctx context.Context, req *AssetRequest) (*service.PlaybackAsset, error)
}
