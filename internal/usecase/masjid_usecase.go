package usecase

import (
	"context"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// MasjidUsecase exposes masjid reads to listeners and admins.
type MasjidUsecase interface {
	// GetMasjid returns a masjid by ID.
	GetMasjid(ctx context.Context, masjidID uuid.UUID) (*entity.Masjid, error)

	// GetFollowQR renders the follow QR code of a masjid for its admin.
	GetFollowQR(ctx context.Context, actorID, masjidID uuid.UUID) ([]byte, error)
}
