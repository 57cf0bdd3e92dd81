package impl

import (
	"context"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type masjidService struct {
	masjidRepo repository.MasjidRepository
	qrcode     service.QRCodeService
}

// NewMasjidService creates a new masjid service instance
func NewMasjidService(masjidRepo repository.MasjidRepository, qrcode service.QRCodeService) usecase.MasjidUsecase {
	return &masjidService{
		masjidRepo: masjidRepo,
		qrcode:     qrcode,
	}
}

func (s *masjidService) GetMasjid(ctx context.Context, masjidID uuid.UUID) (*entity.Masjid, error) {
	return loadMasjid(ctx, s.masjidRepo, masjidID)
}

// GetFollowQR renders the PNG follow code of a masjid
func (s *masjidService) GetFollowQR(ctx context.Context, actorID, masjidID uuid.UUID) ([]byte, error) {
	masjid, err := ensureMasjidAdmin(ctx, s.masjidRepo, actorID, masjidID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateFollowQR(masjid.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate follow QR code")
	}

	return png, nil
}
