// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// masjidRepository implements the repository.MasjidRepository interface.
type masjidRepository struct {
	db *gorm.DB
}

// NewMasjidRepository is the constructor for masjidRepository.
func NewMasjidRepository(db *gorm.DB) repository.MasjidRepository {
	return &masjidRepository{
		db: db,
	}
}

// FindMasjidByID retrieves a masjid by its unique ID.
func (repo *masjidRepository) FindMasjidByID(ctx context.Context, id uuid.UUID) (*entity.Masjid, error) {
	var masjidM model.MasjidModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&masjidM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMasjidNotFound
		}

		return nil, errors.Wrap(err, "failed to find masjid by ID")
	}

	return toMasjidDomain(&masjidM), nil
}

// FindMasjidsByIDs retrieves every masjid in ids.
func (repo *masjidRepository) FindMasjidsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Masjid, error) {
	if len(ids) == 0 {
		return []*entity.Masjid{}, nil
	}

	var masjidModels []*model.MasjidModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&masjidModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find masjids by IDs")
	}

	masjids := make([]*entity.Masjid, 0, len(masjidModels))
	for _, masjidM := range masjidModels {
		masjids = append(masjids, toMasjidDomain(masjidM))
	}

	return masjids, nil
}

// --- Mapper Functions ---

func toMasjidDomain(data *model.MasjidModel) *entity.Masjid {
	if data == nil {
		return nil
	}

	return &entity.Masjid{
		ID:          data.ID,
		Name:        data.Name,
		Timezone:    data.Timezone,
		Status:      entity.MasjidStatus(data.Status),
		IsActive:    data.IsActive,
		AdminUserID: data.AdminUserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
