package postgres

import (
	"context"
	"time"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// CreateBroadcast persists a new broadcast.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error {
	broadcastM := fromBroadcastDomain(broadcast)

	if err := repo.db.WithContext(ctx).Create(broadcastM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBroadcast
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMasjidNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	broadcast.ID = broadcastM.ID
	broadcast.CreatedAt = broadcastM.CreatedAt
	broadcast.UpdatedAt = broadcastM.UpdatedAt

	return nil
}

// FindBroadcastByID reads from the primary so lifecycle decisions see the latest status.
func (repo *broadcastRepository) FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.Broadcast, error) {
	var broadcastM model.BroadcastModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&broadcastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBroadcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find broadcast by ID")
	}

	return toBroadcastDomain(&broadcastM), nil
}

// ExistsActiveForDay checks the primary for a non-failed broadcast of the prayer in [dayStart, dayEnd).
func (repo *broadcastRepository) ExistsActiveForDay(ctx context.Context, masjidID uuid.UUID, prayer entity.PrayerName, dayStart, dayEnd time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.BroadcastModel{}).
		Where("masjid_id = ? AND prayer_name = ? AND status <> ?", masjidID, prayer.String(), entity.BroadcastStatusFailed).
		Where("(scheduled_at >= ? AND scheduled_at < ?) OR (started_at >= ? AND started_at < ?)", dayStart, dayEnd, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check broadcasts for day")
	}

	return count > 0, nil
}

// TransitionBroadcast is a compare-and-set on status.
func (repo *broadcastRepository) TransitionBroadcast(ctx context.Context, id uuid.UUID, from []entity.BroadcastStatus, transition *repository.BroadcastTransition) error {
	updates := map[string]any{
		"status":     transition.To.String(),
		"updated_at": time.Now().UTC(),
	}
	if transition.StartedAt != nil {
		updates["started_at"] = *transition.StartedAt
	}
	if transition.EndedAt != nil {
		updates["ended_at"] = *transition.EndedAt
	}
	if transition.EndedReason != "" {
		updates["ended_reason"] = transition.EndedReason
	}
	if transition.RecordingURL != "" {
		updates["recording_url"] = transition.RecordingURL
	}
	if transition.RoomName != "" {
		updates["room_name"] = transition.RoomName
	}

	fromStatuses := make([]string, 0, len(from))
	for _, status := range from {
		fromStatuses = append(fromStatuses, status.String())
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ? AND status IN ?", id, fromStatuses).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition broadcast")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastStateChanged
	}

	return nil
}

// UpdateStreamMetadata stores relay output on the broadcast.
func (repo *broadcastRepository) UpdateStreamMetadata(ctx context.Context, id uuid.UUID, metadata entity.StreamMetadata) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"audio_url":  metadata.AudioURL,
			"relay_url":  metadata.RelayURL,
			"egress_id":  metadata.EgressID,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stream metadata")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastNotFound
	}

	return nil
}

// FindExpiredLive retrieves live broadcasts started before startedBefore.
func (repo *broadcastRepository) FindExpiredLive(ctx context.Context, startedBefore time.Time) ([]*entity.Broadcast, error) {
	var broadcastModels []*model.BroadcastModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND started_at < ?", entity.BroadcastStatusLive, startedBefore).
		Order("started_at").
		Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired live broadcasts")
	}

	broadcasts := make([]*entity.Broadcast, 0, len(broadcastModels))
	for _, broadcastM := range broadcastModels {
		broadcasts = append(broadcasts, toBroadcastDomain(broadcastM))
	}

	return broadcasts, nil
}

// --- Mapper Functions ---

func toBroadcastDomain(data *model.BroadcastModel) *entity.Broadcast {
	if data == nil {
		return nil
	}

	var prayer *entity.PrayerName
	if data.PrayerName != nil {
		p := entity.PrayerName(*data.PrayerName)
		prayer = &p
	}

	return &entity.Broadcast{
		ID:             data.ID,
		MasjidID:       data.MasjidID,
		PrayerName:     prayer,
		Status:         entity.BroadcastStatus(data.Status),
		ScheduledAt:    utcPtr(data.ScheduledAt),
		StartedAt:      utcPtr(data.StartedAt),
		EndedAt:        utcPtr(data.EndedAt),
		EndedReason:    data.EndedReason,
		StreamProvider: data.StreamProvider,
		RoomName:       data.RoomName,
		AudioURL:       data.AudioURL,
		RelayURL:       data.RelayURL,
		EgressID:       data.EgressID,
		RecordingURL:   data.RecordingURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromBroadcastDomain(data *entity.Broadcast) *model.BroadcastModel {
	if data == nil {
		return nil
	}

	var prayer *string
	if data.PrayerName != nil {
		p := data.PrayerName.String()
		prayer = &p
	}

	return &model.BroadcastModel{
		ID:             data.ID,
		MasjidID:       data.MasjidID,
		PrayerName:     prayer,
		Status:         data.Status.String(),
		ScheduledAt:    data.ScheduledAt,
		StartedAt:      data.StartedAt,
		EndedAt:        data.EndedAt,
		EndedReason:    data.EndedReason,
		BroadcastDay:   broadcastDay(data),
		StreamProvider: data.StreamProvider,
		RoomName:       data.RoomName,
		AudioURL:       data.AudioURL,
		RelayURL:       data.RelayURL,
		EgressID:       data.EgressID,
		RecordingURL:   data.RecordingURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// broadcastDay is the UTC calendar day the uniqueness index keys on.
func broadcastDay(data *entity.Broadcast) string {
	switch {
	case data.ScheduledAt != nil:
		return data.ScheduledAt.UTC().Format(entity.DateLayout)
	case data.StartedAt != nil:
		return data.StartedAt.UTC().Format(entity.DateLayout)
	case !data.CreatedAt.IsZero():
		return data.CreatedAt.UTC().Format(entity.DateLayout)
	default:
		return time.Now().UTC().Format(entity.DateLayout)
	}
}
