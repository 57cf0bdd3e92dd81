package postgres

import (
	"context"

	"masjidcast/internal/domain/entity"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/repository"
	"masjidcast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

// notificationLogRepository implements the repository.NotificationLogRepository interface.
type notificationLogRepository struct {
	db *gorm.DB
}

// NewNotificationLogRepository is the constructor for notificationLogRepository.
func NewNotificationLogRepository(db *gorm.DB) repository.NotificationLogRepository {
	return &notificationLogRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists multiple notification log entries in a single batch.
func (repo *notificationLogRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// FindLogsByBroadcast retrieves the delivery log of a broadcast.
func (repo *notificationLogRepository) FindLogsByBroadcast(ctx context.Context, broadcastID uuid.UUID) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	if err := repo.db.WithContext(ctx).
		Where("broadcast_id = ?", broadcastID).
		Order("sent_at").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs by broadcast")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:           data.ID,
		BroadcastID:  data.BroadcastID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		EventType:    entity.BroadcastEventType(data.EventType),
		Status:       entity.NotificationStatus(data.Status),
		Provider:     data.Provider,
		MessageID:    data.MessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		BroadcastID:  data.BroadcastID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		EventType:    string(data.EventType),
		Status:       string(data.Status),
		Provider:     data.Provider,
		MessageID:    data.MessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
