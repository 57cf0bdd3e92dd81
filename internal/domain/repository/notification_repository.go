package repository

import (
	"context"

	"masjidcast/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationLogRepository defines append-only persistence of push attempts.
type NotificationLogRepository interface {
	// BatchCreateNotificationLogs persists multiple notification log entries in a single batch.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindLogsByBroadcast retrieves the delivery log of a broadcast.
	FindLogsByBroadcast(ctx context.Context, broadcastID uuid.UUID) ([]*entity.NotificationLog, error)
}
