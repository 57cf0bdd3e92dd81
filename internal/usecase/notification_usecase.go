package usecase

import (
	"context"

	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
)

// FanOutSummary counts the outcome of one fan-out.
type FanOutSummary struct {
	Recipients int
	Sent       int
	Failed     int
	Skipped    int
}

// NotificationUsecase delivers broadcast alerts to subscribed devices.
type NotificationUsecase interface {
	// Notify pushes a broadcast event to every eligible device and records each attempt.
	Notify(ctx context.Context, event *service.BroadcastEvent) (*FanOutSummary, error)

	// ListDeliveries returns the delivery log of a broadcast to its masjid admin.
	ListDeliveries(ctx context.Context, actorID, broadcastID uuid.UUID) ([]*entity.NotificationLog, error)
}
