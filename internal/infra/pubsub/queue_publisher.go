package pubsub

import (
	"context"
	"log/slog"

	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/service"

	"github.com/pkg/errors"
)

// queuePublisher hands broadcast events to the notifications queue of the job server.
type queuePublisher struct {
	queue  service.JobQueue
	logger *slog.Logger
}

// NewQueuePublisher creates a publisher backed by the job queue
func NewQueuePublisher(queue service.JobQueue, logger *slog.Logger) service.EventPublisher {
	return &queuePublisher{
		queue:  queue,
		logger: logger,
	}
}

// PublishBroadcastEvent enqueues a notify job. One job per broadcast and event type.
func (p *queuePublisher) PublishBroadcastEvent(ctx context.Context, event *service.BroadcastEvent) error {
	err := p.queue.Enqueue(ctx, constants.QueueNotifications, constants.JobBroadcastNotify, event, service.EnqueueOptions{
		DedupeKey: "notify:" + event.BroadcastID + ":" + event.EventType,
	})
	if err != nil {
		return errors.Wrap(err, "enqueue broadcast event")
	}

	p.logger.InfoContext(ctx, "[QueuePubSub] Event enqueued",
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("event_type", event.EventType),
	)

	return nil
}

// Close is a no-op; the job queue client is closed by its own lifecycle hook
func (p *queuePublisher) Close() error {
	return nil
}
