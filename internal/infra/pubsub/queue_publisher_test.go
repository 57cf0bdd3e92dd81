package pubsub

import (
	"context"
	"testing"

	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/service"
	mockService "masjidcast/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQueuePublisher_EnqueuesNotifyJob(t *testing.T) {
	queue := mockService.NewMockJobQueue(t)
	publisher := NewQueuePublisher(queue, discardLogger())
	event := &service.BroadcastEvent{BroadcastID: "b-1", MasjidID: "m-1", EventType: "end"}

	queue.EXPECT().
		Enqueue(mock.Anything, constants.QueueNotifications, constants.JobBroadcastNotify, event, service.EnqueueOptions{DedupeKey: "notify:b-1:end"}).
		Return(nil)

	assert.NoError(t, publisher.PublishBroadcastEvent(context.Background(), event))
}

func TestQueuePublisher_PropagatesError(t *testing.T) {
	queue := mockService.NewMockJobQueue(t)
	publisher := NewQueuePublisher(queue, discardLogger())

	queue.EXPECT().
		Enqueue(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := publisher.PublishBroadcastEvent(context.Background(), &service.BroadcastEvent{BroadcastID: "b"})
	assert.ErrorIs(t, err, assert.AnError)
}
