package pubsub

import (
	"context"
	"log/slog"

	"masjidcast/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes to a Cloud Pub/Sub topic with per-broadcast ordering.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("[PubSub] Publishing to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) PublishBroadcastEvent(ctx context.Context, event *service.BroadcastEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        encoded.data,
		Attributes:  encoded.attributes,
		OrderingKey: encoded.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(encoded.orderingKey)

		return errors.Wrapf(err, "publish %s event for broadcast %s", event.EventType, event.BroadcastID)
	}

	p.logger.DebugContext(ctx, "[PubSub] Event published",
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("event_type", event.EventType),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrap(p.client.Close(), "close pubsub client")
}
