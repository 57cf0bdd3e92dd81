// Package pubsub delivers broadcast events to the notification fan-out engine.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"masjidcast/config"
	"masjidcast/internal/domain/constants"
	"masjidcast/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	JobQueue service.JobQueue
}

// NewEventPublisher picks the transport named by pubsub.provider (queue when unset).
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := buildPublisher(params.Ctx, params.Config.PubSub, params.JobQueue, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("[PubSub] Closing event publisher")

		return publisher.Close()
	}))

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, queue service.JobQueue, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil {
		cfg = &config.PubSubConfig{}
	}
	provider := cfg.Provider
	if provider == "" {
		provider = constants.PubSubProviderQueue
	}
	logger = logger.With(slog.String("provider", provider))

	switch provider {
	case constants.PubSubProviderQueue:
		if queue == nil {
			return nil, errors.New("pubsub: queue provider needs a job queue")
		}
		logger.Info("[PubSub] Events go through the job queue")

		return NewQueuePublisher(queue, logger), nil

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub: localEndpoint is required for the local provider")
		}
		logger.Info("[PubSub] Events are posted to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub: projectId and topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	}

	return nil, errors.Errorf("pubsub: unknown provider %q", provider)
}

// encodedEvent is an event ready for a message transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps start ahead of end for one broadcast
	orderingKey string
}

func encodeEvent(event *service.BroadcastEvent) (*encodedEvent, error) {
	if event == nil {
		return nil, errors.New("pubsub: nil event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode broadcast event")
	}

	attributes := map[string]string{
		"broadcast_id": event.BroadcastID,
		"masjid_id":    event.MasjidID,
		"event_type":   event.EventType,
	}
	if event.PrayerName != "" {
		attributes["prayer_name"] = event.PrayerName
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &encodedEvent{data: data, attributes: attributes, orderingKey: event.BroadcastID}, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
