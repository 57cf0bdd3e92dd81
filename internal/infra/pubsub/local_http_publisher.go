package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localPushSubscription = "projects/local/subscriptions/broadcast-events"
	localPublishTimeout   = 30 * time.Second
)

// PubSubPushMessage is the body Pub/Sub push subscriptions POST to an endpoint.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher imitates a push subscription by posting envelopes to the worker's /push.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishBroadcastEvent(ctx context.Context, event *service.BroadcastEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	var envelope PubSubPushMessage
	envelope.Subscription = localPushSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(encoded.data)
	envelope.Message.Attributes = encoded.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(err, "encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post event to %s", p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker answered %d for %s event", resp.StatusCode, event.EventType)
	}

	p.logger.DebugContext(ctx, "[PubSub] Event pushed to worker",
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("event_type", event.EventType),
		slog.String("message_id", envelope.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
