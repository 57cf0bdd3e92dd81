// Package notification implements the push channels used by the fan-out engine.
package notification

import (
	"context"
	"log/slog"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Data messages are only useful while the adhan is playing.
const dataMessageTTL = 2 * time.Minute

type messageClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type fcmSender struct {
	client messageClient
}

// FCMParams holds dependencies for the data-message sender.
type FCMParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewDataMessageSender creates the FCM sender, or a logging sender when Firebase is not configured.
func NewDataMessageSender(params FCMParams) (service.DataMessageSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Warn("[FCM] Firebase credentials not configured, data messages will be dropped")

		return &droppingSender{logger: params.Logger, provider: constants.PushProviderFCM}, nil
	}

	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(params.Ctx, firebaseCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmSender{client: client}, nil
}

// SendDataMessage sends a high-priority data-only message so the client can start playback itself.
func (s *fcmSender) SendDataMessage(ctx context.Context, token string, payload map[string]string) service.PushResult {
	ttl := dataMessageTTL
	message := &messaging.Message{
		Token: token,
		Data:  payload,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			TTL:      &ttl,
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{ContentAvailable: true, MutableContent: true},
			},
		},
		Webpush: &messaging.WebpushConfig{
			Headers: map[string]string{"Urgency": "high"},
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return service.PushResult{
			InvalidToken: messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err),
			Err:          domainerrors.NewProviderError(constants.PushProviderFCM, err),
		}
	}

	return service.PushResult{MessageID: messageID}
}
