package notification

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
	"go.uber.org/fx"
)

const voipExpiration = 30 * time.Second

type pushFunc func(ctx context.Context, n *apns2.Notification) (*apns2.Response, error)

type voipSender struct {
	push  pushFunc
	topic string
}

// VoIPParams holds dependencies for the VoIP sender.
type VoIPParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewVoIPPushSender creates the APNs VoIP sender using token-based auth.
func NewVoIPPushSender(params VoIPParams) (service.VoIPPushSender, error) {
	cfg := params.Config.APNs
	if cfg == nil || cfg.KeyPath == "" {
		params.Logger.Warn("[APNs] VoIP credentials not configured, VoIP pushes will be dropped")

		return &droppingSender{logger: params.Logger, provider: constants.PushProviderAPNsVoIP}, nil
	}
	if cfg.KeyID == "" || cfg.TeamID == "" || cfg.BundleID == "" {
		return nil, errors.New("apns keyId, teamId and bundleId are required")
	}

	authKey, err := token.AuthKeyFromFile(cfg.KeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load APNs auth key")
	}

	client := apns2.NewTokenClient(&token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	})
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return newVoIPSender(func(ctx context.Context, n *apns2.Notification) (*apns2.Response, error) {
		return client.PushWithContext(ctx, n)
	}, cfg.BundleID), nil
}

func newVoIPSender(push pushFunc, bundleID string) *voipSender {
	return &voipSender{
		push:  push,
		topic: bundleID + ".voip",
	}
}

// SendVoIPPush wakes the ios app through PushKit with the broadcast payload.
func (s *voipSender) SendVoIPPush(ctx context.Context, deviceToken string, data map[string]string) service.PushResult {
	p := payload.NewPayload().ContentAvailable()
	for k, v := range data {
		p.Custom(k, v)
	}

	res, err := s.push(ctx, &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       s.topic,
		PushType:    apns2.PushTypeVOIP,
		Priority:    apns2.PriorityHigh,
		Expiration:  time.Now().Add(voipExpiration),
		Payload:     p,
	})
	if err != nil {
		return service.PushResult{Err: domainerrors.NewProviderError(constants.PushProviderAPNsVoIP, err)}
	}

	if !res.Sent() {
		return service.PushResult{
			MessageID:    res.ApnsID,
			InvalidToken: isInvalidDeviceToken(res),
			Err: domainerrors.NewProviderError(constants.PushProviderAPNsVoIP,
				errors.Errorf("apns rejected push: %d %s", res.StatusCode, res.Reason)),
		}
	}

	return service.PushResult{MessageID: res.ApnsID}
}

func isInvalidDeviceToken(res *apns2.Response) bool {
	if res.StatusCode == http.StatusGone {
		return true
	}

	switch res.Reason {
	case apns2.ReasonBadDeviceToken, apns2.ReasonUnregistered, apns2.ReasonDeviceTokenNotForTopic:
		return true
	default:
		return false
	}
}
