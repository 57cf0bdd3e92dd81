package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"masjidcast/config"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the envelope a Pub/Sub push subscription POSTs.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler feeds pushed broadcast events into the fan-out engine.
type PushHandler struct {
	// verifyPushAuth is on for the google provider outside develop
	verifyPushAuth bool
	validateToken  tokenValidator
	logger         *slog.Logger
	notificationUC usecase.NotificationUsecase
}

type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	return &PushHandler{
		verifyPushAuth: pubsubCfg != nil &&
			pubsubCfg.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
	}
}

// HandlePush answers 200 to acknowledge and 503 to have Pub/Sub redeliver.
// Events rejected as client errors are acknowledged since a retry cannot fix them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	req := c.Request()

	if h.verifyPushAuth {
		if err := h.authenticate(req); err != nil {
			h.logger.Warn("[Worker] Rejected push", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope PubSubMessage
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Unreadable push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.event()
	if err != nil {
		h.logger.Error("[Worker] Unreadable broadcast event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, logger := deliverycontext.NewScope(req.Context(), h.logger, envelope.requestID(req.Context(), event),
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("event_type", event.EventType),
	)

	summary, err := h.notificationUC.Notify(ctx, event)
	if err != nil {
		redeliver := !domainerrors.IsClientError(err)
		logger.Error("[Worker] Broadcast event failed", slog.Any("error", err), slog.Bool("redeliver", redeliver))

		if redeliver {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] Broadcast event delivered",
		slog.Int("recipients", summary.Recipients),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
	)

	return c.NoContent(http.StatusOK)
}

func (m *PubSubMessage) event() (*service.BroadcastEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	var event service.BroadcastEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "unmarshal broadcast event")
	}

	return &event, nil
}

// requestID prefers the message attribute, then the event body, then the X-Request-Id already on ctx.
func (m *PubSubMessage) requestID(ctx context.Context, event *service.BroadcastEvent) string {
	for _, candidate := range []string{
		m.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if candidate != "" {
			return candidate
		}
	}

	return uuid.NewString()
}

// authenticate checks the OIDC token Pub/Sub attaches to authenticated push requests.
// The expected audience is this endpoint's own URL.
func (h *PushHandler) authenticate(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	payload, err := h.validateToken(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "validate push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email is not verified")
	}

	return nil
}
