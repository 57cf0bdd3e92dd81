package handler

import (
	"net/http"

	"masjidcast/config"
	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/response"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiagnosticsHandlerParams holds dependencies for DiagnosticsHandler, injected by Fx.
type DiagnosticsHandlerParams struct {
	fx.In

	Config    *config.Config
	Publisher service.EventPublisher
}

// DiagnosticsHandler serves the /test endpoints used to check auth and event delivery
type DiagnosticsHandler struct {
	serviceName string
	env         string
	publisher   service.EventPublisher
}

func NewDiagnosticsHandler(params DiagnosticsHandlerParams) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		serviceName: params.Config.Env.ServiceName,
		env:         params.Config.Env.Env,
		publisher:   params.Publisher,
	}
}

// Public reports the service identity without authentication
func (h *DiagnosticsHandler) Public(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"service": h.serviceName,
		"env":     h.env,
		"status":  "public",
	})
}

// WhoAmI echoes the identity the auth middleware resolved
func (h *DiagnosticsHandler) WhoAmI(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"userID":        userID,
		"roles":         roles,
		"isMasjidAdmin": roles.Contains(entity.RoleMasjidAdmin),
	})
}

// PublishEventRequest replays a broadcast transition through the event publisher
type PublishEventRequest struct {
	BroadcastID uuid.UUID `json:"broadcastId" validate:"required"`
	MasjidID    uuid.UUID `json:"masjidId"`
	PrayerName  string    `json:"prayerName" validate:"omitempty,prayer"`
	EventType   string    `json:"eventType" validate:"required,oneof=start end"`
}

// PublishEvent hands a synthetic event to the configured transport and returns 202
func (h *DiagnosticsHandler) PublishEvent(c echo.Context) error {
	var req PublishEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	event := &service.BroadcastEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BroadcastID: req.BroadcastID.String(),
		MasjidID:    req.MasjidID.String(),
		PrayerName:  req.PrayerName,
		EventType:   req.EventType,
	}
	if err := h.publisher.PublishBroadcastEvent(ctx, event); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, event)
}
