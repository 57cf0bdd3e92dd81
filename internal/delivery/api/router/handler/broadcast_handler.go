package handler

import (
	"log/slog"
	"net/http"
	"time"

	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/response"
	"masjidcast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BroadcastHandlerParams holds dependencies for BroadcastHandler, injected by Fx.
type BroadcastHandlerParams struct {
	fx.In

	BroadcastUC    usecase.BroadcastUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// BroadcastHandler serves the admin and listener sides of broadcasts
type BroadcastHandler struct {
	broadcastUC    usecase.BroadcastUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler
func NewBroadcastHandler(params BroadcastHandlerParams) *BroadcastHandler {
	return &BroadcastHandler{
		broadcastUC:    params.BroadcastUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// CreateBroadcastRequest represents the request body for a manual broadcast
type CreateBroadcastRequest struct {
	PrayerName  *string    `json:"prayer_name" validate:"omitempty,prayer"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

// CreateBroadcast handles creating a manual broadcast for a masjid
func (h *BroadcastHandler) CreateBroadcast(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	var req CreateBroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	broadcast, err := h.broadcastUC.CreateBroadcast(c.Request().Context(), userID, &usecase.CreateBroadcastInput{
		MasjidID:    masjidID,
		PrayerName:  req.PrayerName,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, broadcast)
}

// StartBroadcast handles taking a broadcast live
func (h *BroadcastHandler) StartBroadcast(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	output, err := h.broadcastUC.StartBroadcast(c.Request().Context(), userID, broadcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// EndBroadcast handles closing a broadcast
func (h *BroadcastHandler) EndBroadcast(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	// The body is optional
	var req usecase.EndBroadcastInput
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid end input")
		}
	}

	broadcast, err := h.broadcastUC.EndBroadcast(c.Request().Context(), userID, broadcastID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broadcast)
}

// GetBroadcast handles retrieving a broadcast
func (h *BroadcastHandler) GetBroadcast(c echo.Context) error {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	broadcast, err := h.broadcastUC.GetBroadcast(c.Request().Context(), broadcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broadcast)
}

// IssueListenerToken handles minting a subscribe-only room token
func (h *BroadcastHandler) IssueListenerToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	token, err := h.broadcastUC.IssueListenerToken(c.Request().Context(), userID, broadcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, token)
}

// ListDeliveries handles retrieving the push delivery log of a broadcast
func (h *BroadcastHandler) ListDeliveries(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	logs, err := h.notificationUC.ListDeliveries(c.Request().Context(), userID, broadcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, logs)
}
