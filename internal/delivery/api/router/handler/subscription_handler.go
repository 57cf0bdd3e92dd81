package handler

import (
	"log/slog"
	"net/http"

	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/response"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// FollowRequest represents the request body for following a masjid
type FollowRequest struct {
	MasjidID   uuid.UUID           `json:"masjid_id" validate:"required"`
	DeviceInfo *usecase.DeviceInfo `json:"device_info,omitempty"`
}

// FollowByQRRequest represents the request body for following from a scanned QR code
type FollowByQRRequest struct {
	QRData     string              `json:"qr_data" validate:"required"`
	DeviceInfo *usecase.DeviceInfo `json:"device_info,omitempty"`
}

// PreferencesRequest represents the request body for updating listener preferences
type PreferencesRequest struct {
	MutedPrayers []string `json:"muted_prayers" validate:"dive,prayer"`
	WakeOnSilent bool     `json:"wake_on_silent"`
}

// Follow handles following a masjid
func (h *SubscriptionHandler) Follow(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req FollowRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	subscription, err := h.subscriptionUC.Follow(c.Request().Context(), userID, req.MasjidID, req.DeviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// FollowByQR handles following the masjid encoded in a QR code
func (h *SubscriptionHandler) FollowByQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req FollowByQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	subscription, err := h.subscriptionUC.FollowByQR(c.Request().Context(), userID, req.QRData, req.DeviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// Unfollow handles unfollowing a masjid
func (h *SubscriptionHandler) Unfollow(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "masjidId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	if err := h.subscriptionUC.Unfollow(c.Request().Context(), userID, masjidID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListSubscriptions handles retrieving the masjids a user follows
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subscriptions, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}

// UpdatePreferences handles replacing muted prayers and the wake-on-silent flag
func (h *SubscriptionHandler) UpdatePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "masjidId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	var req PreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	subscription, err := h.subscriptionUC.UpdatePreferences(c.Request().Context(), userID, masjidID, entity.SubscriptionPreferences{
		MutedPrayers: req.MutedPrayers,
		WakeOnSilent: req.WakeOnSilent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}

// SetMute handles muting or unmuting a masjid
func (h *SubscriptionHandler) SetMute(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "masjidId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	var req usecase.MuteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mute input")
	}

	subscription, err := h.subscriptionUC.SetMute(c.Request().Context(), userID, masjidID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription)
}
