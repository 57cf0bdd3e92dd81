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

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages the push endpoints a listener's phone registers.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// UpdateTokensRequest replaces one or both push tokens. An empty string clears a token.
type UpdateTokensRequest struct {
	FCMToken  *string `json:"fcm_token" validate:"required_without=VoIPToken"`
	VoIPToken *string `json:"voip_token" validate:"required_without=FCMToken"`
}

// DeviceListResponse wraps the caller's devices.
type DeviceListResponse struct {
	Devices []*entity.UserDevice `json:"devices"`
	Count   int                  `json:"count"`
}

// RegisterDevice creates or refreshes the caller's device by its client-side device_id.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.DeviceInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if devices == nil {
		devices = []*entity.UserDevice{}
	}

	return response.Success(c, http.StatusOK, DeviceListResponse{Devices: devices, Count: len(devices)})
}

func (h *DeviceHandler) UpdateTokens(c echo.Context) error {
	userID, deviceID, done := deviceTarget(c)
	if done != nil {
		return done()
	}

	var req UpdateTokensRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	device, err := h.deviceUC.UpdateTokens(c.Request().Context(), userID, deviceID, &usecase.DeviceTokens{
		FCMToken:  req.FCMToken,
		VoIPToken: req.VoIPToken,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, deviceID, done := deviceTarget(c)
	if done != nil {
		return done()
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// deviceTarget resolves the caller and the :id path param. A non-nil func writes the rejection.
func deviceTarget(c echo.Context) (uuid.UUID, uuid.UUID, func() error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, func() error {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}
	}

	deviceID, ok := parseIDParam(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, func() error {
			return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
		}
	}

	return userID, deviceID, nil
}
