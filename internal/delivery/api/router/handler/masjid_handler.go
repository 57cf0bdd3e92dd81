package handler

import (
	"log/slog"
	"net/http"

	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/response"
	"masjidcast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MasjidHandlerParams holds dependencies for MasjidHandler, injected by Fx.
type MasjidHandlerParams struct {
	fx.In

	MasjidUC   usecase.MasjidUsecase
	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// MasjidHandler serves masjid profiles, prayer schedules and follow QR codes
type MasjidHandler struct {
	masjidUC   usecase.MasjidUsecase
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewMasjidHandler is the constructor for MasjidHandler
func NewMasjidHandler(params MasjidHandlerParams) *MasjidHandler {
	return &MasjidHandler{
		masjidUC:   params.MasjidUC,
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// UpsertTemplatesRequest represents the request body for replacing prayer templates
type UpsertTemplatesRequest struct {
	Templates []usecase.TemplateInput `json:"templates" validate:"required,min=1,dive"`
}

// GetMasjid handles retrieving a masjid profile
func (h *MasjidHandler) GetMasjid(c echo.Context) error {
	masjidID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	masjid, err := h.masjidUC.GetMasjid(c.Request().Context(), masjidID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, masjid)
}

// GetSchedule handles retrieving the prayer occurrences of a local date
func (h *MasjidHandler) GetSchedule(c echo.Context) error {
	masjidID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	occurrences, err := h.scheduleUC.GetSchedule(c.Request().Context(), masjidID, c.QueryParam("date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, occurrences)
}

// UpsertTemplates handles replacing the prayer templates of a masjid
func (h *MasjidHandler) UpsertTemplates(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	var req UpsertTemplatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid template input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	templates, err := h.scheduleUC.UpsertTemplates(c.Request().Context(), userID, masjidID, req.Templates)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "Prayer templates updated",
		slog.String("masjid_id", masjidID.String()),
		slog.Int("count", len(templates)),
	)

	return response.Success(c, http.StatusOK, templates)
}

// GetFollowQR handles rendering the follow QR code of a masjid
func (h *MasjidHandler) GetFollowQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	masjidID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid masjid ID")
	}

	png, err := h.masjidUC.GetFollowQR(c.Request().Context(), userID, masjidID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	return c.Blob(http.StatusOK, "image/png", png)
}
