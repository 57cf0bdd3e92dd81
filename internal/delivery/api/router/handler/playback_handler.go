package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/response"
	"masjidcast/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaybackHandlerParams holds dependencies for PlaybackHandler, injected by Fx.
type PlaybackHandlerParams struct {
	fx.In

	PlaybackUC usecase.PlaybackUsecase
	Logger     *slog.Logger
}

// PlaybackHandler serves signed HLS URLs and the relayed playlists and segments
type PlaybackHandler struct {
	playbackUC usecase.PlaybackUsecase
	logger     *slog.Logger
}

// NewPlaybackHandler is the constructor for PlaybackHandler
func NewPlaybackHandler(params PlaybackHandlerParams) *PlaybackHandler {
	return &PlaybackHandler{
		playbackUC: params.PlaybackUC,
		logger:     params.Logger,
	}
}

// GetPlaybackURL handles signing the playlist URL of a live broadcast
func (h *PlaybackHandler) GetPlaybackURL(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	url, err := h.playbackUC.GetPlaybackURL(c.Request().Context(), userID, broadcastID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, url)
}

// ServeAsset streams a playlist or segment. A signed query authorizes the request,
// otherwise the caller's subscription is checked.
func (h *PlaybackHandler) ServeAsset(c echo.Context) error {
	broadcastID, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid broadcast ID")
	}

	req := &usecase.AssetRequest{
		BroadcastID: broadcastID,
		File:        c.Param("file"),
		Signature:   c.QueryParam("sig"),
	}
	if exp := c.QueryParam("exp"); exp != "" {
		// A malformed exp fails verification like any other bad signature
		req.Exp, _ = strconv.ParseInt(exp, 10, 64)
	}
	if userID, ok := middleware.GetUserID(c); ok {
		req.UserID = &userID
	}

	asset, err := h.playbackUC.OpenAsset(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer asset.Body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	if asset.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(asset.Size, 10))
	}

	return c.Stream(http.StatusOK, asset.ContentType, asset.Body)
}
