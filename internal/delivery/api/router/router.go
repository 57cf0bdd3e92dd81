// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"masjidcast/config"
	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/router/handler"
	"masjidcast/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DiagnosticsHandler  *handler.DiagnosticsHandler
	DeviceHandler       *handler.DeviceHandler
	SubscriptionHandler *handler.SubscriptionHandler
	MasjidHandler       *handler.MasjidHandler
	BroadcastHandler    *handler.BroadcastHandler
	PlaybackHandler     *handler.PlaybackHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	diagnosticsHandler  *handler.DiagnosticsHandler
	deviceHandler       *handler.DeviceHandler
	subscriptionHandler *handler.SubscriptionHandler
	masjidHandler       *handler.MasjidHandler
	broadcastHandler    *handler.BroadcastHandler
	playbackHandler     *handler.PlaybackHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		diagnosticsHandler:  params.DiagnosticsHandler,
		deviceHandler:       params.DeviceHandler,
		subscriptionHandler: params.SubscriptionHandler,
		masjidHandler:       params.MasjidHandler,
		broadcastHandler:    params.BroadcastHandler,
		playbackHandler:     params.PlaybackHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// HLS assets authorize through the signed query or an optional token
	apiV1.GET("/broadcasts/:id/hls/:file", r.playbackHandler.ServeAsset, r.authMiddleware.OptionalAuthenticate)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	// Device management routes
	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/tokens", r.deviceHandler.UpdateTokens)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	// Subscription management routes
	subscriptionsGroup := authed.Group("/subscriptions")
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Follow)
		subscriptionsGroup.GET("", r.subscriptionHandler.ListSubscriptions)
		subscriptionsGroup.POST("/qr", r.subscriptionHandler.FollowByQR)
		subscriptionsGroup.DELETE("/:masjidId", r.subscriptionHandler.Unfollow)
		subscriptionsGroup.PUT("/:masjidId/preferences", r.subscriptionHandler.UpdatePreferences)
		subscriptionsGroup.PUT("/:masjidId/mute", r.subscriptionHandler.SetMute)
	}

	requireAdmin := r.authMiddleware.RequireRole(entity.RoleMasjidAdmin)

	masjidsGroup := authed.Group("/masjids")
	{
		masjidsGroup.GET("/:id", r.masjidHandler.GetMasjid)
		masjidsGroup.GET("/:id/schedule", r.masjidHandler.GetSchedule)
		masjidsGroup.PUT("/:id/templates", r.masjidHandler.UpsertTemplates, requireAdmin)
		masjidsGroup.GET("/:id/qr", r.masjidHandler.GetFollowQR, requireAdmin)
		masjidsGroup.POST("/:id/broadcasts", r.broadcastHandler.CreateBroadcast, requireAdmin)
	}

	broadcastsGroup := authed.Group("/broadcasts")
	{
		broadcastsGroup.GET("/:id", r.broadcastHandler.GetBroadcast)
		broadcastsGroup.GET("/:id/token", r.broadcastHandler.IssueListenerToken)
		broadcastsGroup.GET("/:id/playback", r.playbackHandler.GetPlaybackURL)

		broadcastsGroup.POST("/:id/start", r.broadcastHandler.StartBroadcast, requireAdmin)
		broadcastsGroup.POST("/:id/end", r.broadcastHandler.EndBroadcast, requireAdmin)
		broadcastsGroup.GET("/:id/deliveries", r.broadcastHandler.ListDeliveries, requireAdmin)
	}
}

// RegisterTestRoutes mounts the diagnostics endpoints when testRoutes.enabled is set.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.diagnosticsHandler.Public)

	authed := testGroup.Group("", r.authMiddleware.Authenticate)
	authed.GET("/auth", r.diagnosticsHandler.WhoAmI)
	authed.POST("/events", r.diagnosticsHandler.PublishEvent, r.authMiddleware.RequireRole(entity.RoleMasjidAdmin))
}
