// Package api serves the public REST surface of the broadcast coordinator.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"masjidcast/config"
	"masjidcast/internal/delivery"
	apimiddleware "masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/router"
	"masjidcast/internal/delivery/api/validator"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/delivery/middleware"
	"masjidcast/internal/domain/lifecycle"
	"masjidcast/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	port        int
	idleTimeout time.Duration
	logger      *slog.Logger
	server      *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params.Cfg, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &apiServer{
		port:        params.Cfg.HTTP.Port,
		idleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout,
		logger:      params.Logger,
		server:      e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first, then the request scope so the logger sees its request ID
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig(cfg.HTTP.AllowedOrigins)))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// corsConfig lets browser players send the access_token cookie only to listed origins.
func corsConfig(origins []string) echomiddleware.CORSConfig {
	cors := echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{
			deliverycontext.HeaderXRequestID,
			echo.HeaderContentLength,
		},
	}
	if len(origins) > 0 {
		cors.AllowOrigins = origins
		cors.AllowCredentials = true
	}

	return cors
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("[API] Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.idleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[API] Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
