package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"masjidcast/config"
	deliverycontext "masjidcast/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Query parameters that grant access and are never logged.
var redactedParams = []string{"sig", "token"}

// LoggerMiddleware logs one line per request when env.debug is set.
// Health probes are not logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.debug || c.Path() == "/health" {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", redactQuery(req.URL.Query())))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}

func redactQuery(q url.Values) string {
	for _, key := range redactedParams {
		if q.Has(key) {
			q.Set(key, "REDACTED")
		}
	}

	return q.Encode()
}
