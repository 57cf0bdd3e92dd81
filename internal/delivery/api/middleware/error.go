package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"masjidcast/internal/delivery/api/response"
	deliverycontext "masjidcast/internal/delivery/context"
	domainerrors "masjidcast/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Status written when the client went away before the response, e.g. a
// player abandoning a segment download.
const statusClientClosedRequest = 499

// ErrorMiddleware is echo's HTTPErrorHandler. Every error leaves as the
// {error, meta} envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

	var (
		appErr         domainerrors.AppError
		validationErrs validator.ValidationErrors
		httpErr        *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.String("code", appErr.ErrorCode()),
				slog.Any("error", err),
				slog.String("path", req.URL.Path),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.DetailsOf(appErr))

	case errors.As(err, &validationErrs):
		_ = response.ValidationError(c, validationErrs)

	case errors.As(err, &httpErr):
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

	case errors.Is(err, context.Canceled):
		logger.Debug("Client closed request", slog.String("path", req.URL.Path))
		c.Response().WriteHeader(statusClientClosedRequest)

	default:
		logger.Error("Unhandled error",
			slog.Any("error", err),
			slog.String("path", req.URL.Path),
			slog.String("method", req.Method),
		)
		_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
	}
}
