// Package response writes the JSON envelopes of the API: {data, meta} on
// success and {error, meta} on failure.
package response

import (
	"net/http"

	deliverycontext "masjidcast/internal/delivery/context"
	domainerrors "masjidcast/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the error body. Code is the machine-readable taxonomy code.
type ErrorInfo struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// FieldError is one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an error envelope. Details are dropped for 5xx, 401 and 403
// so provider and auth internals never reach clients.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			StatusCode: statusCode,
			Code:       errorCode,
			Message:    message,
			Details:    details,
		},
		Meta: meta(c),
	})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError is a 400 for bodies or parameters that could not be decoded
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes domain errors and returns anything else for the
// centralized error handler to log.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), DetailsOf(appErr))
	}

	return errors.WithStack(err)
}

// ValidationError is a 400 VALIDATION_ERROR listing the failed rules per field.
func ValidationError(c echo.Context, err error) error {
	var details any = err.Error()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, FieldError{Field: fe.Namespace(), Rule: fe.Tag(), Param: fe.Param()})
		}
		details = fields
	}

	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

// DetailsOf returns the error details, or nil when there are none.
func DetailsOf(appErr domainerrors.AppError) any {
	if appErr.Details() == "" {
		return nil
	}

	return appErr.Details()
}
