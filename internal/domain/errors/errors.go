package errors

import (
	"net/http"

	"masjidcast/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Generic kinds
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Input validation failed",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource state conflict",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"Required service configuration is missing",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	// Masjid
	ErrMasjidNotFound = NewBaseError(
		http.StatusNotFound,
		"MASJID_NOT_FOUND",
		"Masjid not found",
		"",
	)

	ErrMasjidNotApproved = NewBaseError(
		http.StatusConflict,
		"MASJID_NOT_APPROVED",
		"Masjid is not approved or not active",
		"",
	)

	ErrInvalidTimezone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIMEZONE",
		"Masjid timezone is not a valid IANA zone",
		"",
	)

	// Schedule
	ErrInvalidPrayer = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRAYER",
		"Unknown prayer name",
		"",
	)

	ErrInvalidLocalTime = NewBaseError(
		http.StatusBadRequest,
		"INVALID_LOCAL_TIME",
		"Local time must use HH:MM",
		"",
	)

	// Broadcast lifecycle
	ErrBroadcastNotFound = NewBaseError(
		http.StatusNotFound,
		"BROADCAST_NOT_FOUND",
		"Broadcast not found",
		"",
	)

	ErrBroadcastAlreadyLive = NewBaseError(
		http.StatusConflict,
		"BROADCAST_ALREADY_LIVE",
		"Broadcast is already live",
		"",
	)

	ErrBroadcastAlreadyEnded = NewBaseError(
		http.StatusConflict,
		"BROADCAST_ALREADY_ENDED",
		"Broadcast has already ended",
		"",
	)

	ErrBroadcastExpired = NewBaseError(
		http.StatusConflict,
		"BROADCAST_EXPIRED",
		"Broadcast exceeded its maximum duration and was closed; start it again",
		"",
	)

	ErrBroadcastNotLive = NewBaseError(
		http.StatusConflict,
		"BROADCAST_NOT_LIVE",
		"Broadcast is not live",
		"",
	)

	// Relay
	ErrRelayDisabled = NewBaseError(
		http.StatusInternalServerError,
		"RELAY_DISABLED",
		"Relay mode is not enabled",
		"",
	)

	ErrRelayAlreadyRunning = NewBaseError(
		http.StatusConflict,
		"RELAY_ALREADY_RUNNING",
		"A relay is already running for this broadcast",
		"",
	)

	// Subscription and device
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Subscription not found",
		"",
	)

	ErrNotSubscribed = NewBaseError(
		http.StatusForbidden,
		"NOT_SUBSCRIBED",
		"You must follow this masjid to listen",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrDeviceTokenTaken = NewBaseError(
		http.StatusConflict,
		"DEVICE_TOKEN_TAKEN",
		"Push token is already registered to another device",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"QR code is not a masjid follow code",
		"",
	)

	// HLS playback
	ErrPlaybackDenied = NewBaseError(
		http.StatusUnauthorized,
		"PLAYBACK_DENIED",
		"Playback requires a valid signature or subscription",
		"",
	)

	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Playback asset not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// ProviderError reports a failed call to an external provider (conferencing, push, egress).
type ProviderError struct {
	provider string
	err      error
}

// NewProviderError creates a provider-related error
func NewProviderError(provider string, err error) AppError {
	return &ProviderError{
		provider: provider,
		err:      err,
	}
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	return errors.Wrapf(e.err, "provider %s failed", e.provider).Error()
}

// Unwrap exposes the provider error
func (e *ProviderError) Unwrap() error {
	return e.err
}

// Provider returns the provider name
func (e *ProviderError) Provider() string {
	return e.provider
}

// HTTPCode returns the HTTP status code
func (e *ProviderError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ProviderError) ErrorCode() string {
	return "PROVIDER_ERROR"
}

// Message returns the user-friendly error message
func (e *ProviderError) Message() string {
	return "Upstream provider request failed"
}

// Details returns detailed error information
func (e *ProviderError) Details() string {
	return e.provider
}
