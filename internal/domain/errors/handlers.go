package errors

import (
	"net/http"

	"masjidcast/internal/errors"
)

// StatusOf returns the HTTP status carried by err, or 500 when err is not an AppError.
func StatusOf(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// IsClientError reports whether err is a 4xx AppError. Job handlers use it to
// stop retrying work that can never succeed (missing entity, state conflict).
func IsClientError(err error) bool {
	status := StatusOf(err)

	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

// IsProviderError reports whether err came from an external provider call.
func IsProviderError(err error) bool {
	var providerErr *ProviderError

	return errors.As(err, &providerErr)
}
