package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"masjidcast/internal/delivery/api/response"
	domainerrors "masjidcast/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/broadcasts/x", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body response.ErrorResponse
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func TestHandleHTTPError_DomainError(t *testing.T) {
	rec, body := handleError(t, errors.Wrap(domainerrors.ErrBroadcastAlreadyLive.WithDetails("status live"), "start"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "BROADCAST_ALREADY_LIVE", body.Error.Code)
	assert.Equal(t, "status live", body.Error.Details)
}

func TestHandleHTTPError_ValidationListsFields(t *testing.T) {
	type input struct {
		ScheduledAt string `validate:"required"`
	}
	err := validator.New().Struct(input{})

	rec, body := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	details, ok := body.Error.Details.([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "required", details[0].(map[string]any)["rule"])
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	rec, body := handleError(t, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_ClientGone(t *testing.T) {
	rec, _ := handleError(t, errors.Wrap(context.Canceled, "copy segment"))

	assert.Equal(t, statusClientClosedRequest, rec.Code)
}

func TestHandleHTTPError_UnknownErrorIsHidden(t *testing.T) {
	rec, body := handleError(t, errors.New("pq: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "pq:")
}
