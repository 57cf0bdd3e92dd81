package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"

	"github.com/sideshow/apns2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoIPSender_SendsVoIPPush(t *testing.T) {
	var captured *apns2.Notification
	sender := newVoIPSender(func(_ context.Context, n *apns2.Notification) (*apns2.Response, error) {
		captured = n

		return &apns2.Response{StatusCode: http.StatusOK, ApnsID: "apns-1"}, nil
	}, "org.masjidcast.app")

	result := sender.SendVoIPPush(context.Background(), "device-token", map[string]string{
		"action":      "GO_LIVE",
		"broadcastId": "b-1",
	})

	require.True(t, result.OK())
	assert.Equal(t, "apns-1", result.MessageID)
	require.NotNil(t, captured)
	assert.Equal(t, "org.masjidcast.app.voip", captured.Topic)
	assert.Equal(t, apns2.PushTypeVOIP, captured.PushType)
	assert.Equal(t, apns2.PriorityHigh, captured.Priority)
	assert.Equal(t, "device-token", captured.DeviceToken)

	raw, err := json.Marshal(captured.Payload)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"action":"GO_LIVE"`)
	assert.Contains(t, string(raw), `"broadcastId":"b-1"`)
}

func TestVoIPSender_RejectedTokenIsInvalid(t *testing.T) {
	sender := newVoIPSender(func(_ context.Context, _ *apns2.Notification) (*apns2.Response, error) {
		return &apns2.Response{StatusCode: http.StatusBadRequest, Reason: apns2.ReasonBadDeviceToken}, nil
	}, "org.masjidcast.app")

	result := sender.SendVoIPPush(context.Background(), "stale", nil)

	assert.False(t, result.OK())
	assert.True(t, result.InvalidToken)
	assert.True(t, domainerrors.IsProviderError(result.Err))
}

func TestVoIPSender_TransportError(t *testing.T) {
	sender := newVoIPSender(func(_ context.Context, _ *apns2.Notification) (*apns2.Response, error) {
		return nil, assert.AnError
	}, "org.masjidcast.app")

	result := sender.SendVoIPPush(context.Background(), "token", nil)

	assert.False(t, result.OK())
	assert.False(t, result.InvalidToken)
	assert.ErrorIs(t, result.Err, assert.AnError)
}

func TestIsInvalidDeviceToken(t *testing.T) {
	assert.True(t, isInvalidDeviceToken(&apns2.Response{StatusCode: http.StatusGone}))
	assert.True(t, isInvalidDeviceToken(&apns2.Response{StatusCode: http.StatusBadRequest, Reason: apns2.ReasonDeviceTokenNotForTopic}))
	assert.False(t, isInvalidDeviceToken(&apns2.Response{StatusCode: http.StatusTooManyRequests, Reason: apns2.ReasonTooManyRequests}))
}

func TestDroppingSender_ReportsFailure(t *testing.T) {
	sender := &droppingSender{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		provider: constants.PushProviderFCM,
	}

	result := sender.SendDataMessage(context.Background(), "token", map[string]string{"broadcastId": "b"})

	assert.False(t, result.OK())
	assert.ErrorIs(t, result.Err, errChannelNotConfigured)
}
