package notification

import (
	"context"
	"testing"

	"masjidcast/internal/domain/constants"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageClient struct {
	sent []*messaging.Message
	id   string
	err  error
}

func (f *fakeMessageClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return f.id, f.err
}

func TestFCMSender_SendsDataOnlyMessage(t *testing.T) {
	client := &fakeMessageClient{id: "projects/p/messages/1"}
	sender := &fcmSender{client: client}

	result := sender.SendDataMessage(context.Background(), "fcm-token", map[string]string{"action": "GO_LIVE"})

	require.True(t, result.OK())
	assert.Equal(t, "projects/p/messages/1", result.MessageID)
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "fcm-token", msg.Token)
	assert.Nil(t, msg.Notification)
	assert.Equal(t, "GO_LIVE", msg.Data["action"])
	assert.Equal(t, "high", msg.Android.Priority)
	assert.True(t, msg.APNS.Payload.Aps.ContentAvailable)
}

func TestFCMSender_ProviderError(t *testing.T) {
	sender := &fcmSender{client: &fakeMessageClient{err: assert.AnError}}

	result := sender.SendDataMessage(context.Background(), "fcm-token", nil)

	assert.False(t, result.OK())
	assert.False(t, result.InvalidToken)
	assert.Contains(t, result.Err.Error(), constants.PushProviderFCM)
}
