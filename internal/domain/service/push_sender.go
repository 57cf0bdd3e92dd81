package service

import (
	"context"
)

// PushResult is the outcome of a single push attempt.
type PushResult struct {
	MessageID string
	// InvalidToken is set when the provider reports the token as unregistered or malformed.
	InvalidToken bool
	Err          error
}

// OK reports whether the push was accepted by the provider.
func (r PushResult) OK() bool {
	return r.Err == nil
}

// DataMessageSender delivers silent data messages (FCM) to android, web and ios devices.
type DataMessageSender interface {
	SendDataMessage(ctx context.Context, token string, payload map[string]string) PushResult
}

// VoIPPushSender delivers VoIP pushes (APNs) to ios devices.
type VoIPPushSender interface {
	SendVoIPPush(ctx context.Context, token string, payload map[string]string) PushResult
}
