package notification

import (
	"context"
	"log/slog"

	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"

	"github.com/pkg/errors"
)

var errChannelNotConfigured = errors.New("push channel not configured")

// droppingSender stands in for an unconfigured channel. Every push is logged and reported failed.
type droppingSender struct {
	logger   *slog.Logger
	provider string
}

func (s *droppingSender) SendDataMessage(ctx context.Context, _ string, payload map[string]string) service.PushResult {
	return s.drop(ctx, payload)
}

func (s *droppingSender) SendVoIPPush(ctx context.Context, _ string, payload map[string]string) service.PushResult {
	return s.drop(ctx, payload)
}

func (s *droppingSender) drop(ctx context.Context, payload map[string]string) service.PushResult {
	s.logger.DebugContext(ctx, "[Push] channel disabled, dropping push",
		slog.String("provider", s.provider),
		slog.String("broadcast_id", payload["broadcastId"]),
	)

	return service.PushResult{Err: domainerrors.NewProviderError(s.provider, errChannelNotConfigured)}
}
