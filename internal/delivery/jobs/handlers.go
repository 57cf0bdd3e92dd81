package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/usecase"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

// Handlers adapts asynq tasks to use cases.
type Handlers struct {
	broadcastUC    usecase.BroadcastUsecase
	notificationUC usecase.NotificationUsecase
	relayUC        usecase.RelayUsecase
	logger         *slog.Logger
}

// HandlersParams holds dependencies for Handlers, injected by Fx.
type HandlersParams struct {
	fx.In

	BroadcastUC    usecase.BroadcastUsecase
	NotificationUC usecase.NotificationUsecase
	RelayUC        usecase.RelayUsecase
	Logger         *slog.Logger
}

// NewHandlers creates the job handlers
func NewHandlers(params HandlersParams) *Handlers {
	return &Handlers{
		broadcastUC:    params.BroadcastUC,
		notificationUC: params.NotificationUC,
		relayUC:        params.RelayUC,
		logger:         params.Logger,
	}
}

// RegisterAll routes every known job to its handler.
func (h *Handlers) RegisterAll(s *Server) {
	s.Register(constants.JobBroadcastAutoEnd, h.HandleAutoEnd)
	s.Register(constants.JobBroadcastNotify, h.HandleNotify)
	s.Register(constants.JobRelayStart, h.HandleRelayStart)
	s.Register(constants.JobRelayStop, h.HandleRelayStop)
}

// HandleAutoEnd ends a broadcast that reached its maximum duration.
func (h *Handlers) HandleAutoEnd(ctx context.Context, task *asynq.Task) error {
	var payload usecase.AutoEndPayload
	if err := decode(task, &payload); err != nil {
		return err
	}

	return h.broadcastUC.HandleAutoEnd(ctx, &payload)
}

// HandleNotify fans a broadcast event out to subscribed devices.
func (h *Handlers) HandleNotify(ctx context.Context, task *asynq.Task) error {
	var event service.BroadcastEvent
	if err := decode(task, &event); err != nil {
		return err
	}

	summary, err := h.notificationUC.Notify(ctx, &event)
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "[Jobs] Broadcast event delivered",
		slog.String("broadcast_id", event.BroadcastID),
		slog.String("event_type", event.EventType),
		slog.Int("recipients", summary.Recipients),
		slog.Int("sent", summary.Sent),
		slog.Int("failed", summary.Failed),
		slog.Int("skipped", summary.Skipped),
	)

	return nil
}

// HandleRelayStart starts the relay of a live broadcast.
func (h *Handlers) HandleRelayStart(ctx context.Context, task *asynq.Task) error {
	var payload usecase.RelayJobPayload
	if err := decode(task, &payload); err != nil {
		return err
	}

	return h.relayUC.HandleRelayStart(ctx, &payload)
}

// HandleRelayStop stops the relay of an ended broadcast.
func (h *Handlers) HandleRelayStop(ctx context.Context, task *asynq.Task) error {
	var payload usecase.RelayJobPayload
	if err := decode(task, &payload); err != nil {
		return err
	}

	return h.relayUC.HandleRelayStop(ctx, &payload)
}

// decode reports malformed payloads as validation errors so they are never retried.
func decode(task *asynq.Task, v any) error {
	if err := json.Unmarshal(task.Payload(), v); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed " + task.Type() + " payload: " + err.Error())
	}

	return nil
}
