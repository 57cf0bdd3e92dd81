// Package jobs runs the asynq consumer for lifecycle, notification and relay jobs.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"masjidcast/config"
	"masjidcast/internal/delivery"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/constants"
	domainerrors "masjidcast/internal/domain/errors"
	"masjidcast/internal/domain/lifecycle"
	logs "masjidcast/internal/infra/log"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Queue weights. Lifecycle work is never starved by a large fan-out.
var queueWeights = map[string]int{
	constants.QueueBroadcasts:    6,
	constants.QueueNotifications: 3,
	constants.QueueRelay:         1,
}

// Server wraps an asynq server and its mux.
type Server struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *slog.Logger
	done   chan struct{}
}

// ServerParams holds dependencies for the job server
type ServerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	Logger   *slog.Logger
	ConnOpt  asynq.RedisConnOpt
	Handlers *Handlers
}

// NewServer creates the job server with every job handler registered
func NewServer(params ServerParams) (delivery.Delivery, error) {
	concurrency := 0
	if params.Cfg.Queue != nil {
		concurrency = params.Cfg.Queue.Concurrency
	}

	s := &Server{
		mux:    asynq.NewServeMux(),
		logger: params.Logger,
		done:   make(chan struct{}),
	}
	s.srv = asynq.NewServer(params.ConnOpt, asynq.Config{
		Concurrency:     concurrency,
		Queues:          queueWeights,
		Logger:          logs.NewAsynqLogger(params.Logger),
		ErrorHandler:    asynq.ErrorHandlerFunc(s.handleError),
		ShutdownTimeout: lifecycle.DefaultTimeout,
	})
	s.mux.Use(s.taskContext)

	params.Handlers.RegisterAll(s)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Register routes jobName to handler. Client errors are not retried.
func (s *Server) Register(jobName string, handler asynq.HandlerFunc) {
	s.mux.HandleFunc(jobName, func(ctx context.Context, task *asynq.Task) error {
		if err := handler(ctx, task); err != nil {
			if domainerrors.IsClientError(err) {
				return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
			}

			return err
		}

		return nil
	})
}

// Serve starts processing and blocks until the server is stopped.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("[Jobs] Starting job server", slog.Any("queues", queueWeights))
	if err := s.srv.Start(s.mux); err != nil {
		return errors.Wrap(err, "start job server")
	}

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

func (s *Server) stop(context.Context) error {
	s.logger.Info("[Jobs] Shutting down job server")
	s.srv.Shutdown()
	close(s.done)

	return nil
}

// taskContext gives each task a request ID and a scoped logger, like HTTP requests get.
func (s *Server) taskContext(next asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
		taskID, ok := asynq.GetTaskID(ctx)
		if !ok {
			taskID = uuid.NewString()
		}
		retry, _ := asynq.GetRetryCount(ctx)

		ctx, _ = s.taskScope(ctx, task, taskID, retry)

		return next.ProcessTask(ctx, task)
	})
}

func (s *Server) taskScope(ctx context.Context, task *asynq.Task, taskID string, retry int) (context.Context, *slog.Logger) {
	return deliverycontext.NewScope(ctx, s.logger, taskID,
		slog.String("job", task.Type()),
		slog.Int("retry", retry),
	)
}

// handleError runs outside the mux middleware, so the task scope is rebuilt from the
// task metadata asynq keeps in ctx.
func (s *Server) handleError(ctx context.Context, task *asynq.Task, err error) {
	logger := s.logger.With(slog.String("job", task.Type()))
	if taskID, ok := asynq.GetTaskID(ctx); ok {
		retry, _ := asynq.GetRetryCount(ctx)
		_, logger = s.taskScope(ctx, task, taskID, retry)
	}

	logFailure(logger, err)
}

func logFailure(logger *slog.Logger, err error) {
	if errors.Is(err, asynq.SkipRetry) {
		logger.Warn("[Jobs] Job dropped", slog.Any("error", err))

		return
	}

	logger.Error("[Jobs] Job failed", slog.Any("error", err))
}
