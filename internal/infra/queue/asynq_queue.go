// Package queue adapts asynq to the domain JobQueue.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"masjidcast/config"
	"masjidcast/internal/domain/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type asynqQueue struct {
	client enqueuer
	logger *slog.Logger
}

// NewRedisConnOpt parses redis.url for both the client and the server.
func NewRedisConnOpt(cfg *config.Config) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(cfg.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis.url")
	}

	return opt, nil
}

// Params holds dependencies for the job queue
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	ConnOpt asynq.RedisConnOpt
	Logger  *slog.Logger
}

// NewJobQueue creates the asynq-backed JobQueue and closes its client on stop
func NewJobQueue(params Params) service.JobQueue {
	client := asynq.NewClient(params.ConnOpt)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return newAsynqQueue(client, params.Logger)
}

func newAsynqQueue(client enqueuer, logger *slog.Logger) *asynqQueue {
	return &asynqQueue{client: client, logger: logger}
}

// Enqueue serializes payload as JSON and enqueues it on queue.
func (q *asynqQueue) Enqueue(ctx context.Context, queue, jobName string, payload any, opts service.EnqueueOptions) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "marshal %s payload", jobName)
	}

	taskOpts := []asynq.Option{asynq.Queue(queue)}
	if opts.Delay > 0 {
		taskOpts = append(taskOpts, asynq.ProcessIn(opts.Delay))
	}
	if opts.DedupeKey != "" {
		taskOpts = append(taskOpts, asynq.TaskID(opts.DedupeKey))
	}

	info, err := q.client.EnqueueContext(ctx, asynq.NewTask(jobName, data), taskOpts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) || errors.Is(err, asynq.ErrDuplicateTask) {
			q.logger.DebugContext(ctx, "[Queue] Duplicate job ignored",
				slog.String("job", jobName),
				slog.String("dedupe_key", opts.DedupeKey),
			)

			return nil
		}

		return errors.Wrapf(err, "enqueue %s", jobName)
	}

	q.logger.DebugContext(ctx, "[Queue] Job enqueued",
		slog.String("job", jobName),
		slog.String("queue", info.Queue),
		slog.String("task_id", info.ID),
		slog.Duration("delay", opts.Delay),
	)

	return nil
}
