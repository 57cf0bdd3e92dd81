// Package scheduler drives the periodic expander, planner and sweep cycles.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"masjidcast/config"
	"masjidcast/internal/delivery"
	deliverycontext "masjidcast/internal/delivery/context"
	"masjidcast/internal/domain/lifecycle"
	"masjidcast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler runs the planning and sweep loops on cron entries.
type Scheduler struct {
	cron       *cron.Cron
	scheduleUC usecase.ScheduleUsecase
	plannerUC  usecase.PlannerUsecase
	sweepUC    usecase.BroadcastUsecase
	prepWindow time.Duration
	planEvery  time.Duration
	sweepEvery time.Duration
	logger     *slog.Logger
	now        func() time.Time
	done       chan struct{}
}

// Params holds dependencies for the Scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	ScheduleUC  usecase.ScheduleUsecase
	PlannerUC   usecase.PlannerUsecase
	BroadcastUC usecase.BroadcastUsecase
}

// NewScheduler creates the scheduler and stops it with the application
func NewScheduler(params Params) (delivery.Delivery, error) {
	s, err := newScheduler(params.Cfg, params.Logger, params.ScheduleUC, params.PlannerUC, params.BroadcastUC)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(cfg *config.Config, logger *slog.Logger, scheduleUC usecase.ScheduleUsecase, plannerUC usecase.PlannerUsecase, broadcastUC usecase.BroadcastUsecase) (*Scheduler, error) {
	bc := cfg.Broadcast
	if bc == nil || bc.SchedulerInterval <= 0 || bc.SweepInterval <= 0 {
		return nil, errors.New("broadcast.schedulerInterval and broadcast.sweepInterval must be positive")
	}

	s := &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		scheduleUC: scheduleUC,
		plannerUC:  plannerUC,
		sweepUC:    broadcastUC,
		prepWindow: bc.PrepWindow,
		planEvery:  bc.SchedulerInterval,
		sweepEvery: bc.SweepInterval,
		logger:     logger,
		now:        time.Now,
		done:       make(chan struct{}),
	}

	if _, err := s.cron.AddFunc(everySpec(s.planEvery), s.guard("plan", s.runPlanCycle)); err != nil {
		return nil, errors.Wrap(err, "register plan cycle")
	}
	if _, err := s.cron.AddFunc(everySpec(s.sweepEvery), s.guard("sweep", s.runSweepCycle)); err != nil {
		return nil, errors.Wrap(err, "register sweep cycle")
	}

	return s, nil
}

func everySpec(d time.Duration) string {
	return "@every " + d.String()
}

// Serve runs one plan cycle immediately, then blocks while cron fires.
func (s *Scheduler) Serve(ctx context.Context) error {
	s.logger.Info("[Scheduler] Starting",
		slog.Duration("plan_every", s.planEvery),
		slog.Duration("sweep_every", s.sweepEvery),
		slog.Duration("prep_window", s.prepWindow),
	)

	s.guard("plan", s.runPlanCycle)()
	s.cron.Start()

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.logger.Info("[Scheduler] Stopping")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
	case <-stopCtx.Done():
		s.logger.Warn("[Scheduler] Running cycle did not finish before shutdown")
	}
	close(s.done)

	return nil
}

// guard gives a cycle its own request ID and logs its error or panic.
func (s *Scheduler) guard(name string, cycle func(ctx context.Context) error) func() {
	return func() {
		ctx, logger := deliverycontext.NewScope(context.Background(), s.logger, uuid.NewString(), slog.String("cycle", name))

		defer func() {
			if r := recover(); r != nil {
				logger.Error("[Scheduler] Cycle panicked",
					slog.String("panic", fmt.Sprint(r)),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		if err := cycle(ctx); err != nil {
			logger.Error("[Scheduler] Cycle failed", slog.Any("error", err))
		}
	}
}

// runPlanCycle expands templates, then plans broadcasts for the next window.
// A failed expansion is logged and the planner still runs on existing occurrences.
func (s *Scheduler) runPlanCycle(ctx context.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	expansion, expandErr := s.scheduleUC.EnsureDailyOccurrences(ctx)
	if expandErr != nil {
		logger.Error("[Scheduler] Template expansion failed", slog.Any("error", expandErr))
	} else if expansion.Created > 0 || expansion.Failed > 0 {
		logger.Info("[Scheduler] Templates expanded",
			slog.Int("created", expansion.Created),
			slog.Int("skipped", expansion.Skipped),
			slog.Int("failed", expansion.Failed),
		)
	}

	plan, err := s.plannerUC.PlanUpcoming(ctx, s.now().UTC(), s.prepWindow)
	if err != nil {
		return errors.Wrap(err, "plan upcoming broadcasts")
	}
	if plan.Created > 0 || plan.Failed > 0 {
		logger.Info("[Scheduler] Broadcasts planned",
			slog.Int("created", plan.Created),
			slog.Int("skipped", plan.Skipped),
			slog.Int("failed", plan.Failed),
		)
	}

	return nil
}

func (s *Scheduler) runSweepCycle(ctx context.Context) error {
	summary, err := s.sweepUC.SweepExpired(ctx)
	if err != nil {
		return errors.Wrap(err, "sweep expired broadcasts")
	}

	if summary.Completed > 0 || summary.Failed > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("[Scheduler] Expired broadcasts swept",
			slog.Int("completed", summary.Completed),
			slog.Int("skipped", summary.Skipped),
			slog.Int("failed", summary.Failed),
		)
	}

	return nil
}
