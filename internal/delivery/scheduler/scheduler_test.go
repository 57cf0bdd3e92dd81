package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"masjidcast/config"
	mockUsecase "masjidcast/internal/mocks/usecase"
	"masjidcast/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulerFixtures struct {
	scheduler   *Scheduler
	scheduleUC  *mockUsecase.MockScheduleUsecase
	plannerUC   *mockUsecase.MockPlannerUsecase
	broadcastUC *mockUsecase.MockBroadcastUsecase
	now         time.Time
}

func createTestScheduler(t *testing.T) schedulerFixtures {
	t.Helper()

	cfg := &config.Config{
		Broadcast: &config.BroadcastConfig{
			PrepWindow:        2 * time.Minute,
			SchedulerInterval: time.Minute,
			SweepInterval:     5 * time.Minute,
			MaxDuration:       15 * time.Minute,
		},
	}
	fx := schedulerFixtures{
		scheduleUC:  mockUsecase.NewMockScheduleUsecase(t),
		plannerUC:   mockUsecase.NewMockPlannerUsecase(t),
		broadcastUC: mockUsecase.NewMockBroadcastUsecase(t),
		now:         time.Date(2026, 3, 14, 23, 39, 0, 0, time.UTC),
	}

	s, err := newScheduler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), fx.scheduleUC, fx.plannerUC, fx.broadcastUC)
	require.NoError(t, err)
	s.now = func() time.Time { return fx.now }
	fx.scheduler = s

	return fx
}

func TestScheduler_RegistersBothCycles(t *testing.T) {
	fx := createTestScheduler(t)

	assert.Len(t, fx.scheduler.cron.Entries(), 2)
}

func TestScheduler_RejectsMissingIntervals(t *testing.T) {
	_, err := newScheduler(&config.Config{Broadcast: &config.BroadcastConfig{}}, slog.Default(), nil, nil, nil)

	assert.Error(t, err)
}

func TestScheduler_PlanCycleExpandsThenPlans(t *testing.T) {
	fx := createTestScheduler(t)

	var order []string
	fx.scheduleUC.EXPECT().EnsureDailyOccurrences(mock.Anything).
		Run(func(context.Context) { order = append(order, "expand") }).
		Return(&usecase.ExpansionSummary{Created: 5}, nil).Once()
	fx.plannerUC.EXPECT().PlanUpcoming(mock.Anything, fx.now, 2*time.Minute).
		Run(func(context.Context, time.Time, time.Duration) { order = append(order, "plan") }).
		Return(&usecase.PlanSummary{Created: 1}, nil).Once()

	err := fx.scheduler.runPlanCycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"expand", "plan"}, order)
}

func TestScheduler_PlanCycleRunsPlannerWhenExpansionFails(t *testing.T) {
	fx := createTestScheduler(t)

	fx.scheduleUC.EXPECT().EnsureDailyOccurrences(mock.Anything).
		Return(nil, errors.New("db down")).Once()
	fx.plannerUC.EXPECT().PlanUpcoming(mock.Anything, fx.now, 2*time.Minute).
		Return(&usecase.PlanSummary{}, nil).Once()

	assert.NoError(t, fx.scheduler.runPlanCycle(context.Background()))
}

func TestScheduler_PlanCycleReportsPlannerError(t *testing.T) {
	fx := createTestScheduler(t)

	fx.scheduleUC.EXPECT().EnsureDailyOccurrences(mock.Anything).
		Return(&usecase.ExpansionSummary{}, nil).Once()
	fx.plannerUC.EXPECT().PlanUpcoming(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("db down")).Once()

	assert.Error(t, fx.scheduler.runPlanCycle(context.Background()))
}

func TestScheduler_SweepCycle(t *testing.T) {
	fx := createTestScheduler(t)

	fx.broadcastUC.EXPECT().SweepExpired(mock.Anything).
		Return(&usecase.SweepSummary{Completed: 2}, nil).Once()

	assert.NoError(t, fx.scheduler.runSweepCycle(context.Background()))
}

func TestScheduler_GuardRecoversPanics(t *testing.T) {
	fx := createTestScheduler(t)

	run := fx.scheduler.guard("sweep", func(context.Context) error {
		panic("boom")
	})

	assert.NotPanics(t, run)
}
