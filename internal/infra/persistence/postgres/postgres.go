package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/lifecycle"
	"masjidcast/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica pools, pings on start and closes on stop.
// Fan-out bursts and the planner share one pool, so waits on it are logged.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes use txManager.Execute explicitly.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			params.Logger.Info("[DB] Connected", slog.Int("replicas", len(params.Config.Postgres.Replicas)))

			go monitorDBPool(monitorCtx, params.Logger, sqlDB.Stats, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			if level, attrs, ok := poolWait(prev, cur); ok {
				logger.LogAttrs(ctx, level, "[DB] pool wait", attrs...)
			}
			prev = cur
		}
	}
}

// poolWait reports connection waits between two samples. Waits totalling
// at least the threshold are warnings, the rest debug.
func poolWait(prev, cur sql.DBStats) (slog.Level, []slog.Attr, bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return 0, nil, false
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("waitCountDelta", waitDelta),
		slog.Duration("waitDurationDelta", waitDurationDelta),
		slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	}

	level := slog.LevelDebug
	if waitDurationDelta >= dbPoolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return level, attrs, true
}
