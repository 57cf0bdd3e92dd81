package main

import (
	"context"

	"masjidcast/config"
	"masjidcast/internal/infra/audioroom"
	"masjidcast/internal/infra/hls"
	logs "masjidcast/internal/infra/log"
	"masjidcast/internal/infra/persistence/postgres"
	"masjidcast/internal/infra/pubsub"
	"masjidcast/internal/infra/queue"
	"masjidcast/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// withApp builds the same graph as the worker without its deliveries,
// populates targets and runs fn between Start and Stop.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			queue.NewRedisConnOpt,
			queue.NewJobQueue,
			postgres.NewMasjidRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewScheduleTemplateRepository,
			postgres.NewScheduleOccurrenceRepository,
			postgres.NewBroadcastRepository,
			audioroom.NewLiveKitService,
			impl.NewScheduleService,
			impl.NewPlannerService,
			impl.NewBroadcastService,
		),
		pubsub.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	if err := app.Stop(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

// withConfig is for commands that only sign or mint and need no database.
func withConfig(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			audioroom.NewLiveKitService,
			hls.NewPlaybackSigner,
		),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	return fn(ctx)
}
