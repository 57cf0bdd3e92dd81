package main

import (
	"context"
	"log/slog"
	"os"

	"masjidcast/config"
	"masjidcast/internal/delivery"
	"masjidcast/internal/delivery/jobs"
	"masjidcast/internal/delivery/scheduler"
	"masjidcast/internal/delivery/worker"
	"masjidcast/internal/delivery/worker/handler"
	"masjidcast/internal/infra/audioroom"
	logs "masjidcast/internal/infra/log"
	"masjidcast/internal/infra/notification"
	"masjidcast/internal/infra/persistence/postgres"
	"masjidcast/internal/infra/pubsub"
	"masjidcast/internal/infra/queue"
	"masjidcast/internal/infra/relay"
	"masjidcast/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		queue.NewRedisConnOpt,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewMasjidRepository,
			postgres.NewDeviceRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewScheduleTemplateRepository,
			postgres.NewScheduleOccurrenceRepository,
			postgres.NewBroadcastRepository,
			postgres.NewNotificationLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			audioroom.NewLiveKitService,
			queue.NewJobQueue,
			relay.NewRelayManager,
			notification.NewDataMessageSender,
			notification.NewVoIPPushSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScheduleService,
			impl.NewPlannerService,
			impl.NewBroadcastService,
			impl.NewNotificationService,
			impl.NewRelayService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			jobs.NewHandlers,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				jobs.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
