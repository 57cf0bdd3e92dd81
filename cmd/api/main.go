package main

import (
	"context"
	"log/slog"
	"os"

	"masjidcast/config"
	"masjidcast/internal/delivery"
	"masjidcast/internal/delivery/api"
	"masjidcast/internal/delivery/api/middleware"
	"masjidcast/internal/delivery/api/router/handler"
	"masjidcast/internal/infra/audioroom"
	"masjidcast/internal/infra/auth"
	"masjidcast/internal/infra/hls"
	logs "masjidcast/internal/infra/log"
	"masjidcast/internal/infra/notification"
	"masjidcast/internal/infra/persistence/postgres"
	"masjidcast/internal/infra/pubsub"
	"masjidcast/internal/infra/qrcode"
	"masjidcast/internal/infra/queue"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewTransactionManager,
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
			auth.NewJWTService,
			audioroom.NewLiveKitService,
			qrcode.NewQRCodeService,
			queue.NewJobQueue,
			hls.NewPlaybackSigner,
			hls.NewPlaybackStore,
			notification.NewDataMessageSender,
			notification.NewVoIPPushSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMasjidService,
			impl.NewDeviceService,
			impl.NewSubscriptionService,
			impl.NewScheduleService,
			impl.NewBroadcastService,
			impl.NewNotificationService,
			impl.NewPlaybackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDiagnosticsHandler,
			handler.NewDeviceHandler,
			handler.NewSubscriptionHandler,
			handler.NewMasjidHandler,
			handler.NewBroadcastHandler,
			handler.NewPlaybackHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
