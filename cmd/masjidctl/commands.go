package main

import (
	"context"
	"fmt"
	"time"

	"masjidcast/config"
	"masjidcast/internal/domain/entity"
	"masjidcast/internal/domain/service"
	"masjidcast/internal/infra/persistence/postgres"
	"masjidcast/internal/usecase"
	"masjidcast/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func runMigrate(ctx context.Context) error {
	var db *gorm.DB

	return withApp(ctx, func(ctx context.Context) error {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}

		fmt.Printf("migrated %d tables\n", len(postgres.Models()))

		return nil
	}, &db)
}

func runExpand(ctx context.Context) error {
	var scheduleUC usecase.ScheduleUsecase

	return withApp(ctx, func(ctx context.Context) error {
		summary, err := scheduleUC.EnsureDailyOccurrences(ctx)
		if err != nil {
			return errors.Wrap(err, "expand templates")
		}

		fmt.Printf("created=%d skipped=%d failed=%d\n", summary.Created, summary.Skipped, summary.Failed)

		return nil
	}, &scheduleUC)
}

func runPlan(ctx context.Context, window time.Duration) error {
	var (
		cfg       *config.Config
		plannerUC usecase.PlannerUsecase
	)

	return withApp(ctx, func(ctx context.Context) error {
		if window == 0 {
			window = cfg.Broadcast.PrepWindow
		}

		summary, err := plannerUC.PlanUpcoming(ctx, time.Now().UTC(), window)
		if err != nil {
			return errors.Wrap(err, "plan broadcasts")
		}

		fmt.Printf("window=%s created=%d skipped=%d failed=%d\n", util.FormatDuration(window), summary.Created, summary.Skipped, summary.Failed)

		return nil
	}, &cfg, &plannerUC)
}

func runSweep(ctx context.Context) error {
	var broadcastUC usecase.BroadcastUsecase

	return withApp(ctx, func(ctx context.Context) error {
		summary, err := broadcastUC.SweepExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "sweep broadcasts")
		}

		fmt.Printf("completed=%d skipped=%d failed=%d\n", summary.Completed, summary.Skipped, summary.Failed)

		return nil
	}, &broadcastUC)
}

func runSignURL(ctx context.Context, rawID string, ttl time.Duration) error {
	broadcastID, err := uuid.Parse(rawID)
	if err != nil {
		return errors.Wrap(err, "invalid broadcast id")
	}

	var (
		cfg    *config.Config
		signer service.PlaybackSigner
	)

	return withConfig(ctx, func(context.Context) error {
		if ttl <= 0 {
			ttl = cfg.HLS.URLTTL
		}

		url, expiresAt := signer.SignedURL(broadcastID, ttl)
		fmt.Println(url)
		fmt.Printf("expires %s (%s)\n", expiresAt.UTC().Format(time.RFC3339), util.FormatUntil(expiresAt, time.Now()))

		return nil
	}, &cfg, &signer)
}

func runToken(ctx context.Context, rawID, identity string, publish bool) error {
	broadcastID, err := uuid.Parse(rawID)
	if err != nil {
		return errors.Wrap(err, "invalid broadcast id")
	}

	var rooms service.AudioRoomService

	return withConfig(ctx, func(context.Context) error {
		token, err := rooms.MintAccessToken(identity, entity.RoomNameFor(broadcastID), publish)
		if err != nil {
			return errors.Wrap(err, "mint token")
		}

		fmt.Println(token)

		return nil
	}, &rooms)
}
