package postgres

import (
	"context"

	"masjidcast/internal/errors"
	"masjidcast/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Models returns every table the service owns, parents first.
func Models() []any {
	return []any{
		&model.MasjidModel{},
		&model.SubscriptionModel{},
		&model.UserDeviceModel{},
		&model.ScheduleTemplateModel{},
		&model.ScheduleOccurrenceModel{},
		&model.BroadcastModel{},
		&model.NotificationLogModel{},
	}
}

// Migrate creates missing tables, columns and the indexes declared in model tags,
// including the partial unique index on broadcasts.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
