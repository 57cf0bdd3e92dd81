package main

import (
	"masjidcast/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.MasjidModel{},
		model.UserDeviceModel{},
		model.SubscriptionModel{},
		model.ScheduleTemplateModel{},
		model.ScheduleOccurrenceModel{},
		model.BroadcastModel{},
		model.NotificationLogModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
