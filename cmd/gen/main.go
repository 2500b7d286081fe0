package main

import (
	"pushcampaign/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PushSubscriptionModel{},
		model.PushCampaignModel{},
		model.PushSendModel{},
		model.PushClickModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
