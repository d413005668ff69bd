package main

import (
	"nearbite/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RestaurantModel{},
		model.RestaurantMessageModel{},
		model.MessageRecipientModel{},
		model.RestaurantFavoriteModel{},
		model.UserDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
