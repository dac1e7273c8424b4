package main

import (
	"passport/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CountryModel{},
		model.RecipeModel{},
		model.RecipeWithCountryModel{},
		model.IngredientModel{},
		model.InstructionModel{},
		model.NutritionBenefitModel{},
		model.FavoriteModel{},
		model.ProfileModel{},
		model.CredentialModel{},
		model.SearchHistoryModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
