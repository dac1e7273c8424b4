package impl

import (
	"context"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// recipeDetailService implements the RecipeDetailUsecase interface.
type recipeDetailService struct {
	recipeRepo      repository.RecipeRepository
	ingredientRepo  repository.IngredientRepository
	instructionRepo repository.InstructionRepository
	benefitRepo     repository.NutritionBenefitRepository
	logger          *slog.Logger
}

// RecipeDetailServiceParams holds dependencies for RecipeDetailService, injected by Fx.
type RecipeDetailServiceParams struct {
	fx.In

	RecipeRepo      repository.RecipeRepository
	IngredientRepo  repository.IngredientRepository
	InstructionRepo repository.InstructionRepository
	BenefitRepo     repository.NutritionBenefitRepository
	Logger          *slog.Logger
}

// NewRecipeDetailService is the constructor for recipeDetailService.
func NewRecipeDetailService(params RecipeDetailServiceParams) usecase.RecipeDetailUsecase {
	return &recipeDetailService{
		recipeRepo:      params.RecipeRepo,
		ingredientRepo:  params.IngredientRepo,
		instructionRepo: params.InstructionRepo,
		benefitRepo:     params.BenefitRepo,
		logger:          params.Logger,
	}
}

func (srv *recipeDetailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRecipeFull issues the four reads concurrently. A failing read does not
// cancel the others; each result is kept and the errors are ranked afterwards.
func (srv *recipeDetailService) GetRecipeFull(ctx context.Context, id uuid.UUID) (*usecase.RecipeBundle, error) {
	var (
		group errgroup.Group

		recipe       *entity.Recipe
		ingredients  []*entity.Ingredient
		instructions []*entity.Instruction
		benefits     []*entity.NutritionBenefit

		recipeErr, ingredientsErr, instructionsErr, benefitsErr error
	)

	group.Go(func() error {
		recipe, recipeErr = srv.recipeRepo.FindByID(ctx, id)

		return nil
	})
	group.Go(func() error {
		ingredients, ingredientsErr = srv.ingredientRepo.ListByRecipe(ctx, id)

		return nil
	})
	group.Go(func() error {
		instructions, instructionsErr = srv.instructionRepo.ListByRecipe(ctx, id)

		return nil
	})
	group.Go(func() error {
		benefits, benefitsErr = srv.benefitRepo.ListByRecipe(ctx, id)

		return nil
	})
	_ = group.Wait()

	bundle := &usecase.RecipeBundle{
		Ingredients:  []*entity.Ingredient{},
		Instructions: []*entity.Instruction{},
		Benefits:     []*entity.NutritionBenefit{},
	}
	if recipeErr == nil {
		bundle.Recipe = recipe
	}
	if ingredientsErr == nil && ingredients != nil {
		entity.SortIngredients(ingredients)
		bundle.Ingredients = ingredients
	}
	if instructionsErr == nil && instructions != nil {
		entity.SortInstructions(instructions)
		bundle.Instructions = instructions
	}
	if benefitsErr == nil && benefits != nil {
		entity.SortNutritionBenefits(benefits)
		bundle.Benefits = benefits
	}

	switch {
	case recipeErr != nil:
		return bundle, translateRepoError(recipeErr, "failed to load recipe")
	case ingredientsErr != nil:
		srv.log(ctx).Warn("Recipe loaded without ingredients", slog.String("recipe_id", id.String()), slog.Any("error", ingredientsErr))

		return bundle, partial("ingredients", translateRepoError(ingredientsErr, "failed to load ingredients"))
	case instructionsErr != nil:
		srv.log(ctx).Warn("Recipe loaded without instructions", slog.String("recipe_id", id.String()), slog.Any("error", instructionsErr))

		return bundle, partial("instructions", translateRepoError(instructionsErr, "failed to load instructions"))
	case benefitsErr != nil:
		srv.log(ctx).Warn("Recipe loaded without nutrition benefits", slog.String("recipe_id", id.String()), slog.Any("error", benefitsErr))

		return bundle, partial("nutrition benefits", translateRepoError(benefitsErr, "failed to load nutrition benefits"))
	}

	return bundle, nil
}

func partial(collection string, err error) error {
	return &usecase.PartialBundleError{Collection: collection, Err: err}
}
