package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	recipeRepo repository.RecipeRepository
	qrCode     service.QRCodeService
	gate       roleGate
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	RecipeRepo  repository.RecipeRepository
	ProfileRepo repository.ProfileRepository
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		recipeRepo: params.RecipeRepo,
		qrCode:     params.QRCode,
		gate:       roleGate{profileRepo: params.ProfileRepo},
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *recipeService) ListRecipes(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list recipes")
	}

	return recipes, nil
}

func (srv *recipeService) ListRecipesByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.ListByCountry(ctx, countryID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list recipes by country")
	}

	return recipes, nil
}

func (srv *recipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "failed to get recipe")
	}

	return recipe, nil
}

func (srv *recipeService) CreateRecipe(ctx context.Context, session *entity.Session, input *entity.RecipeInput) (*entity.Recipe, error) {
	if input == nil || isBlank(input.Name) {
		return nil, validationError("name is required")
	}
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	recipe, err := srv.recipeRepo.Create(ctx, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to create recipe")
	}

	srv.log(ctx).Info("Recipe created", slog.String("recipe_id", recipe.ID.String()), slog.String("name", recipe.Name))

	return recipe, nil
}

func (srv *recipeService) UpdateRecipe(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.RecipeInput) (*entity.Recipe, error) {
	if input == nil {
		return nil, validationError("empty update")
	}
	if presentButBlank(input.Name) {
		return nil, validationError("name cannot be blank")
	}
	if err := validateRecipeInput(input); err != nil {
		return nil, err
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	recipe, err := srv.recipeRepo.Update(ctx, id, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update recipe")
	}

	return recipe, nil
}

// DeleteRecipe removes the recipe; children and favorites go with it through the storage cascade.
func (srv *recipeService) DeleteRecipe(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := srv.gate.requireAdmin(ctx, session); err != nil {
		return err
	}

	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete recipe")
	}

	srv.log(ctx).Info("Recipe deleted", slog.String("recipe_id", id.String()))

	return nil
}

func (srv *recipeService) RecipeOfTheDay(ctx context.Context, now time.Time) (*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		return nil, translateRepoError(err, "failed to list recipes")
	}
	if len(recipes) == 0 {
		return nil, errors.WithStack(domainerrors.ErrNoRecipes)
	}

	return recipes[dailyIndex(now, len(recipes))], nil
}

func (srv *recipeService) RecipeQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.recipeRepo.FindByID(ctx, id); err != nil {
		return nil, translateRepoError(err, "failed to get recipe")
	}

	png, err := srv.qrCode.GenerateRecipeQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate recipe QR code")
	}

	return png, nil
}

// dailyIndex sums the digits of the UTC date (YYYYMMDD) and reduces it modulo n.
func dailyIndex(now time.Time, n int) int {
	sum := 0
	for _, r := range now.UTC().Format("20060102") {
		sum += int(r - '0')
	}

	return sum % n
}

func validateRecipeInput(input *entity.RecipeInput) error {
	if input.DifficultyLevel != nil && !input.DifficultyLevel.IsValid() {
		return validationError("difficulty_level must be easy, medium or hard")
	}
	if input.Servings != nil && *input.Servings <= 0 {
		return validationError("servings must be positive")
	}
	if input.PrepTime != nil && *input.PrepTime < 0 {
		return validationError("prep_time cannot be negative")
	}
	if input.CookTime != nil && *input.CookTime < 0 {
		return validationError("cook_time cannot be negative")
	}

	return nil
}
