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
)

// recipeContentService implements the RecipeContentUsecase interface.
type recipeContentService struct {
	ingredientRepo  repository.IngredientRepository
	instructionRepo repository.InstructionRepository
	benefitRepo     repository.NutritionBenefitRepository
	gate            roleGate
	logger          *slog.Logger
}

// RecipeContentServiceParams holds dependencies for RecipeContentService, injected by Fx.
type RecipeContentServiceParams struct {
	fx.In

	IngredientRepo  repository.IngredientRepository
	InstructionRepo repository.InstructionRepository
	BenefitRepo     repository.NutritionBenefitRepository
	ProfileRepo     repository.ProfileRepository
	Logger          *slog.Logger
}

// NewRecipeContentService is the constructor for recipeContentService.
func NewRecipeContentService(params RecipeContentServiceParams) usecase.RecipeContentUsecase {
	return &recipeContentService{
		ingredientRepo:  params.IngredientRepo,
		instructionRepo: params.InstructionRepo,
		benefitRepo:     params.BenefitRepo,
		gate:            roleGate{profileRepo: params.ProfileRepo},
		logger:          params.Logger,
	}
}

func (srv *recipeContentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Ingredients ---

func (srv *recipeContentService) ListIngredients(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error) {
	items, err := srv.ingredientRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list ingredients")
	}
	entity.SortIngredients(items)

	return items, nil
}

// AddIngredient appends an ingredient. Without an explicit order_index it is
// placed at the current ingredient count.
func (srv *recipeContentService) AddIngredient(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error) {
	if input == nil || isBlank(input.Name) {
		return nil, validationError("name is required")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	if input.OrderIndex == nil {
		count, err := srv.ingredientRepo.CountByRecipe(ctx, recipeID)
		if err != nil {
			return nil, translateRepoError(err, "failed to count ingredients")
		}
		input.OrderIndex = &count
	}

	item, err := srv.ingredientRepo.Create(ctx, recipeID, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to add ingredient")
	}

	srv.log(ctx).Debug("Ingredient added", slog.String("recipe_id", recipeID.String()), slog.Int("order_index", item.OrderIndex))

	return item, nil
}

func (srv *recipeContentService) UpdateIngredient(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error) {
	if input == nil {
		return nil, validationError("empty update")
	}
	if presentButBlank(input.Name) {
		return nil, validationError("name cannot be blank")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	item, err := srv.ingredientRepo.Update(ctx, id, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update ingredient")
	}

	return item, nil
}

func (srv *recipeContentService) DeleteIngredient(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := srv.gate.requireAdmin(ctx, session); err != nil {
		return err
	}
	if err := srv.ingredientRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete ingredient")
	}

	return nil
}

// --- Instructions ---

func (srv *recipeContentService) ListInstructions(ctx context.Context, recipeID uuid.UUID) ([]*entity.Instruction, error) {
	items, err := srv.instructionRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list instructions")
	}
	entity.SortInstructions(items)

	return items, nil
}

// AddInstruction appends a step. Without an explicit step_number it becomes
// the step after the current count.
func (srv *recipeContentService) AddInstruction(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error) {
	if input == nil || isBlank(input.InstructionText) {
		return nil, validationError("instruction_text is required")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	if input.StepNumber == nil {
		count, err := srv.instructionRepo.CountByRecipe(ctx, recipeID)
		if err != nil {
			return nil, translateRepoError(err, "failed to count instructions")
		}
		next := count + 1
		input.StepNumber = &next
	}

	item, err := srv.instructionRepo.Create(ctx, recipeID, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to add instruction")
	}

	srv.log(ctx).Debug("Instruction added", slog.String("recipe_id", recipeID.String()), slog.Int("step_number", item.StepNumber))

	return item, nil
}

func (srv *recipeContentService) UpdateInstruction(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error) {
	if input == nil {
		return nil, validationError("empty update")
	}
	if presentButBlank(input.InstructionText) {
		return nil, validationError("instruction_text cannot be blank")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	item, err := srv.instructionRepo.Update(ctx, id, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update instruction")
	}

	return item, nil
}

func (srv *recipeContentService) DeleteInstruction(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := srv.gate.requireAdmin(ctx, session); err != nil {
		return err
	}
	if err := srv.instructionRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete instruction")
	}

	return nil
}

// --- Nutrition benefits ---

func (srv *recipeContentService) ListBenefits(ctx context.Context, recipeID uuid.UUID) ([]*entity.NutritionBenefit, error) {
	items, err := srv.benefitRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, translateRepoError(err, "failed to list nutrition benefits")
	}
	entity.SortNutritionBenefits(items)

	return items, nil
}

func (srv *recipeContentService) AddBenefit(ctx context.Context, session *entity.Session, recipeID uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error) {
	if input == nil || isBlank(input.IngredientName) {
		return nil, validationError("ingredient_name is required")
	}
	if isBlank(input.BenefitText) {
		return nil, validationError("benefit_text is required")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	if input.OrderIndex == nil {
		count, err := srv.benefitRepo.CountByRecipe(ctx, recipeID)
		if err != nil {
			return nil, translateRepoError(err, "failed to count nutrition benefits")
		}
		input.OrderIndex = &count
	}

	item, err := srv.benefitRepo.Create(ctx, recipeID, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to add nutrition benefit")
	}

	return item, nil
}

func (srv *recipeContentService) UpdateBenefit(ctx context.Context, session *entity.Session, id uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error) {
	if input == nil {
		return nil, validationError("empty update")
	}
	if presentButBlank(input.IngredientName) || presentButBlank(input.BenefitText) {
		return nil, validationError("ingredient_name and benefit_text cannot be blank")
	}
	if err := srv.gate.requireEditor(ctx, session); err != nil {
		return nil, err
	}

	item, err := srv.benefitRepo.Update(ctx, id, input)
	if err != nil {
		return nil, translateRepoError(err, "failed to update nutrition benefit")
	}

	return item, nil
}

func (srv *recipeContentService) DeleteBenefit(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := srv.gate.requireAdmin(ctx, session); err != nil {
		return err
	}
	if err := srv.benefitRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, "failed to delete nutrition benefit")
	}

	return nil
}
