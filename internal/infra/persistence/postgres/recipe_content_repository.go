package postgres

import (
	"context"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
	"passport/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// countByRecipe counts the rows of a child table belonging to one recipe.
func countByRecipe(ctx context.Context, db *gorm.DB, value any, recipeID uuid.UUID) (int, error) {
	var count int64
	if err := db.WithContext(ctx).
		Model(value).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recipe children")
	}

	return int(count), nil
}

// applyChildPatch runs a partial update on a child row, mapping zero affected rows to notFound.
func applyChildPatch(ctx context.Context, db *gorm.DB, value any, id uuid.UUID, updates patch, notFound error, op string) error {
	if len(updates) == 0 {
		return nil
	}

	result := db.WithContext(ctx).
		Model(value).
		Where("id = ?", id).
		Updates(map[string]any(updates))
	if result.Error != nil {
		return translateWriteError(result.Error, nil, op)
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func deleteChild(ctx context.Context, db *gorm.DB, value any, id uuid.UUID, notFound error, op string) error {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(value)

	if result.Error != nil {
		return errors.Wrap(result.Error, op)
	}

	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func requiredText(field string, value *string) (string, error) {
	if value == nil || util.NullableText(*value) == nil {
		return "", domainerrors.ErrValidationFailed.WithDetails(field + " is required")
	}

	return *util.NullableText(*value), nil
}

func rejectBlank(field string, value *string) error {
	if value != nil && util.NullableText(*value) == nil {
		return domainerrors.ErrValidationFailed.WithDetails(field + " cannot be empty")
	}

	return nil
}

// --- Ingredients ---

// ingredientRepository implements the repository.IngredientRepository interface.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (repo *ingredientRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&ingredientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

func (repo *ingredientRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	return countByRecipe(ctx, repo.db, &model.IngredientModel{}, recipeID)
}

func (repo *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ingredientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by ID")
	}

	return toIngredientDomain(&ingredientM), nil
}

func (repo *ingredientRepository) Create(ctx context.Context, recipeID uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error) {
	name, err := requiredText("name", input.Name)
	if err != nil {
		return nil, err
	}

	ingredientM := &model.IngredientModel{
		RecipeID: recipeID,
		Name:     name,
		Quantity: util.NilIfBlank(input.Quantity),
	}
	if input.OrderIndex != nil {
		ingredientM.OrderIndex = *input.OrderIndex
	}

	if err := repo.db.WithContext(ctx).Omit("Recipe").Create(ingredientM).Error; err != nil {
		return nil, translateWriteError(err, nil, "failed to create ingredient")
	}

	return toIngredientDomain(ingredientM), nil
}

func (repo *ingredientRepository) Update(ctx context.Context, id uuid.UUID, input *entity.IngredientInput) (*entity.Ingredient, error) {
	if err := rejectBlank("name", input.Name); err != nil {
		return nil, err
	}

	updates := patch{}
	updates.text("name", input.Name)
	updates.text("quantity", input.Quantity)
	updates.int("order_index", input.OrderIndex)

	if err := applyChildPatch(ctx, repo.db, &model.IngredientModel{}, id, updates,
		repository.ErrIngredientNotFound, "failed to update ingredient"); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteChild(ctx, repo.db, &model.IngredientModel{}, id, repository.ErrIngredientNotFound, "failed to delete ingredient")
}

// --- Instructions ---

// instructionRepository implements the repository.InstructionRepository interface.
type instructionRepository struct {
	db *gorm.DB
}

// NewInstructionRepository is the constructor for instructionRepository.
func NewInstructionRepository(db *gorm.DB) repository.InstructionRepository {
	return &instructionRepository{db: db}
}

func (repo *instructionRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.Instruction, error) {
	var instructionModels []*model.InstructionModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_number ASC").
		Order("id ASC").
		Find(&instructionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list instructions")
	}

	instructions := make([]*entity.Instruction, 0, len(instructionModels))
	for _, instructionM := range instructionModels {
		instructions = append(instructions, toInstructionDomain(instructionM))
	}

	return instructions, nil
}

func (repo *instructionRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	return countByRecipe(ctx, repo.db, &model.InstructionModel{}, recipeID)
}

func (repo *instructionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instruction, error) {
	var instructionM model.InstructionModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&instructionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstructionNotFound
		}

		return nil, errors.Wrap(err, "failed to find instruction by ID")
	}

	return toInstructionDomain(&instructionM), nil
}

func (repo *instructionRepository) Create(ctx context.Context, recipeID uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error) {
	text, err := requiredText("instruction_text", input.InstructionText)
	if err != nil {
		return nil, err
	}
	if input.StepNumber == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("step_number is required")
	}

	instructionM := &model.InstructionModel{
		RecipeID:        recipeID,
		StepNumber:      *input.StepNumber,
		InstructionText: text,
	}

	if err := repo.db.WithContext(ctx).Omit("Recipe").Create(instructionM).Error; err != nil {
		return nil, translateWriteError(err, nil, "failed to create instruction")
	}

	return toInstructionDomain(instructionM), nil
}

func (repo *instructionRepository) Update(ctx context.Context, id uuid.UUID, input *entity.InstructionInput) (*entity.Instruction, error) {
	if err := rejectBlank("instruction_text", input.InstructionText); err != nil {
		return nil, err
	}

	updates := patch{}
	updates.int("step_number", input.StepNumber)
	updates.text("instruction_text", input.InstructionText)

	if err := applyChildPatch(ctx, repo.db, &model.InstructionModel{}, id, updates,
		repository.ErrInstructionNotFound, "failed to update instruction"); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *instructionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteChild(ctx, repo.db, &model.InstructionModel{}, id, repository.ErrInstructionNotFound, "failed to delete instruction")
}

// --- Nutrition benefits ---

// nutritionBenefitRepository implements the repository.NutritionBenefitRepository interface.
type nutritionBenefitRepository struct {
	db *gorm.DB
}

// NewNutritionBenefitRepository is the constructor for nutritionBenefitRepository.
func NewNutritionBenefitRepository(db *gorm.DB) repository.NutritionBenefitRepository {
	return &nutritionBenefitRepository{db: db}
}

func (repo *nutritionBenefitRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]*entity.NutritionBenefit, error) {
	var benefitModels []*model.NutritionBenefitModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("order_index ASC").
		Order("id ASC").
		Find(&benefitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list nutrition benefits")
	}

	benefits := make([]*entity.NutritionBenefit, 0, len(benefitModels))
	for _, benefitM := range benefitModels {
		benefits = append(benefits, toNutritionBenefitDomain(benefitM))
	}

	return benefits, nil
}

func (repo *nutritionBenefitRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	return countByRecipe(ctx, repo.db, &model.NutritionBenefitModel{}, recipeID)
}

func (repo *nutritionBenefitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NutritionBenefit, error) {
	var benefitM model.NutritionBenefitModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&benefitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBenefitNotFound
		}

		return nil, errors.Wrap(err, "failed to find nutrition benefit by ID")
	}

	return toNutritionBenefitDomain(&benefitM), nil
}

func (repo *nutritionBenefitRepository) Create(ctx context.Context, recipeID uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error) {
	ingredientName, err := requiredText("ingredient_name", input.IngredientName)
	if err != nil {
		return nil, err
	}
	benefitText, err := requiredText("benefit_text", input.BenefitText)
	if err != nil {
		return nil, err
	}

	benefitM := &model.NutritionBenefitModel{
		RecipeID:       recipeID,
		IngredientName: ingredientName,
		BenefitText:    benefitText,
	}
	if input.OrderIndex != nil {
		benefitM.OrderIndex = *input.OrderIndex
	}

	if err := repo.db.WithContext(ctx).Omit("Recipe").Create(benefitM).Error; err != nil {
		return nil, translateWriteError(err, nil, "failed to create nutrition benefit")
	}

	return toNutritionBenefitDomain(benefitM), nil
}

func (repo *nutritionBenefitRepository) Update(ctx context.Context, id uuid.UUID, input *entity.NutritionBenefitInput) (*entity.NutritionBenefit, error) {
	if err := rejectBlank("ingredient_name", input.IngredientName); err != nil {
		return nil, err
	}
	if err := rejectBlank("benefit_text", input.BenefitText); err != nil {
		return nil, err
	}

	updates := patch{}
	updates.text("ingredient_name", input.IngredientName)
	updates.text("benefit_text", input.BenefitText)
	updates.int("order_index", input.OrderIndex)

	if err := applyChildPatch(ctx, repo.db, &model.NutritionBenefitModel{}, id, updates,
		repository.ErrBenefitNotFound, "failed to update nutrition benefit"); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *nutritionBenefitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteChild(ctx, repo.db, &model.NutritionBenefitModel{}, id, repository.ErrBenefitNotFound, "failed to delete nutrition benefit")
}

// --- Mapper Functions ---

func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:         data.ID,
		RecipeID:   data.RecipeID,
		Name:       data.Name,
		Quantity:   data.Quantity,
		OrderIndex: data.OrderIndex,
	}
}

func toInstructionDomain(data *model.InstructionModel) *entity.Instruction {
	if data == nil {
		return nil
	}

	return &entity.Instruction{
		ID:              data.ID,
		RecipeID:        data.RecipeID,
		StepNumber:      data.StepNumber,
		InstructionText: data.InstructionText,
	}
}

func toNutritionBenefitDomain(data *model.NutritionBenefitModel) *entity.NutritionBenefit {
	if data == nil {
		return nil
	}

	return &entity.NutritionBenefit{
		ID:             data.ID,
		RecipeID:       data.RecipeID,
		IngredientName: data.IngredientName,
		BenefitText:    data.BenefitText,
		OrderIndex:     data.OrderIndex,
	}
}
