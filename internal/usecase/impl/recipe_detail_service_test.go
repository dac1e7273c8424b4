package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detailServiceFixtures struct {
	service         usecase.RecipeDetailUsecase
	recipeRepo      *mockRepo.MockRecipeRepository
	ingredientRepo  *mockRepo.MockIngredientRepository
	instructionRepo *mockRepo.MockInstructionRepository
	benefitRepo     *mockRepo.MockNutritionBenefitRepository
}

func createTestDetailService(t *testing.T) detailServiceFixtures {
	fx := detailServiceFixtures{
		recipeRepo:      mockRepo.NewMockRecipeRepository(t),
		ingredientRepo:  mockRepo.NewMockIngredientRepository(t),
		instructionRepo: mockRepo.NewMockInstructionRepository(t),
		benefitRepo:     mockRepo.NewMockNutritionBenefitRepository(t),
	}
	fx.service = NewRecipeDetailService(RecipeDetailServiceParams{
		RecipeRepo:      fx.recipeRepo,
		IngredientRepo:  fx.ingredientRepo,
		InstructionRepo: fx.instructionRepo,
		BenefitRepo:     fx.benefitRepo,
		Logger:          newTestLogger(),
	})

	return fx
}

func TestRecipeDetailService_GetRecipeFull(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Recipe{ID: id, Name: "Jollof"}, nil)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Ingredient{
		{Name: "rice", OrderIndex: 1},
		{Name: "tomato", OrderIndex: 0},
	}, nil)
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Instruction{
		{StepNumber: 2, InstructionText: "cook"},
		{StepNumber: 1, InstructionText: "blend"},
	}, nil)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).Return(nil, nil)

	bundle, err := fx.service.GetRecipeFull(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, "Jollof", bundle.Recipe.Name)
	assert.Equal(t, "tomato", bundle.Ingredients[0].Name)
	assert.Equal(t, "blend", bundle.Instructions[0].InstructionText)
	assert.NotNil(t, bundle.Benefits)
	assert.Empty(t, bundle.Benefits)
}

func TestRecipeDetailService_GetRecipeFull_RecipeMissing(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).Return(nil, errors.New("timeout"))
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Instruction{}, nil)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.NutritionBenefit{}, nil)

	bundle, err := fx.service.GetRecipeFull(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	assert.Nil(t, bundle.Recipe)
}

func TestRecipeDetailService_GetRecipeFull_PartialBundle(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()
	childErr := errors.New("connection reset")

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Recipe{ID: id}, nil)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Ingredient{{Name: "salt"}}, nil)
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).Return(nil, childErr)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).Return(nil, errors.New("also broken"))

	bundle, err := fx.service.GetRecipeFull(ctx, id)

	// Instructions outrank benefits.
	require.ErrorIs(t, err, childErr)
	var partialErr *usecase.PartialBundleError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, "instructions", partialErr.Collection)
	require.NotNil(t, bundle)
	assert.Equal(t, id, bundle.Recipe.ID)
	assert.Len(t, bundle.Ingredients, 1)
	assert.Empty(t, bundle.Instructions)
	assert.Empty(t, bundle.Benefits)
}

func TestRecipeDetailService_GetRecipeFull_OnlyBenefitsFail(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Recipe{ID: id, Name: "Pho"}, nil)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Ingredient{{Name: "noodles"}}, nil)
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Instruction{{StepNumber: 1, InstructionText: "simmer"}}, nil)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).Return(nil, errors.New("boom"))

	bundle, err := fx.service.GetRecipeFull(ctx, id)

	var partialErr *usecase.PartialBundleError
	require.ErrorAs(t, err, &partialErr)
	assert.Equal(t, "nutrition benefits", partialErr.Collection)
	assert.Contains(t, err.Error(), "failed to load nutrition benefits")
	assert.Equal(t, "Pho", bundle.Recipe.Name)
	assert.Len(t, bundle.Ingredients, 1)
	assert.Len(t, bundle.Instructions, 1)
	assert.NotNil(t, bundle.Benefits)
	assert.Empty(t, bundle.Benefits)
}

func TestRecipeDetailService_GetRecipeFull_Idempotent(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()

	// Fresh slices per call, in storage order, the way the repositories return them.
	fx.recipeRepo.EXPECT().FindByID(ctx, id).RunAndReturn(func(context.Context, uuid.UUID) (*entity.Recipe, error) {
		return &entity.Recipe{ID: id, Name: "Jollof"}, nil
	}).Times(2)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Ingredient, error) {
		return []*entity.Ingredient{{Name: "rice", OrderIndex: 1}, {Name: "tomato", OrderIndex: 0}}, nil
	}).Times(2)
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.Instruction, error) {
		return []*entity.Instruction{{StepNumber: 2, InstructionText: "cook"}, {StepNumber: 1, InstructionText: "blend"}}, nil
	}).Times(2)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.NutritionBenefit, error) {
		return []*entity.NutritionBenefit{{IngredientName: "tomato", OrderIndex: 0}}, nil
	}).Times(2)

	first, err := fx.service.GetRecipeFull(ctx, id)
	require.NoError(t, err)
	second, err := fx.service.GetRecipeFull(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecipeDetailService_GetRecipeFull_TiesKeepStorageOrder(t *testing.T) {
	fx := createTestDetailService(t)
	ctx := context.Background()
	id := uuid.New()

	// After a delete, the next ingredient reuses the row count as its index.
	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Recipe{ID: id}, nil)
	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Ingredient{
		{Name: "onion", OrderIndex: 1},
		{Name: "pepper", OrderIndex: 2},
		{Name: "garlic", OrderIndex: 2},
	}, nil)
	fx.instructionRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.Instruction{}, nil)
	fx.benefitRepo.EXPECT().ListByRecipe(ctx, id).Return([]*entity.NutritionBenefit{}, nil)

	bundle, err := fx.service.GetRecipeFull(ctx, id)

	require.NoError(t, err)
	names := make([]string, 0, len(bundle.Ingredients))
	for _, ingredient := range bundle.Ingredients {
		names = append(names, ingredient.Name)
	}
	assert.Equal(t, []string{"onion", "pepper", "garlic"}, names)
}
