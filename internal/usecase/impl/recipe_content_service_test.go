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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service         usecase.RecipeContentUsecase
	ingredientRepo  *mockRepo.MockIngredientRepository
	instructionRepo *mockRepo.MockInstructionRepository
	benefitRepo     *mockRepo.MockNutritionBenefitRepository
	profileRepo     *mockRepo.MockProfileRepository
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	fx := contentServiceFixtures{
		ingredientRepo:  mockRepo.NewMockIngredientRepository(t),
		instructionRepo: mockRepo.NewMockInstructionRepository(t),
		benefitRepo:     mockRepo.NewMockNutritionBenefitRepository(t),
		profileRepo:     mockRepo.NewMockProfileRepository(t),
	}
	fx.service = NewRecipeContentService(RecipeContentServiceParams{
		IngredientRepo:  fx.ingredientRepo,
		InstructionRepo: fx.instructionRepo,
		BenefitRepo:     fx.benefitRepo,
		ProfileRepo:     fx.profileRepo,
		Logger:          newTestLogger(),
	})

	return fx
}

func TestRecipeContentService_AddIngredient_DefaultsOrderToCount(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()

	expectRole(t, fx.profileRepo, session, entity.RoleEditor)
	fx.ingredientRepo.EXPECT().CountByRecipe(ctx, recipeID).Return(3, nil)
	fx.ingredientRepo.EXPECT().
		Create(ctx, recipeID, mock.MatchedBy(func(in *entity.IngredientInput) bool {
			return in.OrderIndex != nil && *in.OrderIndex == 3
		})).
		Return(&entity.Ingredient{ID: uuid.New(), RecipeID: recipeID, Name: "Miso", OrderIndex: 3}, nil)

	item, err := fx.service.AddIngredient(ctx, session, recipeID, &entity.IngredientInput{Name: strPtr("Miso")})

	require.NoError(t, err)
	assert.Equal(t, 3, item.OrderIndex)
}

func TestRecipeContentService_AddIngredient_ExplicitOrder(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()
	input := &entity.IngredientInput{Name: strPtr("Tofu"), OrderIndex: intPtr(0)}

	expectRole(t, fx.profileRepo, session, entity.RoleAdmin)
	fx.ingredientRepo.EXPECT().Create(ctx, recipeID, input).Return(&entity.Ingredient{ID: uuid.New()}, nil)

	_, err := fx.service.AddIngredient(ctx, session, recipeID, input)

	require.NoError(t, err)
	fx.ingredientRepo.AssertNotCalled(t, "CountByRecipe", mock.Anything, mock.Anything)
}

func TestRecipeContentService_AddInstruction_StepFollowsCount(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	session := newSession()
	recipeID := uuid.New()

	expectRole(t, fx.profileRepo, session, entity.RoleEditor)
	fx.instructionRepo.EXPECT().CountByRecipe(ctx, recipeID).Return(2, nil)
	fx.instructionRepo.EXPECT().
		Create(ctx, recipeID, mock.MatchedBy(func(in *entity.InstructionInput) bool {
			return in.StepNumber != nil && *in.StepNumber == 3
		})).
		Return(&entity.Instruction{ID: uuid.New(), StepNumber: 3}, nil)

	item, err := fx.service.AddInstruction(ctx, session, recipeID, &entity.InstructionInput{InstructionText: strPtr("Simmer")})

	require.NoError(t, err)
	assert.Equal(t, 3, item.StepNumber)
}

func TestRecipeContentService_AddBenefit_ForbiddenForUser(t *testing.T) {
	fx := createTestContentService(t)
	session := newSession()
	input := &entity.NutritionBenefitInput{IngredientName: strPtr("Ginger"), BenefitText: strPtr("Aids digestion")}

	expectRole(t, fx.profileRepo, session, entity.RoleUser)

	_, err := fx.service.AddBenefit(context.Background(), session, uuid.New(), input)

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRecipeContentService_AddInstruction_MissingText(t *testing.T) {
	fx := createTestContentService(t)

	_, err := fx.service.AddInstruction(context.Background(), newSession(), uuid.New(), &entity.InstructionInput{})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRecipeContentService_ListIngredients_Sorted(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	recipeID := uuid.New()

	fx.ingredientRepo.EXPECT().ListByRecipe(ctx, recipeID).Return([]*entity.Ingredient{
		{Name: "c", OrderIndex: 2},
		{Name: "a", OrderIndex: 0},
		{Name: "b", OrderIndex: 1},
	}, nil)

	items, err := fx.service.ListIngredients(ctx, recipeID)

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestRecipeContentService_DeleteInstruction_NotFound(t *testing.T) {
	fx := createTestContentService(t)
	ctx := context.Background()
	session := newSession()
	id := uuid.New()

	expectRole(t, fx.profileRepo, session, entity.RoleAdmin)
	fx.instructionRepo.EXPECT().Delete(ctx, id).Return(repository.ErrInstructionNotFound)

	err := fx.service.DeleteInstruction(ctx, session, id)

	require.ErrorIs(t, err, domainerrors.ErrInstructionNotFound)
}
