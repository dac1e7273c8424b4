package impl

import (
	"context"
	"testing"
	"time"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeServiceFixtures struct {
	service     usecase.RecipeUsecase
	recipeRepo  *mockRepo.MockRecipeRepository
	profileRepo *mockRepo.MockProfileRepository
	qrCode      *mockSvc.MockQRCodeService
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo:  recipeRepo,
		ProfileRepo: profileRepo,
		QRCode:      qrCode,
		Logger:      newTestLogger(),
	})

	return recipeServiceFixtures{
		service:     service,
		recipeRepo:  recipeRepo,
		profileRepo: profileRepo,
		qrCode:      qrCode,
	}
}

func TestRecipeService_CreateRecipe_Editor(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	session := newSession()
	input := &entity.RecipeInput{Name: strPtr("Ramen"), Servings: intPtr(2)}

	expectRole(t, fx.profileRepo, session, entity.RoleEditor)
	fx.recipeRepo.EXPECT().
		Create(ctx, input).
		Return(&entity.Recipe{ID: uuid.New(), Name: "Ramen", DifficultyLevel: entity.DefaultDifficulty}, nil)

	recipe, err := fx.service.CreateRecipe(ctx, session, input)

	require.NoError(t, err)
	assert.Equal(t, "Ramen", recipe.Name)
}

func TestRecipeService_CreateRecipe_ForbiddenForUser(t *testing.T) {
	fx := createTestRecipeService(t)
	session := newSession()

	expectRole(t, fx.profileRepo, session, entity.RoleUser)

	_, err := fx.service.CreateRecipe(context.Background(), session, &entity.RecipeInput{Name: strPtr("Ramen")})

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.recipeRepo.AssertNotCalled(t, "Create")
}

func TestRecipeService_CreateRecipe_InvalidInputSkipsStorage(t *testing.T) {
	hard := entity.Difficulty("extreme")

	tests := []struct {
		name  string
		input *entity.RecipeInput
	}{
		{name: "missing name", input: &entity.RecipeInput{}},
		{name: "blank name", input: &entity.RecipeInput{Name: strPtr("  ")}},
		{name: "bad difficulty", input: &entity.RecipeInput{Name: strPtr("Pho"), DifficultyLevel: &hard}},
		{name: "zero servings", input: &entity.RecipeInput{Name: strPtr("Pho"), Servings: intPtr(0)}},
		{name: "negative prep time", input: &entity.RecipeInput{Name: strPtr("Pho"), PrepTime: intPtr(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)

			_, err := fx.service.CreateRecipe(context.Background(), newSession(), tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRecipeService_DeleteRecipe_RequiresAdmin(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()

	editor := newSession()
	expectRole(t, fx.profileRepo, editor, entity.RoleEditor)
	err := fx.service.DeleteRecipe(ctx, editor, id)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	admin := newSession()
	expectRole(t, fx.profileRepo, admin, entity.RoleAdmin)
	fx.recipeRepo.EXPECT().Delete(ctx, id).Return(nil)
	require.NoError(t, fx.service.DeleteRecipe(ctx, admin, id))
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.GetRecipe(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestRecipeService_RecipeOfTheDay(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	recipes := make([]*entity.Recipe, 5)
	for i := range recipes {
		recipes[i] = &entity.Recipe{ID: uuid.New()}
	}
	fx.recipeRepo.EXPECT().List(ctx).Return(recipes, nil).Times(2)

	// 2+0+2+5+0+1+1+5 = 16, 16 % 5 = 1
	morning := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 1, 15, 23, 59, 0, 0, time.UTC)

	first, err := fx.service.RecipeOfTheDay(ctx, morning)
	require.NoError(t, err)
	second, err := fx.service.RecipeOfTheDay(ctx, evening)
	require.NoError(t, err)

	assert.Same(t, recipes[1], first)
	assert.Same(t, first, second)
}

func TestRecipeService_RecipeOfTheDay_Empty(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().List(ctx).Return([]*entity.Recipe{}, nil)

	_, err := fx.service.RecipeOfTheDay(ctx, time.Now())

	require.ErrorIs(t, err, domainerrors.ErrNoRecipes)
}

func TestDailyIndex(t *testing.T) {
	tests := []struct {
		date time.Time
		n    int
		want int
	}{
		{date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), n: 5, want: 1},
		{date: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), n: 7, want: 1},
		{date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), n: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.date.Format(time.DateOnly), func(t *testing.T) {
			got := dailyIndex(tt.date, tt.n)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, tt.n)
		})
	}
}

func TestDailyIndex_UsesUTCDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	local := time.Date(2025, 1, 16, 2, 0, 0, 0, tokyo) // 2025-01-15 17:00 UTC

	assert.Equal(t, dailyIndex(time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), 5), dailyIndex(local, 5))
}

func TestRecipeService_RecipeQRCode(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(&entity.Recipe{ID: id}, nil)
	fx.qrCode.EXPECT().GenerateRecipeQR(id).Return([]byte("png"), nil)

	png, err := fx.service.RecipeQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
