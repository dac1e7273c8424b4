package impl

import (
	"context"
	"strings"
	"testing"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type emailServiceFixtures struct {
	service     usecase.EmailUsecase
	publisher   *mockSvc.MockEventPublisher
	recipeRepo  *mockRepo.MockRecipeRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestEmailService(t *testing.T) emailServiceFixtures {
	fx := emailServiceFixtures{
		publisher:   mockSvc.NewMockEventPublisher(t),
		recipeRepo:  mockRepo.NewMockRecipeRepository(t),
		profileRepo: mockRepo.NewMockProfileRepository(t),
	}
	fx.service = NewEmailService(EmailServiceParams{
		Publisher:   fx.publisher,
		RecipeRepo:  fx.recipeRepo,
		ProfileRepo: fx.profileRepo,
		Logger:      newTestLogger(),
	})

	return fx
}

func TestEmailService_Send(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	input := &usecase.SendEmailInput{To: "a@example.com", Subject: "Hi", HTML: "<p>Hi</p>"}

	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, &service.EmailEvent{RequestID: "req-42", To: "a@example.com", Subject: "Hi", HTML: "<p>Hi</p>"}).
		Return(nil)

	require.NoError(t, fx.service.Send(ctx, input))
}

func TestEmailService_Send_MissingFields(t *testing.T) {
	fx := createTestEmailService(t)

	err := fx.service.Send(context.Background(), &usecase.SendEmailInput{To: "a@example.com"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmailService_SendWelcome_RendersName(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.To == "ada@example.com" && e.Subject == welcomeSubject && strings.Contains(e.HTML, "Welcome, Ada &amp; Co!")
		})).
		Return(nil)

	err := fx.service.SendWelcome(ctx, &usecase.WelcomeEmailInput{Email: "ada@example.com", Name: "Ada & Co"})

	require.NoError(t, err)
}

func TestEmailService_SendWelcome_PublishFailure(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.publisher.EXPECT().PublishEmailEvent(ctx, mock.Anything).Return(errors.New("topic closed"))

	err := fx.service.SendWelcome(ctx, &usecase.WelcomeEmailInput{Email: "ada@example.com"})

	require.ErrorIs(t, err, domainerrors.ErrEmailFailed)
}

func TestEmailService_SendDailyRecipe(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()
	recipe := &entity.Recipe{ID: uuid.New(), Name: "Shakshuka", Description: strPtr("Eggs in spiced tomato")}

	fx.recipeRepo.EXPECT().FindRandom(ctx).Return(recipe, nil)
	fx.profileRepo.EXPECT().ListEmails(ctx).Return([]string{"a@example.com", "b@example.com", "c@example.com"}, nil)
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool { return e.To == "b@example.com" })).
		Return(errors.New("publish failed"))
	fx.publisher.EXPECT().
		PublishEmailEvent(ctx, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.To != "b@example.com" && e.Subject == "Today's Recipe: Shakshuka 🍲"
		})).
		Return(nil).
		Times(2)

	output, err := fx.service.SendDailyRecipe(ctx)

	require.NoError(t, err)
	assert.Equal(t, recipe.ID, output.RecipeID)
	assert.Equal(t, 2, output.Sent)
	assert.Equal(t, 1, output.Failed)
}

func TestEmailService_SendDailyRecipe_NoRecipes(t *testing.T) {
	fx := createTestEmailService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindRandom(ctx).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.SendDailyRecipe(ctx)

	require.ErrorIs(t, err, domainerrors.ErrNoRecipes)
}
