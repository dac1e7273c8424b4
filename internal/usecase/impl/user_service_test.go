package impl

import (
	"context"
	"testing"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockSvc "passport/internal/mocks/service"
	mockUC "passport/internal/mocks/usecase"
	"passport/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service        *userService
	txManager      *mockRepo.MockTransactionManager
	credentialRepo *mockRepo.MockCredentialRepository
	profileRepo    *mockRepo.MockProfileRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	emailUC        *mockUC.MockEmailUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		credentialRepo: mockRepo.NewMockCredentialRepository(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		hasher:         mockSvc.NewMockPasswordHasher(t),
		tokenService:   mockSvc.NewMockTokenService(t),
		emailUC:        mockUC.NewMockEmailUsecase(t),
	}

	uc := NewUserService(UserServiceParams{
		TxManager:      fx.txManager,
		CredentialRepo: fx.credentialRepo,
		ProfileRepo:    fx.profileRepo,
		Hasher:         fx.hasher,
		TokenService:   fx.tokenService,
		EmailUC:        fx.emailUC,
		Logger:         newTestLogger(),
	})
	fx.service = uc.(*userService)
	// Run background work inline so expectations are settled when the call returns.
	fx.service.background = func(fn func()) { fn() }

	return fx
}

// expectSignUpTx runs the transaction body against fresh transactional repositories.
func (fx userServiceFixtures) expectSignUpTx(t *testing.T, setup func(credRepo *mockRepo.MockCredentialRepository, profileRepo *mockRepo.MockProfileRepository)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCredRepo := mockRepo.NewMockCredentialRepository(t)
			txProfileRepo := mockRepo.NewMockProfileRepository(t)

			factory.EXPECT().NewCredentialRepository().Return(txCredRepo)
			factory.EXPECT().NewProfileRepository().Return(txProfileRepo)
			setup(txCredRepo, txProfileRepo)

			return fn(factory)
		})
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.SignUpInput{
		Email:    " Chef@Example.com ",
		Password: "Password123!",
		FullName: strPtr("Ada Chef"),
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectSignUpTx(t, func(credRepo *mockRepo.MockCredentialRepository, profileRepo *mockRepo.MockProfileRepository) {
		credRepo.EXPECT().FindByEmail(ctx, "chef@example.com").Return(nil, repository.ErrCredentialNotFound)
		profileRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Profile")).
			Run(func(_ context.Context, profile *entity.Profile) {
				profile.ID = userID
			}).
			Return(nil)
		credRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(c *entity.Credential) bool {
				return c.UserID == userID && c.Email == "chef@example.com" && c.PasswordHash == "hashed_password"
			})).
			Return(nil)
	})
	fx.tokenService.EXPECT().
		GenerateTokens(userID, "chef@example.com", []string{"user"}).
		Return("access", "refresh", nil)
	fx.emailUC.EXPECT().
		SendWelcome(mock.Anything, &usecase.WelcomeEmailInput{Email: "chef@example.com", Name: "Ada Chef"}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, userID, output.Profile.ID)
	assert.Equal(t, entity.RoleUser, output.Profile.Role)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestUserService_SignUp_WelcomeFailureIgnored(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "new@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.expectSignUpTx(t, func(credRepo *mockRepo.MockCredentialRepository, profileRepo *mockRepo.MockProfileRepository) {
		credRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrCredentialNotFound)
		profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		credRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})
	fx.tokenService.EXPECT().GenerateTokens(mock.Anything, input.Email, []string{"user"}).Return("a", "r", nil)
	fx.emailUC.EXPECT().SendWelcome(mock.Anything, mock.Anything).Return(domainerrors.ErrEmailFailed)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "a", output.AccessToken)
}

func TestUserService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.expectSignUpTx(t, func(credRepo *mockRepo.MockCredentialRepository, _ *mockRepo.MockProfileRepository) {
		credRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.Credential{UserID: uuid.New()}, nil)
	})

	_, err := fx.service.SignUp(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_SignUp_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(errors.New("password must be at least 8 characters"))

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@example.com", Password: "short"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindByEmail(ctx, "cook@example.com").
		Return(&entity.Credential{UserID: userID, Email: "cook@example.com", PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("Password123!", "hash").Return(true)
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Profile{ID: userID, Email: "cook@example.com", Role: entity.RoleEditor}, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, "cook@example.com", []string{"editor"}).
		Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Cook@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleEditor, output.Profile.Role)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrCredentialNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().
			FindByEmail(ctx, "cook@example.com").
			Return(&entity.Credential{UserID: uuid.New(), PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "cook@example.com", Password: "wrong"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	t.Run("issues a new pair with the stored role", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("refresh-1").
			Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
		fx.profileRepo.EXPECT().FindByID(ctx, userID).
			Return(&entity.Profile{ID: userID, Email: "cook@example.com", Role: entity.RoleAdmin}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, "cook@example.com", []string{"admin"}).
			Return("access-2", "refresh-2", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"})

		require.NoError(t, err)
		assert.Equal(t, "access-2", output.AccessToken)
		assert.Equal(t, "refresh-2", output.RefreshToken)
		assert.Equal(t, entity.RoleAdmin, output.Profile.Role)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("access-1").
			Return(&service.Claims{UserID: uuid.New(), Type: "access", Roles: []string{"admin"}}, nil)

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access-1"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired or forged token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("bogus").Return(nil, errors.New("token is expired"))

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "bogus"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("profile deleted since issue", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("refresh-1").
			Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
		fx.profileRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-1"})

		require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	session := &entity.Session{UserID: userID, Email: "cook@example.com", Role: entity.RoleUser}
	input := &usecase.ChangePasswordInput{CurrentPassword: "OldPass123!", NewPassword: "NewPass456!"}

	t.Run("stores the new hash", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByUserID(ctx, userID).
			Return(&entity.Credential{UserID: userID, PasswordHash: "old-hash"}, nil)
		fx.hasher.EXPECT().Check("OldPass123!", "old-hash").Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass456!").Return(nil)
		fx.hasher.EXPECT().Hash("NewPass456!").Return("new-hash", nil)
		fx.credentialRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil).Once()

		require.NoError(t, fx.service.ChangePassword(ctx, session, input))
	})

	t.Run("no session", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ChangePassword(context.Background(), nil, input)

		require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByUserID(ctx, userID).
			Return(&entity.Credential{UserID: userID, PasswordHash: "old-hash"}, nil)
		fx.hasher.EXPECT().Check("OldPass123!", "old-hash").Return(false)

		err := fx.service.ChangePassword(ctx, session, input)

		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		fx.credentialRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("weak new password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.credentialRepo.EXPECT().FindByUserID(ctx, userID).
			Return(&entity.Credential{UserID: userID, PasswordHash: "old-hash"}, nil)
		fx.hasher.EXPECT().Check("OldPass123!", "old-hash").Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("NewPass456!").Return(errors.New("password must contain a symbol"))

		err := fx.service.ChangePassword(ctx, session, input)

		require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})
}
