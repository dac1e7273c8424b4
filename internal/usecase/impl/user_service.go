package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/lifecycle"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const refreshTokenType = "refresh"

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	credentialRepo repository.CredentialRepository
	profileRepo    repository.ProfileRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	emailUC        usecase.EmailUsecase
	background     func(func())
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CredentialRepo repository.CredentialRepository
	ProfileRepo    repository.ProfileRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EmailUC        usecase.EmailUsecase
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		credentialRepo: params.CredentialRepo,
		profileRepo:    params.ProfileRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		emailUC:        params.EmailUC,
		background:     func(fn func()) { go fn() },
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the profile and the credential in one transaction, issues
// tokens and sends the welcome email in the background.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, validationError("missing sign-up input")
	}
	email := normalizeEmail(input.Email)
	if email == "" {
		return nil, validationError("email is required")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during sign-up", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails(err.Error()), "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	profile := &entity.Profile{
		Email:      email,
		Role:       entity.RoleUser,
		FullName:   util.NilIfBlank(input.FullName),
		AgeOrBirth: util.NilIfBlank(input.AgeOrBirth),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credentialRepo := repoFactory.NewCredentialRepository()
		profileRepo := repoFactory.NewProfileRepository()

		_, err := credentialRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.Wrap(err, "failed to look up credential")
		}

		if err := profileRepo.Create(ctx, profile); err != nil {
			return translateRepoError(err, "failed to create profile")
		}

		credential := &entity.Credential{
			UserID:       profile.ID,
			Email:        email,
			PasswordHash: hashedPassword,
		}
		if err := credentialRepo.Create(ctx, credential); err != nil {
			return translateRepoError(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute sign-up transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign up")
	}

	output, err := srv.issueTokens(profile)
	if err != nil {
		return nil, err
	}

	srv.sendWelcome(ctx, profile)

	srv.log(ctx).Info("User signed up", slog.String("user_id", profile.ID.String()))

	return output, nil
}

// Login verifies the email and password and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, validationError("missing login input")
	}
	email := normalizeEmail(input.Email)

	credential, err := srv.credentialRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to look up credential")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("user_id", credential.UserID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	profile, err := srv.profileRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to load profile")
	}

	return srv.issueTokens(profile)
}

// RefreshToken exchanges a refresh token for a new pair. The role is read
// from the stored profile so promotions apply on the next refresh.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.AuthOutput, error) {
	if input == nil || input.RefreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}
	if claims.Type != refreshTokenType || claims.UserID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}

	profile, err := srv.profileRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidToken)
		}

		return nil, translateRepoError(err, "failed to load profile")
	}

	return srv.issueTokens(profile)
}

// ChangePassword replaces the caller's password after checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, session *entity.Session, input *usecase.ChangePasswordInput) error {
	if session == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if input == nil {
		return validationError("missing password input")
	}

	credential, err := srv.credentialRepo.FindByUserID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return errors.Wrap(err, "failed to look up credential")
	}

	if !srv.hasher.Check(input.CurrentPassword, credential.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.String("user_id", session.UserID.String()))

		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails(err.Error()), "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.credentialRepo.UpdatePassword(ctx, session.UserID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("user_id", session.UserID.String()))

	return nil
}

func (srv *userService) issueTokens(profile *entity.Profile) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		profile.ID,
		profile.Email,
		[]string{profile.Role.String()},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		Profile:      profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// sendWelcome never fails sign-up; errors are only logged.
func (srv *userService) sendWelcome(ctx context.Context, profile *entity.Profile) {
	if srv.emailUC == nil {
		return
	}

	logger := srv.log(ctx)
	bgCtx := context.WithoutCancel(ctx)
	input := &usecase.WelcomeEmailInput{Email: profile.Email}
	if profile.FullName != nil {
		input.Name = *profile.FullName
	}

	srv.background(func() {
		sendCtx, cancel := context.WithTimeout(bgCtx, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.emailUC.SendWelcome(sendCtx, input); err != nil {
			logger.Warn("Welcome email failed", slog.String("user_id", profile.ID.String()), slog.Any("error", err))
		}
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
