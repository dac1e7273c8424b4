package impl

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	welcomeSubject          = "Welcome to Recipe Passport 🍲"
	dailyRecipeSubjectFmt   = "Today's Recipe: %s 🍲"
	welcomeTemplateName     = "welcome.html"
	dailyRecipeTemplateName = "daily_recipe.html"
)

//go:embed templates/*.html
var emailTemplateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(emailTemplateFS, "templates/*.html"))

// emailService implements the EmailUsecase interface.
type emailService struct {
	publisher   service.EventPublisher
	recipeRepo  repository.RecipeRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// EmailServiceParams holds dependencies for EmailService, injected by Fx.
type EmailServiceParams struct {
	fx.In

	Publisher   service.EventPublisher
	RecipeRepo  repository.RecipeRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewEmailService is the constructor for emailService.
func NewEmailService(params EmailServiceParams) usecase.EmailUsecase {
	return &emailService{
		publisher:   params.Publisher,
		recipeRepo:  params.RecipeRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *emailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *emailService) Send(ctx context.Context, input *usecase.SendEmailInput) error {
	if input == nil || input.To == "" || input.Subject == "" || input.HTML == "" {
		return validationError("to, subject and html are required")
	}

	return srv.publish(ctx, input.To, input.Subject, input.HTML)
}

func (srv *emailService) SendWelcome(ctx context.Context, input *usecase.WelcomeEmailInput) error {
	if input == nil || input.Email == "" {
		return validationError("email is required")
	}

	html, err := renderEmail(welcomeTemplateName, input)
	if err != nil {
		return err
	}

	return srv.publish(ctx, input.Email, welcomeSubject, html)
}

// SendDailyRecipe picks a random recipe and publishes one email per profile.
// A failed recipient is logged and skipped.
func (srv *emailService) SendDailyRecipe(ctx context.Context) (*usecase.DailyRecipeEmailOutput, error) {
	recipe, err := srv.recipeRepo.FindRandom(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNoRecipes)
		}

		return nil, errors.Wrap(err, "failed to pick daily recipe")
	}

	emails, err := srv.profileRepo.ListEmails(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipient emails")
	}

	subject, html, err := dailyRecipeEmail(recipe)
	if err != nil {
		return nil, err
	}

	output := &usecase.DailyRecipeEmailOutput{RecipeID: recipe.ID}
	for _, email := range emails {
		if err := srv.publish(ctx, email, subject, html); err != nil {
			output.Failed++

			continue
		}
		output.Sent++
	}

	srv.log(ctx).Info("Daily recipe emails published",
		slog.String("recipe_id", recipe.ID.String()),
		slog.Int("sent", output.Sent),
		slog.Int("failed", output.Failed),
	)

	return output, nil
}

func (srv *emailService) publish(ctx context.Context, to, subject, html string) error {
	event := &service.EmailEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        to,
		Subject:   subject,
		HTML:      html,
	}

	if err := srv.publisher.PublishEmailEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Email event publish failed", slog.String("subject", subject), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailFailed, err.Error())
	}

	return nil
}

func dailyRecipeEmail(recipe *entity.Recipe) (subject, html string, err error) {
	data := struct {
		Name        string
		Description string
	}{Name: recipe.Name}
	if recipe.Description != nil {
		data.Description = *recipe.Description
	}

	html, err = renderEmail(dailyRecipeTemplateName, data)
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf(dailyRecipeSubjectFmt, recipe.Name), html, nil
}

func renderEmail(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}

	return buf.String(), nil
}
