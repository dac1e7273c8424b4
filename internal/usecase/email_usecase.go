package usecase

import (
	"context"

	"github.com/google/uuid"
)

// EmailUsecase publishes transactional emails for asynchronous delivery.
type EmailUsecase interface {
	Send(ctx context.Context, input *SendEmailInput) error
	SendWelcome(ctx context.Context, input *WelcomeEmailInput) error

	// SendDailyRecipe publishes the recipe of the day to every profile email.
	SendDailyRecipe(ctx context.Context) (*DailyRecipeEmailOutput, error)
}

// SendEmailInput is a free-form email.
type SendEmailInput struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	HTML    string `json:"html" validate:"required"`
}

// WelcomeEmailInput addresses the welcome email.
type WelcomeEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// DailyRecipeEmailOutput summarizes one run of the daily email job.
type DailyRecipeEmailOutput struct {
	RecipeID uuid.UUID `json:"recipe_id"`
	Sent     int       `json:"sent"`
	Failed   int       `json:"failed"`
}
