// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/config"
	"passport/internal/delivery/api/middleware"
	"passport/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	CountryHandler       *handler.CountryHandler
	RecipeHandler        *handler.RecipeHandler
	RecipeContentHandler *handler.RecipeContentHandler
	FavoriteHandler      *handler.FavoriteHandler
	ProfileHandler       *handler.ProfileHandler
	SearchHistoryHandler *handler.SearchHistoryHandler
	MediaHandler         *handler.MediaHandler
	EmailHandler         *handler.EmailHandler
	AuthMiddleware       *middleware.AuthMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	countryHandler       *handler.CountryHandler
	recipeHandler        *handler.RecipeHandler
	recipeContentHandler *handler.RecipeContentHandler
	favoriteHandler      *handler.FavoriteHandler
	profileHandler       *handler.ProfileHandler
	searchHistoryHandler *handler.SearchHistoryHandler
	mediaHandler         *handler.MediaHandler
	emailHandler         *handler.EmailHandler
	authMiddleware       *middleware.AuthMiddleware
	config               *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		countryHandler:       params.CountryHandler,
		recipeHandler:        params.RecipeHandler,
		recipeContentHandler: params.RecipeContentHandler,
		favoriteHandler:      params.FavoriteHandler,
		profileHandler:       params.ProfileHandler,
		searchHistoryHandler: params.SearchHistoryHandler,
		mediaHandler:         params.MediaHandler,
		emailHandler:         params.EmailHandler,
		authMiddleware:       params.AuthMiddleware,
		config:               params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	api := e.Group("/api")

	// Public catalog
	api.GET("/home-recipe", r.recipeHandler.HomeRecipe)

	countriesGroup := api.Group("/countries")
	{
		countriesGroup.GET("", r.countryHandler.ListCountries)
		countriesGroup.GET("/by-name/:name", r.countryHandler.GetCountryByName)
		countriesGroup.GET("/:id", r.countryHandler.GetCountry)
		countriesGroup.GET("/:id/recipes", r.countryHandler.ListCountryRecipes)
	}

	recipesGroup := api.Group("/recipes")
	{
		recipesGroup.GET("", r.recipeHandler.ListRecipes)
		recipesGroup.GET("/search", r.recipeHandler.SearchRecipes, r.authMiddleware.OptionalAuth)
		recipesGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipesGroup.GET("/:id/full", r.recipeHandler.GetRecipeFull)
		recipesGroup.GET("/:id/qr", r.recipeHandler.RecipeQRCode)
		recipesGroup.GET("/:id/ingredients", r.recipeContentHandler.ListIngredients)
		recipesGroup.GET("/:id/instructions", r.recipeContentHandler.ListInstructions)
		recipesGroup.GET("/:id/benefits", r.recipeContentHandler.ListBenefits)
	}

	// Email routes
	api.POST("/send-email", r.emailHandler.SendEmail)
	api.POST("/welcome-email", r.emailHandler.SendWelcomeEmail)
	api.POST("/daily-recipe-email", r.emailHandler.SendDailyRecipeEmail, r.authMiddleware.RequireCronSecret)

	// Routes that require authentication
	authed := api.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/me", r.profileHandler.GetProfile)
		authed.PUT("/me", r.profileHandler.UpdateProfile)
		authed.PUT("/me/password", r.authHandler.ChangePassword)

		authed.GET("/favorites", r.favoriteHandler.ListFavorites)
		authed.GET("/favorites/status", r.favoriteHandler.FavoriteStatus)
		authed.POST("/favorites/:recipeId", r.favoriteHandler.AddFavorite)
		authed.DELETE("/favorites/:recipeId", r.favoriteHandler.RemoveFavorite)
		authed.POST("/favorites/:recipeId/toggle", r.favoriteHandler.ToggleFavorite)

		authed.GET("/search-history", r.searchHistoryHandler.ListHistory)
		authed.DELETE("/search-history", r.searchHistoryHandler.ClearHistory)
	}

	// Admin routes. Roles are checked by the usecases against the stored profile.
	adminGroup := api.Group("/admin", r.authMiddleware.Authenticate)
	{
		adminGroup.POST("/countries", r.countryHandler.CreateCountry)
		adminGroup.PUT("/countries/:id", r.countryHandler.UpdateCountry)
		adminGroup.DELETE("/countries/:id", r.countryHandler.DeleteCountry)
		adminGroup.POST("/countries/:id/flag", r.mediaHandler.UploadCountryFlag)
		adminGroup.POST("/countries/:id/image", r.mediaHandler.UploadCountryImage)

		adminGroup.POST("/recipes", r.recipeHandler.CreateRecipe)
		adminGroup.PUT("/recipes/:id", r.recipeHandler.UpdateRecipe)
		adminGroup.DELETE("/recipes/:id", r.recipeHandler.DeleteRecipe)
		adminGroup.POST("/recipes/:id/image", r.mediaHandler.UploadRecipeImage)
		adminGroup.POST("/recipes/:id/ingredients-image", r.mediaHandler.UploadIngredientsImage)

		adminGroup.POST("/recipes/:id/ingredients", r.recipeContentHandler.AddIngredient)
		adminGroup.PUT("/ingredients/:id", r.recipeContentHandler.UpdateIngredient)
		adminGroup.DELETE("/ingredients/:id", r.recipeContentHandler.DeleteIngredient)

		adminGroup.POST("/recipes/:id/instructions", r.recipeContentHandler.AddInstruction)
		adminGroup.PUT("/instructions/:id", r.recipeContentHandler.UpdateInstruction)
		adminGroup.DELETE("/instructions/:id", r.recipeContentHandler.DeleteInstruction)

		adminGroup.POST("/recipes/:id/benefits", r.recipeContentHandler.AddBenefit)
		adminGroup.PUT("/benefits/:id", r.recipeContentHandler.UpdateBenefit)
		adminGroup.DELETE("/benefits/:id", r.recipeContentHandler.DeleteBenefit)
	}
}
