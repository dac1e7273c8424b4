package postgres

import (
	"context"
	"strings"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
	"passport/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// recipeRepository implements the repository.RecipeRepository interface.
// Reads go through the recipes_with_countries view, writes through the recipes table.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{
		db: db,
	}
}

// List returns all recipes, newest first.
func (repo *recipeRepository) List(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeWithCountryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return toRecipesDomain(recipeModels), nil
}

// ListByCountry returns the recipes of one country ordered by name.
func (repo *recipeRepository) ListByCountry(ctx context.Context, countryID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeWithCountryModel

	if err := repo.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes by country")
	}

	return toRecipesDomain(recipeModels), nil
}

// Search matches the query case-insensitively against name, local name and description.
// LIKE wildcards in the query are matched literally.
func (repo *recipeRepository) Search(ctx context.Context, query string) ([]*entity.Recipe, error) {
	pattern := "%" + likeEscaper.Replace(strings.TrimSpace(query)) + "%"

	var recipeModels []*model.RecipeWithCountryModel
	if err := repo.db.WithContext(ctx).
		Where(`name ILIKE ? ESCAPE '\' OR name_local ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\'`, pattern, pattern, pattern).
		Order("name ASC").
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search recipes")
	}

	return toRecipesDomain(recipeModels), nil
}

// FindByID retrieves a single recipe by its unique ID.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeWithCountryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by ID")
	}

	return toRecipeDomain(&recipeM), nil
}

// FindRandom returns one recipe picked at random.
func (repo *recipeRepository) FindRandom(ctx context.Context) (*entity.Recipe, error) {
	var recipeM model.RecipeWithCountryModel

	if err := repo.db.WithContext(ctx).
		Order("random()").
		Limit(1).
		Take(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to pick a random recipe")
	}

	return toRecipeDomain(&recipeM), nil
}

// Create persists a new recipe and returns the stored row.
func (repo *recipeRepository) Create(ctx context.Context, input *entity.RecipeInput) (*entity.Recipe, error) {
	if input.Name == nil || util.NullableText(*input.Name) == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	recipeM := &model.RecipeModel{
		Name:                *util.NullableText(*input.Name),
		NameLocal:           util.NilIfBlank(input.NameLocal),
		Description:         util.NilIfBlank(input.Description),
		History:             util.NilIfBlank(input.History),
		ImageURL:            util.NilIfBlank(input.ImageURL),
		IngredientsImageURL: util.NilIfBlank(input.IngredientsImageURL),
		PrepTime:            input.PrepTime,
		CookTime:            input.CookTime,
		Servings:            input.Servings,
		DifficultyLevel:     entity.DefaultDifficulty.String(),
		QuoteText:           util.NilIfBlank(input.QuoteText),
		QuoteHighlight:      util.NilIfBlank(input.QuoteHighlight),
	}
	if input.DifficultyLevel != nil {
		recipeM.DifficultyLevel = input.DifficultyLevel.String()
	}
	if input.CountryID != nil && *input.CountryID != uuid.Nil {
		countryID := *input.CountryID
		recipeM.CountryID = &countryID
	}

	if err := repo.db.WithContext(ctx).Omit("Country").Create(recipeM).Error; err != nil {
		return nil, translateWriteError(err, nil, "failed to create recipe")
	}

	return repo.FindByID(ctx, recipeM.ID)
}

// Update writes the present fields of input and returns the stored row.
func (repo *recipeRepository) Update(ctx context.Context, id uuid.UUID, input *entity.RecipeInput) (*entity.Recipe, error) {
	updates := patch{}
	if input.Name != nil {
		if util.NullableText(*input.Name) == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("name cannot be empty")
		}
		updates.text("name", input.Name)
	}
	updates.text("name_local", input.NameLocal)
	updates.text("description", input.Description)
	updates.text("history", input.History)
	updates.text("image_url", input.ImageURL)
	updates.text("ingredients_image_url", input.IngredientsImageURL)
	updates.int("prep_time", input.PrepTime)
	updates.int("cook_time", input.CookTime)
	updates.int("servings", input.Servings)
	if input.DifficultyLevel != nil {
		updates.set("difficulty_level", input.DifficultyLevel.String())
	}
	updates.uuid("country_id", input.CountryID)
	updates.text("quote_text", input.QuoteText)
	updates.text("quote_highlight", input.QuoteHighlight)

	if len(updates) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.RecipeModel{}).
			Where("id = ?", id).
			Updates(map[string]any(updates))
		if result.Error != nil {
			return nil, translateWriteError(result.Error, nil, "failed to update recipe")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrRecipeNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a recipe; child collections are removed by the storage cascade.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete recipe")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRecipesDomain(recipeModels []*model.RecipeWithCountryModel) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes
}

// toRecipeDomain converts a view row to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeWithCountryModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	return &entity.Recipe{
		ID:                  data.ID,
		Name:                data.Name,
		NameLocal:           data.NameLocal,
		Description:         data.Description,
		History:             data.History,
		ImageURL:            data.ImageURL,
		IngredientsImageURL: data.IngredientsImageURL,
		PrepTime:            data.PrepTime,
		CookTime:            data.CookTime,
		Servings:            data.Servings,
		DifficultyLevel:     entity.Difficulty(data.DifficultyLevel),
		CountryID:           data.CountryID,
		QuoteText:           data.QuoteText,
		QuoteHighlight:      data.QuoteHighlight,
		CountryName:         data.CountryName,
		FlagEmoji:           data.FlagEmoji,
		CreatedAt:           data.CreatedAt,
	}
}
