package postgres

import (
	"context"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// ListByUser returns the favorites of a user with a recipe summary, newest first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// Add saves a recipe for a user. The unique pair constraint rejects duplicates.
func (repo *favoriteRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error) {
	favoriteM := &model.FavoriteModel{
		UserID:   userID,
		RecipeID: recipeID,
	}

	if err := repo.db.WithContext(ctx).Omit("Recipe").Create(favoriteM).Error; err != nil {
		return nil, translateWriteError(err, repository.ErrDuplicateFavorite, "failed to add favorite")
	}

	return toFavoriteDomain(favoriteM), nil
}

// Remove deletes the (user, recipe) pair.
func (repo *favoriteRepository) Remove(ctx context.Context, userID, recipeID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Exists reports whether the pair is saved.
func (repo *favoriteRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}

	return count > 0, nil
}

// FilterFavorited returns the subset of recipeIDs the user has saved.
func (repo *favoriteRepository) FilterFavorited(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(recipeIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	var favorited []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &favorited).Error; err != nil {
		return nil, errors.Wrap(err, "failed to filter favorites")
	}

	return favorited, nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	favorite := &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		RecipeID:  data.RecipeID,
		CreatedAt: data.CreatedAt,
	}
	if data.Recipe != nil {
		favorite.Recipe = toRecipeDomain(&model.RecipeWithCountryModel{RecipeModel: *data.Recipe})
	}

	return favorite
}
