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

// searchHistoryRepository implements the repository.SearchHistoryRepository interface.
type searchHistoryRepository struct {
	db *gorm.DB
}

// NewSearchHistoryRepository is the constructor for searchHistoryRepository.
func NewSearchHistoryRepository(db *gorm.DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{
		db: db,
	}
}

// ListByUser returns at most limit entries, most recent first.
func (repo *searchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchHistory, error) {
	var historyModels []*model.SearchHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("searched_at DESC").
		Limit(limit).
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list search history")
	}

	history := make([]*entity.SearchHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		history = append(history, &entity.SearchHistory{
			ID:          historyM.ID,
			UserID:      historyM.UserID,
			SearchQuery: historyM.SearchQuery,
			SearchedAt:  historyM.SearchedAt,
		})
	}

	return history, nil
}

// Add records a search query.
func (repo *searchHistoryRepository) Add(ctx context.Context, userID uuid.UUID, query string) error {
	historyM := &model.SearchHistoryModel{
		UserID:      userID,
		SearchQuery: query,
	}

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		return translateWriteError(err, nil, "failed to add search history")
	}

	return nil
}

// Clear removes every entry of the user.
func (repo *searchHistoryRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SearchHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear search history")
	}

	return nil
}
