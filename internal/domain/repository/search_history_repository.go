package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchHistoryRepository stores the recent searches of users.
type SearchHistoryRepository interface {
	// ListByUser returns at most limit entries, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.SearchHistory, error)

	// Add records a search query.
	Add(ctx context.Context, userID uuid.UUID, query string) error

	// Clear removes every entry of the user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
