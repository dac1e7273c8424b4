package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistory is one search query issued by a user.
type SearchHistory struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	SearchQuery string    `json:"search_query"`
	SearchedAt  time.Time `json:"searched_at"`
}
