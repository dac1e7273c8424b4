package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role       string    `gorm:"type:varchar(16);not null;default:'user'"`
	FullName   *string   `gorm:"type:varchar(255)"`
	AgeOrBirth *string   `gorm:"type:varchar(64)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// CredentialModel is the GORM-specific struct for the 'credentials' table.
type CredentialModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}

// SearchHistoryModel is the GORM-specific struct for the 'recipe_search_history' table.
type SearchHistoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_search_history_user_time,priority:1"`
	SearchQuery string    `gorm:"type:varchar(255);not null"`
	SearchedAt  time.Time `gorm:"not null;default:now();index:idx_search_history_user_time,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (SearchHistoryModel) TableName() string {
	return "recipe_search_history"
}
