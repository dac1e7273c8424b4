package model

import (
	"time"

	"github.com/google/uuid"
)

// CountryModel is the GORM-specific struct for the 'countries' table.
type CountryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	FlagEmoji   *string   `gorm:"type:varchar(16)"`
	Description *string   `gorm:"type:text"`
	ImageURL    *string   `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}
