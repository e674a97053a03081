package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ActivityType is the closed set of class categories (yoga, spinning, ...).
// Sessions reference an activity type by ID; free-text matching is not
// supported anywhere in the core.
type ActivityType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *ActivityType) Validate() error {
	return validator.New().Struct(a)
}
