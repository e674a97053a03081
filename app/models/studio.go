package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Studio is a bookable room inside a branch.
type Studio struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Floor     int       `gorm:"default:0" json:"floor"`
	Capacity  int       `gorm:"not null" json:"capacity" validate:"required,gt=0"`
	BranchID  uint      `gorm:"not null;index" json:"branch_id" validate:"required"`
	Branch    *Branch   `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Studio) Validate() error {
	return validator.New().Struct(s)
}
