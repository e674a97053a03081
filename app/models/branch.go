package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Branch is a physical club location. Reference data, maintained by admins.
type Branch struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Address   string    `gorm:"type:varchar(255)" json:"address" validate:"max=255"`
	City      string    `gorm:"type:varchar(100)" json:"city" validate:"max=100"`
	State     string    `gorm:"type:varchar(100)" json:"state" validate:"max=100"`
	ZipCode   string    `gorm:"type:varchar(20)" json:"zip_code" validate:"max=20"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone" validate:"max=20"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (b *Branch) Validate() error {
	return validator.New().Struct(b)
}
