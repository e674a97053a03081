package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MembershipPlan is a purchasable plan. Reference data, read-only to the
// purchase core.
type MembershipPlan struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(100);not null;uniqueIndex" json:"name" validate:"required,max=100"`
	Description    string          `gorm:"type:text" json:"description"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMonths int             `gorm:"not null" json:"duration_months" validate:"required,gt=0"`
	IsActive       bool            `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *MembershipPlan) Validate() error {
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return validator.New().Struct(p)
}
