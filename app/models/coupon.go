package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	DiscountTypePercent = "percent"
	DiscountTypeFlat    = "flat"
)

// Coupon is a promotional code. Codes are stored canonicalized to upper-case;
// lookups canonicalize before matching so codes are case-insensitive.
type Coupon struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"code" validate:"required,max=50"`
	Description   string          `gorm:"type:text" json:"description"`
	DiscountType  string          `gorm:"type:varchar(20);not null" json:"discount_type" validate:"oneof=percent flat"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	ValidFrom     time.Time       `gorm:"not null" json:"valid_from" validate:"required"`
	ValidTo       time.Time       `gorm:"not null" json:"valid_to" validate:"required,gtfield=ValidFrom"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// CanonicalCouponCode normalizes a user-supplied code for storage and lookup.
func CanonicalCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c *Coupon) Validate() error {
	c.Code = CanonicalCouponCode(c.Code)
	if c.DiscountValue.IsNegative() {
		return ErrNegativeDiscount
	}
	if c.DiscountType == DiscountTypePercent && c.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPercentOutOfRange
	}
	return validator.New().Struct(c)
}

// InWindow reports whether now falls within [valid_from, valid_to].
func (c *Coupon) InWindow(now time.Time) bool {
	return !now.Before(c.ValidFrom) && !now.After(c.ValidTo)
}
