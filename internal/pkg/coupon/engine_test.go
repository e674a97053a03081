package coupon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

type fakeRepo struct {
	coupons map[string]*models.Coupon
}

func (f *fakeRepo) FindByCode(code string) (*models.Coupon, error) {
	if c, ok := f.coupons[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestEngine(coupons ...*models.Coupon) *Engine {
	repo := &fakeRepo{coupons: make(map[string]*models.Coupon)}
	for _, c := range coupons {
		repo.coupons[c.Code] = c
	}
	return NewEngine(repo)
}

func testCoupon(code, discountType string, value int64) *models.Coupon {
	return &models.Coupon{
		Code:          code,
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(value),
		ValidFrom:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidTo:       time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		IsActive:      true,
	}
}

func TestValidateCanonicalizesCode(t *testing.T) {
	e := newTestEngine(testCoupon("NEWYEAR2025", models.DiscountTypePercent, 20))
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	c, err := e.Validate("  newYear2025 ", now)
	assert.NoError(t, err)
	assert.Equal(t, "NEWYEAR2025", c.Code)
}

func TestValidateFailures(t *testing.T) {
	inactive := testCoupon("PAUSED", models.DiscountTypeFlat, 50)
	inactive.IsActive = false

	e := newTestEngine(testCoupon("NEWYEAR2025", models.DiscountTypePercent, 20), inactive)

	tests := []struct {
		name string
		code string
		now  time.Time
		want error
	}{
		{name: "unknown code", code: "NOPE", now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: ErrNotFound},
		{name: "inactive", code: "PAUSED", now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: ErrInactive},
		{name: "before window", code: "NEWYEAR2025", now: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), want: ErrExpired},
		{name: "after window", code: "NEWYEAR2025", now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: ErrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Validate(tt.code, tt.now)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDiscount(t *testing.T) {
	tests := []struct {
		name         string
		discountType string
		value        string
		price        string
		want         string
	}{
		{name: "percent", discountType: models.DiscountTypePercent, value: "20", price: "1000", want: "200"},
		{name: "percent rounds half up", discountType: models.DiscountTypePercent, value: "15", price: "99.99", want: "15"},
		{name: "percent of zero", discountType: models.DiscountTypePercent, value: "50", price: "0", want: "0"},
		{name: "flat below price", discountType: models.DiscountTypeFlat, value: "100", price: "500", want: "100"},
		{name: "flat capped at price", discountType: models.DiscountTypeFlat, value: "100", price: "80", want: "80"},
		{name: "hundred percent", discountType: models.DiscountTypePercent, value: "100", price: "750", want: "750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &models.Coupon{
				DiscountType:  tt.discountType,
				DiscountValue: decimal.RequireFromString(tt.value),
			}
			price := decimal.RequireFromString(tt.price)

			got := Discount(c, price)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)

			// Discount bounds hold for every case.
			assert.False(t, got.IsNegative())
			assert.False(t, got.GreaterThan(price))
		})
	}
}

func TestFinalPriceNeverNegative(t *testing.T) {
	c := &models.Coupon{
		DiscountType:  models.DiscountTypeFlat,
		DiscountValue: decimal.NewFromInt(100),
	}
	final := FinalPrice(c, decimal.NewFromInt(80))
	assert.True(t, final.IsZero(), "got %s", final)
}
