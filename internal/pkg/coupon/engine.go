package coupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// Validation failures carry the sub-reason so the boundary layer can report
// why a code was rejected without parsing messages.
var (
	ErrNotFound = errors.New("coupon not found")
	ErrInactive = errors.New("coupon is inactive")
	ErrExpired  = errors.New("coupon is not valid at this time")
)

// Repository provides coupon lookups used by the engine.
type Repository interface {
	FindByCode(code string) (*models.Coupon, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a coupon repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindByCode(code string) (*models.Coupon, error) {
	var c models.Coupon
	if err := r.db.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Engine validates coupon codes and computes discounts. Validation is a pure
// read; the engine never mutates coupon state.
type Engine struct {
	repo Repository
}

// NewEngine creates a coupon engine from an injected repository.
func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// NewEngineFromDB creates a coupon engine from a GORM DB handle.
func NewEngineFromDB(db *gorm.DB) *Engine {
	return NewEngine(NewRepository(db))
}

// Validate canonicalizes the code and checks existence, the active flag and
// the validity window against now.
func (e *Engine) Validate(code string, now time.Time) (*models.Coupon, error) {
	c, err := e.repo.FindByCode(models.CanonicalCouponCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrInactive
	}
	if !c.InWindow(now) {
		return nil, ErrExpired
	}
	return c, nil
}

// Discount computes the discount amount for the given price. Flat discounts
// are capped at the price; percent discounts are rounded half-up to the
// currency minor unit. The result is always within [0, price].
func Discount(c *models.Coupon, price decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch c.DiscountType {
	case models.DiscountTypeFlat:
		amount = c.DiscountValue
	case models.DiscountTypePercent:
		// decimal.Round rounds half away from zero, which is half-up for
		// non-negative money amounts.
		amount = price.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		return decimal.Zero
	}

	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(price) {
		return price
	}
	return amount
}

// FinalPrice returns price minus the coupon discount, never below zero.
func FinalPrice(c *models.Coupon, price decimal.Decimal) decimal.Decimal {
	final := price.Sub(Discount(c, price))
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}
