package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// couponRepository implements the CouponRepository interface
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository instance
func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db}
}

// Create creates a new coupon
func (r *couponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// GetByID retrieves a coupon by its ID
func (r *couponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.First(&coupon, id).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Update updates an existing coupon
func (r *couponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// Delete soft deletes a coupon by its ID
func (r *couponRepository) Delete(id uint) error {
	return r.db.Delete(&models.Coupon{}, id).Error
}

// ListCurrent returns active coupons whose validity window contains now
func (r *couponRepository) ListCurrent(now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.
		Where("is_active = ? AND valid_from <= ? AND valid_to >= ?", true, now, now).
		Order("valid_to ASC").
		Find(&coupons).Error
	return coupons, err
}

// ListAll returns every coupon including inactive and expired ones
func (r *couponRepository) ListAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := r.db.Order("created_at DESC").Find(&coupons).Error
	return coupons, err
}
