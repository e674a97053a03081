package repository

import (
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// planRepository implements the PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new membership plan repository instance
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create creates a new membership plan
func (r *planRepository) Create(plan *models.MembershipPlan) error {
	return r.db.Create(plan).Error
}

// GetByID retrieves a plan by its ID
func (r *planRepository) GetByID(id uint) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	err := r.db.First(&plan, id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Update updates an existing plan
func (r *planRepository) Update(plan *models.MembershipPlan) error {
	return r.db.Save(plan).Error
}

// Delete soft deletes a plan by its ID. Existing memberships keep their
// reference to it.
func (r *planRepository) Delete(id uint) error {
	return r.db.Delete(&models.MembershipPlan{}, id).Error
}

// ListActive returns the plans currently offered for purchase
func (r *planRepository) ListActive() ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	return plans, err
}

// ListAll returns every plan including retired ones
func (r *planRepository) ListAll() ([]models.MembershipPlan, error) {
	var plans []models.MembershipPlan
	err := r.db.Order("price ASC").Find(&plans).Error
	return plans, err
}
