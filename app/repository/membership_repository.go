package repository

import (
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// membershipRepository implements the MembershipRepository interface
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository instance
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// ListByUser returns the user's memberships, newest first, with the plan
// preloaded for display
func (r *membershipRepository) ListByUser(userID uint) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&memberships).Error
	return memberships, err
}
