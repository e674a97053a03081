package repository

import (
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// bookingRepository implements the BookingRepository interface
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository instance
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// ListByUser returns the user's bookings, newest first, with the session
// and its reference data preloaded for display
func (r *bookingRepository) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Preload("Session").
		Preload("Session.Branch").
		Preload("Session.Studio").
		Preload("Session.ActivityType").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// CountHeld counts the bookings currently occupying a spot in the session
func (r *bookingRepository) CountHeld(sessionID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("session_id = ? AND status IN ?", sessionID,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&count).Error
	return count, err
}
