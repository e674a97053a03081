package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// sessionRepository implements the SessionRepository interface
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new class session repository instance
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create creates a new class session
func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByID retrieves a session with its branch, studio and activity type
func (r *sessionRepository) GetByID(id uint) (*models.Session, error) {
	var session models.Session
	err := r.db.
		Preload("Branch").
		Preload("Studio").
		Preload("ActivityType").
		First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update updates an existing session
func (r *sessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

// Delete soft deletes a session by its ID
func (r *sessionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Session{}, id).Error
}

// ListUpcoming returns sessions that have not started yet, soonest first,
// each with its remaining spots. Cancelled bookings free their spot.
func (r *sessionRepository) ListUpcoming(now time.Time) ([]SessionWithAvailability, error) {
	var sessions []models.Session
	err := r.db.
		Preload("Branch").
		Preload("Studio").
		Preload("ActivityType").
		Where("start_time > ?", now).
		Order("start_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	result := make([]SessionWithAvailability, 0, len(sessions))
	for _, session := range sessions {
		var held int64
		err := r.db.Model(&models.Booking{}).
			Where("session_id = ? AND status IN ?", session.ID,
				[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
			Count(&held).Error
		if err != nil {
			return nil, err
		}

		spots := session.Capacity - int(held)
		if spots < 0 {
			spots = 0
		}
		result = append(result, SessionWithAvailability{
			Session:        session,
			AvailableSpots: spots,
		})
	}

	return result, nil
}

// ListAll retrieves a paginated list of sessions, newest first
func (r *sessionRepository) ListAll(offset, limit int) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.
		Preload("Branch").
		Preload("Studio").
		Preload("ActivityType").
		Order("start_time DESC").
		Offset(offset).Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

// Count returns the total number of sessions
func (r *sessionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Session{}).Count(&count).Error
	return count, err
}
