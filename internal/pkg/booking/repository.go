package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitclubhq/fitclub/app/models"
)

// Repository provides the DB operations used by the booking service. Admit and
// the status transitions are atomic; everything else is plain reads.
type Repository interface {
	GetSession(ctx context.Context, id uint) (*models.Session, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	FindHeldBooking(ctx context.Context, userID, sessionID uint) (*models.Booking, error)
	HasCurrentMembership(ctx context.Context, userID uint, now time.Time) (bool, error)
	Admit(ctx context.Context, userID, sessionID uint) (*models.Booking, error)
	MarkCancelled(ctx context.Context, bookingID uint) error
	MarkCheckedIn(ctx context.Context, bookingID uint, at time.Time) error
	CountHeld(ctx context.Context, sessionID uint) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a booking repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetSession(ctx context.Context, id uint) (*models.Session, error) {
	var s models.Session
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).Preload("Session").First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) FindHeldBooking(ctx context.Context, userID, sessionID uint) (*models.Booking, error) {
	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ? AND status IN ?", userID, sessionID,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *gormRepository) HasCurrentMembership(ctx context.Context, userID uint, now time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			userID, models.MembershipStatusActive, now, now).
		Count(&count).Error
	return count > 0, err
}

// Admit runs the atomic check-and-insert. The session row is locked for the
// duration of the transaction so concurrent admissions serialize; at most
// capacity bookings ever hold a spot.
func (r *gormRepository) Admit(ctx context.Context, userID, sessionID uint) (*models.Booking, error) {
	var booking *models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess models.Session
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sess, sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSessionNotFound
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Booking{}).
			Where("user_id = ? AND session_id = ? AND status <> ?", userID, sessionID, models.BookingStatusCancelled).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateBooking
		}

		var held int64
		if err := tx.Model(&models.Booking{}).
			Where("session_id = ? AND status IN ?", sessionID,
				[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
			Count(&held).Error; err != nil {
			return err
		}
		if held >= int64(sess.Capacity) {
			return ErrCapacityExceeded
		}

		b := &models.Booking{
			UserID:    userID,
			SessionID: sessionID,
			Status:    models.BookingStatusConfirmed,
		}
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// MarkCancelled flips confirmed to cancelled with a compare-and-set so a
// racing cancel or check-in on the same booking cannot release a slot twice.
func (r *gormRepository) MarkCancelled(ctx context.Context, bookingID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
		Update("status", models.BookingStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotConfirmed
	}
	return nil
}

// MarkCheckedIn flips confirmed to checked_in with a compare-and-set.
func (r *gormRepository) MarkCheckedIn(ctx context.Context, bookingID uint, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ? AND status = ?", bookingID, models.BookingStatusConfirmed).
		Updates(map[string]interface{}{
			"status":        models.BookingStatusCheckedIn,
			"checked_in_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotConfirmed
	}
	return nil
}

func (r *gormRepository) CountHeld(ctx context.Context, sessionID uint) (int64, error) {
	var held int64
	err := r.db.WithContext(ctx).Model(&models.Booking{}).
		Where("session_id = ? AND status IN ?", sessionID,
			[]string{models.BookingStatusConfirmed, models.BookingStatusCheckedIn}).
		Count(&held).Error
	return held, err
}
