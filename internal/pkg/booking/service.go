package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/app/models"
)

// Service owns booking state transitions. Capacity admission is delegated to
// the repository, which performs the check-and-insert atomically.
type Service struct {
	repo Repository
}

// NewService creates a booking service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// NewServiceFromDB creates a booking service from a GORM DB handle.
func NewServiceFromDB(db *gorm.DB) *Service {
	return NewService(NewRepository(db))
}

// Book reserves one spot in the session for the user. The session must not
// have ended, the user must hold a current membership and must not already
// hold a non-cancelled booking for the session.
func (s *Service) Book(ctx context.Context, userID, sessionID uint) (*models.Booking, error) {
	now := time.Now()

	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.HasEnded(now) {
		return nil, ErrSessionEnded
	}

	hasMembership, err := s.repo.HasCurrentMembership(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if !hasMembership {
		return nil, ErrMembershipRequired
	}

	booking, err := s.repo.Admit(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	booking.Session = sess
	return booking, nil
}

// Cancel releases the booking's spot. Only the booking's owner can cancel,
// only confirmed bookings can be cancelled, and only before the session ends.
func (s *Service) Cancel(ctx context.Context, userID, bookingID uint) (*models.Booking, error) {
	now := time.Now()

	b, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	if b.Status == models.BookingStatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if b.Session != nil && b.Session.HasEnded(now) {
		return nil, ErrSessionEnded
	}
	if b.Status != models.BookingStatusConfirmed {
		return nil, ErrNotConfirmed
	}

	if err := s.repo.MarkCancelled(ctx, bookingID); err != nil {
		// The status moved between our read and the compare-and-set.
		if errors.Is(err, ErrNotConfirmed) {
			if current, readErr := s.repo.GetBooking(ctx, bookingID); readErr == nil &&
				current.Status == models.BookingStatusCancelled {
				return nil, ErrAlreadyCancelled
			}
		}
		return nil, err
	}

	b.Status = models.BookingStatusCancelled
	return b, nil
}

// CheckIn marks the user's confirmed booking for the session as checked in.
// Allowed only while now is within the session's start and end time, and only
// once per booking.
func (s *Service) CheckIn(ctx context.Context, userID, sessionID uint) (*models.Booking, error) {
	now := time.Now()

	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.InCheckinWindow(now) {
		return nil, ErrCheckinWindowClosed
	}

	b, err := s.repo.FindHeldBooking(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if b.Status == models.BookingStatusCheckedIn {
		return nil, ErrNotConfirmed
	}

	if err := s.repo.MarkCheckedIn(ctx, b.ID, now); err != nil {
		return nil, err
	}

	b.Status = models.BookingStatusCheckedIn
	b.CheckedInAt = &now
	b.Session = sess
	return b, nil
}

// AvailableSpots returns capacity minus currently held bookings.
func (s *Service) AvailableSpots(ctx context.Context, sessionID uint) (int, error) {
	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	held, err := s.repo.CountHeld(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	spots := sess.Capacity - int(held)
	if spots < 0 {
		spots = 0
	}
	return spots, nil
}
