package booking

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionEnded        = errors.New("session has already ended")
	ErrMembershipRequired  = errors.New("an active membership is required to book sessions")
	ErrDuplicateBooking    = errors.New("user already holds a booking for this session")
	ErrCapacityExceeded    = errors.New("session is fully booked")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
	ErrNotConfirmed        = errors.New("booking is not in a confirmed state")
	ErrCheckinWindowClosed = errors.New("check-in is only possible while the session is running")
)
