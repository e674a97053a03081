package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCheckedIn = "checked_in"
	BookingStatusCancelled = "cancelled"
	// BookingStatusCompleted is never stored. It is derived at read time for
	// non-cancelled bookings whose session end time has passed.
	BookingStatusCompleted = "completed"
)

// Booking is a user's claim on one spot in a session. Rows are never deleted;
// cancellation is a status change so capacity accounting history survives.
type Booking struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index:idx_bookings_user_session,priority:1" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`
	SessionID   uint       `gorm:"not null;index:idx_bookings_user_session,priority:2;index" json:"session_id"`
	Session     *Session   `gorm:"foreignKey:SessionID" json:"session,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'confirmed';index" json:"status"`
	CheckedInAt *time.Time `gorm:"type:timestamp;default:null" json:"checked_in_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// HoldsSpot reports whether the booking counts against session capacity.
func (b *Booking) HoldsSpot() bool {
	return b.Status == BookingStatusConfirmed || b.Status == BookingStatusCheckedIn
}

// EffectiveStatus returns the status as seen by callers: bookings that still
// hold a spot on a session that already ended read as completed.
func (b *Booking) EffectiveStatus(sessionEnd time.Time, now time.Time) string {
	if b.HoldsSpot() && now.After(sessionEnd) {
		return BookingStatusCompleted
	}
	return b.Status
}
