package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name       string
		status     string
		sessionEnd time.Time
		want       string
	}{
		{name: "confirmed before end stays confirmed", status: BookingStatusConfirmed, sessionEnd: future, want: BookingStatusConfirmed},
		{name: "confirmed after end reads completed", status: BookingStatusConfirmed, sessionEnd: past, want: BookingStatusCompleted},
		{name: "checked in after end reads completed", status: BookingStatusCheckedIn, sessionEnd: past, want: BookingStatusCompleted},
		{name: "cancelled never completes", status: BookingStatusCancelled, sessionEnd: past, want: BookingStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.EffectiveStatus(tt.sessionEnd, now))
		})
	}
}

func TestBookingHoldsSpot(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingStatusConfirmed}).HoldsSpot())
	assert.True(t, (&Booking{Status: BookingStatusCheckedIn}).HoldsSpot())
	assert.False(t, (&Booking{Status: BookingStatusCancelled}).HoldsSpot())
}
