package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/internal/pkg/booking"
	"github.com/fitclubhq/fitclub/internal/pkg/coupon"
	"github.com/fitclubhq/fitclub/internal/pkg/purchase"
)

func TestHandleDomainErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"session not found", booking.ErrSessionNotFound, fiber.StatusNotFound},
		{"booking not found", booking.ErrBookingNotFound, fiber.StatusNotFound},
		{"membership required", booking.ErrMembershipRequired, fiber.StatusForbidden},
		{"duplicate booking", booking.ErrDuplicateBooking, fiber.StatusConflict},
		{"capacity exceeded", booking.ErrCapacityExceeded, fiber.StatusConflict},
		{"session ended", booking.ErrSessionEnded, fiber.StatusUnprocessableEntity},
		{"already cancelled", booking.ErrAlreadyCancelled, fiber.StatusConflict},
		{"checkin window closed", booking.ErrCheckinWindowClosed, fiber.StatusUnprocessableEntity},
		{"coupon not found", coupon.ErrNotFound, fiber.StatusNotFound},
		{"coupon expired", coupon.ErrExpired, fiber.StatusUnprocessableEntity},
		{"plan not found", purchase.ErrPlanNotFound, fiber.StatusNotFound},
		{"plan inactive", purchase.ErrPlanInactive, fiber.StatusUnprocessableEntity},
		{"invalid method", purchase.ErrInvalidMethod, fiber.StatusBadRequest},
		{"unknown error", assert.AnError, fiber.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return handleDomainError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestBookingJSONEffectiveStatus(t *testing.T) {
	now := time.Now()
	session := &models.Session{
		ID:        1,
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-1 * time.Hour),
	}

	b := models.Booking{ID: 7, SessionID: 1, Session: session, Status: models.BookingStatusConfirmed}
	out := bookingJSON(b, now)
	assert.Equal(t, models.BookingStatusCompleted, out["status"])

	b.Status = models.BookingStatusCancelled
	out = bookingJSON(b, now)
	assert.Equal(t, models.BookingStatusCancelled, out["status"])

	session.EndTime = now.Add(time.Hour)
	b.Status = models.BookingStatusConfirmed
	out = bookingJSON(b, now)
	assert.Equal(t, models.BookingStatusConfirmed, out["status"])
}
