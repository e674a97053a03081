package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
	"github.com/fitclubhq/fitclub/internal/pkg/usercontext"
)

type createBookingRequest struct {
	SessionID uint `json:"session_id"`
}

// HandleCreateBooking books one spot in a session for the logged-in member
func HandleCreateBooking(c *fiber.Ctx) error {
	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == 0 {
		return badRequest(c, "session_id is required")
	}

	userID := usercontext.GetUserID(c)
	booking, err := bookingService.Book(c.Context(), userID, req.SessionID)
	if err != nil {
		return handleDomainError(c, err)
	}

	invalidateSpotsCache(req.SessionID)

	return c.Status(fiber.StatusCreated).JSON(bookingJSON(*booking, time.Now()))
}

// HandleCancelBooking cancels the member's booking and frees its spot
func HandleCancelBooking(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid booking id")
	}

	userID := usercontext.GetUserID(c)
	booking, err := bookingService.Cancel(c.Context(), userID, id)
	if err != nil {
		return handleDomainError(c, err)
	}

	invalidateSpotsCache(booking.SessionID)

	return c.JSON(bookingJSON(*booking, time.Now()))
}

type checkInRequest struct {
	SessionID uint `json:"session_id"`
}

// HandleCheckIn marks the member's booking for a session as checked in
func HandleCheckIn(c *fiber.Ctx) error {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil || req.SessionID == 0 {
		return badRequest(c, "session_id is required")
	}

	userID := usercontext.GetUserID(c)
	booking, err := bookingService.CheckIn(c.Context(), userID, req.SessionID)
	if err != nil {
		return handleDomainError(c, err)
	}

	invalidateSpotsCache(booking.SessionID)

	return c.JSON(bookingJSON(*booking, time.Now()))
}

// HandleListMyBookings returns the member's bookings, newest first
func HandleListMyBookings(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	repo := repository.GetGlobalFactory().GetBookingRepository()
	bookings, err := repo.ListByUser(userID)
	if err != nil {
		return internalError(c, "Failed to load bookings")
	}

	now := time.Now()
	result := make([]fiber.Map, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, bookingJSON(b, now))
	}

	return c.JSON(fiber.Map{"bookings": result})
}

// bookingJSON renders a booking with its display status. Bookings that held a
// spot through the session's end show as completed without a stored update.
func bookingJSON(b models.Booking, now time.Time) fiber.Map {
	status := b.Status
	if b.Session != nil {
		status = b.EffectiveStatus(b.Session.EndTime, now)
	}

	return fiber.Map{
		"id":            b.ID,
		"session_id":    b.SessionID,
		"session":       b.Session,
		"status":        status,
		"checked_in_at": b.CheckedInAt,
		"created_at":    b.CreatedAt,
	}
}
