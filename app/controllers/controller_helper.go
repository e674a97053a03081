package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fitclubhq/fitclub/internal/pkg/booking"
	"github.com/fitclubhq/fitclub/internal/pkg/coupon"
	"github.com/fitclubhq/fitclub/internal/pkg/database"
	"github.com/fitclubhq/fitclub/internal/pkg/ledger"
	"github.com/fitclubhq/fitclub/internal/pkg/purchase"
)

var (
	bookingService  *booking.Service
	purchaseService *purchase.Service
	couponEngine    *coupon.Engine
	paymentLedger   *ledger.Ledger
)

// InitializeControllers wires the domain services against the shared DB
// handle. Must run after database.SetupDatabase.
func InitializeControllers() {
	db := database.GetDB()
	bookingService = booking.NewServiceFromDB(db)
	purchaseService = purchase.NewServiceFromDB(db)
	couponEngine = coupon.NewEngineFromDB(db)
	paymentLedger = ledger.New(db)
}

// parseIDParam reads a positive numeric route parameter
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func jsonError(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": kind, "message": message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusBadRequest, "bad_request", message)
}

func internalError(c *fiber.Ctx, message string) error {
	return jsonError(c, fiber.StatusInternalServerError, "internal_server_error", message)
}

// handleDomainError translates domain sentinel errors into JSON responses.
// Unknown errors become a 500 without leaking details.
func handleDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return jsonError(c, fiber.StatusNotFound, "not_found", "Session not found")
	case errors.Is(err, booking.ErrBookingNotFound):
		return jsonError(c, fiber.StatusNotFound, "not_found", "Booking not found")
	case errors.Is(err, booking.ErrMembershipRequired):
		return jsonError(c, fiber.StatusForbidden, "membership_required", "An active membership is required to book")
	case errors.Is(err, booking.ErrDuplicateBooking):
		return jsonError(c, fiber.StatusConflict, "duplicate_booking", "You already have a booking for this session")
	case errors.Is(err, booking.ErrCapacityExceeded):
		return jsonError(c, fiber.StatusConflict, "capacity_exceeded", "Session is fully booked")
	case errors.Is(err, booking.ErrSessionEnded):
		return jsonError(c, fiber.StatusUnprocessableEntity, "session_ended", "Session has already ended")
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return jsonError(c, fiber.StatusConflict, "already_cancelled", "Booking is already cancelled")
	case errors.Is(err, booking.ErrNotConfirmed):
		return jsonError(c, fiber.StatusConflict, "invalid_state", "Booking is not in a state that allows this action")
	case errors.Is(err, booking.ErrCheckinWindowClosed):
		return jsonError(c, fiber.StatusUnprocessableEntity, "checkin_window_closed", "Check-in is only possible while the session is running")
	case errors.Is(err, coupon.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "coupon_not_found", "Coupon code does not exist")
	case errors.Is(err, coupon.ErrInactive):
		return jsonError(c, fiber.StatusUnprocessableEntity, "coupon_invalid", "Coupon is not active")
	case errors.Is(err, coupon.ErrExpired):
		return jsonError(c, fiber.StatusUnprocessableEntity, "coupon_invalid", "Coupon is outside its validity window")
	case errors.Is(err, purchase.ErrPlanNotFound):
		return jsonError(c, fiber.StatusNotFound, "not_found", "Membership plan not found")
	case errors.Is(err, purchase.ErrPlanInactive):
		return jsonError(c, fiber.StatusUnprocessableEntity, "plan_inactive", "Membership plan is no longer offered")
	case errors.Is(err, purchase.ErrInvalidMethod):
		return jsonError(c, fiber.StatusBadRequest, "invalid_payment_method", "Unsupported payment method")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return jsonError(c, fiber.StatusNotFound, "not_found", "Resource not found")
	}
	return internalError(c, "Something went wrong")
}
