package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/internal/pkg/usercontext"
)

// HandleListMyPayments returns the member's payment history, newest first
func HandleListMyPayments(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	payments, err := paymentLedger.ListByUser(c.Context(), userID)
	if err != nil {
		return internalError(c, "Failed to load payments")
	}

	return c.JSON(fiber.Map{"payments": payments})
}
