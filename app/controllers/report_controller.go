package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminRevenueReport returns booking and revenue totals per branch
func HandleAdminRevenueReport(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetReportRepository()
	rows, err := repo.RevenueByBranch()
	if err != nil {
		return internalError(c, "Failed to build revenue report")
	}

	return c.JSON(fiber.Map{"branches": rows})
}

// HandleAdminPopularityReport ranks sessions by bookings against capacity
func HandleAdminPopularityReport(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	repo := repository.GetGlobalFactory().GetReportRepository()
	rows, err := repo.SessionPopularity(limit)
	if err != nil {
		return internalError(c, "Failed to build popularity report")
	}

	return c.JSON(fiber.Map{"sessions": rows})
}
