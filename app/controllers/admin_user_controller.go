package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminListUsers returns a paginated list of member accounts
func HandleAdminListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	users, err := repo.List((page-1)*limit, limit)
	if err != nil {
		return internalError(c, "Failed to load users")
	}

	total, err := repo.Count()
	if err != nil {
		return internalError(c, "Failed to count users")
	}

	return c.JSON(fiber.Map{
		"users": users,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}
