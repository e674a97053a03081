package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminCreatePlan creates a new membership plan
func HandleAdminCreatePlan(c *fiber.Ctx) error {
	var plan models.MembershipPlan
	if err := c.BodyParser(&plan); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := plan.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if err := repo.Create(&plan); err != nil {
		return internalError(c, "Failed to create plan")
	}

	return c.Status(fiber.StatusCreated).JSON(plan)
}

// HandleAdminListPlans returns every plan including retired ones
func HandleAdminListPlans(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPlanRepository()
	plans, err := repo.ListAll()
	if err != nil {
		return internalError(c, "Failed to load plans")
	}
	return c.JSON(fiber.Map{"plans": plans})
}

// HandleAdminUpdatePlan updates an existing plan. Price changes never touch
// memberships already sold.
func HandleAdminUpdatePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	plan, err := repo.GetByID(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(plan); err != nil {
		return badRequest(c, "Invalid request body")
	}
	plan.ID = id
	if err := plan.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Update(plan); err != nil {
		return internalError(c, "Failed to update plan")
	}

	return c.JSON(plan)
}

// HandleAdminDeletePlan removes a plan from the catalog
func HandleAdminDeletePlan(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid plan id")
	}

	repo := repository.GetGlobalFactory().GetPlanRepository()
	if _, err := repo.GetByID(id); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete plan")
	}

	return c.JSON(fiber.Map{"message": "plan deleted"})
}
