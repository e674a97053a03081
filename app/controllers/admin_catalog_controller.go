package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminCreateBranch creates a new branch
func HandleAdminCreateBranch(c *fiber.Ctx) error {
	var branch models.Branch
	if err := c.BodyParser(&branch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := branch.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if err := repo.CreateBranch(&branch); err != nil {
		return internalError(c, "Failed to create branch")
	}

	return c.Status(fiber.StatusCreated).JSON(branch)
}

// HandleAdminListBranches returns all branches
func HandleAdminListBranches(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCatalogRepository()
	branches, err := repo.ListBranches()
	if err != nil {
		return internalError(c, "Failed to load branches")
	}
	return c.JSON(fiber.Map{"branches": branches})
}

// HandleAdminUpdateBranch updates an existing branch
func HandleAdminUpdateBranch(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid branch id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	branch, err := repo.GetBranch(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(branch); err != nil {
		return badRequest(c, "Invalid request body")
	}
	branch.ID = id
	if err := branch.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.UpdateBranch(branch); err != nil {
		return internalError(c, "Failed to update branch")
	}

	return c.JSON(branch)
}

// HandleAdminDeleteBranch deletes a branch
func HandleAdminDeleteBranch(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid branch id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if _, err := repo.GetBranch(id); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.DeleteBranch(id); err != nil {
		return internalError(c, "Failed to delete branch")
	}

	return c.JSON(fiber.Map{"message": "branch deleted"})
}

// HandleAdminCreateStudio creates a new studio inside a branch
func HandleAdminCreateStudio(c *fiber.Ctx) error {
	var studio models.Studio
	if err := c.BodyParser(&studio); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := studio.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if _, err := repo.GetBranch(studio.BranchID); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.CreateStudio(&studio); err != nil {
		return internalError(c, "Failed to create studio")
	}

	return c.Status(fiber.StatusCreated).JSON(studio)
}

// HandleAdminListStudios returns all studios with their branches
func HandleAdminListStudios(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCatalogRepository()
	studios, err := repo.ListStudios()
	if err != nil {
		return internalError(c, "Failed to load studios")
	}
	return c.JSON(fiber.Map{"studios": studios})
}

// HandleAdminUpdateStudio updates an existing studio
func HandleAdminUpdateStudio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid studio id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	studio, err := repo.GetStudio(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(studio); err != nil {
		return badRequest(c, "Invalid request body")
	}
	studio.ID = id
	if err := studio.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.UpdateStudio(studio); err != nil {
		return internalError(c, "Failed to update studio")
	}

	return c.JSON(studio)
}

// HandleAdminDeleteStudio deletes a studio
func HandleAdminDeleteStudio(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid studio id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if _, err := repo.GetStudio(id); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.DeleteStudio(id); err != nil {
		return internalError(c, "Failed to delete studio")
	}

	return c.JSON(fiber.Map{"message": "studio deleted"})
}

// HandleAdminCreateActivityType creates a new activity type
func HandleAdminCreateActivityType(c *fiber.Ctx) error {
	var at models.ActivityType
	if err := c.BodyParser(&at); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := at.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if err := repo.CreateActivityType(&at); err != nil {
		return internalError(c, "Failed to create activity type")
	}

	return c.Status(fiber.StatusCreated).JSON(at)
}

// HandleAdminListActivityTypes returns all activity types
func HandleAdminListActivityTypes(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCatalogRepository()
	types, err := repo.ListActivityTypes()
	if err != nil {
		return internalError(c, "Failed to load activity types")
	}
	return c.JSON(fiber.Map{"activity_types": types})
}

// HandleAdminUpdateActivityType updates an existing activity type
func HandleAdminUpdateActivityType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid activity type id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	at, err := repo.GetActivityType(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(at); err != nil {
		return badRequest(c, "Invalid request body")
	}
	at.ID = id
	if err := at.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.UpdateActivityType(at); err != nil {
		return internalError(c, "Failed to update activity type")
	}

	return c.JSON(at)
}

// HandleAdminDeleteActivityType deletes an activity type
func HandleAdminDeleteActivityType(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid activity type id")
	}

	repo := repository.GetGlobalFactory().GetCatalogRepository()
	if _, err := repo.GetActivityType(id); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.DeleteActivityType(id); err != nil {
		return internalError(c, "Failed to delete activity type")
	}

	return c.JSON(fiber.Map{"message": "activity type deleted"})
}
