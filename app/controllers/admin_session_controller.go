package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminCreateSession schedules a new class session
func HandleAdminCreateSession(c *fiber.Ctx) error {
	var session models.Session
	if err := c.BodyParser(&session); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := session.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	catalog := repository.GetGlobalFactory().GetCatalogRepository()
	if _, err := catalog.GetBranch(session.BranchID); err != nil {
		return handleDomainError(c, err)
	}
	studio, err := catalog.GetStudio(session.StudioID)
	if err != nil {
		return handleDomainError(c, err)
	}
	if studio.BranchID != session.BranchID {
		return badRequest(c, "Studio does not belong to the given branch")
	}
	if _, err := catalog.GetActivityType(session.ActivityTypeID); err != nil {
		return handleDomainError(c, err)
	}

	repo := repository.GetGlobalFactory().GetSessionRepository()
	if err := repo.Create(&session); err != nil {
		return internalError(c, "Failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleAdminListSessions returns a paginated list of all sessions
func HandleAdminListSessions(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "25"))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	repo := repository.GetGlobalFactory().GetSessionRepository()
	sessions, err := repo.ListAll((page-1)*limit, limit)
	if err != nil {
		return internalError(c, "Failed to load sessions")
	}

	total, err := repo.Count()
	if err != nil {
		return internalError(c, "Failed to count sessions")
	}

	return c.JSON(fiber.Map{
		"sessions": sessions,
		"page":     page,
		"limit":    limit,
		"total":    total,
	})
}

// HandleAdminUpdateSession updates a scheduled session. Capacity can only
// grow once bookings hold spots.
func HandleAdminUpdateSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	repo := repository.GetGlobalFactory().GetSessionRepository()
	session, err := repo.GetByID(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(session); err != nil {
		return badRequest(c, "Invalid request body")
	}
	session.ID = id
	if err := session.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	held, err := repository.GetGlobalFactory().GetBookingRepository().CountHeld(id)
	if err != nil {
		return internalError(c, "Failed to check bookings")
	}
	if int64(session.Capacity) < held {
		return jsonError(c, fiber.StatusConflict, "capacity_below_bookings",
			"Capacity cannot drop below the number of held bookings")
	}

	if err := repo.Update(session); err != nil {
		return internalError(c, "Failed to update session")
	}

	invalidateSpotsCache(id)

	return c.JSON(session)
}

// HandleAdminDeleteSession removes a session from the schedule
func HandleAdminDeleteSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	repo := repository.GetGlobalFactory().GetSessionRepository()
	if _, err := repo.GetByID(id); err != nil {
		return handleDomainError(c, err)
	}

	held, err := repository.GetGlobalFactory().GetBookingRepository().CountHeld(id)
	if err != nil {
		return internalError(c, "Failed to check bookings")
	}
	if held > 0 {
		return jsonError(c, fiber.StatusConflict, "session_has_bookings",
			"Session still has held bookings")
	}

	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete session")
	}

	invalidateSpotsCache(id)

	return c.JSON(fiber.Map{"message": "session deleted"})
}
