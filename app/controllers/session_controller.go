package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
	"github.com/fitclubhq/fitclub/internal/pkg/cache"
)

const spotsCacheTTL = 30 * time.Second

func spotsCacheKey(sessionID uint) string {
	return fmt.Sprintf("session:spots:%d", sessionID)
}

// availableSpots returns the session's free spots, cached briefly to keep the
// schedule listing cheap. Booking mutations invalidate the key.
func availableSpots(c *fiber.Ctx, sessionID uint) (int, error) {
	if spots, err := cache.GetInt(spotsCacheKey(sessionID)); err == nil {
		return spots, nil
	}

	spots, err := bookingService.AvailableSpots(c.Context(), sessionID)
	if err != nil {
		return 0, err
	}

	cache.Set(spotsCacheKey(sessionID), spots, spotsCacheTTL)
	return spots, nil
}

func invalidateSpotsCache(sessionID uint) {
	cache.Delete(spotsCacheKey(sessionID))
}

// HandleListSessions returns upcoming sessions with their remaining spots
func HandleListSessions(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSessionRepository()
	sessions, err := repo.ListUpcoming(time.Now())
	if err != nil {
		return internalError(c, "Failed to load sessions")
	}

	result := make([]fiber.Map, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, sessionJSON(s.Session, s.AvailableSpots))
	}

	return c.JSON(fiber.Map{"sessions": result})
}

// HandleGetSession returns one session with its remaining spots
func HandleGetSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session id")
	}

	repo := repository.GetGlobalFactory().GetSessionRepository()
	session, err := repo.GetByID(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	spots, err := availableSpots(c, session.ID)
	if err != nil {
		return handleDomainError(c, err)
	}

	return c.JSON(sessionJSON(*session, spots))
}

func sessionJSON(s models.Session, spots int) fiber.Map {
	return fiber.Map{
		"id":              s.ID,
		"name":            s.Name,
		"description":     s.Description,
		"branch":          s.Branch,
		"studio":          s.Studio,
		"activity_type":   s.ActivityType,
		"instructor":      s.Instructor,
		"start_time":      s.StartTime,
		"end_time":        s.EndTime,
		"capacity":        s.Capacity,
		"available_spots": spots,
	}
}
