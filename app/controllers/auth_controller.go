package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
	"github.com/fitclubhq/fitclub/internal/pkg/session"
	"github.com/fitclubhq/fitclub/internal/pkg/usercontext"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new member account
func HandleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return badRequest(c, err.Error())
	}
	user.Phone = req.Phone

	repo := repository.GetGlobalFactory().GetUserRepository()
	if _, err := repo.GetByEmail(user.Email); err == nil {
		return jsonError(c, fiber.StatusConflict, "email_taken", "An account with this email already exists")
	}

	if err := repo.Create(user); err != nil {
		return internalError(c, "Failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin authenticates a member and starts a session
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	// notice: in production you should not inform the user
	// with detailed messages about login failures
	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByEmail(req.Email)
	if err != nil {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}

	if !models.CheckPasswordHash(req.Password, user.Password) {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized", "Invalid email or password")
	}

	if !user.IsActive() {
		return jsonError(c, fiber.StatusForbidden, "forbidden", "Account is not active")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return internalError(c, "Failed to start session")
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, user.ID)
	sess.Set(usercontext.KeyUsername, user.Name)
	sess.Set(usercontext.KeyIsAdmin, user.IsAdmin())

	if err := sess.Save(); err != nil {
		return internalError(c, "Failed to start session")
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := repo.Update(user); err != nil {
		return internalError(c, "Failed to update login time")
	}

	return c.JSON(fiber.Map{
		"message": "logged in",
		"user":    user,
	})
}

// HandleLogout destroys the current session
func HandleLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return c.JSON(fiber.Map{"message": "logged out"})
	}

	if err := sess.Destroy(); err != nil {
		return internalError(c, "Failed to end session")
	}

	return c.JSON(fiber.Map{"message": "logged out"})
}

// HandleGetAccount returns account information for the authenticated user
func HandleGetAccount(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByID(userCtx.UserID)
	if err != nil {
		return handleDomainError(c, err)
	}

	return c.JSON(user)
}
