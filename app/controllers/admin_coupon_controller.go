package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/models"
	"github.com/fitclubhq/fitclub/app/repository"
)

// HandleAdminCreateCoupon creates a new coupon. Codes are stored upper-case.
func HandleAdminCreateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := coupon.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	repo := repository.GetGlobalFactory().GetCouponRepository()
	if err := repo.Create(&coupon); err != nil {
		return jsonError(c, fiber.StatusConflict, "code_taken", "A coupon with this code already exists")
	}

	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// HandleAdminListCoupons returns every coupon including inactive ones
func HandleAdminListCoupons(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCouponRepository()
	coupons, err := repo.ListAll()
	if err != nil {
		return internalError(c, "Failed to load coupons")
	}
	return c.JSON(fiber.Map{"coupons": coupons})
}

// HandleAdminUpdateCoupon updates an existing coupon
func HandleAdminUpdateCoupon(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid coupon id")
	}

	repo := repository.GetGlobalFactory().GetCouponRepository()
	coupon, err := repo.GetByID(id)
	if err != nil {
		return handleDomainError(c, err)
	}

	if err := c.BodyParser(coupon); err != nil {
		return badRequest(c, "Invalid request body")
	}
	coupon.ID = id
	if err := coupon.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := repo.Update(coupon); err != nil {
		return internalError(c, "Failed to update coupon")
	}

	return c.JSON(coupon)
}

// HandleAdminDeleteCoupon deletes a coupon. Payments keep the code they
// recorded at purchase time.
func HandleAdminDeleteCoupon(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid coupon id")
	}

	repo := repository.GetGlobalFactory().GetCouponRepository()
	if _, err := repo.GetByID(id); err != nil {
		return handleDomainError(c, err)
	}
	if err := repo.Delete(id); err != nil {
		return internalError(c, "Failed to delete coupon")
	}

	return c.JSON(fiber.Map{"message": "coupon deleted"})
}
