package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/repository"
	"github.com/fitclubhq/fitclub/internal/pkg/coupon"
)

// HandleListCoupons returns active coupons currently inside their validity
// window
func HandleListCoupons(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetCouponRepository()
	coupons, err := repo.ListCurrent(time.Now())
	if err != nil {
		return internalError(c, "Failed to load coupons")
	}

	return c.JSON(fiber.Map{"coupons": coupons})
}

// HandleValidateCoupon checks a coupon code without purchasing anything.
// With a plan_id query parameter the response also previews the discount
// against that plan's price.
func HandleValidateCoupon(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return badRequest(c, "code is required")
	}

	validated, err := couponEngine.Validate(code, time.Now())
	if err != nil {
		return handleDomainError(c, err)
	}

	response := fiber.Map{
		"valid":          true,
		"code":           validated.Code,
		"discount_type":  validated.DiscountType,
		"discount_value": validated.DiscountValue,
	}

	if planParam := c.Query("plan_id"); planParam != "" {
		planID, err := strconv.ParseUint(planParam, 10, 32)
		if err != nil || planID == 0 {
			return badRequest(c, "Invalid plan_id")
		}

		planRepo := repository.GetGlobalFactory().GetPlanRepository()
		plan, err := planRepo.GetByID(uint(planID))
		if err != nil {
			return handleDomainError(c, err)
		}

		discount := coupon.Discount(validated, plan.Price)
		response["price"] = plan.Price
		response["discount"] = discount
		response["final_price"] = plan.Price.Sub(discount)
	}

	return c.JSON(response)
}
