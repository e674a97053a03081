package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fitclubhq/fitclub/app/repository"
	"github.com/fitclubhq/fitclub/internal/pkg/usercontext"
)

type purchaseRequest struct {
	PlanID     uint   `json:"plan_id"`
	Method     string `json:"method"`
	CouponCode string `json:"coupon_code"`
}

// HandleListPlans returns the plans currently offered for purchase
func HandleListPlans(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPlanRepository()
	plans, err := repo.ListActive()
	if err != nil {
		return internalError(c, "Failed to load plans")
	}

	return c.JSON(fiber.Map{"plans": plans})
}

// HandlePurchaseMembership buys a plan for the logged-in member. Plan price,
// coupon validation, membership creation and payment recording happen as one
// all-or-nothing unit.
func HandlePurchaseMembership(c *fiber.Ctx) error {
	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil || req.PlanID == 0 {
		return badRequest(c, "plan_id and method are required")
	}

	userID := usercontext.GetUserID(c)
	result, err := purchaseService.Purchase(c.Context(), userID, req.PlanID, req.Method, req.CouponCode)
	if err != nil {
		return handleDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          "membership purchased",
		"membership_id":    result.MembershipID,
		"payment_id":       result.PaymentID,
		"reference":        result.Reference,
		"final_amount":     result.FinalAmount,
		"discount_applied": result.DiscountApplied,
		"coupon_code":      result.CouponCode,
	})
}

// HandleListMyMemberships returns the member's memberships with their
// effective status
func HandleListMyMemberships(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	repo := repository.GetGlobalFactory().GetMembershipRepository()
	memberships, err := repo.ListByUser(userID)
	if err != nil {
		return internalError(c, "Failed to load memberships")
	}

	now := time.Now()
	result := make([]fiber.Map, 0, len(memberships))
	for _, m := range memberships {
		result = append(result, fiber.Map{
			"id":         m.ID,
			"plan":       m.Plan,
			"start_date": m.StartDate,
			"end_date":   m.EndDate,
			"status":     m.EffectiveStatus(now),
			"created_at": m.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"memberships": result})
}
