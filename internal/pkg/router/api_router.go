package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/fitclubhq/fitclub/app/controllers"
	"github.com/fitclubhq/fitclub/internal/pkg/middleware"
	"github.com/fitclubhq/fitclub/internal/pkg/session"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// init session store before the user context middleware reads it
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize domain services with the shared DB handle
	controllers.InitializeControllers()

	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// public routes
	auth := v1.Group("/auth")
	auth.Post("/register", controllers.HandleRegister)
	auth.Post("/login", controllers.HandleLogin)
	auth.Post("/logout", controllers.HandleLogout)

	v1.Get("/sessions", controllers.HandleListSessions)
	v1.Get("/sessions/:id", controllers.HandleGetSession)
	v1.Get("/plans", controllers.HandleListPlans)
	v1.Get("/coupons", controllers.HandleListCoupons)
	v1.Get("/coupons/validate", controllers.HandleValidateCoupon)

	// member routes
	member := v1.Group("", middleware.RequireAuth)
	member.Get("/me", controllers.HandleGetAccount)
	member.Post("/bookings", controllers.HandleCreateBooking)
	member.Get("/bookings", controllers.HandleListMyBookings)
	member.Delete("/bookings/:id", controllers.HandleCancelBooking)
	member.Post("/checkins", controllers.HandleCheckIn)
	member.Post("/memberships/purchase", controllers.HandlePurchaseMembership)
	member.Get("/memberships", controllers.HandleListMyMemberships)
	member.Get("/payments", controllers.HandleListMyPayments)

	// admin routes
	admin := v1.Group("/admin", middleware.RequireAdmin)
	admin.Get("/users", controllers.HandleAdminListUsers)

	admin.Post("/branches", controllers.HandleAdminCreateBranch)
	admin.Get("/branches", controllers.HandleAdminListBranches)
	admin.Put("/branches/:id", controllers.HandleAdminUpdateBranch)
	admin.Delete("/branches/:id", controllers.HandleAdminDeleteBranch)

	admin.Post("/studios", controllers.HandleAdminCreateStudio)
	admin.Get("/studios", controllers.HandleAdminListStudios)
	admin.Put("/studios/:id", controllers.HandleAdminUpdateStudio)
	admin.Delete("/studios/:id", controllers.HandleAdminDeleteStudio)

	admin.Post("/activity-types", controllers.HandleAdminCreateActivityType)
	admin.Get("/activity-types", controllers.HandleAdminListActivityTypes)
	admin.Put("/activity-types/:id", controllers.HandleAdminUpdateActivityType)
	admin.Delete("/activity-types/:id", controllers.HandleAdminDeleteActivityType)

	admin.Post("/sessions", controllers.HandleAdminCreateSession)
	admin.Get("/sessions", controllers.HandleAdminListSessions)
	admin.Put("/sessions/:id", controllers.HandleAdminUpdateSession)
	admin.Delete("/sessions/:id", controllers.HandleAdminDeleteSession)

	admin.Post("/plans", controllers.HandleAdminCreatePlan)
	admin.Get("/plans", controllers.HandleAdminListPlans)
	admin.Put("/plans/:id", controllers.HandleAdminUpdatePlan)
	admin.Delete("/plans/:id", controllers.HandleAdminDeletePlan)

	admin.Post("/coupons", controllers.HandleAdminCreateCoupon)
	admin.Get("/coupons", controllers.HandleAdminListCoupons)
	admin.Put("/coupons/:id", controllers.HandleAdminUpdateCoupon)
	admin.Delete("/coupons/:id", controllers.HandleAdminDeleteCoupon)

	admin.Get("/reports/revenue", controllers.HandleAdminRevenueReport)
	admin.Get("/reports/popular-sessions", controllers.HandleAdminPopularityReport)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
