package route

import (
	"benerin-admin-service/src/internal/delivery/http"
	"benerin-admin-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                         *fiber.App
	BalanceController           *http.BalanceController
	PayoutController            *http.PayoutController
	PaymentController           *http.PaymentController
	CategoryController          *http.CategoryController
	TechnicianServiceController *http.TechnicianServiceController
	UserController              *http.UserController
	RequestController           *http.RequestController
	AuthMiddleware              fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupAdminRoute()
}

func (c *RouteConfig) SetupAdminRoute() {
	admin := c.App.Group("/admin", c.AuthMiddleware, middleware.RequireAdmin())

	admin.Get("/balances", c.BalanceController.GetRollup)
	admin.Get("/balances/:role/:id", c.BalanceController.GetDetail)

	admin.Get("/payouts", c.PayoutController.GetList)
	admin.Get("/payouts/reconciliation", c.PayoutController.GetReconciliation)
	admin.Get("/payouts/:id", c.PayoutController.GetDetail)
	admin.Post("/payouts/:id/approve", c.PayoutController.PostApprove)
	admin.Post("/payouts/:id/reject", c.PayoutController.PostReject)

	admin.Get("/payments", c.PaymentController.GetList)
	admin.Get("/payments/:id", c.PaymentController.GetDetail)

	admin.Get("/categories", c.CategoryController.GetList)
	admin.Post("/categories", c.CategoryController.PostCreate)
	admin.Put("/categories/:id", c.CategoryController.PutUpdate)
	admin.Delete("/categories/:id", c.CategoryController.Delete)

	admin.Get("/technicians/:id/services", c.TechnicianServiceController.GetList)
	admin.Post("/technicians/:id/services", c.TechnicianServiceController.PostSet)
	admin.Post("/technicians/:id/services/toggle", c.TechnicianServiceController.PostToggle)
	admin.Post("/technicians/:id/services/activate-all", c.TechnicianServiceController.PostActivateAll)
	admin.Post("/technicians/:id/services/deactivate-all", c.TechnicianServiceController.PostDeactivateAll)

	admin.Get("/users", c.UserController.GetList)
	admin.Get("/users/:id", c.UserController.GetDetail)
	admin.Post("/users", c.UserController.PostCreate)
	admin.Put("/users/:id", c.UserController.PutUpdate)
	admin.Delete("/users/:id", c.UserController.Delete)

	admin.Get("/requests", c.RequestController.GetList)
	admin.Get("/requests/:id", c.RequestController.GetDetail)
	admin.Post("/requests/:id/schedule", c.RequestController.PostSchedule)
}
