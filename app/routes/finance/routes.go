package finance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

// SetupFinanceRoutes sets up the invoice, payment and reporting routes
func SetupFinanceRoutes(app *fiber.App) {
	invoicesAPI := app.Group("/api/invoices")
	invoicesAPI.Use(auth.AuthMiddleware)

	invoicesAPI.Post("/generate", func(c *fiber.Ctx) error {
		return GenerateInvoiceAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/generate-batch", func(c *fiber.Ctx) error {
		return GenerateBatchAPI(c, config.GetDB())
	})

	invoicesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetInvoicesAPI(c, config.GetDB())
	})

	invoicesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetInvoiceAPI(c, config.GetDB())
	})

	invoicesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteInvoiceAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/:id/reconcile", func(c *fiber.Ctx) error {
		return ReconcileInvoiceAPI(c, config.GetDB())
	})

	invoicesAPI.Post("/:id/payments", func(c *fiber.Ctx) error {
		return RecordPaymentAPI(c, config.GetDB())
	})

	paymentsAPI := app.Group("/api/payments")
	paymentsAPI.Use(auth.AuthMiddleware)

	paymentsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetPaymentAPI(c, config.GetDB())
	})

	paymentsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdatePaymentAPI(c, config.GetDB())
	})

	paymentsAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeletePaymentAPI(c, config.GetDB())
	})

	financeAPI := app.Group("/api/finance")
	financeAPI.Use(auth.AuthMiddleware)

	financeAPI.Get("/dashboard", func(c *fiber.Ctx) error {
		return GetDashboardAPI(c, config.GetDB())
	})

	financeAPI.Get("/reports", func(c *fiber.Ctx) error {
		return GetReportAPI(c, config.GetDB())
	})
}
