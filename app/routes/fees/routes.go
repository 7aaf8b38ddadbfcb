package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

// SetupFeesRoutes sets up the fee catalog routes
func SetupFeesRoutes(app *fiber.App) {
	feeTypesAPI := app.Group("/api/fee-types")
	feeTypesAPI.Use(auth.AuthMiddleware)

	feeTypesAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeTypesAPI(c, config.GetDB())
	})

	feeTypesAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetFeeTypeAPI(c, config.GetDB())
	})

	feeTypesAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeTypeAPI(c, config.GetDB())
	})

	feeTypesAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeTypeAPI(c, config.GetDB())
	})

	feeTypesAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeTypeAPI(c, config.GetDB())
	})

	feeStructuresAPI := app.Group("/api/fee-structures")
	feeStructuresAPI.Use(auth.AuthMiddleware)

	feeStructuresAPI.Get("/", func(c *fiber.Ctx) error {
		return GetFeeStructuresAPI(c, config.GetDB())
	})

	feeStructuresAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeStructureAPI(c, config.GetDB())
	})

	feeStructuresAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateFeeStructureAPI(c, config.GetDB())
	})

	feeStructuresAPI.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeStructureAPI(c, config.GetDB())
	})
}
