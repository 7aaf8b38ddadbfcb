package sponsorships

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

// SetupSponsorshipRoutes sets up the sponsorship ledger routes
func SetupSponsorshipRoutes(app *fiber.App) {
	api := app.Group("/api/sponsorships")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetSponsorshipsAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetSponsorshipAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateSponsorshipAPI(c, config.GetDB())
	})

	api.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateSponsorshipAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteSponsorshipAPI(c, config.GetDB())
	})
}
