package academic

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

// SetupAcademicRoutes sets up the academic year and term routes
func SetupAcademicRoutes(app *fiber.App) {
	yearsAPI := app.Group("/api/academic-years")
	yearsAPI.Use(auth.AuthMiddleware)

	yearsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetAcademicYearsAPI(c, config.GetDB())
	})

	yearsAPI.Get("/:id", func(c *fiber.Ctx) error {
		return GetAcademicYearAPI(c, config.GetDB())
	})

	yearsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateAcademicYearAPI(c, config.GetDB())
	})

	yearsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateAcademicYearAPI(c, config.GetDB())
	})

	yearsAPI.Post("/:id/set-current", func(c *fiber.Ctx) error {
		return SetCurrentAcademicYearAPI(c, config.GetDB())
	})

	termsAPI := app.Group("/api/terms")
	termsAPI.Use(auth.AuthMiddleware)

	termsAPI.Get("/", func(c *fiber.Ctx) error {
		return GetTermsAPI(c, config.GetDB())
	})

	termsAPI.Post("/", func(c *fiber.Ctx) error {
		return CreateTermAPI(c, config.GetDB())
	})

	termsAPI.Put("/:id", func(c *fiber.Ctx) error {
		return UpdateTermAPI(c, config.GetDB())
	})

	termsAPI.Post("/:id/set-current", func(c *fiber.Ctx) error {
		return SetCurrentTermAPI(c, config.GetDB())
	})
}
