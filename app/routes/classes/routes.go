package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Post("/", CreateClassAPI)
	api.Put("/:id", UpdateClassAPI)
}
