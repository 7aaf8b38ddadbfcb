package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
}
