package classes

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func GetClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetActiveClasses(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    classes,
		"count":   len(classes),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}

	students, err := database.GetStudentsByClass(config.GetDB(), class.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class roster")
	}
	class.Students = students
	class.StudentCount = len(students)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	class.Name = strings.TrimSpace(class.Name)
	class.Code = strings.TrimSpace(class.Code)
	if class.Name == "" || class.Code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name and code are required")
	}

	if err := database.CreateClass(config.GetDB(), &class); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create class: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	class.ID = c.Params("id")

	if err := database.UpdateClass(config.GetDB(), &class); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    class,
	})
}
