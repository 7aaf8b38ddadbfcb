package students

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/config"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		ClassID: c.Query("class_id"),
		Search:  strings.ToLower(strings.TrimSpace(c.Query("search"))),
		Limit:   c.QueryInt("limit", 0),
		Offset:  c.QueryInt("offset", 0),
	}

	students, err := database.GetStudents(config.GetDB(), filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

// GetStudentByIDAPI returns one student with class, sponsorship and invoices
func GetStudentByIDAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	invoices, err := database.GetInvoices(db, database.InvoiceFilters{StudentID: student.ID})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student invoices")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"data":     student,
		"invoices": invoices,
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	student.FirstName = strings.TrimSpace(student.FirstName)
	student.LastName = strings.TrimSpace(student.LastName)
	student.StudentNo = strings.TrimSpace(student.StudentNo)
	if student.FirstName == "" || student.LastName == "" || student.StudentNo == "" {
		return fiber.NewError(fiber.StatusBadRequest, "First name, last name and student number are required")
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create student: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	student, err := database.GetStudentByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	var req models.Student
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.FirstName != "" {
		student.FirstName = req.FirstName
	}
	if req.LastName != "" {
		student.LastName = req.LastName
	}
	if req.StudentNo != "" {
		student.StudentNo = req.StudentNo
	}
	if req.ClassID != nil {
		student.ClassID = req.ClassID
	}

	if err := database.UpdateStudent(db, student); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}
