package academic

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// GetAcademicYearsAPI returns all academic years, newest first
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := database.GetAcademicYears(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve academic years")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    years,
	})
}

// GetAcademicYearAPI returns one academic year with its terms
func GetAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	year, err := database.GetAcademicYearByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve academic year")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    year,
	})
}

func CreateAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if year.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Name is required")
	}
	if year.EndDate.Time.Before(year.StartDate.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must be after start date")
	}

	if err := database.CreateAcademicYear(db, &year); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create academic year: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    year,
	})
}

func UpdateAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	year.ID = c.Params("id")
	if year.EndDate.Time.Before(year.StartDate.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must be after start date")
	}

	if err := database.UpdateAcademicYear(db, &year); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update academic year")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    year,
	})
}

// SetCurrentAcademicYearAPI marks one year as current
func SetCurrentAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SetCurrentAcademicYear(db, c.Params("id")); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Academic year not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to set current academic year")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Current academic year updated",
	})
}

// GetTermsAPI returns terms, filterable by academic year
func GetTermsAPI(c *fiber.Ctx, db *sql.DB) error {
	terms, err := database.GetTerms(db, c.Query("academic_year_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve terms")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    terms,
	})
}

func CreateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var term models.Term
	if err := c.BodyParser(&term); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if term.AcademicYearID == "" || term.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Academic year and name are required")
	}
	if term.EndDate.Time.Before(term.StartDate.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must be after start date")
	}

	if err := database.CreateTerm(db, &term); err != nil {
		return fiber.NewError(fiber.StatusConflict, "Failed to create term: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

func UpdateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var term models.Term
	if err := c.BodyParser(&term); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	term.ID = c.Params("id")
	if term.EndDate.Time.Before(term.StartDate.Time) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must be after start date")
	}

	if err := database.UpdateTerm(db, &term); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Term not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update term")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    term,
	})
}

// SetCurrentTermAPI marks one term as current within its academic year
func SetCurrentTermAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.SetCurrentTerm(db, c.Params("id")); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Term not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to set current term")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Current term updated",
	})
}
