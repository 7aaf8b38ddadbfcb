package sponsorships

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

var validate = validator.New()

type SponsorshipRequest struct {
	StudentID         string `json:"student_id" validate:"required,uuid"`
	SponsorshipType   string `json:"sponsorship_type" validate:"required,oneof=none full partial other"`
	SponsorName       string `json:"sponsor_name" validate:"max=255"`
	PercentageCovered *int   `json:"percentage_covered" validate:"omitempty,min=1,max=100"`
	Notes             string `json:"notes"`
}

// GetSponsorshipsAPI lists all sponsorship records
func GetSponsorshipsAPI(c *fiber.Ctx, db *sql.DB) error {
	sponsorships, err := database.GetSponsorships(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sponsorships")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sponsorships,
	})
}

func GetSponsorshipAPI(c *fiber.Ctx, db *sql.DB) error {
	sponsorship, err := database.GetSponsorshipByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Sponsorship not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sponsorship")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sponsorship,
	})
}

// CreateSponsorshipAPI creates or replaces a student's sponsorship. Partial
// sponsorships without a percentage are stored as-is; invoice generation
// treats them as undiscounted and reports a warning.
func CreateSponsorshipAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SponsorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if _, err := database.GetStudentByID(db, req.StudentID); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}

	sponsorship := &models.Sponsorship{
		StudentID:         req.StudentID,
		Type:              models.SponsorshipType(req.SponsorshipType),
		SponsorName:       req.SponsorName,
		PercentageCovered: req.PercentageCovered,
		Notes:             req.Notes,
	}
	if err := database.UpsertSponsorship(db, sponsorship); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save sponsorship")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    sponsorship,
	})
}

func UpdateSponsorshipAPI(c *fiber.Ctx, db *sql.DB) error {
	sponsorship, err := database.GetSponsorshipByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Sponsorship not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch sponsorship")
	}

	var req SponsorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	req.StudentID = sponsorship.StudentID
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sponsorship.Type = models.SponsorshipType(req.SponsorshipType)
	sponsorship.SponsorName = req.SponsorName
	sponsorship.PercentageCovered = req.PercentageCovered
	sponsorship.Notes = req.Notes

	if err := database.UpdateSponsorship(db, sponsorship); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update sponsorship")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    sponsorship,
	})
}

func DeleteSponsorshipAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteSponsorship(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Sponsorship not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete sponsorship")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sponsorship deleted",
	})
}
