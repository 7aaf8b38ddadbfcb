package fees

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

type FeeStructureRequest struct {
	FeeTypeID      string  `json:"fee_type_id" validate:"required,uuid"`
	ClassID        string  `json:"class_id" validate:"required,uuid"`
	AcademicYearID string  `json:"academic_year_id" validate:"required,uuid"`
	TermID         *string `json:"term_id" validate:"omitempty,uuid"`
	Amount         string  `json:"amount" validate:"required"`
}

// GetFeeStructuresAPI lists catalog rows, filterable by class, year and term
func GetFeeStructuresAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.FeeStructureFilters{
		ClassID:        c.Query("class_id"),
		AcademicYearID: c.Query("academic_year_id"),
		TermID:         c.Query("term_id"),
	}

	structures, err := database.GetFeeStructures(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee structures")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    structures,
	})
}

func CreateFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}

	fs := &models.FeeStructure{
		FeeTypeID:      req.FeeTypeID,
		ClassID:        req.ClassID,
		AcademicYearID: req.AcademicYearID,
		TermID:         req.TermID,
		Amount:         amount,
	}
	if err := database.CreateFeeStructure(db, fs); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fs,
	})
}

// UpdateFeeStructureAPI changes a catalog amount. Already-generated invoices
// keep their snapshot amounts.
func UpdateFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	type updateRequest struct {
		Amount string `json:"amount" validate:"required"`
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount must be a non-negative number")
	}

	fs := &models.FeeStructure{ID: c.Params("id"), Amount: amount}
	if err := database.UpdateFeeStructure(db, fs); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee structure")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fs,
	})
}

func DeleteFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteFeeStructure(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Fee structure not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee structure")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee structure deleted",
	})
}
