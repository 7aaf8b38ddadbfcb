package fees

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

type FeeTypeRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Code        string  `json:"code" validate:"required,min=2,max=20"`
	Description *string `json:"description"`
	IsRecurring bool    `json:"is_recurring"`
	IsActive    *bool   `json:"is_active"`
}

// GetFeeTypesAPI returns the fee type catalog
func GetFeeTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	includeInactive := c.Query("include_inactive") == "true"

	feeTypes, err := database.GetFeeTypes(db, includeInactive)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee types")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feeTypes,
	})
}

func GetFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeType, err := database.GetFeeTypeByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee type")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feeType,
	})
}

func CreateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req FeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	feeType := &models.FeeType{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		IsRecurring: req.IsRecurring,
		IsActive:    true,
	}
	if err := database.CreateFeeType(db, feeType); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    feeType,
	})
}

func UpdateFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	feeType, err := database.GetFeeTypeByID(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee type")
	}

	var req FeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	feeType.Name = req.Name
	feeType.Code = req.Code
	feeType.Description = req.Description
	feeType.IsRecurring = req.IsRecurring
	if req.IsActive != nil {
		feeType.IsActive = *req.IsActive
	}

	if err := database.UpdateFeeType(db, feeType); err != nil {
		if errors.Is(err, billing.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update fee type")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    feeType,
	})
}

func DeleteFeeTypeAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.DeleteFeeType(db, c.Params("id"))
	if errors.Is(err, billing.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Fee type not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete fee type")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Fee type deleted",
	})
}
