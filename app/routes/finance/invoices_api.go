package finance

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
)

var validate = validator.New()

// billingError maps billing sentinels onto HTTP statuses. Anything unmapped
// comes back as a 500.
func billingError(err error, fallback string) *fiber.Error {
	switch {
	case errors.Is(err, billing.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Record not found")
	case errors.Is(err, billing.ErrDuplicateInvoice):
		return fiber.NewError(fiber.StatusConflict, "An invoice already exists for this student, year and term")
	case errors.Is(err, billing.ErrNoFeeStructure):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "No fee structure defined for this class, year and term")
	case errors.Is(err, billing.ErrInvalidAmount):
		return fiber.NewError(fiber.StatusBadRequest, "Payment amount must be greater than zero")
	case errors.Is(err, billing.ErrExceedsAmountDue):
		return fiber.NewError(fiber.StatusBadRequest, "Payment amount exceeds the invoice amount due")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}

type GenerateInvoiceRequest struct {
	StudentID      string  `json:"student_id" validate:"required,uuid"`
	AcademicYearID string  `json:"academic_year_id" validate:"required,uuid"`
	TermID         *string `json:"term_id" validate:"omitempty,uuid"`
}

type GenerateBatchRequest struct {
	ClassID        string  `json:"class_id" validate:"required,uuid"`
	AcademicYearID string  `json:"academic_year_id" validate:"required,uuid"`
	TermID         *string `json:"term_id" validate:"omitempty,uuid"`
	SkipExisting   bool    `json:"skip_existing"`
	ApplyDiscount  *bool   `json:"apply_discount"`
}

// GenerateInvoiceAPI creates the invoice for one student for an explicit
// academic year and term
func GenerateInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req GenerateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	engine := database.NewInvoiceEngine(db)
	result, err := engine.GenerateInvoice(req.StudentID, req.AcademicYearID, req.TermID)
	if err != nil {
		return billingError(err, "Failed to generate invoice")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"data":     result.Invoice,
		"warnings": result.Warnings,
	})
}

// GenerateBatchAPI creates invoices for every active student in a class.
// Per-student failures are reported, not fatal.
func GenerateBatchAPI(c *fiber.Ctx, db *sql.DB) error {
	var req GenerateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	opts := billing.BatchOptions{
		SkipExisting:  req.SkipExisting,
		ApplyDiscount: true,
	}
	if req.ApplyDiscount != nil {
		opts.ApplyDiscount = *req.ApplyDiscount
	}

	engine := database.NewInvoiceEngine(db)
	result, err := engine.GenerateBatch(req.ClassID, req.AcademicYearID, req.TermID, opts)
	if err != nil {
		return billingError(err, "Failed to generate invoices")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetInvoicesAPI lists invoices with optional filters
func GetInvoicesAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.InvoiceFilters{
		StudentID:      c.Query("student_id"),
		ClassID:        c.Query("class_id"),
		AcademicYearID: c.Query("academic_year_id"),
		TermID:         c.Query("term_id"),
		Status:         c.Query("status"),
		Limit:          c.QueryInt("limit", 50),
		Offset:         c.QueryInt("offset", 0),
	}

	invoices, err := database.GetInvoices(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch invoices")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoices,
	})
}

func GetInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	invoice, err := database.GetInvoiceByID(db, c.Params("id"))
	if err != nil {
		return billingError(err, "Failed to fetch invoice")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    invoice,
	})
}

// DeleteInvoiceAPI removes an invoice with its items and payments. Invoices
// are immutable snapshots, so corrections are delete-and-regenerate.
func DeleteInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeleteInvoice(db, c.Params("id")); err != nil {
		return billingError(err, "Failed to delete invoice")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Invoice deleted",
	})
}

// ReconcileInvoiceAPI recomputes an invoice's derived state from its payments
func ReconcileInvoiceAPI(c *fiber.Ctx, db *sql.DB) error {
	result, err := database.ReconcileInvoice(db, c.Params("id"))
	if err != nil {
		return billingError(err, "Failed to reconcile invoice")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_paid": result.TotalPaid,
			"amount_due": result.AmountDue,
			"status":     result.Status,
		},
	})
}
