package finance

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/database"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

type PaymentRequest struct {
	AmountPaid    string `json:"amount_paid" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash transfer pos online"`
	Status        string `json:"status" validate:"omitempty,oneof=pending completed failed refunded"`
	Reference     string `json:"reference" validate:"max=100"`
	Notes         string `json:"notes"`
	PaymentDate   string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
}

// RecordPaymentAPI records a payment against an invoice and reconciles it in
// the same transaction
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.AmountPaid)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount_paid must be a number")
	}

	payment := &models.Payment{
		InvoiceID:     c.Params("id"),
		AmountPaid:    amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Status:        models.PaymentStatus(req.Status),
		Reference:     req.Reference,
		Notes:         req.Notes,
	}
	if req.PaymentDate != "" {
		payment.PaymentDate, _ = time.Parse("2006-01-02", req.PaymentDate)
	}
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		payment.ReceivedBy = &userID
	}

	if err := database.RecordPayment(db, payment); err != nil {
		return billingError(err, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

func GetPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	payment, err := database.GetPaymentByID(db, c.Params("id"))
	if err != nil {
		return billingError(err, "Failed to fetch payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// UpdatePaymentAPI edits a payment and re-reconciles its invoice
func UpdatePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	amount, err := decimal.NewFromString(req.AmountPaid)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "amount_paid must be a number")
	}

	status := models.PaymentStatus(req.Status)
	if status == "" {
		status = models.PaymentCompleted
	}

	payment := &models.Payment{
		ID:            c.Params("id"),
		AmountPaid:    amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Status:        status,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}

	if err := database.UpdatePayment(db, payment); err != nil {
		return billingError(err, "Failed to update payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// DeletePaymentAPI removes a payment; the amount flows back into the
// invoice's balance due
func DeletePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := database.DeletePayment(db, c.Params("id")); err != nil {
		return billingError(err, "Failed to delete payment")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment deleted",
	})
}
