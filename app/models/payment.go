package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents money received against an invoice. Only payments in
// status completed count toward reconciliation.
type Payment struct {
	ID            string          `json:"id" validate:"required,uuid"`
	InvoiceID     string          `json:"invoice_id" validate:"required,uuid"`
	StudentID     string          `json:"student_id" validate:"required,uuid"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"required,oneof=cash transfer pos online"`
	Status        PaymentStatus   `json:"status" validate:"required,oneof=pending completed failed refunded"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
	PaymentDate   time.Time       `json:"payment_date"`
	ReceivedBy    *string         `json:"received_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	Invoice *Invoice `json:"invoice,omitempty"`
}
