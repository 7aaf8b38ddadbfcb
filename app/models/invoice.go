package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the billing record for one student for one (academic year,
// term). AmountDue and Status are derived state: they are rewritten only by
// reconciliation, never adjusted in place.
type Invoice struct {
	ID             string          `json:"id" validate:"required,uuid"`
	StudentID      string          `json:"student_id" validate:"required,uuid"`
	AcademicYearID string          `json:"academic_year_id" validate:"required,uuid"`
	TermID         *string         `json:"term_id,omitempty" validate:"omitempty,uuid"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	Status         InvoiceStatus   `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Student      *Student       `json:"student,omitempty"`
	AcademicYear *AcademicYear  `json:"academic_year,omitempty"`
	Term         *Term          `json:"term,omitempty"`
	Items        []*InvoiceItem `json:"items,omitempty"`
	Payments     []*Payment     `json:"payments,omitempty"`
}

// InvoiceItem is one discounted fee line on an invoice. Items are immutable
// after creation; the fee type reference traces back to the catalog row.
type InvoiceItem struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	FeeTypeID string          `json:"fee_type_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	FeeType   *FeeType        `json:"fee_type,omitempty"`
}
