package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeStructure maps (fee type, class, academic year, term) to a billable
// amount. TermID is nil for year-level fees. Rows are staff-managed and
// read-only to the invoice engine.
type FeeStructure struct {
	ID             string          `json:"id" validate:"required,uuid"`
	FeeTypeID      string          `json:"fee_type_id" validate:"required,uuid"`
	ClassID        string          `json:"class_id" validate:"required,uuid"`
	AcademicYearID string          `json:"academic_year_id" validate:"required,uuid"`
	TermID         *string         `json:"term_id,omitempty" validate:"omitempty,uuid"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	FeeType      *FeeType      `json:"fee_type,omitempty"`
	Class        *Class        `json:"class,omitempty"`
	AcademicYear *AcademicYear `json:"academic_year,omitempty"`
	Term         *Term         `json:"term,omitempty"`
}
