package billing

import "errors"

// Sentinel errors returned by the billing core. Handlers map these to HTTP
// status codes; batch generation collects them per student.
var (
	ErrNoFeeStructure   = errors.New("no fee structure defined for this class, year and term")
	ErrDuplicateInvoice = errors.New("an invoice already exists for this student, year and term")
	ErrInvalidAmount    = errors.New("payment amount must be greater than zero")
	ErrExceedsAmountDue = errors.New("payment amount exceeds the invoice amount due")
	ErrNotFound         = errors.New("record not found")
)
