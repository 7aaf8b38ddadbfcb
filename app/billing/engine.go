package billing

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// Engine materializes invoices from the fee catalog and sponsorship ledger.
// The year and term are always explicit parameters; the engine never resolves
// "current" entities itself.
type Engine struct {
	catalog      FeeCatalog
	sponsorships SponsorshipLedger
	store        InvoiceStore
}

func NewEngine(catalog FeeCatalog, sponsorships SponsorshipLedger, store InvoiceStore) *Engine {
	return &Engine{catalog: catalog, sponsorships: sponsorships, store: store}
}

// GenerateResult is a created invoice plus any non-fatal warnings raised
// while computing its discount.
type GenerateResult struct {
	Invoice  *models.Invoice
	Warnings []string
}

// BatchOptions controls class-wide invoice generation.
type BatchOptions struct {
	// SkipExisting counts students who already have an invoice for the
	// year/term as skipped instead of failed.
	SkipExisting bool
	// ApplyDiscount toggles sponsorship discounts; when false every student
	// is billed the full catalog amount.
	ApplyDiscount bool
}

// BatchError records one student's failure inside a batch run.
type BatchError struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Reason      string `json:"reason"`
}

// BatchResult summarizes a batch generation run.
type BatchResult struct {
	Created  int          `json:"created"`
	Skipped  int          `json:"skipped"`
	Errors   []BatchError `json:"errors"`
	Warnings []string     `json:"warnings,omitempty"`
}

// GenerateInvoice creates the invoice for one student for an explicit
// academic year and term. It fails with ErrNoFeeStructure when the catalog
// has no rows for the student's class, and with ErrDuplicateInvoice when the
// (student, year, term) invoice already exists.
func (e *Engine) GenerateInvoice(studentID, academicYearID string, termID *string) (*GenerateResult, error) {
	student, err := e.store.StudentByID(studentID)
	if err != nil {
		return nil, err
	}
	return e.generateFor(student, academicYearID, termID, true)
}

// GenerateBatch issues invoices for every active student in the class,
// sequentially, isolating per-student failures. No transaction spans more
// than one student.
func (e *Engine) GenerateBatch(classID, academicYearID string, termID *string, opts BatchOptions) (*BatchResult, error) {
	students, err := e.store.StudentsInClass(classID)
	if err != nil {
		return nil, err
	}

	result := &BatchResult{Errors: []BatchError{}}
	for _, student := range students {
		res, err := e.generateFor(student, academicYearID, termID, opts.ApplyDiscount)
		switch {
		case err == nil:
			result.Created++
			for _, w := range res.Warnings {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", student.FullName(), w))
			}
		case errors.Is(err, ErrDuplicateInvoice) && opts.SkipExisting:
			result.Skipped++
		default:
			result.Errors = append(result.Errors, BatchError{
				StudentID:   student.ID,
				StudentName: student.FullName(),
				Reason:      err.Error(),
			})
		}
	}
	return result, nil
}

func (e *Engine) generateFor(student *models.Student, academicYearID string, termID *string, applyDiscount bool) (*GenerateResult, error) {
	if student.ClassID == nil {
		return nil, fmt.Errorf("student %s is not assigned to a class", student.StudentNo)
	}

	lines, err := e.catalog.LineItemsFor(*student.ClassID, academicYearID, termID)
	if err != nil {
		return nil, fmt.Errorf("fee catalog lookup: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrNoFeeStructure
	}

	rate := decimal.Zero
	var warnings []string
	if applyDiscount {
		sponsorship, err := e.sponsorships.SponsorshipFor(student.ID)
		if err != nil {
			return nil, fmt.Errorf("sponsorship lookup: %w", err)
		}
		var warning string
		rate, warning = DiscountRate(sponsorship)
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	invoiceID := uuid.NewString()
	total := decimal.Zero
	items := make([]*models.InvoiceItem, 0, len(lines))
	for _, line := range lines {
		amount := ApplyDiscount(line.Amount, rate)
		total = total.Add(amount)
		items = append(items, &models.InvoiceItem{
			ID:        uuid.NewString(),
			InvoiceID: invoiceID,
			FeeTypeID: line.FeeTypeID,
			Amount:    amount,
		})
	}

	status := models.InvoiceUnpaid
	if total.IsZero() {
		status = models.InvoicePaid
	}

	invoice := &models.Invoice{
		ID:             invoiceID,
		StudentID:      student.ID,
		AcademicYearID: academicYearID,
		TermID:         termID,
		TotalAmount:    total,
		AmountDue:      total,
		Status:         status,
		Items:          items,
	}

	if err := e.store.CreateInvoice(invoice, items); err != nil {
		return nil, err
	}
	return &GenerateResult{Invoice: invoice, Warnings: warnings}, nil
}
