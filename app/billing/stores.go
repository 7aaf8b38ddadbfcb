package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// FeeLine is one (fee type, amount) charge from the catalog, before any
// sponsorship discount.
type FeeLine struct {
	FeeTypeID   string
	FeeTypeName string
	Amount      decimal.Decimal
}

// FeeCatalog resolves the fee lines defined for a class in a given academic
// year and term. An empty result means no fee structure exists; the engine
// never fabricates a zero invoice from it.
type FeeCatalog interface {
	LineItemsFor(classID, academicYearID string, termID *string) ([]FeeLine, error)
}

// SponsorshipLedger looks up a student's scholarship record. A nil
// sponsorship means full, undiscounted billing.
type SponsorshipLedger interface {
	SponsorshipFor(studentID string) (*models.Sponsorship, error)
}

// InvoiceStore persists invoices and resolves the students the engine bills.
// CreateInvoice must write the invoice and its items atomically and return
// ErrDuplicateInvoice when the (student, year, term) triple already exists.
type InvoiceStore interface {
	CreateInvoice(inv *models.Invoice, items []*models.InvoiceItem) error
	StudentByID(id string) (*models.Student, error)
	StudentsInClass(classID string) ([]*models.Student, error)
}
