package database

import (
	"database/sql"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// BillingStore adapts the query layer to the invoice engine's interfaces.
type BillingStore struct {
	DB *sql.DB
}

func NewBillingStore(db *sql.DB) *BillingStore {
	return &BillingStore{DB: db}
}

func (s *BillingStore) LineItemsFor(classID, academicYearID string, termID *string) ([]billing.FeeLine, error) {
	return GetFeeLines(s.DB, classID, academicYearID, termID)
}

func (s *BillingStore) SponsorshipFor(studentID string) (*models.Sponsorship, error) {
	return GetSponsorshipByStudent(s.DB, studentID)
}

func (s *BillingStore) CreateInvoice(inv *models.Invoice, items []*models.InvoiceItem) error {
	return CreateInvoice(s.DB, inv, items)
}

func (s *BillingStore) StudentByID(id string) (*models.Student, error) {
	return GetStudentByID(s.DB, id)
}

func (s *BillingStore) StudentsInClass(classID string) ([]*models.Student, error) {
	return GetStudentsByClass(s.DB, classID)
}

// NewInvoiceEngine wires the billing engine onto the database-backed stores.
func NewInvoiceEngine(db *sql.DB) *billing.Engine {
	store := NewBillingStore(db)
	return billing.NewEngine(store, store, store)
}
