package billing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

type fakeCatalog struct {
	lines map[string][]FeeLine // keyed by class id
	err   error
}

func (f *fakeCatalog) LineItemsFor(classID, academicYearID string, termID *string) ([]FeeLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lines[classID], nil
}

type fakeLedger struct {
	sponsorships map[string]*models.Sponsorship // keyed by student id
	errFor       map[string]error
}

func (f *fakeLedger) SponsorshipFor(studentID string) (*models.Sponsorship, error) {
	if err := f.errFor[studentID]; err != nil {
		return nil, err
	}
	return f.sponsorships[studentID], nil
}

type fakeStore struct {
	students map[string]*models.Student
	byClass  map[string][]*models.Student
	created  []*models.Invoice
	existing map[string]bool // "student|year|term" triples already invoiced
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		students: map[string]*models.Student{},
		byClass:  map[string][]*models.Student{},
		existing: map[string]bool{},
	}
}

func tripleKey(studentID, yearID string, termID *string) string {
	term := ""
	if termID != nil {
		term = *termID
	}
	return fmt.Sprintf("%s|%s|%s", studentID, yearID, term)
}

func (f *fakeStore) CreateInvoice(inv *models.Invoice, items []*models.InvoiceItem) error {
	key := tripleKey(inv.StudentID, inv.AcademicYearID, inv.TermID)
	if f.existing[key] {
		return ErrDuplicateInvoice
	}
	f.existing[key] = true
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeStore) StudentByID(id string) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) StudentsInClass(classID string) ([]*models.Student, error) {
	return f.byClass[classID], nil
}

func strPtr(s string) *string { return &s }

func addStudent(store *fakeStore, id, classID string) *models.Student {
	s := &models.Student{
		ID:        id,
		FirstName: "Student",
		LastName:  id,
		StudentNo: "STU-" + id,
		ClassID:   strPtr(classID),
		IsActive:  true,
	}
	store.students[id] = s
	store.byClass[classID] = append(store.byClass[classID], s)
	return s
}

// Tuition 500 + Exam 50 for the class the engine bills against.
func standardCatalog(classID string) *fakeCatalog {
	return &fakeCatalog{lines: map[string][]FeeLine{
		classID: {
			{FeeTypeID: "ft-tuition", FeeTypeName: "Tuition", Amount: decimal.RequireFromString("500")},
			{FeeTypeID: "ft-exam", FeeTypeName: "Exam", Amount: decimal.RequireFromString("50")},
		},
	}}
}

func TestGenerateInvoiceNoSponsorship(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, store)

	res, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	require.NoError(t, err)

	inv := res.Invoice
	assert.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("550")))
	assert.True(t, inv.AmountDue.Equal(decimal.RequireFromString("550")))
	assert.Equal(t, models.InvoiceUnpaid, inv.Status)
	assert.Len(t, inv.Items, 2)
	assert.Empty(t, res.Warnings)

	// Items keep the fee type reference for auditing
	assert.Equal(t, "ft-tuition", inv.Items[0].FeeTypeID)
	assert.Equal(t, "ft-exam", inv.Items[1].FeeTypeID)
}

func TestGenerateInvoicePartialSponsorship(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	ledger := &fakeLedger{sponsorships: map[string]*models.Sponsorship{
		"s1": {Type: models.SponsorshipPartial, PercentageCovered: intPtr(50)},
	}}
	eng := NewEngine(standardCatalog("c1"), ledger, store)

	res, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	require.NoError(t, err)

	assert.True(t, res.Invoice.TotalAmount.Equal(decimal.RequireFromString("275")))
	assert.Equal(t, models.InvoiceUnpaid, res.Invoice.Status)
}

func TestGenerateInvoiceFullSponsorship(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	ledger := &fakeLedger{sponsorships: map[string]*models.Sponsorship{
		"s1": {Type: models.SponsorshipFull},
	}}
	eng := NewEngine(standardCatalog("c1"), ledger, store)

	res, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	require.NoError(t, err)

	// Fully sponsored students get a settled zero invoice, not no invoice
	assert.True(t, res.Invoice.TotalAmount.IsZero())
	assert.True(t, res.Invoice.AmountDue.IsZero())
	assert.Equal(t, models.InvoicePaid, res.Invoice.Status)
	assert.Len(t, res.Invoice.Items, 2)
}

func TestGenerateInvoicePartialSponsorshipWithoutPercentage(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	ledger := &fakeLedger{sponsorships: map[string]*models.Sponsorship{
		"s1": {Type: models.SponsorshipPartial},
	}}
	eng := NewEngine(standardCatalog("c1"), ledger, store)

	res, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	require.NoError(t, err)

	// Billed in full, but the malformed record is reported
	assert.True(t, res.Invoice.TotalAmount.Equal(decimal.RequireFromString("550")))
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "no percentage")
}

func TestGenerateInvoiceNoFeeStructure(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	eng := NewEngine(&fakeCatalog{lines: map[string][]FeeLine{}}, &fakeLedger{}, store)

	_, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	assert.ErrorIs(t, err, ErrNoFeeStructure)
	assert.Empty(t, store.created)
}

func TestGenerateInvoiceDuplicate(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, store)

	_, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	require.NoError(t, err)

	_, err = eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	assert.ErrorIs(t, err, ErrDuplicateInvoice)

	// Same student, different term is fine
	_, err = eng.GenerateInvoice("s1", "y1", strPtr("t2"))
	assert.NoError(t, err)
}

func TestGenerateInvoiceUnknownStudent(t *testing.T) {
	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, newFakeStore())

	_, err := eng.GenerateInvoice("missing", "y1", strPtr("t1"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateInvoiceStudentWithoutClass(t *testing.T) {
	store := newFakeStore()
	store.students["s1"] = &models.Student{ID: "s1", StudentNo: "STU-s1"}
	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, store)

	_, err := eng.GenerateInvoice("s1", "y1", strPtr("t1"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not assigned to a class")
}

func TestGenerateBatchSkipsExisting(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	addStudent(store, "s2", "c1")
	addStudent(store, "s3", "c1")
	store.existing[tripleKey("s2", "y1", strPtr("t1"))] = true

	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, store)
	res, err := eng.GenerateBatch("c1", "y1", strPtr("t1"), BatchOptions{SkipExisting: true, ApplyDiscount: true})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 1, res.Skipped)
	assert.Empty(t, res.Errors)
}

func TestGenerateBatchDuplicateIsErrorWithoutSkip(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	store.existing[tripleKey("s1", "y1", strPtr("t1"))] = true

	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, store)
	res, err := eng.GenerateBatch("c1", "y1", strPtr("t1"), BatchOptions{SkipExisting: false, ApplyDiscount: true})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "s1", res.Errors[0].StudentID)
}

func TestGenerateBatchIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	addStudent(store, "s2", "c1")
	addStudent(store, "s3", "c1")

	// s2's sponsorship lookup blows up; the rest of the roster still bills
	ledger := &fakeLedger{errFor: map[string]error{"s2": errors.New("ledger unavailable")}}
	eng := NewEngine(standardCatalog("c1"), ledger, store)

	res, err := eng.GenerateBatch("c1", "y1", strPtr("t1"), BatchOptions{ApplyDiscount: true})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "s2", res.Errors[0].StudentID)
	assert.Contains(t, res.Errors[0].Reason, "ledger unavailable")
}

func TestGenerateBatchWithoutDiscount(t *testing.T) {
	store := newFakeStore()
	addStudent(store, "s1", "c1")
	ledger := &fakeLedger{sponsorships: map[string]*models.Sponsorship{
		"s1": {Type: models.SponsorshipFull},
	}}
	eng := NewEngine(standardCatalog("c1"), ledger, store)

	res, err := eng.GenerateBatch("c1", "y1", strPtr("t1"), BatchOptions{ApplyDiscount: false})
	require.NoError(t, err)
	require.Equal(t, 1, res.Created)

	// Sponsorship ignored: billed the full catalog amount
	assert.True(t, store.created[0].TotalAmount.Equal(decimal.RequireFromString("550")))
}

func TestGenerateBatchEmptyClass(t *testing.T) {
	eng := NewEngine(standardCatalog("c1"), &fakeLedger{}, newFakeStore())

	res, err := eng.GenerateBatch("empty", "y1", strPtr("t1"), BatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 0, res.Skipped)
	assert.Empty(t, res.Errors)
}
