package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func TestRecordPayment(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT student_id, total_amount, amount_due FROM invoices WHERE id = \$1 FOR UPDATE`).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "total_amount", "amount_due"}).
			AddRow("stu-1", "550.00", "550.00"))
	mock.ExpectQuery(`INSERT INTO payments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_date", "created_at", "updated_at"}).
			AddRow("pay-1", now, now, now))
	mock.ExpectQuery(`SELECT id, amount_paid, status FROM payments WHERE invoice_id = \$1`).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount_paid", "status"}).
			AddRow("pay-1", "200.00", "completed"))
	mock.ExpectExec(`UPDATE invoices SET amount_due = \$1, status = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("350", "partial", "inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payment := &models.Payment{
		InvoiceID:     "inv-1",
		AmountPaid:    decimal.NewFromInt(200),
		PaymentMethod: models.MethodCash,
	}
	err = RecordPayment(db, payment)
	require.NoError(t, err)

	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, "stu-1", payment.StudentID)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentExceedsAmountDue(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT student_id, total_amount, amount_due FROM invoices WHERE id = \$1 FOR UPDATE`).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "total_amount", "amount_due"}).
			AddRow("stu-1", "550.00", "100.00"))
	mock.ExpectRollback()

	payment := &models.Payment{
		InvoiceID:     "inv-1",
		AmountPaid:    decimal.NewFromInt(200),
		PaymentMethod: models.MethodCash,
	}
	err = RecordPayment(db, payment)
	assert.ErrorIs(t, err, billing.ErrExceedsAmountDue)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPaymentInvoiceNotFound(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT student_id, total_amount, amount_due FROM invoices WHERE id = \$1 FOR UPDATE`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"student_id", "total_amount", "amount_due"}))
	mock.ExpectRollback()

	payment := &models.Payment{
		InvoiceID:     "missing",
		AmountPaid:    decimal.NewFromInt(50),
		PaymentMethod: models.MethodCash,
	}
	err = RecordPayment(db, payment)
	assert.ErrorIs(t, err, billing.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePaymentReconcilesInvoice(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT invoice_id FROM payments WHERE id = \$1`).
		WithArgs("pay-1").
		WillReturnRows(sqlmock.NewRows([]string{"invoice_id"}).AddRow("inv-1"))
	mock.ExpectQuery(`SELECT total_amount FROM invoices WHERE id = \$1 FOR UPDATE`).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"total_amount"}).AddRow("550.00"))
	mock.ExpectExec(`DELETE FROM payments WHERE id = \$1`).
		WithArgs("pay-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id, amount_paid, status FROM payments WHERE invoice_id = \$1`).
		WithArgs("inv-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount_paid", "status"}))
	mock.ExpectExec(`UPDATE invoices SET amount_due = \$1, status = \$2, updated_at = NOW\(\) WHERE id = \$3`).
		WithArgs("550", "unpaid", "inv-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = DeletePayment(db, "pay-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvoiceDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO invoices`).
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	inv := &models.Invoice{
		ID:             "inv-1",
		StudentID:      "stu-1",
		AcademicYearID: "year-1",
		TotalAmount:    decimal.NewFromInt(550),
		AmountDue:      decimal.NewFromInt(550),
		Status:         models.InvoiceUnpaid,
	}
	err = CreateInvoice(db, inv, nil)
	assert.ErrorIs(t, err, billing.ErrDuplicateInvoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInvoiceWithItems(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO invoices`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectQuery(`INSERT INTO invoice_items`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectQuery(`INSERT INTO invoice_items`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectCommit()

	inv := &models.Invoice{
		ID:             "inv-1",
		StudentID:      "stu-1",
		AcademicYearID: "year-1",
		TotalAmount:    decimal.NewFromInt(550),
		AmountDue:      decimal.NewFromInt(550),
		Status:         models.InvoiceUnpaid,
	}
	items := []*models.InvoiceItem{
		{ID: "item-1", InvoiceID: "inv-1", FeeTypeID: "ft-1", Amount: decimal.NewFromInt(500)},
		{ID: "item-2", InvoiceID: "inv-1", FeeTypeID: "ft-2", Amount: decimal.NewFromInt(50)},
	}
	err = CreateInvoice(db, inv, items)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeLinesMatchesTermExactly(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	term := "term-1"
	mock.ExpectQuery(`SELECT fs.fee_type_id, ft.name, fs.amount`).
		WithArgs("class-1", "year-1", "term-1").
		WillReturnRows(sqlmock.NewRows([]string{"fee_type_id", "name", "amount"}).
			AddRow("ft-1", "Tuition", "500.00").
			AddRow("ft-2", "Library", "50.00"))

	lines, err := GetFeeLines(db, "class-1", "year-1", &term)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "Tuition", lines[0].FeeTypeName)
	assert.True(t, lines[0].Amount.Equal(decimal.NewFromInt(500)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
