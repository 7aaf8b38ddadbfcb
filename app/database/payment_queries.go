package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// RecordPayment validates and inserts a payment, then reconciles the invoice,
// all in one transaction. The invoice row is locked first so concurrent
// payments against the same invoice serialize and neither can overdraw the
// amount due.
func RecordPayment(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var studentID string
	var totalAmount, amountDue decimal.Decimal
	err = tx.QueryRow(`SELECT student_id, total_amount, amount_due FROM invoices WHERE id = $1 FOR UPDATE`,
		payment.InvoiceID).Scan(&studentID, &totalAmount, &amountDue)
	if err == sql.ErrNoRows {
		return billing.ErrNotFound
	}
	if err != nil {
		return err
	}
	payment.StudentID = studentID

	if payment.Status == "" {
		payment.Status = models.PaymentCompleted
	}
	if err := billing.ValidateNewPayment(payment.AmountPaid, amountDue); err != nil {
		return err
	}

	query := `INSERT INTO payments (invoice_id, student_id, amount_paid, payment_method, status, reference, notes, payment_date, received_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, NOW()), $9)
			  RETURNING id, payment_date, created_at, updated_at`
	var paymentDate interface{}
	if !payment.PaymentDate.IsZero() {
		paymentDate = payment.PaymentDate
	}
	err = tx.QueryRow(query, payment.InvoiceID, payment.StudentID, payment.AmountPaid,
		payment.PaymentMethod, payment.Status, payment.Reference, payment.Notes,
		paymentDate, payment.ReceivedBy).Scan(
		&payment.ID, &payment.PaymentDate, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return err
	}

	if err := reconcileInvoiceTx(tx, payment.InvoiceID, totalAmount); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdatePayment edits a payment's amount, method, status or notes and
// reconciles the invoice. The amount is validated against the amount due
// recomputed without this payment's prior contribution.
func UpdatePayment(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var invoiceID string
	err = tx.QueryRow(`SELECT invoice_id FROM payments WHERE id = $1`, payment.ID).Scan(&invoiceID)
	if err == sql.ErrNoRows {
		return billing.ErrNotFound
	}
	if err != nil {
		return err
	}
	payment.InvoiceID = invoiceID

	var totalAmount decimal.Decimal
	if err := tx.QueryRow(`SELECT total_amount FROM invoices WHERE id = $1 FOR UPDATE`, invoiceID).Scan(&totalAmount); err != nil {
		return err
	}

	others, err := paymentsForInvoiceTx(tx, invoiceID, payment.ID)
	if err != nil {
		return err
	}
	if payment.Status == models.PaymentCompleted {
		if err := billing.ValidateUpdatedPayment(payment.AmountPaid, totalAmount, others); err != nil {
			return err
		}
	} else if payment.AmountPaid.LessThanOrEqual(decimal.Zero) {
		return billing.ErrInvalidAmount
	}

	query := `UPDATE payments SET amount_paid = $1, payment_method = $2, status = $3,
			  reference = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6`
	if _, err := tx.Exec(query, payment.AmountPaid, payment.PaymentMethod, payment.Status,
		payment.Reference, payment.Notes, payment.ID); err != nil {
		return err
	}

	if err := reconcileInvoiceTx(tx, invoiceID, totalAmount); err != nil {
		return err
	}

	return tx.Commit()
}

// DeletePayment removes a payment and reconciles the invoice so the amount
// comes back into the balance due.
func DeletePayment(db *sql.DB, paymentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var invoiceID string
	err = tx.QueryRow(`SELECT invoice_id FROM payments WHERE id = $1`, paymentID).Scan(&invoiceID)
	if err == sql.ErrNoRows {
		return billing.ErrNotFound
	}
	if err != nil {
		return err
	}

	var totalAmount decimal.Decimal
	if err := tx.QueryRow(`SELECT total_amount FROM invoices WHERE id = $1 FOR UPDATE`, invoiceID).Scan(&totalAmount); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM payments WHERE id = $1`, paymentID); err != nil {
		return err
	}

	if err := reconcileInvoiceTx(tx, invoiceID, totalAmount); err != nil {
		return err
	}

	return tx.Commit()
}

// ReconcileInvoice recomputes one invoice's derived state outside the payment
// write path. Exposed for the maintenance endpoint and backfills.
func ReconcileInvoice(db *sql.DB, invoiceID string) (*billing.ReconcileResult, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var totalAmount decimal.Decimal
	err = tx.QueryRow(`SELECT total_amount FROM invoices WHERE id = $1 FOR UPDATE`, invoiceID).Scan(&totalAmount)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	payments, err := paymentsForInvoiceTx(tx, invoiceID, "")
	if err != nil {
		return nil, err
	}
	result := billing.Reconcile(totalAmount, payments)

	if _, err := tx.Exec(`UPDATE invoices SET amount_due = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		result.AmountDue, result.Status, invoiceID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &result, nil
}

// reconcileInvoiceTx rewrites the invoice's amount_due and status from the
// full payment set inside the caller's transaction. This is the only code
// path that writes those two columns.
func reconcileInvoiceTx(tx *sql.Tx, invoiceID string, totalAmount decimal.Decimal) error {
	payments, err := paymentsForInvoiceTx(tx, invoiceID, "")
	if err != nil {
		return err
	}
	result := billing.Reconcile(totalAmount, payments)

	_, err = tx.Exec(`UPDATE invoices SET amount_due = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		result.AmountDue, result.Status, invoiceID)
	return err
}

// paymentsForInvoiceTx loads an invoice's payments, optionally excluding one
// payment by id.
func paymentsForInvoiceTx(tx *sql.Tx, invoiceID, excludeID string) ([]*models.Payment, error) {
	query := `SELECT id, amount_paid, status FROM payments WHERE invoice_id = $1`
	args := []interface{}{invoiceID}
	if excludeID != "" {
		query += ` AND id != $2`
		args = append(args, excludeID)
	}

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.AmountPaid, &p.Status); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentByID retrieves a payment with its invoice summary attached
func GetPaymentByID(db *sql.DB, paymentID string) (*models.Payment, error) {
	p := &models.Payment{Invoice: &models.Invoice{}}
	query := `SELECT p.id, p.invoice_id, p.student_id, p.amount_paid, p.payment_method, p.status,
			  p.reference, p.notes, p.payment_date, p.received_by, p.created_at, p.updated_at,
			  i.total_amount, i.amount_due, i.status
			  FROM payments p
			  JOIN invoices i ON p.invoice_id = i.id
			  WHERE p.id = $1`
	err := db.QueryRow(query, paymentID).Scan(&p.ID, &p.InvoiceID, &p.StudentID, &p.AmountPaid,
		&p.PaymentMethod, &p.Status, &p.Reference, &p.Notes, &p.PaymentDate, &p.ReceivedBy,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Invoice.TotalAmount, &p.Invoice.AmountDue, &p.Invoice.Status)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	p.Invoice.ID = p.InvoiceID
	return p, nil
}

// GetPaymentsByInvoice retrieves all payments against one invoice, newest first
func GetPaymentsByInvoice(db *sql.DB, invoiceID string) ([]*models.Payment, error) {
	query := `SELECT id, invoice_id, student_id, amount_paid, payment_method, status,
			  reference, notes, payment_date, received_by, created_at, updated_at
			  FROM payments WHERE invoice_id = $1
			  ORDER BY payment_date DESC, created_at DESC`
	rows, err := db.Query(query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.InvoiceID, &p.StudentID, &p.AmountPaid, &p.PaymentMethod,
			&p.Status, &p.Reference, &p.Notes, &p.PaymentDate, &p.ReceivedBy,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
