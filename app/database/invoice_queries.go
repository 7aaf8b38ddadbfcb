package database

import (
	"database/sql"
	"fmt"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// CreateInvoice inserts an invoice and its items in one transaction. A
// duplicate (student, year, term) triple surfaces as ErrDuplicateInvoice via
// the unique index.
func CreateInvoice(db *sql.DB, inv *models.Invoice, items []*models.InvoiceItem) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO invoices (id, student_id, academic_year_id, term_id, total_amount, amount_due, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`
	err = tx.QueryRow(query, inv.ID, inv.StudentID, inv.AcademicYearID, inv.TermID,
		inv.TotalAmount, inv.AmountDue, inv.Status).Scan(&inv.CreatedAt, &inv.UpdatedAt)
	if isUniqueViolation(err) {
		return billing.ErrDuplicateInvoice
	}
	if err != nil {
		return err
	}

	itemQuery := `INSERT INTO invoice_items (id, invoice_id, fee_type_id, amount)
				  VALUES ($1, $2, $3, $4)
				  RETURNING created_at`
	for _, item := range items {
		if err := tx.QueryRow(itemQuery, item.ID, item.InvoiceID, item.FeeTypeID, item.Amount).Scan(&item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// InvoiceFilters narrows the invoice listing
type InvoiceFilters struct {
	StudentID      string
	ClassID        string
	AcademicYearID string
	TermID         string
	Status         string
	Limit          int
	Offset         int
}

// GetInvoices retrieves invoices with student and period names attached
func GetInvoices(db *sql.DB, filters InvoiceFilters) ([]*models.Invoice, error) {
	query := `SELECT i.id, i.student_id, i.academic_year_id, i.term_id, i.total_amount, i.amount_due, i.status,
			  i.created_at, i.updated_at,
			  s.first_name, s.last_name, s.student_no, ay.name, t.name
			  FROM invoices i
			  JOIN students s ON i.student_id = s.id
			  JOIN academic_years ay ON i.academic_year_id = ay.id
			  LEFT JOIN terms t ON i.term_id = t.id
			  WHERE 1=1`

	var args []interface{}
	argIndex := 1
	if filters.StudentID != "" {
		query += fmt.Sprintf(" AND i.student_id = $%d", argIndex)
		args = append(args, filters.StudentID)
		argIndex++
	}
	if filters.ClassID != "" {
		query += fmt.Sprintf(" AND s.class_id = $%d", argIndex)
		args = append(args, filters.ClassID)
		argIndex++
	}
	if filters.AcademicYearID != "" {
		query += fmt.Sprintf(" AND i.academic_year_id = $%d", argIndex)
		args = append(args, filters.AcademicYearID)
		argIndex++
	}
	if filters.TermID != "" {
		query += fmt.Sprintf(" AND i.term_id = $%d", argIndex)
		args = append(args, filters.TermID)
		argIndex++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND i.status = $%d", argIndex)
		args = append(args, filters.Status)
		argIndex++
	}

	query += " ORDER BY i.created_at DESC"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv := &models.Invoice{Student: &models.Student{}, AcademicYear: &models.AcademicYear{}}
		var termName sql.NullString
		if err := rows.Scan(&inv.ID, &inv.StudentID, &inv.AcademicYearID, &inv.TermID,
			&inv.TotalAmount, &inv.AmountDue, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
			&inv.Student.FirstName, &inv.Student.LastName, &inv.Student.StudentNo,
			&inv.AcademicYear.Name, &termName); err != nil {
			return nil, err
		}
		inv.Student.ID = inv.StudentID
		inv.AcademicYear.ID = inv.AcademicYearID
		if inv.TermID != nil && termName.Valid {
			inv.Term = &models.Term{ID: *inv.TermID, Name: termName.String}
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

// GetInvoiceByID retrieves a single invoice with its items and payments
func GetInvoiceByID(db *sql.DB, invoiceID string) (*models.Invoice, error) {
	inv := &models.Invoice{Student: &models.Student{}, AcademicYear: &models.AcademicYear{}}
	var termName sql.NullString

	query := `SELECT i.id, i.student_id, i.academic_year_id, i.term_id, i.total_amount, i.amount_due, i.status,
			  i.created_at, i.updated_at,
			  s.first_name, s.last_name, s.student_no, ay.name, t.name
			  FROM invoices i
			  JOIN students s ON i.student_id = s.id
			  JOIN academic_years ay ON i.academic_year_id = ay.id
			  LEFT JOIN terms t ON i.term_id = t.id
			  WHERE i.id = $1`
	err := db.QueryRow(query, invoiceID).Scan(&inv.ID, &inv.StudentID, &inv.AcademicYearID, &inv.TermID,
		&inv.TotalAmount, &inv.AmountDue, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.Student.FirstName, &inv.Student.LastName, &inv.Student.StudentNo,
		&inv.AcademicYear.Name, &termName)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	inv.Student.ID = inv.StudentID
	inv.AcademicYear.ID = inv.AcademicYearID
	if inv.TermID != nil && termName.Valid {
		inv.Term = &models.Term{ID: *inv.TermID, Name: termName.String}
	}

	items, err := getInvoiceItems(db, invoiceID)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	payments, err := GetPaymentsByInvoice(db, invoiceID)
	if err != nil {
		return nil, err
	}
	inv.Payments = payments

	return inv, nil
}

func getInvoiceItems(db *sql.DB, invoiceID string) ([]*models.InvoiceItem, error) {
	query := `SELECT ii.id, ii.invoice_id, ii.fee_type_id, ii.amount, ii.created_at, ft.name, ft.code
			  FROM invoice_items ii
			  JOIN fee_types ft ON ii.fee_type_id = ft.id
			  WHERE ii.invoice_id = $1
			  ORDER BY ft.name ASC`
	rows, err := db.Query(query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InvoiceItem
	for rows.Next() {
		item := &models.InvoiceItem{FeeType: &models.FeeType{}}
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.FeeTypeID, &item.Amount,
			&item.CreatedAt, &item.FeeType.Name, &item.FeeType.Code); err != nil {
			return nil, err
		}
		item.FeeType.ID = item.FeeTypeID
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteInvoice removes an invoice with its items and payments. Invoices are
// immutable snapshots; a wrong one is deleted and regenerated, not edited.
func DeleteInvoice(db *sql.DB, invoiceID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM payments WHERE invoice_id = $1`, invoiceID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID); err != nil {
		return err
	}
	result, err := tx.Exec(`DELETE FROM invoices WHERE id = $1`, invoiceID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}

	return tx.Commit()
}
