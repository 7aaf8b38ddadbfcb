package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// uniqueViolation is the Postgres error code raised by duplicate key inserts
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// GetFeeTypes retrieves fee types, optionally including inactive ones
func GetFeeTypes(db *sql.DB, includeInactive bool) ([]*models.FeeType, error) {
	query := `SELECT id, name, code, description, is_recurring, is_active, created_at, updated_at
			  FROM fee_types WHERE deleted_at IS NULL`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feeTypes []*models.FeeType
	for rows.Next() {
		ft := &models.FeeType{}
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Code, &ft.Description,
			&ft.IsRecurring, &ft.IsActive, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			return nil, err
		}
		feeTypes = append(feeTypes, ft)
	}
	return feeTypes, rows.Err()
}

func GetFeeTypeByID(db *sql.DB, id string) (*models.FeeType, error) {
	ft := &models.FeeType{}
	query := `SELECT id, name, code, description, is_recurring, is_active, created_at, updated_at
			  FROM fee_types WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(&ft.ID, &ft.Name, &ft.Code, &ft.Description,
		&ft.IsRecurring, &ft.IsActive, &ft.CreatedAt, &ft.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return ft, nil
}

func CreateFeeType(db *sql.DB, ft *models.FeeType) error {
	query := `INSERT INTO fee_types (name, code, description, is_recurring, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, ft.Name, ft.Code, ft.Description, ft.IsRecurring).Scan(
		&ft.ID, &ft.CreatedAt, &ft.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("fee type with this name or code already exists")
	}
	return err
}

func UpdateFeeType(db *sql.DB, ft *models.FeeType) error {
	query := `UPDATE fee_types SET name = $1, code = $2, description = $3, is_recurring = $4,
			  is_active = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`
	result, err := db.Exec(query, ft.Name, ft.Code, ft.Description, ft.IsRecurring, ft.IsActive, ft.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// DeleteFeeType soft deletes a fee type; historical invoice items keep
// pointing at it.
func DeleteFeeType(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE fee_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// FeeStructureFilters narrows the catalog listing
type FeeStructureFilters struct {
	ClassID        string
	AcademicYearID string
	TermID         string
}

// GetFeeStructures retrieves catalog rows with their related names attached
func GetFeeStructures(db *sql.DB, filters FeeStructureFilters) ([]*models.FeeStructure, error) {
	query := `SELECT fs.id, fs.fee_type_id, fs.class_id, fs.academic_year_id, fs.term_id, fs.amount,
			  fs.created_at, fs.updated_at,
			  ft.name, ft.code, c.name, ay.name, t.name
			  FROM fee_structures fs
			  JOIN fee_types ft ON fs.fee_type_id = ft.id
			  JOIN classes c ON fs.class_id = c.id
			  JOIN academic_years ay ON fs.academic_year_id = ay.id
			  LEFT JOIN terms t ON fs.term_id = t.id
			  WHERE 1=1`

	var args []interface{}
	argIndex := 1
	if filters.ClassID != "" {
		query += fmt.Sprintf(" AND fs.class_id = $%d", argIndex)
		args = append(args, filters.ClassID)
		argIndex++
	}
	if filters.AcademicYearID != "" {
		query += fmt.Sprintf(" AND fs.academic_year_id = $%d", argIndex)
		args = append(args, filters.AcademicYearID)
		argIndex++
	}
	if filters.TermID != "" {
		query += fmt.Sprintf(" AND fs.term_id = $%d", argIndex)
		args = append(args, filters.TermID)
		argIndex++
	}
	query += " ORDER BY c.name, ay.name, ft.name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		fs := &models.FeeStructure{FeeType: &models.FeeType{}, Class: &models.Class{}, AcademicYear: &models.AcademicYear{}}
		var termName sql.NullString
		if err := rows.Scan(&fs.ID, &fs.FeeTypeID, &fs.ClassID, &fs.AcademicYearID, &fs.TermID, &fs.Amount,
			&fs.CreatedAt, &fs.UpdatedAt,
			&fs.FeeType.Name, &fs.FeeType.Code, &fs.Class.Name, &fs.AcademicYear.Name, &termName); err != nil {
			return nil, err
		}
		if fs.TermID != nil && termName.Valid {
			fs.Term = &models.Term{ID: *fs.TermID, Name: termName.String}
		}
		structures = append(structures, fs)
	}
	return structures, rows.Err()
}

func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	query := `INSERT INTO fee_structures (fee_type_id, class_id, academic_year_id, term_id, amount)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query, fs.FeeTypeID, fs.ClassID, fs.AcademicYearID, fs.TermID, fs.Amount).Scan(
		&fs.ID, &fs.CreatedAt, &fs.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("a fee structure for this fee type, class, year and term already exists")
	}
	return err
}

func UpdateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	query := `UPDATE fee_structures SET amount = $1, updated_at = NOW() WHERE id = $2`
	result, err := db.Exec(query, fs.Amount, fs.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

func DeleteFeeStructure(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM fee_structures WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// GetFeeLines resolves the catalog lines the invoice engine bills from. The
// term matches exactly: nil selects the year-level rows only.
func GetFeeLines(db *sql.DB, classID, academicYearID string, termID *string) ([]billing.FeeLine, error) {
	query := `SELECT fs.fee_type_id, ft.name, fs.amount
			  FROM fee_structures fs
			  JOIN fee_types ft ON fs.fee_type_id = ft.id
			  WHERE fs.class_id = $1 AND fs.academic_year_id = $2
			  AND fs.term_id IS NOT DISTINCT FROM $3
			  ORDER BY ft.name ASC`

	rows, err := db.Query(query, classID, academicYearID, termID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []billing.FeeLine
	for rows.Next() {
		var line billing.FeeLine
		if err := rows.Scan(&line.FeeTypeID, &line.FeeTypeName, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
