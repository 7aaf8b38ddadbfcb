package database

import (
	"database/sql"
	"fmt"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// GetAcademicYears retrieves all academic years, newest first
func GetAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM academic_years ORDER BY start_date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		y := &models.AcademicYear{}
		if err := rows.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate,
			&y.IsCurrent, &y.IsActive, &y.CreatedAt, &y.UpdatedAt); err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func GetAcademicYearByID(db *sql.DB, id string) (*models.AcademicYear, error) {
	y := &models.AcademicYear{}
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM academic_years WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate,
		&y.IsCurrent, &y.IsActive, &y.CreatedAt, &y.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	terms, err := GetTerms(db, y.ID)
	if err != nil {
		return nil, err
	}
	y.Terms = terms
	return y, nil
}

func CreateAcademicYear(db *sql.DB, y *models.AcademicYear) error {
	query := `INSERT INTO academic_years (name, start_date, end_date, is_current, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, y.Name, y.StartDate, y.EndDate, y.IsCurrent).Scan(
		&y.ID, &y.CreatedAt, &y.UpdatedAt)
}

func UpdateAcademicYear(db *sql.DB, y *models.AcademicYear) error {
	query := `UPDATE academic_years SET name = $1, start_date = $2, end_date = $3,
			  is_active = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, y.Name, y.StartDate, y.EndDate, y.IsActive, y.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// SetCurrentAcademicYear flips the is_current flag to exactly one year
func SetCurrentAcademicYear(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_years SET is_current = false WHERE is_current = true`); err != nil {
		return err
	}
	result, err := tx.Exec(`UPDATE academic_years SET is_current = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return tx.Commit()
}

func CreateTerm(db *sql.DB, t *models.Term) error {
	query := `INSERT INTO terms (academic_year_id, name, start_date, end_date, is_current, is_active)
			  VALUES ($1, $2, $3, $4, $5, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, t.AcademicYearID, t.Name, t.StartDate, t.EndDate, t.IsCurrent).Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func UpdateTerm(db *sql.DB, t *models.Term) error {
	query := `UPDATE terms SET name = $1, start_date = $2, end_date = $3,
			  is_active = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, t.Name, t.StartDate, t.EndDate, t.IsActive, t.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

// SetCurrentTerm flips is_current to one term within its academic year
func SetCurrentTerm(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var academicYearID string
	err = tx.QueryRow(`SELECT academic_year_id FROM terms WHERE id = $1`, id).Scan(&academicYearID)
	if err == sql.ErrNoRows {
		return billing.ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`UPDATE terms SET is_current = false WHERE academic_year_id = $1 AND is_current = true`, academicYearID); err != nil {
		return err
	}
	if _, err := tx.Exec(`UPDATE terms SET is_current = true, updated_at = NOW() WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// GetTerms retrieves terms, optionally filtered by academic year
func GetTerms(db *sql.DB, academicYearID string) ([]*models.Term, error) {
	query := `SELECT id, academic_year_id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM terms`
	var args []interface{}
	if academicYearID != "" {
		query += ` WHERE academic_year_id = $1`
		args = append(args, academicYearID)
	}
	query += ` ORDER BY start_date ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		t := &models.Term{}
		if err := rows.Scan(&t.ID, &t.AcademicYearID, &t.Name, &t.StartDate, &t.EndDate,
			&t.IsCurrent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// GetActiveClasses retrieves active classes with their student counts
func GetActiveClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT c.id, c.name, c.code, c.is_active, c.created_at, c.updated_at,
			  COUNT(s.id) FILTER (WHERE s.is_active = true) AS student_count
			  FROM classes c
			  LEFT JOIN students s ON s.class_id = c.id
			  WHERE c.is_active = true
			  GROUP BY c.id
			  ORDER BY c.name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		c := &models.Class{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.IsActive,
			&c.CreatedAt, &c.UpdatedAt, &c.StudentCount); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// StudentFilters represents filtering options for students
type StudentFilters struct {
	ClassID string
	Search  string
	Limit   int
	Offset  int
}

// GetStudents retrieves active students with optional class filter and name search
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT s.id, s.first_name, s.last_name, s.student_no, s.class_id, s.is_active,
			  s.created_at, s.updated_at
			  FROM students s WHERE s.is_active = true`

	var args []interface{}
	argIndex := 1

	if filters.ClassID != "" {
		query += fmt.Sprintf(" AND s.class_id = $%d", argIndex)
		args = append(args, filters.ClassID)
		argIndex++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(` AND (LOWER(s.first_name) LIKE $%d OR LOWER(s.last_name) LIKE $%d OR LOWER(s.student_no) LIKE $%d)`,
			argIndex, argIndex, argIndex)
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	query += " ORDER BY s.first_name, s.last_name"
	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.StudentNo,
			&s.ClassID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetStudentByID retrieves a student with class and sponsorship attached
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT s.id, s.first_name, s.last_name, s.student_no, s.class_id, s.is_active,
			  s.created_at, s.updated_at
			  FROM students s WHERE s.id = $1 AND s.is_active = true`

	err := db.QueryRow(query, studentID).Scan(&s.ID, &s.FirstName, &s.LastName,
		&s.StudentNo, &s.ClassID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.ClassID != nil {
		c := &models.Class{}
		err := db.QueryRow(`SELECT id, name, code, is_active, created_at, updated_at FROM classes WHERE id = $1`,
			*s.ClassID).Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err == nil {
			s.Class = c
		} else if err != sql.ErrNoRows {
			return nil, err
		}
	}

	sponsorship, err := GetSponsorshipByStudent(db, s.ID)
	if err != nil {
		return nil, err
	}
	s.Sponsorship = sponsorship

	return s, nil
}

// GetStudentsByClass retrieves the active roster of a class
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	return GetStudents(db, StudentFilters{ClassID: classID})
}
