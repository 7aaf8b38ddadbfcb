package database

import (
	"database/sql"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	c := &models.Class{}
	query := `SELECT id, name, code, is_active, created_at, updated_at FROM classes WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateClass(db *sql.DB, c *models.Class) error {
	query := `INSERT INTO classes (name, code, is_active)
			  VALUES ($1, $2, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, c.Name, c.Code).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func UpdateClass(db *sql.DB, c *models.Class) error {
	query := `UPDATE classes SET name = $1, code = $2, is_active = $3, updated_at = NOW() WHERE id = $4`
	result, err := db.Exec(query, c.Name, c.Code, c.IsActive, c.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (first_name, last_name, student_no, class_id, is_active)
			  VALUES ($1, $2, $3, $4, true)
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.FirstName, s.LastName, s.StudentNo, s.ClassID).Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET first_name = $1, last_name = $2, student_no = $3,
			  class_id = $4, is_active = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := db.Exec(query, s.FirstName, s.LastName, s.StudentNo, s.ClassID, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}
