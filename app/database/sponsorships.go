package database

import (
	"database/sql"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/billing"
	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// GetSponsorships retrieves all sponsorships with student names attached
func GetSponsorships(db *sql.DB) ([]*models.Sponsorship, error) {
	query := `SELECT sp.id, sp.student_id, sp.sponsorship_type, sp.sponsor_name,
			  sp.percentage_covered, sp.notes, sp.created_at, sp.updated_at,
			  s.first_name, s.last_name, s.student_no
			  FROM sponsorships sp
			  JOIN students s ON sp.student_id = s.id
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sponsorships []*models.Sponsorship
	for rows.Next() {
		sp := &models.Sponsorship{Student: &models.Student{}}
		if err := rows.Scan(&sp.ID, &sp.StudentID, &sp.Type, &sp.SponsorName,
			&sp.PercentageCovered, &sp.Notes, &sp.CreatedAt, &sp.UpdatedAt,
			&sp.Student.FirstName, &sp.Student.LastName, &sp.Student.StudentNo); err != nil {
			return nil, err
		}
		sp.Student.ID = sp.StudentID
		sponsorships = append(sponsorships, sp)
	}
	return sponsorships, rows.Err()
}

func GetSponsorshipByID(db *sql.DB, id string) (*models.Sponsorship, error) {
	sp := &models.Sponsorship{}
	query := `SELECT id, student_id, sponsorship_type, sponsor_name, percentage_covered, notes, created_at, updated_at
			  FROM sponsorships WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&sp.ID, &sp.StudentID, &sp.Type, &sp.SponsorName,
		&sp.PercentageCovered, &sp.Notes, &sp.CreatedAt, &sp.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, billing.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// GetSponsorshipByStudent returns the student's sponsorship, or nil when the
// student has none (undiscounted billing).
func GetSponsorshipByStudent(db *sql.DB, studentID string) (*models.Sponsorship, error) {
	sp := &models.Sponsorship{}
	query := `SELECT id, student_id, sponsorship_type, sponsor_name, percentage_covered, notes, created_at, updated_at
			  FROM sponsorships WHERE student_id = $1`
	err := db.QueryRow(query, studentID).Scan(&sp.ID, &sp.StudentID, &sp.Type, &sp.SponsorName,
		&sp.PercentageCovered, &sp.Notes, &sp.CreatedAt, &sp.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// UpsertSponsorship creates or replaces the student's sponsorship record.
// One sponsorship per student; re-submitting updates in place.
func UpsertSponsorship(db *sql.DB, sp *models.Sponsorship) error {
	query := `INSERT INTO sponsorships (student_id, sponsorship_type, sponsor_name, percentage_covered, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (student_id) DO UPDATE SET
				  sponsorship_type = EXCLUDED.sponsorship_type,
				  sponsor_name = EXCLUDED.sponsor_name,
				  percentage_covered = EXCLUDED.percentage_covered,
				  notes = EXCLUDED.notes,
				  updated_at = NOW()
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, sp.StudentID, sp.Type, sp.SponsorName, sp.PercentageCovered, sp.Notes).Scan(
		&sp.ID, &sp.CreatedAt, &sp.UpdatedAt)
}

func UpdateSponsorship(db *sql.DB, sp *models.Sponsorship) error {
	query := `UPDATE sponsorships SET sponsorship_type = $1, sponsor_name = $2,
			  percentage_covered = $3, notes = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, sp.Type, sp.SponsorName, sp.PercentageCovered, sp.Notes, sp.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

func DeleteSponsorship(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM sponsorships WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return billing.ErrNotFound
	}
	return nil
}
