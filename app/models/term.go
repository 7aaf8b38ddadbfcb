package models

import "time"

// Term represents a term within an academic year
type Term struct {
	ID             string        `json:"id" validate:"required,uuid"`
	AcademicYearID string        `json:"academic_year_id" validate:"required,uuid"`
	Name           string        `json:"name" validate:"required"`
	StartDate      CustomDate    `json:"start_date"`
	EndDate        CustomDate    `json:"end_date"`
	IsCurrent      bool          `json:"is_current"`
	IsActive       bool          `json:"is_active"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	AcademicYear   *AcademicYear `json:"academic_year,omitempty"`
}

// IsCurrentByDate checks if the term is current based on today's date
func (t *Term) IsCurrentByDate() bool {
	now := time.Now()
	return now.After(t.StartDate.Time) && now.Before(t.EndDate.Time)
}
