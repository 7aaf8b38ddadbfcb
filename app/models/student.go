package models

import "time"

// Student represents an enrolled student. ClassID is the student's current
// class; billing reads it at invoice generation time.
type Student struct {
	ID          string       `json:"id" validate:"required,uuid"`
	FirstName   string       `json:"first_name" validate:"required"`
	LastName    string       `json:"last_name" validate:"required"`
	StudentNo   string       `json:"student_no" validate:"required"`
	ClassID     *string      `json:"class_id,omitempty" validate:"omitempty,uuid"`
	IsActive    bool         `json:"is_active"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Class       *Class       `json:"class,omitempty"`
	Sponsorship *Sponsorship `json:"sponsorship,omitempty"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
