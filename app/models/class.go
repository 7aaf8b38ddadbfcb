package models

import "time"

// Class represents a school class (e.g. Primary 4 Blue)
type Class struct {
	ID           string     `json:"id" validate:"required,uuid"`
	Name         string     `json:"name" validate:"required"`
	Code         string     `json:"code" validate:"required"`
	IsActive     bool       `json:"is_active"`
	StudentCount int        `json:"student_count,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Students     []*Student `json:"students,omitempty"`
}
