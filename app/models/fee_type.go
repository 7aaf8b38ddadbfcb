package models

import "time"

// FeeType represents a kind of charge (Tuition, Hostel, Exam, Uniform)
type FeeType struct {
	ID          string    `json:"id" validate:"required,uuid"`
	Name        string    `json:"name" validate:"required"`
	Code        string    `json:"code" validate:"required"`
	Description *string   `json:"description,omitempty"`
	IsRecurring bool      `json:"is_recurring"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
