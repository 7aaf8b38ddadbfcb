package models

import "time"

// Sponsorship is a per-student scholarship record. It is read by the invoice
// engine at generation time only; editing it never alters issued invoices.
type Sponsorship struct {
	ID                string          `json:"id" validate:"required,uuid"`
	StudentID         string          `json:"student_id" validate:"required,uuid"`
	Type              SponsorshipType `json:"sponsorship_type" validate:"required,oneof=none full partial other"`
	SponsorName       string          `json:"sponsor_name"` // Government, NGO, Parent, Company, etc
	PercentageCovered *int            `json:"percentage_covered,omitempty" validate:"omitempty,min=1,max=100"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Student           *Student        `json:"student,omitempty"`
}
