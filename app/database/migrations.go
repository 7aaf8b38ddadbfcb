package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the billing schema. Every statement is idempotent
// so the migration can run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(50) UNIQUE NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS terms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id) ON DELETE CASCADE,
			name VARCHAR(50) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (academic_year_id, name)
		)`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			student_no VARCHAR(50) UNIQUE NOT NULL,
			class_id UUID REFERENCES classes(id) ON DELETE SET NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_students_class ON students(class_id)`,

		`CREATE TABLE IF NOT EXISTS fee_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(100) UNIQUE NOT NULL,
			code VARCHAR(20) UNIQUE NOT NULL,
			description TEXT,
			is_recurring BOOLEAN NOT NULL DEFAULT true,
			is_active BOOLEAN NOT NULL DEFAULT true,
			deleted_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS fee_structures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			fee_type_id UUID NOT NULL REFERENCES fee_types(id),
			class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
			academic_year_id UUID NOT NULL REFERENCES academic_years(id) ON DELETE CASCADE,
			term_id UUID REFERENCES terms(id) ON DELETE CASCADE,
			amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		// term_id is nullable, so the uniqueness lives in a functional index
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_fee_structures_scope
			ON fee_structures (fee_type_id, class_id, academic_year_id, COALESCE(term_id, '00000000-0000-0000-0000-000000000000'::uuid))`,

		`CREATE TABLE IF NOT EXISTS sponsorships (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID UNIQUE NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			sponsorship_type VARCHAR(20) NOT NULL,
			sponsor_name VARCHAR(255) NOT NULL DEFAULT '',
			percentage_covered INTEGER CHECK (percentage_covered BETWEEN 1 AND 100),
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			term_id UUID REFERENCES terms(id),
			total_amount NUMERIC(12,2) NOT NULL CHECK (total_amount >= 0),
			amount_due NUMERIC(12,2) NOT NULL CHECK (amount_due >= 0),
			status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_invoices_student_period
			ON invoices (student_id, academic_year_id, COALESCE(term_id, '00000000-0000-0000-0000-000000000000'::uuid))`,
		`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`,

		`CREATE TABLE IF NOT EXISTS invoice_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
			fee_type_id UUID NOT NULL REFERENCES fee_types(id),
			amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items(invoice_id)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			invoice_id UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
			student_id UUID NOT NULL REFERENCES students(id),
			amount_paid NUMERIC(12,2) NOT NULL CHECK (amount_paid > 0),
			payment_method VARCHAR(20) NOT NULL DEFAULT 'cash',
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			reference VARCHAR(100) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			payment_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			received_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_invoice ON payments(invoice_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
