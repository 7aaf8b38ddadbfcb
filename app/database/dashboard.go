package database

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// GetFinanceDashboard returns the aggregated billing metrics for the finance
// dashboard
func GetFinanceDashboard(db *sql.DB) (*models.FinanceDashboard, error) {
	dashboard := &models.FinanceDashboard{}

	// 1. Headline counters
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&dashboard.TotalStudents)
	if err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*), COUNT(*) FILTER (WHERE status != 'paid') FROM invoices`).Scan(
		&dashboard.TotalInvoices, &dashboard.PendingInvoices)
	if err != nil {
		return nil, err
	}

	// 2. Revenue from completed payments
	err = db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0),
		COALESCE(SUM(amount_paid) FILTER (WHERE date_trunc('month', payment_date) = date_trunc('month', NOW())), 0)
		FROM payments WHERE status = 'completed'`).Scan(
		&dashboard.TotalRevenue, &dashboard.CurrentMonthRevenue)
	if err != nil {
		return nil, err
	}

	// 3. Invoice status breakdown
	rows, err := db.Query(`SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0), COALESCE(SUM(amount_due), 0)
		FROM invoices GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s models.InvoiceStatusSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount, &s.TotalDue); err != nil {
			return nil, err
		}
		dashboard.InvoiceStatuses = append(dashboard.InvoiceStatuses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 4. Sponsorship breakdown
	spRows, err := db.Query(`SELECT sponsorship_type, COUNT(*) FROM sponsorships GROUP BY sponsorship_type ORDER BY sponsorship_type`)
	if err != nil {
		return nil, err
	}
	defer spRows.Close()
	for spRows.Next() {
		var s models.SponsorshipSummary
		if err := spRows.Scan(&s.Type, &s.Count); err != nil {
			return nil, err
		}
		dashboard.Sponsorships = append(dashboard.Sponsorships, s)
	}
	if err := spRows.Err(); err != nil {
		return nil, err
	}

	// 5. Ten most recent payments
	payRows, err := db.Query(`SELECT p.id, p.invoice_id, s.first_name || ' ' || s.last_name,
		p.amount_paid, p.payment_method, TO_CHAR(p.payment_date, 'YYYY-MM-DD')
		FROM payments p
		JOIN students s ON p.student_id = s.id
		WHERE p.status = 'completed'
		ORDER BY p.payment_date DESC, p.created_at DESC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer payRows.Close()
	for payRows.Next() {
		var p models.RecentPayment
		if err := payRows.Scan(&p.ID, &p.InvoiceID, &p.StudentName, &p.AmountPaid, &p.PaymentMethod, &p.PaymentDate); err != nil {
			return nil, err
		}
		dashboard.RecentPayments = append(dashboard.RecentPayments, p)
	}
	if err := payRows.Err(); err != nil {
		return nil, err
	}

	// 6. Largest outstanding balances
	outRows, err := db.Query(`SELECT i.id, s.first_name || ' ' || s.last_name, COALESCE(c.name, ''),
		i.total_amount, i.amount_due, i.status
		FROM invoices i
		JOIN students s ON i.student_id = s.id
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE i.status != 'paid'
		ORDER BY i.amount_due DESC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer outRows.Close()
	for outRows.Next() {
		var o models.OutstandingInvoice
		if err := outRows.Scan(&o.ID, &o.StudentName, &o.ClassName, &o.TotalAmount, &o.AmountDue, &o.Status); err != nil {
			return nil, err
		}
		dashboard.OutstandingInvoices = append(dashboard.OutstandingInvoices, o)
	}
	if err := outRows.Err(); err != nil {
		return nil, err
	}

	// 7. Twelve-month revenue series
	monthRows, err := db.Query(`SELECT TO_CHAR(date_trunc('month', payment_date), 'YYYY-MM'), COALESCE(SUM(amount_paid), 0)
		FROM payments
		WHERE status = 'completed' AND payment_date >= date_trunc('month', NOW()) - INTERVAL '11 months'
		GROUP BY 1 ORDER BY 1`)
	if err != nil {
		return nil, err
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var m models.MonthlyRevenuePoint
		if err := monthRows.Scan(&m.Month, &m.Revenue); err != nil {
			return nil, err
		}
		dashboard.MonthlyRevenue = append(dashboard.MonthlyRevenue, m)
	}
	if err := monthRows.Err(); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// FinanceReport is the revenue report for a date range
type FinanceReport struct {
	From         string                     `json:"from"`
	To           string                     `json:"to"`
	TotalRevenue decimal.Decimal            `json:"total_revenue"`
	PaymentCount int                        `json:"payment_count"`
	Daily        []models.DailyRevenuePoint `json:"daily"`
	ByMethod     []models.MethodBreakdown   `json:"by_method"`
	ByClass      []models.ClassPerformance  `json:"by_class"`
}

// GetFinanceReport builds the revenue report between two dates (inclusive)
func GetFinanceReport(db *sql.DB, from, to string) (*FinanceReport, error) {
	report := &FinanceReport{From: from, To: to}

	err := db.QueryRow(`SELECT COALESCE(SUM(amount_paid), 0), COUNT(*)
		FROM payments
		WHERE status = 'completed' AND payment_date::date BETWEEN $1 AND $2`,
		from, to).Scan(&report.TotalRevenue, &report.PaymentCount)
	if err != nil {
		return nil, err
	}

	dayRows, err := db.Query(`SELECT TO_CHAR(payment_date::date, 'YYYY-MM-DD'), COALESCE(SUM(amount_paid), 0), COUNT(*)
		FROM payments
		WHERE status = 'completed' AND payment_date::date BETWEEN $1 AND $2
		GROUP BY payment_date::date ORDER BY payment_date::date`, from, to)
	if err != nil {
		return nil, err
	}
	defer dayRows.Close()
	for dayRows.Next() {
		var d models.DailyRevenuePoint
		if err := dayRows.Scan(&d.Date, &d.Revenue, &d.Count); err != nil {
			return nil, err
		}
		report.Daily = append(report.Daily, d)
	}
	if err := dayRows.Err(); err != nil {
		return nil, err
	}

	methodRows, err := db.Query(`SELECT payment_method, COALESCE(SUM(amount_paid), 0), COUNT(*)
		FROM payments
		WHERE status = 'completed' AND payment_date::date BETWEEN $1 AND $2
		GROUP BY payment_method ORDER BY payment_method`, from, to)
	if err != nil {
		return nil, err
	}
	defer methodRows.Close()
	for methodRows.Next() {
		var m models.MethodBreakdown
		if err := methodRows.Scan(&m.Method, &m.Total, &m.Count); err != nil {
			return nil, err
		}
		report.ByMethod = append(report.ByMethod, m)
	}
	if err := methodRows.Err(); err != nil {
		return nil, err
	}

	classRows, err := db.Query(`SELECT COALESCE(c.name, 'Unassigned'), COALESCE(SUM(p.amount_paid), 0), COUNT(*)
		FROM payments p
		JOIN students s ON p.student_id = s.id
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE p.status = 'completed' AND p.payment_date::date BETWEEN $1 AND $2
		GROUP BY c.name ORDER BY 2 DESC`, from, to)
	if err != nil {
		return nil, err
	}
	defer classRows.Close()
	for classRows.Next() {
		var cp models.ClassPerformance
		if err := classRows.Scan(&cp.ClassName, &cp.Total, &cp.Count); err != nil {
			return nil, err
		}
		report.ByClass = append(report.ByClass, cp)
	}
	return report, classRows.Err()
}
