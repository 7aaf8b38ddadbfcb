package models

import "github.com/shopspring/decimal"

// FinanceDashboard aggregates the key billing metrics shown on the finance
// dashboard.
type FinanceDashboard struct {
	TotalStudents       int                    `json:"total_students"`
	TotalInvoices       int                    `json:"total_invoices"`
	PendingInvoices     int                    `json:"pending_invoices"`
	TotalRevenue        decimal.Decimal        `json:"total_revenue"`
	CurrentMonthRevenue decimal.Decimal        `json:"current_month_revenue"`
	InvoiceStatuses     []InvoiceStatusSummary `json:"invoice_statuses"`
	Sponsorships        []SponsorshipSummary   `json:"sponsorships"`
	RecentPayments      []RecentPayment        `json:"recent_payments"`
	OutstandingInvoices []OutstandingInvoice   `json:"outstanding_invoices"`
	MonthlyRevenue      []MonthlyRevenuePoint  `json:"monthly_revenue"`
}

// InvoiceStatusSummary is one row of the per-status invoice breakdown.
type InvoiceStatusSummary struct {
	Status      InvoiceStatus   `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalDue    decimal.Decimal `json:"total_due"`
}

// SponsorshipSummary counts sponsorships per type.
type SponsorshipSummary struct {
	Type  SponsorshipType `json:"sponsorship_type"`
	Count int             `json:"count"`
}

// RecentPayment is a dashboard row for the latest payments received.
type RecentPayment struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	StudentName   string          `json:"student_name"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
}

// OutstandingInvoice is a dashboard row for invoices with the largest
// balances still due.
type OutstandingInvoice struct {
	ID          string          `json:"id"`
	StudentName string          `json:"student_name"`
	ClassName   string          `json:"class_name"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	Status      InvoiceStatus   `json:"status"`
}

// MonthlyRevenuePoint is one point of the revenue chart series.
type MonthlyRevenuePoint struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailyRevenuePoint is one day of a revenue report.
type DailyRevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

// MethodBreakdown is revenue grouped by payment method.
type MethodBreakdown struct {
	Method PaymentMethod   `json:"payment_method"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

// ClassPerformance is revenue grouped by the paying student's class.
type ClassPerformance struct {
	ClassName string          `json:"class_name"`
	Total     decimal.Decimal `json:"total"`
	Count     int             `json:"count"`
}
