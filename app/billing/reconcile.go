package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// ReconcileResult is the recomputed derived state of an invoice.
type ReconcileResult struct {
	TotalPaid decimal.Decimal
	AmountDue decimal.Decimal
	Status    models.InvoiceStatus
}

// Reconcile recomputes an invoice's amount due and status from its total and
// the full payment set. Only completed payments count. The state is derived
// from scratch on every call, never patched incrementally, so calling it
// twice with the same inputs is a no-op and no mutation path can drift it.
//
// Invariant: amount_due == total_amount - totalPaid, clamped at zero.
func Reconcile(totalAmount decimal.Decimal, payments []*models.Payment) ReconcileResult {
	totalPaid := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentCompleted {
			totalPaid = totalPaid.Add(p.AmountPaid)
		}
	}

	amountDue := totalAmount.Sub(totalPaid)
	if amountDue.IsNegative() {
		amountDue = decimal.Zero
	}

	var status models.InvoiceStatus
	switch {
	case !totalAmount.IsPositive():
		// Zero-total invoices (full sponsorship) are settled at creation.
		status = models.InvoicePaid
	case totalPaid.LessThanOrEqual(decimal.Zero):
		status = models.InvoiceUnpaid
	case totalPaid.GreaterThanOrEqual(totalAmount):
		status = models.InvoicePaid
	default:
		status = models.InvoicePartial
	}

	return ReconcileResult{TotalPaid: totalPaid, AmountDue: amountDue, Status: status}
}
