package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func pay(amount string, status models.PaymentStatus) *models.Payment {
	return &models.Payment{AmountPaid: decimal.RequireFromString(amount), Status: status}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		payments   []*models.Payment
		wantDue    string
		wantStatus models.InvoiceStatus
	}{
		{"no payments", "550", nil, "550", models.InvoiceUnpaid},
		{"partial payment", "550", []*models.Payment{pay("200", models.PaymentCompleted)}, "350", models.InvoicePartial},
		{"exact payment settles", "550", []*models.Payment{pay("550", models.PaymentCompleted)}, "0", models.InvoicePaid},
		{"two payments settle", "550", []*models.Payment{pay("300", models.PaymentCompleted), pay("250", models.PaymentCompleted)}, "0", models.InvoicePaid},
		{"overpaid clamps due at zero", "550", []*models.Payment{pay("600", models.PaymentCompleted)}, "0", models.InvoicePaid},
		{"pending payments do not count", "550", []*models.Payment{pay("550", models.PaymentPending)}, "550", models.InvoiceUnpaid},
		{"failed payments do not count", "550", []*models.Payment{pay("550", models.PaymentFailed)}, "550", models.InvoiceUnpaid},
		{"refunded payments do not count", "550", []*models.Payment{pay("200", models.PaymentCompleted), pay("350", models.PaymentRefunded)}, "350", models.InvoicePartial},
		{"zero-total invoice is settled at creation", "0", nil, "0", models.InvoicePaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Reconcile(decimal.RequireFromString(tt.total), tt.payments)
			assert.True(t, res.AmountDue.Equal(decimal.RequireFromString(tt.wantDue)),
				"amount due = %s, want %s", res.AmountDue, tt.wantDue)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	total := decimal.RequireFromString("550")
	payments := []*models.Payment{pay("200", models.PaymentCompleted), pay("100", models.PaymentPending)}

	first := Reconcile(total, payments)
	second := Reconcile(total, payments)

	assert.True(t, first.AmountDue.Equal(second.AmountDue))
	assert.True(t, first.TotalPaid.Equal(second.TotalPaid))
	assert.Equal(t, first.Status, second.Status)
}

// Walks an invoice through the full lifecycle: pay off, delete the payment,
// pay partially. Status must follow in both directions.
func TestReconcileAfterPaymentMutations(t *testing.T) {
	total := decimal.RequireFromString("550")

	full := pay("550", models.PaymentCompleted)
	res := Reconcile(total, []*models.Payment{full})
	assert.Equal(t, models.InvoicePaid, res.Status)
	assert.True(t, res.AmountDue.IsZero())

	// Payment deleted: back to unpaid, due restored
	res = Reconcile(total, nil)
	assert.Equal(t, models.InvoiceUnpaid, res.Status)
	assert.True(t, res.AmountDue.Equal(total))

	// Payment edited downward: paid moves back to partial
	edited := pay("150", models.PaymentCompleted)
	res = Reconcile(total, []*models.Payment{edited})
	assert.Equal(t, models.InvoicePartial, res.Status)
	assert.True(t, res.AmountDue.Equal(decimal.RequireFromString("400")))
}

func TestReconcileInvariant(t *testing.T) {
	// amount_due == total_amount - sum(completed) for any payment mix
	total := decimal.RequireFromString("1000")
	payments := []*models.Payment{
		pay("100", models.PaymentCompleted),
		pay("250.50", models.PaymentCompleted),
		pay("400", models.PaymentPending),
		pay("99.50", models.PaymentCompleted),
	}

	res := Reconcile(total, payments)
	assert.True(t, res.TotalPaid.Equal(decimal.RequireFromString("450")))
	assert.True(t, res.AmountDue.Equal(total.Sub(res.TotalPaid)))
	assert.Equal(t, models.InvoicePartial, res.Status)
}
