package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

// ValidateNewPayment checks a payment amount against the invoice's current
// amount due. Both checks run before anything is written.
func ValidateNewPayment(amount, amountDue decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(amountDue) {
		return ErrExceedsAmountDue
	}
	return nil
}

// ValidateUpdatedPayment checks an edited payment amount against the amount
// due recomputed without that payment's prior contribution: the new amount
// must fit in total_amount minus the other completed payments.
func ValidateUpdatedPayment(newAmount, totalAmount decimal.Decimal, otherPayments []*models.Payment) error {
	if newAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	otherPaid := decimal.Zero
	for _, p := range otherPayments {
		if p.Status == models.PaymentCompleted {
			otherPaid = otherPaid.Add(p.AmountPaid)
		}
	}
	remaining := totalAmount.Sub(otherPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	if newAmount.GreaterThan(remaining) {
		return ErrExceedsAmountDue
	}
	return nil
}
