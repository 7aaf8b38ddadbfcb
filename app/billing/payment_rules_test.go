package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func TestValidateNewPayment(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		amountDue string
		wantErr   error
	}{
		{"valid partial payment", "100", "550", nil},
		{"valid exact payment", "550", "550", nil},
		{"zero amount rejected", "0", "550", ErrInvalidAmount},
		{"negative amount rejected", "-50", "550", ErrInvalidAmount},
		{"overpayment rejected", "551", "550", ErrExceedsAmountDue},
		{"any amount against settled invoice rejected", "0.01", "0", ErrExceedsAmountDue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNewPayment(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.amountDue))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUpdatedPayment(t *testing.T) {
	// Invoice total 550 with a second completed payment of 200: the edited
	// payment may grow up to 350 regardless of its previous amount.
	total := decimal.RequireFromString("550")
	others := []*models.Payment{
		pay("200", models.PaymentCompleted),
		pay("999", models.PaymentFailed), // ignored
	}

	assert.NoError(t, ValidateUpdatedPayment(decimal.RequireFromString("350"), total, others))
	assert.NoError(t, ValidateUpdatedPayment(decimal.RequireFromString("1"), total, others))
	assert.ErrorIs(t, ValidateUpdatedPayment(decimal.RequireFromString("350.01"), total, others), ErrExceedsAmountDue)
	assert.ErrorIs(t, ValidateUpdatedPayment(decimal.Zero, total, others), ErrInvalidAmount)
}

func TestValidateUpdatedPaymentNoOthers(t *testing.T) {
	total := decimal.RequireFromString("550")

	assert.NoError(t, ValidateUpdatedPayment(total, total, nil))
	assert.ErrorIs(t, ValidateUpdatedPayment(total.Add(decimal.New(1, -2)), total, nil), ErrExceedsAmountDue)
}
