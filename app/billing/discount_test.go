package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

func intPtr(i int) *int { return &i }

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		name        string
		sponsorship *models.Sponsorship
		wantRate    string
		wantWarning bool
	}{
		{"no sponsorship record", nil, "0", false},
		{"type none", &models.Sponsorship{Type: models.SponsorshipNone}, "0", false},
		{"type full", &models.Sponsorship{Type: models.SponsorshipFull}, "1", false},
		{"type other has no discount semantics", &models.Sponsorship{Type: models.SponsorshipOther}, "0", false},
		{"partial 50 percent", &models.Sponsorship{Type: models.SponsorshipPartial, PercentageCovered: intPtr(50)}, "0.5", false},
		{"partial 100 percent", &models.Sponsorship{Type: models.SponsorshipPartial, PercentageCovered: intPtr(100)}, "1", false},
		{"partial with nil percentage bills full and warns", &models.Sponsorship{Type: models.SponsorshipPartial}, "0", true},
		{"partial with out of range percentage bills full and warns", &models.Sponsorship{Type: models.SponsorshipPartial, PercentageCovered: intPtr(150)}, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, warning := DiscountRate(tt.sponsorship)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"rate = %s, want %s", rate, tt.wantRate)
			if tt.wantWarning {
				assert.NotEmpty(t, warning)
			} else {
				assert.Empty(t, warning)
			}
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{"no discount", "500", "0", "500"},
		{"full discount", "500", "1", "0"},
		{"half discount", "550", "0.5", "275"},
		{"rounds to smallest currency unit", "99.99", "0.33", "66.99"},
		{"third of one hundred", "100", "0.3333", "66.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
