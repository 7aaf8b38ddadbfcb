package billing

import (
	"github.com/shopspring/decimal"

	"github.com/Mubarak149/alarabee-international-school-SMS/app/models"
)

var hundred = decimal.NewFromInt(100)

// DiscountRate returns the fraction of each fee line covered by the
// sponsorship (0 to 1), plus a warning when the record is malformed.
//
// A partial sponsorship without a percentage applies no discount rather than
// guessing; the warning is surfaced to the caller so staff can fix the
// record.
func DiscountRate(s *models.Sponsorship) (decimal.Decimal, string) {
	if s == nil {
		return decimal.Zero, ""
	}

	switch s.Type {
	case models.SponsorshipNone:
		return decimal.Zero, ""
	case models.SponsorshipFull:
		return decimal.NewFromInt(1), ""
	case models.SponsorshipPartial:
		if s.PercentageCovered == nil {
			return decimal.Zero, "partial sponsorship has no percentage set; billed full amount"
		}
		p := *s.PercentageCovered
		if p < 0 || p > 100 {
			return decimal.Zero, "partial sponsorship percentage out of range; billed full amount"
		}
		return decimal.NewFromInt(int64(p)).Div(hundred), ""
	case models.SponsorshipOther:
		// No defined discount semantics for "other"
		return decimal.Zero, ""
	default:
		return decimal.Zero, "unknown sponsorship type; billed full amount"
	}
}

// ApplyDiscount returns the billable amount for one fee line after the
// discount rate, rounded to the smallest currency unit.
func ApplyDiscount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(rate)).Round(2)
}
