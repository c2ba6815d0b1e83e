package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// ComputePRSI applies the Class S rate to assessable income. Below the
// threshold nothing is due; at or above it the minimum contribution is a
// floor. minimumApplied reports whether that floor was binding.
func ComputePRSI(assessable decimal.Decimal, rules domain.PRSIRules) (result domain.PRSIResult, minimumApplied bool) {
	if assessable.LessThan(rules.Threshold) {
		return domain.PRSIResult{Assessable: decimal.Zero, Calculated: decimal.Zero, Payable: decimal.Zero}, false
	}
	calculated := money.ApplyRate(assessable, rules.Rate)
	payable := money.Round2(money.Max(calculated, rules.Minimum))
	return domain.PRSIResult{
		Assessable: assessable,
		Calculated: calculated,
		Payable:    payable,
	}, calculated.LessThan(rules.Minimum)
}
