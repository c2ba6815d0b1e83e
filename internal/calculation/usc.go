package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
)

// USCComputation is the Universal Social Charge outcome.
type USCComputation struct {
	Bands  []domain.TaxBandLine
	Exempt bool
	Total  decimal.Decimal
}

// ComputeUSC charges USC on gross income (not assessable income). Income
// at or below the exemption threshold is wholly exempt.
func ComputeUSC(grossIncome decimal.Decimal, rules domain.USCRules) USCComputation {
	if grossIncome.LessThanOrEqual(rules.ExemptionThreshold) {
		return USCComputation{Exempt: true, Total: decimal.Zero}
	}
	lines := sliceBands(grossIncome, rules.Bands)
	return USCComputation{Bands: lines, Total: sumBandTax(lines)}
}
