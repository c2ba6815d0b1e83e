package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// ComputeCGT nets losses against gains, deducts the annual exemption and
// charges the remainder at the flat rate.
func ComputeCGT(gains, losses decimal.Decimal, rules domain.CGTRules) domain.CGTResult {
	net := gains.Sub(losses)
	result := domain.CGTResult{
		Gains:     gains,
		Losses:    losses,
		NetGains:  net,
		Exemption: decimal.Zero,
		Taxable:   decimal.Zero,
		Payable:   decimal.Zero,
	}
	if !net.IsPositive() {
		return result
	}
	result.Exemption = money.Min(net, rules.AnnualExemption)
	result.Taxable = money.FloorZero(net.Sub(rules.AnnualExemption))
	result.Applicable = result.Taxable.IsPositive()
	result.Payable = money.ApplyRate(result.Taxable, rules.Rate)
	return result
}
