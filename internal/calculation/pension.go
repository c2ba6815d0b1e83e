package calculation

import (
	"fmt"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// PensionReliefRate returns the age-indexed percentage of relevant
// earnings that may be relieved.
func PensionReliefRate(age int, bands []domain.AgeRate) decimal.Decimal {
	band, ok := lookupBand(bands, decimal.NewFromInt(int64(age)), ageUpper)
	if !ok {
		return decimal.Zero
	}
	return band.Rate
}

// ResolvePensionRelief caps the claimed contributions at the age-indexed
// limit. The returned warning is empty unless the claim was reduced.
func ResolvePensionRelief(in domain.TaxInput, age int, c domain.TaxConstants) (domain.PensionRelief, string) {
	rate := PensionReliefRate(age, c.PensionAgeBands)
	earnings := money.Min(money.FloorZero(in.Salary.Add(in.BusinessIncome)), c.PensionEarningsCap)
	maxRelief := money.ApplyRate(earnings, rate)
	claimed := money.FloorZero(in.PensionContributions)
	granted := money.Min(claimed, maxRelief)

	relief := domain.PensionRelief{
		Age:              age,
		Rate:             rate,
		RelevantEarnings: earnings,
		Claimed:          claimed,
		MaxAllowable:     maxRelief,
		Granted:          granted,
	}
	if granted.LessThan(claimed) {
		return relief, fmt.Sprintf(
			"Pension relief capped at %s of relevant earnings for age %d: %s granted of %s claimed",
			money.Percent(rate), age, money.Euro(granted), money.Euro(claimed))
	}
	return relief, ""
}
