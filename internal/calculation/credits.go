package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// ResolveCredits lists every credit the taxpayer qualifies for, in
// display order. Each credit is gated independently.
func ResolveCredits(in domain.TaxInput, c domain.TaxConstants) []domain.CreditLine {
	var credits []domain.CreditLine
	add := func(label string, amount decimal.Decimal) {
		credits = append(credits, domain.CreditLine{Label: label, Amount: amount})
	}

	coupled := in.MaritalStatus.IsCoupled()
	if coupled {
		add("Personal tax credit (married / civil partner)", c.Credits.PersonalMarried)
	} else {
		add("Personal tax credit (single)", c.Credits.PersonalSingle)
	}
	add("Earned income tax credit", c.Credits.EarnedIncome)
	if in.HasOtherEmploymentIncome {
		add("Employee tax credit", c.Credits.Employee)
	}
	if in.ClaimHomeCarer {
		add("Home carer tax credit", c.Credits.HomeCarer)
	}
	if in.ClaimSingleParent {
		add("Single person child carer credit", c.Credits.SingleParent)
	}
	if in.MedicalExpenses.IsPositive() {
		add("Health expenses relief", money.ApplyRate(in.MedicalExpenses, c.MedicalReliefRate))
	}
	if in.RentPaid.IsPositive() {
		rentCap := c.RentCreditCaps.Single
		if coupled {
			rentCap = c.RentCreditCaps.Married
		}
		add("Rent tax credit", money.Min(in.RentPaid, rentCap))
	}
	if in.RemoteWorkingCosts.IsPositive() {
		add("Remote working relief", money.ApplyRate(in.RemoteWorkingCosts, c.RemoteWorkingRate))
	}
	return credits
}

// TotalCredits sums credit lines.
func TotalCredits(credits []domain.CreditLine) decimal.Decimal {
	total := decimal.Zero
	for _, cr := range credits {
		total = total.Add(cr.Amount)
	}
	return money.Round2(total)
}
