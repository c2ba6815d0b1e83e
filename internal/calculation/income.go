package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
)

// AggregateIncome combines the income streams into gross totals. Each
// derived stream is floored at zero. Spouse income is counted in the
// gross total only; it is covered by the widened joint band and never
// taxed separately.
func AggregateIncome(in domain.TaxInput) domain.IncomeBreakdown {
	scheduleE := money.FloorZero(
		money.Sum(in.Salary, in.Dividends, in.BenefitInKind).Sub(in.MileageAllowance))
	scheduleD := money.FloorZero(
		in.BusinessIncome.Sub(in.BusinessExpenses).Sub(in.CapitalAllowances))
	rental := money.FloorZero(in.RentalIncome.Sub(in.RentalExpenses))

	return domain.IncomeBreakdown{
		ScheduleE:    scheduleE,
		ScheduleD:    scheduleD,
		RentalProfit: rental,
		Foreign:      in.ForeignIncome,
		Other:        in.OtherIncome,
		Spouse:       in.SpouseIncome,
		GrossTotal: money.Round2(money.Sum(
			scheduleE, scheduleD, rental, in.ForeignIncome, in.OtherIncome, in.SpouseIncome)),
	}
}
