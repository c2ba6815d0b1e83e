package calculation

import (
	"testing"

	"github.com/rgehrsitz/form11/internal/domain"
)

func TestAggregateIncome(t *testing.T) {
	tests := []struct {
		name                                   string
		in                                     domain.TaxInput
		scheduleE, scheduleD, rental, gross string
	}{
		{
			name:      "salary only",
			in:        domain.TaxInput{Salary: amt("30000")},
			scheduleE: "30000", scheduleD: "0", rental: "0", gross: "30000",
		},
		{
			name: "all streams",
			in: domain.TaxInput{
				Salary: amt("50000"), Dividends: amt("5000"), BenefitInKind: amt("3000"), MileageAllowance: amt("1000"),
				BusinessIncome: amt("20000"), BusinessExpenses: amt("4000"), CapitalAllowances: amt("1000"),
				RentalIncome: amt("12000"), RentalExpenses: amt("2000"),
				ForeignIncome: amt("700"), OtherIncome: amt("300"), SpouseIncome: amt("15000"),
			},
			scheduleE: "57000", scheduleD: "15000", rental: "10000", gross: "98000",
		},
		{
			name:      "mileage allowance cannot make employment income negative",
			in:        domain.TaxInput{Salary: amt("500"), MileageAllowance: amt("2000")},
			scheduleE: "0", scheduleD: "0", rental: "0", gross: "0",
		},
		{
			name:      "trading loss floored",
			in:        domain.TaxInput{BusinessIncome: amt("1000"), BusinessExpenses: amt("3000"), OtherIncome: amt("100")},
			scheduleE: "0", scheduleD: "0", rental: "0", gross: "100",
		},
		{
			name:      "rental loss floored",
			in:        domain.TaxInput{RentalIncome: amt("1000"), RentalExpenses: amt("1500")},
			scheduleE: "0", scheduleD: "0", rental: "0", gross: "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateIncome(tt.in)
			assertMoney(t, tt.scheduleE, got.ScheduleE, "schedule E")
			assertMoney(t, tt.scheduleD, got.ScheduleD, "schedule D")
			assertMoney(t, tt.rental, got.RentalProfit, "rental")
			assertMoney(t, tt.gross, got.GrossTotal, "gross")
		})
	}
}
