package calculation

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	statuses = []domain.MaritalStatus{domain.StatusSingle, domain.StatusMarried, domain.StatusCivilPartner, domain.StatusWidowed, domain.StatusSeparated}
	bases    = []domain.AssessmentBasis{domain.BasisSingle, domain.BasisJoint, domain.BasisSeparate}
)

func randAmount(rng *rand.Rand, max int64) decimal.Decimal {
	if rng.Intn(4) == 0 {
		return decimal.Zero
	}
	return decimal.New(rng.Int63n(max*100), -2)
}

func randomInput(rng *rand.Rand) domain.TaxInput {
	in := domain.TaxInput{
		MaritalStatus:            statuses[rng.Intn(len(statuses))],
		AssessmentBasis:          bases[rng.Intn(len(bases))],
		Salary:                   randAmount(rng, 250000),
		Dividends:                randAmount(rng, 50000),
		BenefitInKind:            randAmount(rng, 20000),
		BusinessIncome:           randAmount(rng, 100000),
		BusinessExpenses:         randAmount(rng, 100000),
		CapitalAllowances:        randAmount(rng, 20000),
		RentalIncome:             randAmount(rng, 40000),
		RentalExpenses:           randAmount(rng, 40000),
		ForeignIncome:            randAmount(rng, 10000),
		OtherIncome:              randAmount(rng, 10000),
		CapitalGains:             randAmount(rng, 50000),
		CapitalLosses:            randAmount(rng, 50000),
		PensionContributions:     randAmount(rng, 60000),
		MedicalExpenses:          randAmount(rng, 5000),
		RentPaid:                 randAmount(rng, 20000),
		CharitableDonations:      randAmount(rng, 1000),
		RemoteWorkingCosts:       randAmount(rng, 3000),
		SpouseIncome:             randAmount(rng, 80000),
		ClaimHomeCarer:           rng.Intn(2) == 0,
		ClaimSingleParent:        rng.Intn(2) == 0,
		HasOtherEmploymentIncome: rng.Intn(2) == 0,
		MileageAllowance:         randAmount(rng, 30000),
		PreliminaryTaxPaid:       randAmount(rng, 60000),
	}
	if rng.Intn(3) == 0 {
		in.BirthDate = day(1940+rng.Intn(60), time.Month(1+rng.Intn(12)), 1+rng.Intn(28)).Format("2006-01-02")
	}
	if rng.Intn(3) == 0 {
		in.SplitYear = &domain.SplitYear{
			ChangeDate: day(2025, 1, 1).AddDate(0, 0, rng.Intn(365)),
			PriorBasis: bases[rng.Intn(len(bases))],
		}
	}
	return in
}

func sumAmounts(lines []domain.TaxBandLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}

func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20250101))
	e := fixedEngine()

	for i := 0; i < 500; i++ {
		in := randomInput(rng)
		r := e.Compute(in)

		// Idempotence
		require.True(t, reflect.DeepEqual(r, e.Compute(in)), "case %d not idempotent", i)

		// Floors
		for name, v := range map[string]decimal.Decimal{
			"scheduleE":    r.Income.ScheduleE,
			"scheduleD":    r.Income.ScheduleD,
			"rentalProfit": r.Income.RentalProfit,
			"assessable":   r.AssessableIncome,
			"netIncomeTax": r.NetIncomeTax,
			"prsiPayable":  r.PRSI.Payable,
			"cgtPayable":   r.CGT.Payable,
		} {
			assert.False(t, v.IsNegative(), "case %d: %s negative (%s)", i, name, v)
		}
		for _, l := range append(append([]domain.TaxBandLine{}, r.IncomeTaxBands...), r.USCBands...) {
			assert.False(t, l.Tax.IsNegative(), "case %d: band %q tax negative", i, l.Label)
		}

		// Banding coverage
		assert.True(t, sumAmounts(r.IncomeTaxBands).Equal(r.AssessableIncome),
			"case %d: income tax bands cover %s of %s", i, sumAmounts(r.IncomeTaxBands), r.AssessableIncome)
		if !r.USCExempt {
			assert.True(t, sumAmounts(r.USCBands).Equal(r.Income.GrossTotal),
				"case %d: USC bands cover %s of %s", i, sumAmounts(r.USCBands), r.Income.GrossTotal)
		}

		// Summary round trip
		want := r.NetIncomeTax.Add(r.TotalUSC).Add(r.PRSI.Payable).Add(r.CGT.Payable).Round(2)
		assert.True(t, r.TotalLiability.Equal(want), "case %d: liability %s != %s", i, r.TotalLiability, want)
		assert.True(t, r.BalanceDue.Equal(r.TotalLiability.Sub(r.Prepaid).Round(2)))

		assert.Equal(t, in.SplitYear != nil, r.SplitYearApplied)
	}
}

func TestComputeIsSafeForConcurrentUse(t *testing.T) {
	e := fixedEngine()
	rng := rand.New(rand.NewSource(7))
	inputs := make([]domain.TaxInput, 50)
	want := make([]domain.TaxResult, len(inputs))
	for i := range inputs {
		inputs[i] = randomInput(rng)
		want[i] = e.Compute(inputs[i])
	}

	done := make(chan struct{})
	for w := 0; w < 8; w++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i, in := range inputs {
				if !reflect.DeepEqual(want[i], e.Compute(in)) {
					t.Errorf("concurrent compute diverged for case %d", i)
				}
			}
		}()
	}
	for w := 0; w < 8; w++ {
		<-done
	}
}
