package calculation

import (
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	NopLogger
	warnings []string
	debug    int
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, format)
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.debug++ }

func TestEngine_SetLogger(t *testing.T) {
	e := fixedEngine()
	rec := &recordingLogger{}
	e.SetLogger(rec)

	in := singleSalary("10000")
	in.PensionContributions = amt("15000")
	e.Compute(in)
	assert.Len(t, rec.warnings, 1)
	assert.Equal(t, 1, rec.debug)

	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.logger)
}

func TestEngine_ClockFallsBackToPackageNow(t *testing.T) {
	defer SetNowFunc(time.Now)
	SetNowFunc(func() time.Time { return day(2025, 1, 1) })

	e := NewEngine(domain.DefaultConstants2025())
	in := singleSalary("50000")
	in.BirthDate = "1985-06-30"
	assert.Equal(t, 39, e.Compute(in).PensionRelief.Age)

	e.SetClock(func() time.Time { return day(2025, 7, 1) })
	assert.Equal(t, 40, e.Compute(in).PensionRelief.Age)
}

// Scenario 1: single person on 30,000 salary.
func TestCompute_SingleSalaryStandardRateOnly(t *testing.T) {
	r := fixedEngine().Compute(singleSalary("30000"))

	require.Len(t, r.IncomeTaxBands, 1)
	assertMoney(t, "30000", r.IncomeTaxBands[0].Amount)
	assertMoney(t, "6000", r.GrossIncomeTax)
	assertMoney(t, "4000", r.TotalCredits)
	assertMoney(t, "2000", r.NetIncomeTax)
	assert.False(t, r.USCExempt)
	assertMoney(t, "446", r.TotalUSC)
	assertMoney(t, "1260", r.PRSI.Payable)
	assertMoney(t, "3706", r.TotalLiability)
	assertMoney(t, "3706", r.BalanceDue)
	assert.False(t, r.SplitYearApplied)
	assert.Empty(t, r.SplitYearNote)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Notes)
}

// Scenario 2: single person on 60,000 salary.
func TestCompute_SingleSalaryTwoBands(t *testing.T) {
	r := fixedEngine().Compute(singleSalary("60000"))

	require.Len(t, r.IncomeTaxBands, 2)
	assertMoney(t, "44000", r.IncomeTaxBands[0].Amount)
	assertMoney(t, "8800", r.IncomeTaxBands[0].Tax)
	assertMoney(t, "16000", r.IncomeTaxBands[1].Amount)
	assertMoney(t, "6400", r.IncomeTaxBands[1].Tax)
	assertMoney(t, "15200", r.GrossIncomeTax)
}

// Scenario 3: jointly assessed married couple.
func TestCompute_MarriedJointWidensCutoff(t *testing.T) {
	in := domain.TaxInput{
		MaritalStatus:   domain.StatusMarried,
		AssessmentBasis: domain.BasisJoint,
		Salary:          amt("70000"),
		SpouseIncome:    amt("20000"),
	}
	r := fixedEngine().Compute(in)

	assertMoney(t, "64000", r.RateCutoff)
	assertMoney(t, "90000", r.Income.GrossTotal)
	require.Len(t, r.IncomeTaxBands, 2)
	assertMoney(t, "64000", r.IncomeTaxBands[0].Amount)
	assertMoney(t, "26000", r.IncomeTaxBands[1].Amount)
	assertMoney(t, "4000", r.Credits[0].Amount)
}

// Scenario 4: pension contribution above the age-indexed limit.
func TestCompute_PensionReliefCapped(t *testing.T) {
	in := singleSalary("10000")
	in.BirthDate = "1990-01-01"
	in.PensionContributions = amt("15000")
	r := fixedEngine().Compute(in)

	assert.Equal(t, 35, r.PensionRelief.Age)
	assertMoney(t, "0.20", r.PensionRelief.Rate)
	assertMoney(t, "2000", r.PensionRelief.MaxAllowable)
	assertMoney(t, "2000", r.TotalDeductions)
	assertMoney(t, "8000", r.AssessableIncome)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "€2000.00 granted")

	// PRSI minimum floor binds on 8,000 assessable.
	assertMoney(t, "336", r.PRSI.Calculated)
	assertMoney(t, "500", r.PRSI.Payable)
	assert.True(t, containsPrefix(r.Notes, "PRSI minimum contribution"))
	// Gross of 10,000 is within the USC exemption.
	assert.True(t, r.USCExempt)
}

// Scenario 5: capital gains above the annual exemption.
func TestCompute_CapitalGains(t *testing.T) {
	in := singleSalary("0")
	in.CapitalGains = amt("11270")
	r := fixedEngine().Compute(in)

	assert.True(t, r.CGT.Applicable)
	assertMoney(t, "10000", r.CGT.Taxable)
	assertMoney(t, "3300", r.CGT.Payable)
	assertMoney(t, "3300", r.TotalLiability)
}

// Scenario 6: income exactly at the USC exemption threshold.
func TestCompute_USCExemptAtThreshold(t *testing.T) {
	r := fixedEngine().Compute(singleSalary("13000"))

	assert.True(t, r.USCExempt)
	assert.Empty(t, r.USCBands)
	assert.True(t, r.TotalUSC.IsZero())
	assert.True(t, containsPrefix(r.Notes, "Gross income of €13000.00 does not exceed"))
}

func TestCompute_SplitYear(t *testing.T) {
	in := domain.TaxInput{
		MaritalStatus:   domain.StatusMarried,
		AssessmentBasis: domain.BasisJoint,
		Salary:          amt("70000"),
		SpouseIncome:    amt("20000"),
		SplitYear:       &domain.SplitYear{ChangeDate: day(2025, 7, 1), PriorBasis: domain.BasisSingle},
	}
	r := fixedEngine().Compute(in)

	assert.True(t, r.SplitYearApplied)
	assertMoney(t, "54082", r.RateCutoff)
	assert.NotEmpty(t, r.SplitYearNote)
	assert.Contains(t, r.Notes, r.SplitYearNote)
	require.Len(t, r.IncomeTaxBands, 2)
	assertMoney(t, "54082", r.IncomeTaxBands[0].Amount)
	assertMoney(t, "35918", r.IncomeTaxBands[1].Amount)
}

func TestCompute_SplitYearFirstJanuaryMatchesNoSplit(t *testing.T) {
	base := domain.TaxInput{
		MaritalStatus:   domain.StatusMarried,
		AssessmentBasis: domain.BasisJoint,
		Salary:          amt("70000"),
		SpouseIncome:    amt("20000"),
	}
	withSplit := base
	withSplit.SplitYear = &domain.SplitYear{ChangeDate: day(2025, 1, 1), PriorBasis: domain.BasisSeparate}

	e := fixedEngine()
	plain, split := e.Compute(base), e.Compute(withSplit)

	assert.True(t, plain.RateCutoff.Equal(split.RateCutoff))
	assert.True(t, plain.TotalLiability.Equal(split.TotalLiability))
	assert.False(t, plain.SplitYearApplied)
	assert.True(t, split.SplitYearApplied)
}

func TestCompute_RefundKeepsNegativeBalance(t *testing.T) {
	in := singleSalary("30000")
	in.PreliminaryTaxPaid = amt("5000")
	r := fixedEngine().Compute(in)

	assertMoney(t, "-1294", r.BalanceDue)
	assert.True(t, r.IsRefund())
	assert.True(t, containsPrefix(r.Notes, "Overpayment: €1294.00 is refundable"))
}

func TestCompute_CreditsNeverCreateRefund(t *testing.T) {
	in := singleSalary("14000")
	in.ClaimHomeCarer = true
	in.RentPaid = amt("1000")
	r := fixedEngine().Compute(in)

	assertMoney(t, "2800", r.GrossIncomeTax)
	assertMoney(t, "6950", r.TotalCredits)
	assert.True(t, r.NetIncomeTax.IsZero())
}

func TestCompute_CharitableDonationBelowMinimumWarns(t *testing.T) {
	in := singleSalary("40000")
	in.CharitableDonations = amt("200")
	r := fixedEngine().Compute(in)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "below the €250.00 minimum")

	in.CharitableDonations = amt("250")
	assert.Empty(t, fixedEngine().Compute(in).Warnings)
}

func TestCompute_MileageAllowanceNote(t *testing.T) {
	in := singleSalary("40000")
	in.MileageAllowance = amt("1500")
	r := fixedEngine().Compute(in)

	assertMoney(t, "38500", r.Income.ScheduleE)
	assert.True(t, containsPrefix(r.Notes, "Mileage allowance of €1500.00"))
}

func TestCompute_UnreadableBirthDateWarns(t *testing.T) {
	in := singleSalary("40000")
	in.BirthDate = "not-a-date"
	r := fixedEngine().Compute(in)

	assert.Equal(t, DefaultAge, r.PensionRelief.Age)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "could not be read")
}

func TestCompute_DirectorWithEverything(t *testing.T) {
	in := domain.TaxInput{
		Name:                 "Aoife Director",
		PPSN:                 "7654321A",
		BirthDate:            "1975-03-14",
		MaritalStatus:        domain.StatusMarried,
		AssessmentBasis:      domain.BasisJoint,
		Salary:               amt("85000"),
		Dividends:            amt("10000"),
		BenefitInKind:        amt("6000"),
		BusinessIncome:       amt("12000"),
		BusinessExpenses:     amt("2000"),
		RentalIncome:         amt("9000"),
		RentalExpenses:       amt("3000"),
		SpouseIncome:         amt("25000"),
		PensionContributions: amt("15000"),
		MedicalExpenses:      amt("800"),
		RentPaid:             amt("0"),
		CapitalGains:         amt("5000"),
		CapitalLosses:        amt("1000"),
		PreliminaryTaxPaid:   amt("20000"),
	}
	r := fixedEngine().Compute(in)

	// Gross: E 101000 + D 10000 + rental 6000 + spouse 25000
	assertMoney(t, "142000", r.Income.GrossTotal)
	// Age 50: 30% of (85000 + 12000) = 29100, claim 15000 within limit
	assertMoney(t, "15000", r.PensionRelief.Granted)
	assertMoney(t, "127000", r.AssessableIncome)
	assertMoney(t, "69000", r.RateCutoff)
	// 69000 @ 20% + 58000 @ 40%
	assertMoney(t, "37000", r.GrossIncomeTax)
	assertMoney(t, "6160", r.TotalCredits)
	assertMoney(t, "30840", r.NetIncomeTax)
	// CGT: 4000 net - 1270 = 2730 @ 33%
	assertMoney(t, "900.90", r.CGT.Payable)
	assertMoney(t, "5334", r.PRSI.Payable)
	assert.Empty(t, r.Warnings)
}

func containsPrefix(lines []string, prefix string) bool {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}
