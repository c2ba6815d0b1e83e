package calculation

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// Logger receives the engine's warnings and per-computation debug line.
// *zap.SugaredLogger satisfies it; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// nowFunc is the clock used by engines without their own (override in tests).
var nowFunc = time.Now

// SetNowFunc overrides the package clock (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// Engine computes self-assessment liabilities against one constants table.
// It holds no per-computation state and is safe for concurrent use once
// configured.
type Engine struct {
	Constants domain.TaxConstants
	logger    Logger
	now       func() time.Time
}

// NewEngine creates an engine for the given rule table.
func NewEngine(constants domain.TaxConstants) *Engine {
	return &Engine{Constants: constants, logger: NopLogger{}}
}

// SetLogger sets the logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.logger = NopLogger{}
		return
	}
	e.logger = l
}

// SetClock fixes the reference instant used to resolve the taxpayer's age.
// A nil clock falls back to the package time provider.
func (e *Engine) SetClock(now func() time.Time) { e.now = now }

func (e *Engine) clock() time.Time {
	if e.now != nil {
		return e.now()
	}
	return nowFunc()
}

// Compute runs the full pipeline for one return.
func Compute(in domain.TaxInput, constants domain.TaxConstants) domain.TaxResult {
	return NewEngine(constants).Compute(in)
}

// VehicleBenefitInKind values a company car against the engine's mileage bands.
func (e *Engine) VehicleBenefitInKind(originalMarketValue, annualBusinessKm decimal.Decimal) decimal.Decimal {
	return VehicleBenefitInKind(originalMarketValue, annualBusinessKm, e.Constants.MileageBIKBands)
}

// Compute runs the full pipeline for one return. Every stage reads only
// the input and the constants; the result is assembled once and never
// modified afterwards.
func (e *Engine) Compute(in domain.TaxInput) domain.TaxResult {
	c := e.Constants
	result := domain.TaxResult{
		TaxYear:  c.TaxYear,
		Name:     in.Name,
		PPSN:     in.PPSN,
		Warnings: []string{},
		Notes:    []string{},
	}
	warn := func(msg string) {
		e.logger.Warnf("%s: %s", in.PPSN, msg)
		result.Warnings = append(result.Warnings, msg)
	}
	note := func(msg string) {
		result.Notes = append(result.Notes, msg)
	}

	// Income
	result.Income = AggregateIncome(in)
	if in.MileageAllowance.IsPositive() {
		note(fmt.Sprintf("Mileage allowance of %s deducted from Schedule E income", money.Euro(in.MileageAllowance)))
	}

	// Deductions
	age, err := resolveAge(in.BirthDate, e.clock())
	if err != nil {
		warn(fmt.Sprintf("Birth date %q could not be read; age %d assumed for pension relief", in.BirthDate, DefaultAge))
	}
	relief, reliefWarning := ResolvePensionRelief(in, age, c)
	if reliefWarning != "" {
		warn(reliefWarning)
	}
	result.PensionRelief = relief
	result.TotalDeductions = relief.Granted
	result.AssessableIncome = money.FloorZero(result.Income.GrossTotal.Sub(result.TotalDeductions))

	// Rate band
	if in.SplitYear != nil {
		split := ApportionSplitYear(in, *in.SplitYear, c.RateCutoffs)
		result.RateCutoff = split.Blended
		result.SplitYearApplied = true
		result.SplitYearNote = split.Note
		note(split.Note)
	} else {
		result.RateCutoff = ResolveRateCutoff(in.AssessmentBasis, in.MaritalStatus, in.SpouseIncome, c.RateCutoffs)
	}

	// Income tax and credits
	result.IncomeTaxBands = IncomeTaxBands(result.AssessableIncome, result.RateCutoff, c)
	result.GrossIncomeTax = sumBandTax(result.IncomeTaxBands)
	result.Credits = ResolveCredits(in, c)
	result.TotalCredits = TotalCredits(result.Credits)
	result.NetIncomeTax = money.FloorZero(result.GrossIncomeTax.Sub(result.TotalCredits))

	// USC
	usc := ComputeUSC(result.Income.GrossTotal, c.USC)
	result.USCBands = usc.Bands
	result.USCExempt = usc.Exempt
	result.TotalUSC = usc.Total
	if usc.Exempt {
		note(fmt.Sprintf("Gross income of %s does not exceed the USC exemption threshold of %s; no USC is payable",
			money.Euro(result.Income.GrossTotal), money.Euro(c.USC.ExemptionThreshold)))
	}

	// PRSI
	prsi, minimumApplied := ComputePRSI(result.AssessableIncome, c.PRSI)
	result.PRSI = prsi
	if minimumApplied {
		note(fmt.Sprintf("PRSI minimum contribution of %s applies (calculated %s at %s)",
			money.Euro(c.PRSI.Minimum), money.Euro(prsi.Calculated), money.Percent(c.PRSI.Rate)))
	}

	// CGT
	result.CGT = ComputeCGT(in.CapitalGains, in.CapitalLosses, c.CGT)

	// Summary
	result.TotalLiability = money.Round2(money.Sum(
		result.NetIncomeTax, result.TotalUSC, result.PRSI.Payable, result.CGT.Payable))
	result.Prepaid = in.PreliminaryTaxPaid
	result.BalanceDue = money.Round2(result.TotalLiability.Sub(result.Prepaid))
	if result.BalanceDue.IsNegative() {
		note(fmt.Sprintf("Overpayment: %s is refundable", money.Euro(result.BalanceDue.Neg())))
	}
	if in.CharitableDonations.IsPositive() && in.CharitableDonations.LessThan(c.CharitableDonationMinimum) {
		warn(fmt.Sprintf("Charitable donations of %s are below the %s minimum; no relief is computed for them",
			money.Euro(in.CharitableDonations), money.Euro(c.CharitableDonationMinimum)))
	}

	e.logger.Debugf("%s: assessable=%s cutoff=%s incomeTax=%s usc=%s prsi=%s cgt=%s liability=%s balance=%s",
		in.PPSN, result.AssessableIncome, result.RateCutoff, result.NetIncomeTax, result.TotalUSC,
		result.PRSI.Payable, result.CGT.Payable, result.TotalLiability, result.BalanceDue)
	return result
}
