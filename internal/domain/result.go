package domain

import "github.com/shopspring/decimal"

// TaxBandLine is one row of a banded computation.
type TaxBandLine struct {
	Label  string          `yaml:"label" json:"label"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
	Tax    decimal.Decimal `yaml:"tax" json:"tax"`
}

// CreditLine is one tax credit granted.
type CreditLine struct {
	Label  string          `yaml:"label" json:"label"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// IncomeBreakdown is the gross income by source.
type IncomeBreakdown struct {
	ScheduleE    decimal.Decimal `yaml:"schedule_e" json:"scheduleE"`
	ScheduleD    decimal.Decimal `yaml:"schedule_d" json:"scheduleD"`
	RentalProfit decimal.Decimal `yaml:"rental_profit" json:"rentalProfit"`
	Foreign      decimal.Decimal `yaml:"foreign" json:"foreign"`
	Other        decimal.Decimal `yaml:"other" json:"other"`
	Spouse       decimal.Decimal `yaml:"spouse" json:"spouse"`
	GrossTotal   decimal.Decimal `yaml:"gross_total" json:"grossTotal"`
}

// PensionRelief records how the pension deduction was resolved.
type PensionRelief struct {
	Age              int             `yaml:"age" json:"age"`
	Rate             decimal.Decimal `yaml:"rate" json:"rate"`
	RelevantEarnings decimal.Decimal `yaml:"relevant_earnings" json:"relevantEarnings"`
	Claimed          decimal.Decimal `yaml:"claimed" json:"claimed"`
	MaxAllowable     decimal.Decimal `yaml:"max_allowable" json:"maxAllowable"`
	Granted          decimal.Decimal `yaml:"granted" json:"granted"`
}

// PRSIResult is the Class S contribution triad.
type PRSIResult struct {
	Assessable decimal.Decimal `yaml:"assessable" json:"assessable"`
	Calculated decimal.Decimal `yaml:"calculated" json:"calculated"`
	Payable    decimal.Decimal `yaml:"payable" json:"payable"`
}

// CGTResult is the capital gains computation.
type CGTResult struct {
	Applicable bool            `yaml:"applicable" json:"applicable"`
	Gains      decimal.Decimal `yaml:"gains" json:"gains"`
	Losses     decimal.Decimal `yaml:"losses" json:"losses"`
	NetGains   decimal.Decimal `yaml:"net_gains" json:"netGains"`
	Exemption  decimal.Decimal `yaml:"exemption" json:"exemption"`
	Taxable    decimal.Decimal `yaml:"taxable" json:"taxable"`
	Payable    decimal.Decimal `yaml:"payable" json:"payable"`
}

// TaxResult carries every figure of a completed computation.
type TaxResult struct {
	TaxYear int    `yaml:"tax_year" json:"taxYear"`
	Name    string `yaml:"name" json:"name"`
	PPSN    string `yaml:"ppsn" json:"ppsn"`

	Income           IncomeBreakdown `yaml:"income" json:"income"`
	PensionRelief    PensionRelief   `yaml:"pension_relief" json:"pensionRelief"`
	TotalDeductions  decimal.Decimal `yaml:"total_deductions" json:"totalDeductions"`
	AssessableIncome decimal.Decimal `yaml:"assessable_income" json:"assessableIncome"`

	RateCutoff     decimal.Decimal `yaml:"rate_cutoff" json:"rateCutoff"`
	IncomeTaxBands []TaxBandLine   `yaml:"income_tax_bands" json:"incomeTaxBands"`
	GrossIncomeTax decimal.Decimal `yaml:"gross_income_tax" json:"grossIncomeTax"`
	Credits        []CreditLine    `yaml:"credits" json:"credits"`
	TotalCredits   decimal.Decimal `yaml:"total_credits" json:"totalCredits"`
	NetIncomeTax   decimal.Decimal `yaml:"net_income_tax" json:"netIncomeTax"`

	USCBands  []TaxBandLine   `yaml:"usc_bands" json:"uscBands"`
	USCExempt bool            `yaml:"usc_exempt" json:"uscExempt"`
	TotalUSC  decimal.Decimal `yaml:"total_usc" json:"totalUsc"`

	PRSI PRSIResult `yaml:"prsi" json:"prsi"`
	CGT  CGTResult  `yaml:"cgt" json:"cgt"`

	TotalLiability decimal.Decimal `yaml:"total_liability" json:"totalLiability"`
	Prepaid        decimal.Decimal `yaml:"prepaid" json:"prepaid"`
	// BalanceDue is negative when the taxpayer has overpaid.
	BalanceDue decimal.Decimal `yaml:"balance_due" json:"balanceDue"`

	SplitYearApplied bool   `yaml:"split_year_applied" json:"splitYearApplied"`
	SplitYearNote    string `yaml:"split_year_note,omitempty" json:"splitYearNote,omitempty"`

	Warnings []string `yaml:"warnings" json:"warnings"`
	Notes    []string `yaml:"notes" json:"notes"`
}

// IsRefund reports whether the computation ends in an overpayment.
func (r TaxResult) IsRefund() bool { return r.BalanceDue.IsNegative() }
