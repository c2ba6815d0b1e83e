package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidConstants is returned by TaxConstants.Validate.
var ErrInvalidConstants = errors.New("invalid tax constants")

// Band is one entry of an ascending banded table. Upper is inclusive; a
// nil Upper marks the open-ended final band.
type Band struct {
	Label string           `yaml:"label" json:"label"`
	Lower decimal.Decimal  `yaml:"lower" json:"lower"`
	Upper *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
	Rate  decimal.Decimal  `yaml:"rate" json:"rate"`
}

// OpenEnded reports whether the band has no upper bound.
func (b Band) OpenEnded() bool { return b.Upper == nil }

// AgeRate maps an inclusive upper age to a pension relief percentage
// of relevant earnings. A nil MaxAge is the catch-all bracket.
type AgeRate struct {
	MaxAge *int            `yaml:"max_age,omitempty" json:"maxAge,omitempty"`
	Rate   decimal.Decimal `yaml:"rate" json:"rate"`
}

// RateCutoffs holds the standard-rate band widths.
type RateCutoffs struct {
	Single decimal.Decimal `yaml:"single" json:"single"`
	// SecondEarnerCap is the most a jointly assessed spouse's income can
	// widen the standard-rate band.
	SecondEarnerCap decimal.Decimal `yaml:"second_earner_cap" json:"secondEarnerCap"`
}

// USCRules is the Universal Social Charge schedule.
type USCRules struct {
	ExemptionThreshold decimal.Decimal `yaml:"exemption_threshold" json:"exemptionThreshold"`
	Bands              []Band          `yaml:"bands" json:"bands"`
}

// PRSIRules is the Class S self-employed contribution.
type PRSIRules struct {
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Minimum   decimal.Decimal `yaml:"minimum" json:"minimum"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
}

// CreditAmounts are the flat tax credits.
type CreditAmounts struct {
	PersonalSingle  decimal.Decimal `yaml:"personal_single" json:"personalSingle"`
	PersonalMarried decimal.Decimal `yaml:"personal_married" json:"personalMarried"`
	EarnedIncome    decimal.Decimal `yaml:"earned_income" json:"earnedIncome"`
	Employee        decimal.Decimal `yaml:"employee" json:"employee"`
	HomeCarer       decimal.Decimal `yaml:"home_carer" json:"homeCarer"`
	SingleParent    decimal.Decimal `yaml:"single_parent" json:"singleParent"`
}

// RentCreditCaps caps the rent tax credit by household type.
type RentCreditCaps struct {
	Single  decimal.Decimal `yaml:"single" json:"single"`
	Married decimal.Decimal `yaml:"married" json:"married"`
}

// CGTRules holds the capital gains tax rate and annual exemption.
type CGTRules struct {
	Rate            decimal.Decimal `yaml:"rate" json:"rate"`
	AnnualExemption decimal.Decimal `yaml:"annual_exemption" json:"annualExemption"`
}

// TaxConstants is the full rule table for one tax year. It is built once
// and shared read-only across any number of computations.
type TaxConstants struct {
	TaxYear      int             `yaml:"tax_year" json:"taxYear"`
	RateCutoffs  RateCutoffs     `yaml:"rate_cutoffs" json:"rateCutoffs"`
	StandardRate decimal.Decimal `yaml:"standard_rate" json:"standardRate"`
	HigherRate   decimal.Decimal `yaml:"higher_rate" json:"higherRate"`

	USC     USCRules      `yaml:"usc" json:"usc"`
	PRSI    PRSIRules     `yaml:"prsi" json:"prsi"`
	Credits CreditAmounts `yaml:"credits" json:"credits"`

	PensionAgeBands    []AgeRate       `yaml:"pension_age_bands" json:"pensionAgeBands"`
	PensionEarningsCap decimal.Decimal `yaml:"pension_earnings_cap" json:"pensionEarningsCap"`

	MedicalReliefRate         decimal.Decimal `yaml:"medical_relief_rate" json:"medicalReliefRate"`
	RentCreditCaps            RentCreditCaps  `yaml:"rent_credit_caps" json:"rentCreditCaps"`
	RemoteWorkingRate         decimal.Decimal `yaml:"remote_working_rate" json:"remoteWorkingRate"`
	CharitableDonationMinimum decimal.Decimal `yaml:"charitable_donation_minimum" json:"charitableDonationMinimum"`

	CGT CGTRules `yaml:"cgt" json:"cgt"`

	MileageBIKBands []Band `yaml:"mileage_bik_bands" json:"mileageBikBands"`
}

// Validate checks that every banded table is ascending, contiguous where
// it is sliced progressively, and ends with an open-ended entry.
func (c TaxConstants) Validate() error {
	if err := validateBands("usc.bands", c.USC.Bands, true); err != nil {
		return err
	}
	if err := validateBands("mileage_bik_bands", c.MileageBIKBands, false); err != nil {
		return err
	}
	if len(c.PensionAgeBands) == 0 {
		return fmt.Errorf("%w: pension_age_bands is empty", ErrInvalidConstants)
	}
	prev := -1
	for i, b := range c.PensionAgeBands {
		last := i == len(c.PensionAgeBands)-1
		if b.MaxAge == nil {
			if !last {
				return fmt.Errorf("%w: pension_age_bands[%d] is open-ended but not last", ErrInvalidConstants, i)
			}
			continue
		}
		if last {
			return fmt.Errorf("%w: pension_age_bands must end with an open-ended bracket", ErrInvalidConstants)
		}
		if *b.MaxAge <= prev {
			return fmt.Errorf("%w: pension_age_bands[%d] is not ascending", ErrInvalidConstants, i)
		}
		prev = *b.MaxAge
	}
	if c.RateCutoffs.Single.IsNegative() || c.RateCutoffs.SecondEarnerCap.IsNegative() {
		return fmt.Errorf("%w: rate cutoffs cannot be negative", ErrInvalidConstants)
	}
	return nil
}

func validateBands(name string, bands []Band, contiguous bool) error {
	if len(bands) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConstants, name)
	}
	for i, b := range bands {
		last := i == len(bands)-1
		if b.OpenEnded() != last {
			if last {
				return fmt.Errorf("%w: %s must end with an open-ended band", ErrInvalidConstants, name)
			}
			return fmt.Errorf("%w: %s[%d] is open-ended but not last", ErrInvalidConstants, name, i)
		}
		if !last && b.Upper.LessThanOrEqual(b.Lower) {
			return fmt.Errorf("%w: %s[%d] upper bound must exceed lower bound", ErrInvalidConstants, name, i)
		}
		if i > 0 {
			prev := bands[i-1]
			if contiguous && !b.Lower.Equal(*prev.Upper) {
				return fmt.Errorf("%w: %s[%d] does not start where %s[%d] ends", ErrInvalidConstants, name, i, name, i-1)
			}
			if b.Lower.LessThan(*prev.Upper) {
				return fmt.Errorf("%w: %s[%d] is not ascending", ErrInvalidConstants, name, i)
			}
		}
	}
	return nil
}
