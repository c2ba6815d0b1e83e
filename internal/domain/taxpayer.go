package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rgehrsitz/form11/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// MaritalStatus is the taxpayer's civil status for the year of assessment.
type MaritalStatus string

const (
	StatusSingle       MaritalStatus = "single"
	StatusMarried      MaritalStatus = "married"
	StatusCivilPartner MaritalStatus = "civil_partner"
	StatusWidowed      MaritalStatus = "widowed"
	StatusSeparated    MaritalStatus = "separated"
)

// IsCoupled reports whether the status attracts the married-couple
// personal credit and rent credit cap.
func (s MaritalStatus) IsCoupled() bool {
	return s == StatusMarried || s == StatusCivilPartner
}

// AssessmentBasis is how the taxpayer's income is assessed.
type AssessmentBasis string

const (
	BasisSingle   AssessmentBasis = "single"
	BasisJoint    AssessmentBasis = "joint"
	BasisSeparate AssessmentBasis = "separate"
)

// SplitYear records a mid-year change of assessment basis. A nil
// *SplitYear on TaxInput means no change occurred in the year.
type SplitYear struct {
	ChangeDate time.Time       `yaml:"change_date" json:"changeDate"`
	PriorBasis AssessmentBasis `yaml:"prior_basis" json:"priorBasis" validate:"required,oneof=single joint separate"`
}

// TaxInput is one year's self-assessment return for a single taxpayer.
// Amounts are expected to be non-negative but the calculation never
// relies on it.
type TaxInput struct {
	Name            string          `yaml:"name" json:"name"`
	PPSN            string          `yaml:"ppsn" json:"ppsn"`
	BirthDate       string          `yaml:"birth_date,omitempty" json:"birthDate,omitempty"`
	MaritalStatus   MaritalStatus   `yaml:"marital_status" json:"maritalStatus" validate:"required,oneof=single married civil_partner widowed separated"`
	AssessmentBasis AssessmentBasis `yaml:"assessment_basis" json:"assessmentBasis" validate:"required,oneof=single joint separate"`

	// Schedule E / dividends
	Salary        decimal.Decimal `yaml:"salary" json:"salary" validate:"gte=0"`
	Dividends     decimal.Decimal `yaml:"dividends" json:"dividends" validate:"gte=0"`
	BenefitInKind decimal.Decimal `yaml:"benefit_in_kind" json:"benefitInKind" validate:"gte=0"`

	// Schedule D trading
	BusinessIncome    decimal.Decimal `yaml:"business_income" json:"businessIncome" validate:"gte=0"`
	BusinessExpenses  decimal.Decimal `yaml:"business_expenses" json:"businessExpenses" validate:"gte=0"`
	CapitalAllowances decimal.Decimal `yaml:"capital_allowances" json:"capitalAllowances" validate:"gte=0"`

	RentalIncome   decimal.Decimal `yaml:"rental_income" json:"rentalIncome" validate:"gte=0"`
	RentalExpenses decimal.Decimal `yaml:"rental_expenses" json:"rentalExpenses" validate:"gte=0"`
	ForeignIncome  decimal.Decimal `yaml:"foreign_income" json:"foreignIncome" validate:"gte=0"`
	OtherIncome    decimal.Decimal `yaml:"other_income" json:"otherIncome" validate:"gte=0"`

	CapitalGains  decimal.Decimal `yaml:"capital_gains" json:"capitalGains" validate:"gte=0"`
	CapitalLosses decimal.Decimal `yaml:"capital_losses" json:"capitalLosses" validate:"gte=0"`

	// Relief claims
	PensionContributions decimal.Decimal `yaml:"pension_contributions" json:"pensionContributions" validate:"gte=0"`
	MedicalExpenses      decimal.Decimal `yaml:"medical_expenses" json:"medicalExpenses" validate:"gte=0"`
	RentPaid             decimal.Decimal `yaml:"rent_paid" json:"rentPaid" validate:"gte=0"`
	CharitableDonations  decimal.Decimal `yaml:"charitable_donations" json:"charitableDonations" validate:"gte=0"`
	RemoteWorkingCosts   decimal.Decimal `yaml:"remote_working_costs" json:"remoteWorkingCosts" validate:"gte=0"`

	SpouseIncome decimal.Decimal `yaml:"spouse_income" json:"spouseIncome" validate:"gte=0"`

	ClaimHomeCarer           bool `yaml:"claim_home_carer" json:"claimHomeCarer"`
	ClaimSingleParent        bool `yaml:"claim_single_parent" json:"claimSingleParent"`
	HasOtherEmploymentIncome bool `yaml:"has_other_employment_income" json:"hasOtherEmploymentIncome"`

	// MileageAllowance is the civil-service-rate allowance paid for
	// business use of a personal vehicle; it reduces Schedule E income.
	MileageAllowance   decimal.Decimal `yaml:"mileage_allowance" json:"mileageAllowance" validate:"gte=0"`
	PreliminaryTaxPaid decimal.Decimal `yaml:"preliminary_tax_paid" json:"preliminaryTaxPaid" validate:"gte=0"`

	SplitYear *SplitYear `yaml:"split_year,omitempty" json:"splitYear,omitempty"`
}

// UnmarshalJSON accepts the change date either as a bare ISO date
// ("2025-07-01") or as an RFC 3339 timestamp.
func (s *SplitYear) UnmarshalJSON(data []byte) error {
	var raw struct {
		ChangeDate string          `json:"changeDate"`
		PriorBasis AssessmentBasis `json:"priorBasis"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	changeDate, err := dateutil.ParseISODate(raw.ChangeDate)
	if err != nil {
		return fmt.Errorf("split year change date: %w", err)
	}
	s.ChangeDate = changeDate
	s.PriorBasis = raw.PriorBasis
	return nil
}
