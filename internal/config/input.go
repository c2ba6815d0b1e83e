package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput wraps every validation failure of a return.
var ErrInvalidInput = errors.New("invalid tax return")

// InputParser handles parsing of return and constants files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: NewValidator()}
}

// NewValidator returns a validator that understands decimal amounts, so
// struct tags such as gte=0 apply to decimal.Decimal fields.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// LoadFromFile loads a taxpayer return from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.TaxInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML return.
func (ip *InputParser) Parse(data []byte) (*domain.TaxInput, error) {
	var input domain.TaxInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateInput(&input); err != nil {
		return nil, fmt.Errorf("return validation failed: %w", err)
	}
	return &input, nil
}

// ValidateInput rejects returns the engine would otherwise silently
// degrade: negative amounts, unknown statuses, unreadable dates.
func (ip *InputParser) ValidateInput(input *domain.TaxInput) error {
	if err := ip.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(input.BirthDate) != "" {
		if _, err := dateutil.ParseISODate(input.BirthDate); err != nil {
			return fmt.Errorf("%w: birth date: %v", ErrInvalidInput, err)
		}
	}
	if input.SplitYear != nil && input.SplitYear.ChangeDate.IsZero() {
		return fmt.Errorf("%w: split year requires a change date", ErrInvalidInput)
	}
	return nil
}

// LoadConstants loads a rule table from YAML. Fields absent from the file
// keep their DefaultConstants2025 values; band tables present in the file
// replace the defaults wholesale.
func (ip *InputParser) LoadConstants(filename string) (domain.TaxConstants, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxConstants{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	constants := domain.DefaultConstants2025()
	if err := yaml.Unmarshal(data, &constants); err != nil {
		return domain.TaxConstants{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := constants.Validate(); err != nil {
		return domain.TaxConstants{}, fmt.Errorf("constants validation failed: %w", err)
	}
	return constants, nil
}

// ResolveConstants returns the constants in filename, or the built-in
// table when filename is empty.
func (ip *InputParser) ResolveConstants(filename string) (domain.TaxConstants, error) {
	if filename == "" {
		return domain.DefaultConstants2025(), nil
	}
	return ip.LoadConstants(filename)
}

// CreateExampleInput returns a representative director's return.
func (ip *InputParser) CreateExampleInput() *domain.TaxInput {
	return &domain.TaxInput{
		Name:                 "Example Director",
		PPSN:                 "1234567T",
		BirthDate:            "1980-05-17",
		MaritalStatus:        domain.StatusMarried,
		AssessmentBasis:      domain.BasisJoint,
		Salary:               decimal.NewFromInt(72000),
		Dividends:            decimal.NewFromInt(8000),
		BenefitInKind:        decimal.NewFromInt(9600),
		RentalIncome:         decimal.NewFromInt(14400),
		RentalExpenses:       decimal.NewFromInt(3900),
		SpouseIncome:         decimal.NewFromInt(28000),
		PensionContributions: decimal.NewFromInt(12000),
		MedicalExpenses:      decimal.NewFromInt(650),
		CapitalGains:         decimal.NewFromInt(4500),
		PreliminaryTaxPaid:   decimal.NewFromInt(18000),
	}
}

// SaveInput writes a return as YAML.
func SaveInput(input *domain.TaxInput, filename string) error {
	b, err := yaml.Marshal(input)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
