package integration

import (
	"bytes"
	"testing"
	"time"

	"github.com/rgehrsitz/form11/internal/calculation"
	"github.com/rgehrsitz/form11/internal/config"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineFor(t *testing.T, constants domain.TaxConstants) *calculation.Engine {
	t.Helper()
	e := calculation.NewEngine(constants)
	e.SetClock(func() time.Time { return time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC) })
	return e
}

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/example_return.yaml")
	require.NoError(t, err)

	result := engineFor(t, domain.DefaultConstants2025()).Compute(*input)

	// 72000 + 8000 + 9600 Schedule E, 10500 rental profit, 28000 spouse
	assert.Equal(t, "128100.00", result.Income.GrossTotal.StringFixed(2))
	assert.Equal(t, 45, result.PensionRelief.Age)
	assert.Equal(t, "12000.00", result.PensionRelief.Granted.StringFixed(2))
	assert.Equal(t, "116100.00", result.AssessableIncome.StringFixed(2))
	assert.Equal(t, "72000.00", result.RateCutoff.StringFixed(2))
	assert.True(t, result.CGT.Applicable)

	sum := result.NetIncomeTax.Add(result.TotalUSC).Add(result.PRSI.Payable).Add(result.CGT.Payable)
	assert.True(t, sum.Equal(result.TotalLiability))
	assert.True(t, result.TotalLiability.Sub(decimal.NewFromInt(18000)).Equal(result.BalanceDue))
}

func TestEndToEndSplitYear(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/split_year_return.yaml")
	require.NoError(t, err)

	result := engineFor(t, domain.DefaultConstants2025()).Compute(*input)

	assert.True(t, result.SplitYearApplied)
	assert.Contains(t, result.SplitYearNote, "181 of 365 days")
	assert.Equal(t, "54082.00", result.RateCutoff.StringFixed(2))
}

func TestEndToEndConstantsOverride(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/example_return.yaml")
	require.NoError(t, err)
	constants, err := parser.LoadConstants("../testdata/constants_2025_budget.yaml")
	require.NoError(t, err)

	base := engineFor(t, domain.DefaultConstants2025()).Compute(*input)
	budget := engineFor(t, constants).Compute(*input)

	// joint cutoff follows the single cutoff plus the spouse increase
	assert.Equal(t, "73000.00", budget.RateCutoff.StringFixed(2))
	assert.True(t, budget.NetIncomeTax.LessThan(base.NetIncomeTax))
	assert.Len(t, budget.USCBands, 4)
}

func TestOutputGeneration(t *testing.T) {
	parser := config.NewInputParser()
	input, err := parser.LoadFromFile("../testdata/example_return.yaml")
	require.NoError(t, err)
	result := engineFor(t, domain.DefaultConstants2025()).Compute(*input)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, &result, name))
			assert.NotZero(t, buf.Len())
		})
	}
}
