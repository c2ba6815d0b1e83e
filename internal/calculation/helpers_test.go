package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, amt(want).StringFixed(2), got.StringFixed(2), msgAndArgs...)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixedEngine returns a 2025 engine whose clock is pinned to mid-2025.
func fixedEngine() *Engine {
	e := NewEngine(domain.DefaultConstants2025())
	e.SetClock(func() time.Time { return day(2025, 6, 30) })
	return e
}

func singleSalary(salary string) domain.TaxInput {
	return domain.TaxInput{
		Name:            "Test Director",
		PPSN:            "1234567T",
		MaritalStatus:   domain.StatusSingle,
		AssessmentBasis: domain.BasisSingle,
		Salary:          amt(salary),
	}
}
