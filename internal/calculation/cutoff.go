package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// ResolveRateCutoff returns the standard-rate band for a basis and status.
// A jointly assessed married couple widens the single band by the
// spouse's income, up to the second-earner cap. It reads nothing but its
// arguments, so split-year apportionment can call it once per sub-period.
func ResolveRateCutoff(basis domain.AssessmentBasis, status domain.MaritalStatus, spouseIncome decimal.Decimal, cutoffs domain.RateCutoffs) decimal.Decimal {
	if basis == domain.BasisJoint && status == domain.StatusMarried {
		increase := money.Min(money.FloorZero(spouseIncome), cutoffs.SecondEarnerCap)
		return cutoffs.Single.Add(increase)
	}
	return cutoffs.Single
}
