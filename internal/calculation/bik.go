package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// VehicleBenefitInKind returns the taxable benefit of a company car: the
// original market value times the rate of the first mileage band whose
// upper bound covers the annual business kilometres.
func VehicleBenefitInKind(originalMarketValue, annualBusinessKm decimal.Decimal, bands []domain.Band) decimal.Decimal {
	if !originalMarketValue.IsPositive() {
		return decimal.Zero
	}
	band, ok := lookupBand(bands, annualBusinessKm, bandUpper)
	if !ok {
		return decimal.Zero
	}
	return money.ApplyRate(originalMarketValue, band.Rate)
}
