package calculation

import (
	"fmt"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// IncomeTaxBands splits assessable income at the cutoff into a standard
// rate portion and a higher rate portion. Portions of zero are omitted.
func IncomeTaxBands(assessable, cutoff decimal.Decimal, c domain.TaxConstants) []domain.TaxBandLine {
	if !assessable.IsPositive() {
		return nil
	}
	upper := cutoff
	bands := []domain.Band{
		{Label: fmt.Sprintf("Standard rate (%s)", money.Percent(c.StandardRate)), Lower: decimal.Zero, Upper: &upper, Rate: c.StandardRate},
		{Label: fmt.Sprintf("Higher rate (%s)", money.Percent(c.HigherRate)), Lower: cutoff, Rate: c.HigherRate},
	}
	return sliceBands(assessable, bands)
}
