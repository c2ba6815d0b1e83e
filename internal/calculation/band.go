package calculation

import (
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// lookupBand returns the first entry whose inclusive upper bound is at
// least value. Entries without an upper bound match anything, so a table
// ending in an open-ended entry always yields a match. An empty table
// returns false.
func lookupBand[T any](bands []T, value decimal.Decimal, upperOf func(T) (decimal.Decimal, bool)) (T, bool) {
	for _, b := range bands {
		u, bounded := upperOf(b)
		if !bounded || value.LessThanOrEqual(u) {
			return b, true
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1], true
	}
	var zero T
	return zero, false
}

// sliceBands allocates income across ascending, contiguous bands: each band
// takes min(remaining, width) and the walk stops once income is exhausted.
// Zero-width bands produce no line. Tax per line is rounded to cents.
func sliceBands(income decimal.Decimal, bands []domain.Band) []domain.TaxBandLine {
	var lines []domain.TaxBandLine
	remaining := income
	for _, b := range bands {
		if !remaining.IsPositive() {
			break
		}
		amount := remaining
		if !b.OpenEnded() {
			amount = money.Min(remaining, money.FloorZero(b.Upper.Sub(b.Lower)))
		}
		if amount.IsZero() {
			continue
		}
		lines = append(lines, domain.TaxBandLine{
			Label:  b.Label,
			Amount: amount,
			Rate:   b.Rate,
			Tax:    money.ApplyRate(amount, b.Rate),
		})
		remaining = remaining.Sub(amount)
	}
	return lines
}

func sumBandTax(lines []domain.TaxBandLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Tax)
	}
	return money.Round2(total)
}

func bandUpper(b domain.Band) (decimal.Decimal, bool) {
	if b.Upper == nil {
		return decimal.Zero, false
	}
	return *b.Upper, true
}

func ageUpper(a domain.AgeRate) (decimal.Decimal, bool) {
	if a.MaxAge == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(*a.MaxAge)), true
}
