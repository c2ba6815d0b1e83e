// Package money holds the cent-level arithmetic helpers shared by the
// tax pipeline. Every monetary sub-result is rounded at the point it is
// produced, so these helpers are used at each stage rather than only on
// final output.
package money

import (
	"github.com/shopspring/decimal"
)

// Hundred is 100 as a decimal, used for percentage display.
var Hundred = decimal.NewFromInt(100)

// Round2 rounds an amount to cents (half away from zero).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundWhole rounds an amount to whole currency units.
func RoundWhole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FloorZero returns d, or zero when d is negative.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds any number of amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// ApplyRate multiplies an amount by a rate fraction and rounds to cents.
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(rate))
}

// Euro renders an amount as "€1234.56". Used only in advisory messages.
func Euro(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

// Percent renders a rate fraction as a percentage without trailing zeros,
// e.g. 0.2 -> "20%", 0.005 -> "0.5%".
func Percent(rate decimal.Decimal) string {
	return rate.Mul(Hundred).String() + "%"
}
