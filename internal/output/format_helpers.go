package output

import (
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euro with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.Euro(amount) }

// FormatPercentage formats a fractional rate (0.2) as a percentage ("20%").
func FormatPercentage(rate decimal.Decimal) string { return money.Percent(rate) }

// FormatBalance renders the closing balance the way a notice of
// assessment does: refunds as "refund €x", liabilities as "payable €x".
func FormatBalance(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "refund " + FormatCurrency(balance.Abs())
	}
	return "payable " + FormatCurrency(balance)
}
