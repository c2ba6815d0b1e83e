package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVFormatter writes the band schedule: one row per income tax band, USC
// band and credit, followed by the summary totals.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string      { return "csv" }
func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Label", "Amount", "Rate", "Tax"}); err != nil {
		return nil, err
	}

	bandRows := func(section string, lines []domain.TaxBandLine) error {
		for _, l := range lines {
			row := []string{section, l.Label, l.Amount.StringFixed(2), l.Rate.String(), l.Tax.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := bandRows("income_tax", result.IncomeTaxBands); err != nil {
		return nil, err
	}
	if err := bandRows("usc", result.USCBands); err != nil {
		return nil, err
	}
	for _, cr := range result.Credits {
		if err := w.Write([]string{"credit", cr.Label, cr.Amount.StringFixed(2), "", ""}); err != nil {
			return nil, err
		}
	}

	summary := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Gross income", result.Income.GrossTotal},
		{"Total deductions", result.TotalDeductions},
		{"Assessable income", result.AssessableIncome},
		{"Rate band", result.RateCutoff},
		{"Gross income tax", result.GrossIncomeTax},
		{"Total credits", result.TotalCredits},
		{"Net income tax", result.NetIncomeTax},
		{"USC", result.TotalUSC},
		{"PRSI", result.PRSI.Payable},
		{"CGT", result.CGT.Payable},
		{"Total liability", result.TotalLiability},
		{"Preliminary tax paid", result.Prepaid},
		{"Balance due", result.BalanceDue},
	}
	for _, s := range summary {
		if err := w.Write([]string{"summary", s.label, "", "", s.amount.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
