package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders the computation as a styled terminal report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var sections []string

	title := fmt.Sprintf("FORM 11 COMPUTATION %d", result.TaxYear)
	if result.Name != "" {
		title += "\n" + result.Name
		if result.PPSN != "" {
			title += " (" + result.PPSN + ")"
		}
	}
	sections = append(sections, titleStyle.Render(title))

	sections = append(sections, sectionStyle.Render("Income"))
	income := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Schedule E (salary, dividends, BIK)", result.Income.ScheduleE},
		{"Schedule D trading profit", result.Income.ScheduleD},
		{"Rental profit", result.Income.RentalProfit},
		{"Foreign income", result.Income.Foreign},
		{"Other income", result.Income.Other},
		{"Spouse / civil partner income", result.Income.Spouse},
	}
	for _, l := range income {
		if l.amount.IsZero() {
			continue
		}
		sections = append(sections, row(l.label, FormatCurrency(l.amount)))
	}
	sections = append(sections, totalStyle.Render(row("Gross income", FormatCurrency(result.Income.GrossTotal))))

	sections = append(sections, sectionStyle.Render("Deductions"))
	pr := result.PensionRelief
	if !pr.Claimed.IsZero() {
		sections = append(sections, row(
			fmt.Sprintf("Pension relief (age %d, %s limit)", pr.Age, FormatPercentage(pr.Rate)),
			FormatCurrency(pr.Granted)))
	}
	sections = append(sections,
		row("Total deductions", FormatCurrency(result.TotalDeductions)),
		totalStyle.Render(row("Assessable income", FormatCurrency(result.AssessableIncome))),
	)

	sections = append(sections, sectionStyle.Render("Income tax"))
	sections = append(sections, row("Standard rate band", FormatCurrency(result.RateCutoff)))
	if result.SplitYearApplied {
		sections = append(sections, mutedStyle.Render(result.SplitYearNote))
	}
	for _, b := range result.IncomeTaxBands {
		sections = append(sections, row(fmt.Sprintf("%s on %s", b.Label, FormatCurrency(b.Amount)), FormatCurrency(b.Tax)))
	}
	sections = append(sections, row("Gross income tax", FormatCurrency(result.GrossIncomeTax)))
	for _, cr := range result.Credits {
		sections = append(sections, row("  less "+cr.Label, FormatCurrency(cr.Amount)))
	}
	sections = append(sections,
		row("Total credits", FormatCurrency(result.TotalCredits)),
		totalStyle.Render(row("Net income tax", FormatCurrency(result.NetIncomeTax))),
	)

	sections = append(sections, sectionStyle.Render("Universal Social Charge"))
	if result.USCExempt {
		sections = append(sections, mutedStyle.Render("Exempt: income at or below the exemption threshold"))
	}
	for _, b := range result.USCBands {
		sections = append(sections, row(fmt.Sprintf("%s on %s", b.Label, FormatCurrency(b.Amount)), FormatCurrency(b.Tax)))
	}
	sections = append(sections, totalStyle.Render(row("Total USC", FormatCurrency(result.TotalUSC))))

	sections = append(sections, sectionStyle.Render("PRSI"))
	sections = append(sections,
		row("Reckonable income", FormatCurrency(result.PRSI.Assessable)),
		totalStyle.Render(row("PRSI payable", FormatCurrency(result.PRSI.Payable))),
	)

	if result.CGT.Applicable {
		sections = append(sections, sectionStyle.Render("Capital gains tax"))
		sections = append(sections,
			row("Net gains", FormatCurrency(result.CGT.NetGains)),
			row("Annual exemption", FormatCurrency(result.CGT.Exemption)),
			totalStyle.Render(row("CGT payable", FormatCurrency(result.CGT.Payable))),
		)
	}

	sections = append(sections, sectionStyle.Render("Summary"))
	sections = append(sections,
		totalStyle.Render(row("Total liability", FormatCurrency(result.TotalLiability))),
		row("Preliminary tax paid", FormatCurrency(result.Prepaid)),
	)
	balance := row("Balance", FormatBalance(result.BalanceDue))
	if result.IsRefund() {
		sections = append(sections, refundStyle.Render(balance))
	} else {
		sections = append(sections, totalStyle.Render(balance))
	}

	if len(result.Warnings) > 0 {
		sections = append(sections, sectionStyle.Render("Warnings"))
		for _, w := range result.Warnings {
			sections = append(sections, warnStyle.Render("! "+w))
		}
	}
	if len(result.Notes) > 0 {
		sections = append(sections, sectionStyle.Render("Notes"))
		for _, n := range result.Notes {
			sections = append(sections, mutedStyle.Render("- "+n))
		}
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return []byte(strings.TrimRight(out, " \n") + "\n"), nil
}
