package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfLabelWidth   = 130.0
	pdfLineHeight   = 6.5
)

// PDFFormatter renders a one-document computation summary.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string      { return "pdf" }
func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	r := newPDFReport()
	r.render(result)
	if err := r.pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf          *fpdf.Fpdf
	tr           func(string) string
	contentWidth float64
}

func newPDFReport() *pdfReport {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pageWidth, _ := pdf.GetPageSize()
	return &pdfReport{
		pdf: pdf,
		// core fonts are cp1252; the translator maps € and accented names
		tr:           pdf.UnicodeTranslatorFromDescriptor(""),
		contentWidth: pageWidth - pdfMarginLeft - pdfMarginRight,
	}
}

func (r *pdfReport) render(result *domain.TaxResult) {
	r.pdf.SetTitle(fmt.Sprintf("Form 11 computation %d", result.TaxYear), true)
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(r.contentWidth, 10, r.tr(fmt.Sprintf("Form 11 Computation %d", result.TaxYear)), "", 1, "L", false, 0, "")
	if result.Name != "" {
		r.pdf.SetFont("Arial", "", 11)
		r.pdf.SetTextColor(80, 80, 80)
		who := result.Name
		if result.PPSN != "" {
			who += "  PPSN " + result.PPSN
		}
		r.pdf.CellFormat(r.contentWidth, 7, r.tr(who), "", 1, "L", false, 0, "")
	}

	r.heading("Income")
	r.line("Schedule E", result.Income.ScheduleE, false)
	r.line("Schedule D", result.Income.ScheduleD, false)
	r.line("Rental profit", result.Income.RentalProfit, false)
	r.line("Foreign income", result.Income.Foreign, false)
	r.line("Other income", result.Income.Other, false)
	r.line("Spouse / civil partner income", result.Income.Spouse, false)
	r.line("Gross income", result.Income.GrossTotal, true)
	r.line("Pension relief granted", result.PensionRelief.Granted, false)
	r.line("Assessable income", result.AssessableIncome, true)

	r.heading("Income tax")
	r.line("Standard rate band", result.RateCutoff, false)
	if result.SplitYearApplied {
		r.note(result.SplitYearNote)
	}
	for _, b := range result.IncomeTaxBands {
		r.line(fmt.Sprintf("%s on %s", b.Label, FormatCurrency(b.Amount)), b.Tax, false)
	}
	r.line("Gross income tax", result.GrossIncomeTax, false)
	for _, cr := range result.Credits {
		r.line("less "+cr.Label, cr.Amount, false)
	}
	r.line("Net income tax", result.NetIncomeTax, true)

	r.heading("Universal Social Charge")
	for _, b := range result.USCBands {
		r.line(fmt.Sprintf("%s on %s", b.Label, FormatCurrency(b.Amount)), b.Tax, false)
	}
	r.line("Total USC", result.TotalUSC, true)

	r.heading("PRSI and capital gains")
	r.line("PRSI payable", result.PRSI.Payable, false)
	r.line("CGT payable", result.CGT.Payable, false)

	r.heading("Summary")
	r.line("Total liability", result.TotalLiability, true)
	r.line("Preliminary tax paid", result.Prepaid, false)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.CellFormat(pdfLabelWidth, pdfLineHeight+1, "Balance", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(r.contentWidth-pdfLabelWidth, pdfLineHeight+1, r.tr(FormatBalance(result.BalanceDue)), "1", 1, "R", true, 0, "")

	for _, w := range result.Warnings {
		r.note("Warning: " + w)
	}
	for _, n := range result.Notes {
		r.note(n)
	}
}

func (r *pdfReport) heading(text string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(r.contentWidth, 8, r.tr(text), "B", 1, "L", false, 0, "")
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *pdfReport) line(label string, amount decimal.Decimal, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	r.pdf.SetFont("Arial", style, 10)
	r.pdf.CellFormat(pdfLabelWidth, pdfLineHeight, r.tr(label), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(r.contentWidth-pdfLabelWidth, pdfLineHeight, r.tr(FormatCurrency(amount)), "", 1, "R", false, 0, "")
}

func (r *pdfReport) note(text string) {
	if text == "" {
		return
	}
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(r.contentWidth, 4.5, r.tr(text), "", "L", false)
	r.pdf.SetTextColor(50, 50, 50)
}
