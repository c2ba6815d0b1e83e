package handler

import (
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/internal/output"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Calculator is the subset of calculation.Engine the handlers need.
type Calculator interface {
	Compute(in domain.TaxInput) domain.TaxResult
	VehicleBenefitInKind(originalMarketValue, annualBusinessKm decimal.Decimal) decimal.Decimal
}

// InputValidator checks a decoded return before it reaches the engine.
type InputValidator interface {
	ValidateInput(in *domain.TaxInput) error
}

type BIKRequest struct {
	OriginalMarketValue decimal.Decimal `json:"originalMarketValue" validate:"gte=0"`
	AnnualBusinessKm    decimal.Decimal `json:"annualBusinessKm" validate:"gte=0"`
}

type BIKResponse struct {
	BenefitInKind decimal.Decimal `json:"benefitInKind"`
}

type BIKCSVLine struct {
	OriginalMarketValue decimal.Decimal `json:"originalMarketValue"`
	AnnualBusinessKm    decimal.Decimal `json:"annualBusinessKm"`
	BenefitInKind       decimal.Decimal `json:"benefitInKind"`
}

type BIKCSVResponse struct {
	Vehicles []BIKCSVLine `json:"vehicles"`
}

type TaxHandler struct {
	vl    *validator.Validate
	input InputValidator
	calc  Calculator
	log   *zap.SugaredLogger
}

func NewTaxHandler(vl *validator.Validate, input InputValidator, calc Calculator, log *zap.SugaredLogger) *TaxHandler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TaxHandler{vl: vl, input: input, calc: calc, log: log}
}

// Compute runs a full computation. The result is JSON unless the format
// query parameter names another registered formatter.
func (t *TaxHandler) Compute(c echo.Context) error {
	var req domain.TaxInput

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if err := t.input.ValidateInput(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: err.Error(),
		})
	}

	result := t.calc.Compute(req)
	t.log.Debugw("computed return", "ppsn", req.PPSN, "liability", result.TotalLiability.String())

	format := c.QueryParam("format")
	if format == "" || output.NormalizeFormatName(format) == "json" {
		return c.JSON(http.StatusOK, result)
	}

	f, err := output.LookupFormatter(format)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: err.Error(),
		})
	}
	data, err := f.Format(&result)
	if err != nil {
		t.log.Errorw("format computation", "format", f.Name(), "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseMsg{
			Message: "Internal server error",
		})
	}
	return c.Blob(http.StatusOK, contentType(f.Name()), data)
}

// BIK values a single company car.
func (t *TaxHandler) BIK(c echo.Context) error {
	var req BIKRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	if err := t.vl.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request",
		})
	}

	return c.JSON(http.StatusOK, &BIKResponse{
		BenefitInKind: t.calc.VehicleBenefitInKind(req.OriginalMarketValue, req.AnnualBusinessKm),
	})
}

// BIKWithCSV values a fleet uploaded as text/csv with the header
// originalMarketValue,annualBusinessKm.
func (t *TaxHandler) BIKWithCSV(c echo.Context) error {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), "text/csv") {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Unacceptable content, require CSV content",
		})
	}

	rows, err := csv.NewReader(c.Request().Body).ReadAll()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Bad request, might not be csv format",
		})
	}

	if len(rows) < 2 {
		return c.JSON(http.StatusBadRequest, ResponseMsg{
			Message: "Wrong csv content, expected a header and at least one vehicle",
		})
	}

	vehicles := make([]BIKCSVLine, 0, len(rows)-1)
	for i, row := range rows {
		if len(row) != 2 {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Wrong csv column length",
			})
		}

		if i == 0 {
			if row[0] != "originalMarketValue" || row[1] != "annualBusinessKm" {
				return c.JSON(http.StatusBadRequest, ResponseMsg{
					Message: "Wrong csv header",
				})
			}
			continue
		}

		omv, err := decimal.NewFromString(strings.TrimSpace(row[0]))
		if err != nil || omv.IsNegative() {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid original market value",
			})
		}

		km, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil || km.IsNegative() {
			return c.JSON(http.StatusBadRequest, ResponseMsg{
				Message: "Invalid business kilometres",
			})
		}

		vehicles = append(vehicles, BIKCSVLine{
			OriginalMarketValue: omv,
			AnnualBusinessKm:    km,
			BenefitInKind:       t.calc.VehicleBenefitInKind(omv, km),
		})
	}

	return c.JSON(http.StatusOK, &BIKCSVResponse{
		Vehicles: vehicles,
	})
}

func contentType(format string) string {
	switch format {
	case "csv":
		return "text/csv"
	case "yaml":
		return "application/yaml"
	case "pdf":
		return "application/pdf"
	default:
		return echo.MIMETextPlainCharsetUTF8
	}
}
