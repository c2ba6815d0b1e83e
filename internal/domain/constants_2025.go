package domain

import (
	"github.com/shopspring/decimal"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func upper(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func maxAge(v int) *int { return &v }

// DefaultConstants2025 returns the rule table for the 2025 tax year.
func DefaultConstants2025() TaxConstants {
	return TaxConstants{
		TaxYear: 2025,
		RateCutoffs: RateCutoffs{
			Single:          decimal.NewFromInt(44000),
			SecondEarnerCap: decimal.NewFromInt(44000),
		},
		StandardRate: dec(0.20),
		HigherRate:   dec(0.40),
		USC: USCRules{
			ExemptionThreshold: decimal.NewFromInt(13000),
			Bands: []Band{
				{Label: "USC 0.5%", Lower: decimal.Zero, Upper: upper(12012), Rate: dec(0.005)},
				{Label: "USC 2%", Lower: decimal.NewFromInt(12012), Upper: upper(27382), Rate: dec(0.02)},
				{Label: "USC 3%", Lower: decimal.NewFromInt(27382), Upper: upper(70044), Rate: dec(0.03)},
				{Label: "USC 8%", Lower: decimal.NewFromInt(70044), Upper: upper(100000), Rate: dec(0.08)},
				{Label: "USC 11% (non-PAYE over €100,000)", Lower: decimal.NewFromInt(100000), Rate: dec(0.11)},
			},
		},
		PRSI: PRSIRules{
			Rate:      dec(0.042),
			Minimum:   decimal.NewFromInt(500),
			Threshold: decimal.NewFromInt(5000),
		},
		Credits: CreditAmounts{
			PersonalSingle:  decimal.NewFromInt(2000),
			PersonalMarried: decimal.NewFromInt(4000),
			EarnedIncome:    decimal.NewFromInt(2000),
			Employee:        decimal.NewFromInt(2000),
			HomeCarer:       decimal.NewFromInt(1950),
			SingleParent:    decimal.NewFromInt(1900),
		},
		PensionAgeBands: []AgeRate{
			{MaxAge: maxAge(29), Rate: dec(0.15)},
			{MaxAge: maxAge(39), Rate: dec(0.20)},
			{MaxAge: maxAge(49), Rate: dec(0.25)},
			{MaxAge: maxAge(54), Rate: dec(0.30)},
			{MaxAge: maxAge(59), Rate: dec(0.35)},
			{Rate: dec(0.40)},
		},
		PensionEarningsCap: decimal.NewFromInt(115000),
		MedicalReliefRate:  dec(0.20),
		RentCreditCaps: RentCreditCaps{
			Single:  decimal.NewFromInt(1000),
			Married: decimal.NewFromInt(2000),
		},
		RemoteWorkingRate:         dec(0.30),
		CharitableDonationMinimum: decimal.NewFromInt(250),
		CGT: CGTRules{
			Rate:            dec(0.33),
			AnnualExemption: decimal.NewFromInt(1270),
		},
		// Category C vehicle rates by annual business kilometres.
		MileageBIKBands: []Band{
			{Label: "0-26,000 km", Lower: decimal.Zero, Upper: upper(26000), Rate: dec(0.30)},
			{Label: "26,001-39,000 km", Lower: decimal.NewFromInt(26000), Upper: upper(39000), Rate: dec(0.24)},
			{Label: "39,001-48,000 km", Lower: decimal.NewFromInt(39000), Upper: upper(48000), Rate: dec(0.18)},
			{Label: "48,001 km and over", Lower: decimal.NewFromInt(48000), Rate: dec(0.12)},
		},
	}
}
