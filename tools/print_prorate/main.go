package main

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/form11/internal/calculation"
	"github.com/rgehrsitz/form11/internal/domain"
	"github.com/rgehrsitz/form11/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Prints the split-year cutoff blend for every prior/current basis pair on
// a given change date, for a married couple with the given spouse income.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_prorate <change-date YYYY-MM-DD> [spouse-income]")
		return
	}
	change, err := dateutil.ParseISODate(os.Args[1])
	if err != nil {
		panic(err)
	}
	spouse := decimal.Zero
	if len(os.Args) > 2 {
		spouse = decimal.RequireFromString(os.Args[2])
	}

	cutoffs := domain.DefaultConstants2025().RateCutoffs
	bases := []domain.AssessmentBasis{domain.BasisSingle, domain.BasisJoint, domain.BasisSeparate}

	fmt.Println("Prior,Current,PreDays,PostDays,PreCutoff,PostCutoff,Blended")
	for _, prior := range bases {
		for _, current := range bases {
			in := domain.TaxInput{
				MaritalStatus:   domain.StatusMarried,
				AssessmentBasis: current,
				SpouseIncome:    spouse,
			}
			a := calculation.ApportionSplitYear(in, domain.SplitYear{ChangeDate: change, PriorBasis: prior}, cutoffs)
			fmt.Printf("%s,%s,%d,%d,%s,%s,%s\n", prior, current, a.PreDays, a.PostDays,
				a.PreCutoff.StringFixed(0), a.PostCutoff.StringFixed(0), a.Blended.StringFixed(0))
		}
	}
}
