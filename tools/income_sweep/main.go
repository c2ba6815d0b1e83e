package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rgehrsitz/form11/internal/calculation"
	"github.com/rgehrsitz/form11/internal/config"
	"github.com/rgehrsitz/form11/pkg/money"
	"github.com/shopspring/decimal"
)

// Re-runs a return with the salary stepped across a range and prints the
// liability components as CSV, to see where the higher rate and USC bands
// start to bite.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: income_sweep <return-file> [step] [limit]")
		return
	}
	p := config.NewInputParser()
	in, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	step, limit := int64(5000), int64(150000)
	if len(os.Args) > 2 {
		if step, err = strconv.ParseInt(os.Args[2], 10, 64); err != nil || step <= 0 {
			panic("step must be a positive integer")
		}
	}
	if len(os.Args) > 3 {
		if limit, err = strconv.ParseInt(os.Args[3], 10, 64); err != nil {
			panic(err)
		}
	}

	constants, err := p.ResolveConstants(os.Getenv("FORM11_CONSTANTS"))
	if err != nil {
		panic(err)
	}
	engine := calculation.NewEngine(constants)
	fmt.Println("Salary,Assessable,NetIncomeTax,USC,PRSI,TotalLiability,EffectiveRate")
	for salary := int64(0); salary <= limit; salary += step {
		sweep := *in
		sweep.Salary = decimal.NewFromInt(salary)
		r := engine.Compute(sweep)
		effective := decimal.Zero
		if r.Income.GrossTotal.IsPositive() {
			effective = r.TotalLiability.Div(r.Income.GrossTotal).Mul(money.Hundred)
		}
		fmt.Printf("%d,%s,%s,%s,%s,%s,%s\n", salary,
			r.AssessableIncome.StringFixed(2), r.NetIncomeTax.StringFixed(2), r.TotalUSC.StringFixed(2),
			r.PRSI.Payable.StringFixed(2), r.TotalLiability.StringFixed(2), effective.StringFixed(1))
	}
}
