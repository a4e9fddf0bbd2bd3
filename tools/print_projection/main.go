package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/pkg/decimal"
)

// print_projection dumps the yearly projection of every scenario in a plan
// side by side as CSV.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_projection <plan-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	engine.SetLogger(calc.NewWriterLogger(os.Stderr, false))
	res, err := engine.RunPlan(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Series stop at the target, so run to the longest one
	maxLen := 0
	for _, s := range res.Scenarios {
		if n := len(s.Projection.Points); n > maxLen {
			maxLen = n
		}
	}

	header := "Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Portfolio,S%d_Target,S%d_Gap", i+1, i+1, i+1)
	}
	fmt.Println(header)

	for year := 0; year < maxLen; year++ {
		row := fmt.Sprintf("%d", year)
		for _, s := range res.Scenarios {
			if year >= len(s.Projection.Points) {
				row += ",,,"
				continue
			}
			pt := s.Projection.Points[year]
			portfolio := decimal.NewMoney(pt.Portfolio)
			if !decimal.IsFinite(pt.FireTarget) {
				row += "," + wholeUnits(portfolio) + ",,"
				continue
			}
			target := decimal.NewMoney(pt.FireTarget)
			row += "," + wholeUnits(portfolio) + "," + wholeUnits(target) + "," + wholeUnits(target.Sub(portfolio))
		}
		fmt.Println(row)
	}

	for i, s := range res.Scenarios {
		fmt.Fprintf(os.Stderr, "S%d = %s (reached=%t)\n", i+1, s.Name, s.Projection.ReachedTarget())
	}
}

func wholeUnits(m decimal.Money) string {
	return m.RoundWhole().StringFixed(0)
}
