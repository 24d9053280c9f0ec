package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/retirmentaudit/retirement-audit-launch/internal/calculation"
	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the snapshot next to the trajectory point at the same year offset, which makes the
// age-difference vs raw-offset split between the two visible for households with mixed ages.
func main() {
	path := "test/testdata/example_projection.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	req, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}

	ce := calculation.NewProjectionEngine()
	result, err := ce.Project(context.Background(), req)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("Per-account snapshot:")
	for _, a := range result.Accounts {
		fmt.Printf("  %-20s years=%2d value=%s\n", a.Key.Label(), a.Years, a.ValueAtTarget.StringFixed(2))
	}
	fmt.Printf("Snapshot investments: %s\n", result.InvestmentsTotalAtTarget.StringFixed(2))

	minYears, ok := comparisonOffset(result)
	if !ok {
		fmt.Println("No accounts; nothing to compare.")
		return
	}

	point, ok := result.PointAt(minYears)
	if !ok {
		log.Fatalf("no trajectory point at offset %d", minYears)
	}
	fmt.Printf("Trajectory investments at offset %d: %s\n", minYears, point.InvestmentsTotal.StringFixed(2))
	fmt.Printf("Difference: %s\n", result.InvestmentsTotalAtTarget.Sub(point.InvestmentsTotal).StringFixed(2))

	fmt.Println("Annuity factors at 7%:")
	for _, years := range []int{0, 1, 10, 30} {
		fmt.Printf("  %2d years: %s\n", years, calculation.AnnuityFactor(decimal.NewFromInt(7), years).StringFixed(6))
	}
}

// comparisonOffset returns the shortest per-account horizon, floored at year 0.
func comparisonOffset(result *domain.ProjectionResult) (int, bool) {
	if len(result.Accounts) == 0 {
		return 0, false
	}
	minYears := result.Accounts[0].Years
	for _, a := range result.Accounts[1:] {
		if a.Years < minYears {
			minYears = a.Years
		}
	}
	return max(minYears, 0), true
}
