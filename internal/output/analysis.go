package output

import (
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Composition splits net worth at the target age into its investment and home equity shares.
type Composition struct {
	InvestmentsPct decimal.Decimal
	HomeEquityPct  decimal.Decimal
}

// AnalyzeComposition reports how much of the target-age net worth each component contributes.
// Both shares are zero when net worth is zero.
func AnalyzeComposition(result *domain.ProjectionResult) Composition {
	if result.NetWorthAtTarget.IsZero() {
		return Composition{}
	}
	inv := result.InvestmentsTotalAtTarget.Div(result.NetWorthAtTarget).Mul(decimalHundred)
	return Composition{
		InvestmentsPct: inv,
		HomeEquityPct:  decimalHundred.Sub(inv),
	}
}

// Milestones samples the trajectory every step years, always including the first and final points.
func Milestones(result *domain.ProjectionResult, step int) []domain.TrajectoryPoint {
	if step <= 0 {
		step = 1
	}
	n := len(result.Trajectory)
	if n == 0 {
		return nil
	}
	points := make([]domain.TrajectoryPoint, 0, n/step+2)
	for i := 0; i < n; i += step {
		points = append(points, result.Trajectory[i])
	}
	if (n-1)%step != 0 {
		points = append(points, result.Trajectory[n-1])
	}
	return points
}

// Series extracts the three chart series from a trajectory as floats for rendering.
func Series(result *domain.ProjectionResult) (investments, home, netWorth []float64) {
	investments = make([]float64, len(result.Trajectory))
	home = make([]float64, len(result.Trajectory))
	netWorth = make([]float64, len(result.Trajectory))
	for i, p := range result.Trajectory {
		investments[i] = p.InvestmentsTotal.Round(2).InexactFloat64()
		home[i] = p.HomeEquity.Round(2).InexactFloat64()
		netWorth[i] = p.NetWorth.Round(2).InexactFloat64()
	}
	return investments, home, netWorth
}
