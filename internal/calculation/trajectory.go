package calculation

import (
	"context"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
)

const (
	// DefaultHorizonYears is used in place of the account horizon when there are no accounts.
	DefaultHorizonYears = 30
	// HorizonPaddingYears extends the chart past the latest account's target horizon.
	HorizonPaddingYears = 5
)

// HorizonYears derives the trajectory length: the longest account horizon
// (targetAge - current age) or DefaultHorizonYears without accounts, plus HorizonPaddingYears.
// Account horizons already past the target count as zero, so the result is never below
// HorizonPaddingYears.
func HorizonYears(req *domain.ProjectionRequest) int {
	longest := DefaultHorizonYears
	if len(req.Accounts) > 0 {
		longest = 0
		for _, account := range req.Accounts {
			if years := account.YearsUntil(req.TargetAge); years > longest {
				longest = years
			}
		}
	}
	return longest + HorizonPaddingYears
}

// BuildTrajectory materializes one point per year offset from 0 through HorizonYears inclusive.
func BuildTrajectory(req *domain.ProjectionRequest) []domain.TrajectoryPoint {
	points, _ := buildTrajectory(context.Background(), req)
	return points
}

func buildTrajectory(ctx context.Context, req *domain.ProjectionRequest) ([]domain.TrajectoryPoint, error) {
	horizon := HorizonYears(req)
	points := make([]domain.TrajectoryPoint, 0, horizon+1)
	for offset := 0; offset <= horizon; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		investments := investmentsAt(req.Accounts, offset)
		_, equity := homeAt(req.Home, offset)
		points = append(points, domain.TrajectoryPoint{
			YearOffset:       offset,
			InvestmentsTotal: investments,
			HomeEquity:       equity,
			NetWorth:         investments.Add(equity),
		})
	}
	return points, nil
}
