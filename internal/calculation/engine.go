package calculation

import (
	"context"
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine computes retirement projections. It holds no per-request state and is
// safe for concurrent use.
type ProjectionEngine struct {
	Debug  bool // log per-account breakdowns
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project computes the target-age snapshot and the full trajectory for a request.
// Out-of-range numbers are clamped (and logged) rather than rejected; callers are expected
// to validate at the input boundary. The only error returned is ctx's.
func (pe *ProjectionEngine) Project(ctx context.Context, req *domain.ProjectionRequest) (*domain.ProjectionResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil projection request", domain.ErrInvalidInput)
	}
	clamped := pe.clampRequest(req)

	accounts := ProjectAccounts(clamped.Accounts, clamped.TargetAge)
	investments := decimal.Zero
	for _, a := range accounts {
		investments = investments.Add(a.ValueAtTarget)
	}
	homeValue, equity := HomeEquity(clamped.Home, clamped.TargetAge)

	trajectory, err := buildTrajectory(ctx, clamped)
	if err != nil {
		return nil, err
	}

	result := &domain.ProjectionResult{
		TargetAge:                clamped.TargetAge,
		InvestmentsTotalAtTarget: investments,
		HomeValueAtTarget:        homeValue,
		HomeEquityAtTarget:       equity,
		NetWorthAtTarget:         investments.Add(equity),
		HorizonYears:             len(trajectory) - 1,
		Accounts:                 accounts,
		Trajectory:               trajectory,
	}

	if pe.Debug {
		pe.logBreakdown(result)
	}
	return result, nil
}

func (pe *ProjectionEngine) logBreakdown(result *domain.ProjectionResult) {
	pe.Logger.Debugf("PROJECTION AT AGE %d", result.TargetAge)
	for _, a := range result.Accounts {
		pe.Logger.Debugf("  %-24s years=%3d contribution=$%s value=$%s",
			a.Key.Label(), a.Years, a.Contribution.StringFixed(2), a.ValueAtTarget.StringFixed(2))
	}
	pe.Logger.Debugf("  Investments:  $%s", result.InvestmentsTotalAtTarget.StringFixed(2))
	pe.Logger.Debugf("  Home value:   $%s", result.HomeValueAtTarget.StringFixed(2))
	pe.Logger.Debugf("  Home equity:  $%s", result.HomeEquityAtTarget.StringFixed(2))
	pe.Logger.Debugf("  Net worth:    $%s", result.NetWorthAtTarget.StringFixed(2))
	pe.Logger.Debugf("  Horizon:      %d years", result.HorizonYears)
}

// clampRequest returns a copy of req with every amount and rate forced into its valid range.
func (pe *ProjectionEngine) clampRequest(req *domain.ProjectionRequest) *domain.ProjectionRequest {
	out := &domain.ProjectionRequest{
		TargetAge: req.TargetAge,
		Accounts:  make([]domain.AccountInput, len(req.Accounts)),
		Home:      req.Home,
	}
	for i, a := range req.Accounts {
		a.Balance = pe.clamp(a.Key.String()+" balance", a.Balance, decimal.Zero, nil)
		a.AnnualContribution = pe.clamp(a.Key.String()+" annual contribution", a.AnnualContribution, decimal.Zero, nil)
		a.EmployerMatch = pe.clamp(a.Key.String()+" employer match", a.EmployerMatch, decimal.Zero, nil)
		a.GrowthRatePct = pe.clamp(a.Key.String()+" growth rate", a.GrowthRatePct, decimal.Zero, &domain.MaxGrowthRatePct)
		out.Accounts[i] = a
	}
	out.Home.HomeValue = pe.clamp("home value", out.Home.HomeValue, decimal.Zero, nil)
	out.Home.MortgageBalance = pe.clamp("mortgage balance", out.Home.MortgageBalance, decimal.Zero, nil)
	out.Home.AppreciationRatePct = pe.clamp("home appreciation rate", out.Home.AppreciationRatePct, decimal.Zero, &domain.MaxAppreciationRatePct)
	return out
}

func (pe *ProjectionEngine) clamp(field string, v, lo decimal.Decimal, hi *decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		pe.Logger.Warnf("%s %s below %s, clamping", field, v.String(), lo.String())
		return lo
	}
	if hi != nil && v.GreaterThan(*hi) {
		pe.Logger.Warnf("%s %s above %s, clamping", field, v.String(), hi.String())
		return *hi
	}
	return v
}
