package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks a request that violates the input constraints (negative amounts,
// rates out of range, contribution limits, duplicate accounts)
var ErrInvalidInput = errors.New("invalid input")

// HomeEquityInput describes the primary residence
type HomeEquityInput struct {
	HomeValue           decimal.Decimal `yaml:"home_value" json:"home_value"`
	MortgageBalance     decimal.Decimal `yaml:"mortgage_balance" json:"mortgage_balance"`
	AppreciationRatePct decimal.Decimal `yaml:"appreciation_rate_pct" json:"appreciation_rate_pct"`
	ReferenceAge        int             `yaml:"reference_age" json:"reference_age"` // age basis for years-to-target
}

// CurrentEquity returns today's equity, floored at zero
func (h HomeEquityInput) CurrentEquity() decimal.Decimal {
	return decimal.Max(h.HomeValue.Sub(h.MortgageBalance), decimal.Zero)
}

// ProjectionRequest is the immutable input of a single projection, built once per form submission
type ProjectionRequest struct {
	TargetAge int             `yaml:"target_age" json:"target_age"`
	Accounts  []AccountInput  `yaml:"accounts" json:"accounts"`
	Home      HomeEquityInput `yaml:"home" json:"home"`
}

// Account returns the account with the given key, if present
func (r *ProjectionRequest) Account(key AccountKey) (AccountInput, bool) {
	for _, a := range r.Accounts {
		if a.Key == key {
			return a, true
		}
	}
	return AccountInput{}, false
}

// TotalBalance returns the sum of today's account balances
func (r *ProjectionRequest) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// TotalAnnualContribution returns the sum of yearly contributions including employer match
func (r *ProjectionRequest) TotalAnnualContribution() decimal.Decimal {
	total := decimal.Zero
	for _, a := range r.Accounts {
		total = total.Add(a.TotalContribution())
	}
	return total
}

// AccountProjection is the target-age snapshot of a single account
type AccountProjection struct {
	Key           AccountKey      `json:"key"`
	Years         int             `json:"years"`
	Contribution  decimal.Decimal `json:"contribution"`
	ValueAtTarget decimal.Decimal `json:"value_at_target"`
}

// TrajectoryPoint is one year of the projected trajectory
type TrajectoryPoint struct {
	YearOffset       int             `json:"year_offset"`
	InvestmentsTotal decimal.Decimal `json:"investments_total"`
	HomeEquity       decimal.Decimal `json:"home_equity"`
	NetWorth         decimal.Decimal `json:"net_worth"`
}

// ProjectionResult holds the target-age snapshot and the year-by-year trajectory
type ProjectionResult struct {
	TargetAge                int                 `json:"target_age"`
	InvestmentsTotalAtTarget decimal.Decimal     `json:"investments_total_at_target"`
	HomeValueAtTarget        decimal.Decimal     `json:"home_value_at_target"`
	HomeEquityAtTarget       decimal.Decimal     `json:"home_equity_at_target"`
	NetWorthAtTarget         decimal.Decimal     `json:"net_worth_at_target"`
	HorizonYears             int                 `json:"horizon_years"`
	Accounts                 []AccountProjection `json:"accounts"`
	Trajectory               []TrajectoryPoint   `json:"trajectory"`
}

// FinalPoint returns the last trajectory point, or a zero point for an empty trajectory
func (r *ProjectionResult) FinalPoint() TrajectoryPoint {
	if len(r.Trajectory) == 0 {
		return TrajectoryPoint{}
	}
	return r.Trajectory[len(r.Trajectory)-1]
}

// PointAt returns the trajectory point for a year offset
func (r *ProjectionResult) PointAt(offset int) (TrajectoryPoint, bool) {
	if offset < 0 || offset >= len(r.Trajectory) {
		return TrajectoryPoint{}, false
	}
	return r.Trajectory[offset], true
}
