package calculation

import (
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

// HomeEquity projects the home value at targetAge (no contributions, appreciation only) and
// the resulting equity. Equity is floored at zero for an underwater mortgage.
func HomeEquity(home domain.HomeEquityInput, targetAge int) (homeValue, equity decimal.Decimal) {
	return homeAt(home, targetAge-home.ReferenceAge)
}

// homeAt returns the home value and floored equity years from the reference point.
func homeAt(home domain.HomeEquityInput, years int) (decimal.Decimal, decimal.Decimal) {
	value := FutureValue(home.HomeValue, decimal.Zero, home.AppreciationRatePct, years)
	equity := decimal.Max(value.Sub(home.MortgageBalance), decimal.Zero)
	return value, equity
}
