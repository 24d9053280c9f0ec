package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// FutureValue projects a balance forward with annual compounding and an ordinary annuity of
// yearly contributions: balance*(1+r)^n + contribution*((1+r)^n-1)/r, with r = ratePct/100.
//
// For years <= 0 the balance is returned unchanged. A zero rate accumulates contributions
// linearly (balance + contribution*years).
func FutureValue(balance, contribution, ratePct decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return balance
	}

	n := decimal.NewFromInt(int64(years))
	r := ratePct.Div(hundred)
	if r.IsZero() {
		return balance.Add(contribution.Mul(n))
	}

	growth := one.Add(r).Pow(n)
	annuityFactor := growth.Sub(one).Div(r)

	return balance.Mul(growth).Add(contribution.Mul(annuityFactor))
}

// AnnuityFactor returns ((1+r)^n - 1)/r, the multiplier that turns a yearly contribution into
// its accumulated value after n years. It equals n when the rate is zero and 0 when n <= 0.
func AnnuityFactor(ratePct decimal.Decimal, years int) decimal.Decimal {
	return FutureValue(decimal.Zero, one, ratePct, years)
}
