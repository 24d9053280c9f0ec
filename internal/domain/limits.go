package domain

import "github.com/shopspring/decimal"

// Input bounds enforced at the form boundary
var (
	MaxGrowthRatePct       = decimal.NewFromInt(20)
	MaxAppreciationRatePct = decimal.NewFromInt(10)
	IRAContributionLimit   = decimal.NewFromInt(7000)
	HSAContributionLimit   = decimal.NewFromInt(8300)
)

// MaxAge bounds current, reference and target ages
const MaxAge = 120

// ContributionLimit returns the yearly contribution cap for an account kind, if it has one
func ContributionLimit(kind AccountKind) (decimal.Decimal, bool) {
	switch {
	case kind.IsIRA():
		return IRAContributionLimit, true
	case kind == KindHSA:
		return HSAContributionLimit, true
	default:
		return decimal.Zero, false
	}
}
