package calculation

import (
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectAccounts computes each account's value at targetAge using the account holder's own
// age horizon (targetAge - current age) and the combined contribution plus employer match.
func ProjectAccounts(accounts []domain.AccountInput, targetAge int) []domain.AccountProjection {
	projections := make([]domain.AccountProjection, 0, len(accounts))
	for _, account := range accounts {
		years := account.YearsUntil(targetAge)
		contribution := account.TotalContribution()
		projections = append(projections, domain.AccountProjection{
			Key:           account.Key,
			Years:         years,
			Contribution:  contribution,
			ValueAtTarget: FutureValue(account.Balance, contribution, account.GrowthRatePct, years),
		})
	}
	return projections
}

// AggregateAccounts returns the combined value of all accounts at targetAge.
// An empty collection yields zero.
func AggregateAccounts(accounts []domain.AccountInput, targetAge int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ProjectAccounts(accounts, targetAge) {
		total = total.Add(p.ValueAtTarget)
	}
	return total
}

// investmentsAt sums every account projected yearOffset years from now, ignoring each
// holder's age. The trajectory measures years from today; the snapshot measures years to
// the holder's target age.
func investmentsAt(accounts []domain.AccountInput, yearOffset int) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(FutureValue(account.Balance, account.TotalContribution(), account.GrowthRatePct, yearOffset))
	}
	return total
}
