package config

import (
	"fmt"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidateRequest checks a projection request against the form's input constraints.
// Every failure wraps domain.ErrInvalidInput.
func (ip *InputParser) ValidateRequest(req *domain.ProjectionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: no projection request provided", domain.ErrInvalidInput)
	}
	if err := validateAge("target age", req.TargetAge); err != nil {
		return err
	}

	seen := make(map[domain.AccountKey]bool, len(req.Accounts))
	for i := range req.Accounts {
		account := &req.Accounts[i]
		if seen[account.Key] {
			return fmt.Errorf("%w: duplicate account %s", domain.ErrInvalidInput, account.Key)
		}
		seen[account.Key] = true

		if err := ip.validateAccount(account); err != nil {
			return fmt.Errorf("account %s: %w", account.Key, err)
		}
	}

	if err := ip.validateHome(&req.Home); err != nil {
		return fmt.Errorf("home: %w", err)
	}
	return nil
}

// validateAccount validates a single account entry
func (ip *InputParser) validateAccount(account *domain.AccountInput) error {
	if !account.Key.Owner.Valid() {
		return fmt.Errorf("%w: unknown owner %q", domain.ErrInvalidInput, account.Key.Owner)
	}
	if !account.Key.Kind.Valid() {
		return fmt.Errorf("%w: unknown account kind %q", domain.ErrInvalidInput, account.Key.Kind)
	}
	if err := validateAge("current age", account.CurrentAge); err != nil {
		return err
	}
	if account.Balance.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: balance cannot be negative", domain.ErrInvalidInput)
	}
	if account.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: annual contribution cannot be negative", domain.ErrInvalidInput)
	}
	if account.EmployerMatch.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: employer match cannot be negative", domain.ErrInvalidInput)
	}
	if !account.EmployerMatch.IsZero() && !account.Key.Kind.HasEmployerMatch() {
		return fmt.Errorf("%w: employer match only applies to %s accounts", domain.ErrInvalidInput, domain.Kind401k.Label())
	}
	if limit, ok := domain.ContributionLimit(account.Key.Kind); ok && account.AnnualContribution.GreaterThan(limit) {
		return fmt.Errorf("%w: %s contribution cannot exceed $%s", domain.ErrInvalidInput, account.Key.Kind.Label(), limit.StringFixed(0))
	}
	if err := validateRate("growth rate", account.GrowthRatePct, domain.MaxGrowthRatePct); err != nil {
		return err
	}
	return nil
}

// validateHome validates the home equity inputs
func (ip *InputParser) validateHome(home *domain.HomeEquityInput) error {
	if home.HomeValue.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: home value cannot be negative", domain.ErrInvalidInput)
	}
	if home.MortgageBalance.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: mortgage balance cannot be negative", domain.ErrInvalidInput)
	}
	if err := validateRate("appreciation rate", home.AppreciationRatePct, domain.MaxAppreciationRatePct); err != nil {
		return err
	}
	return validateAge("reference age", home.ReferenceAge)
}

func validateAge(field string, age int) error {
	if age < 0 || age > domain.MaxAge {
		return fmt.Errorf("%w: %s must be between 0 and %d", domain.ErrInvalidInput, field, domain.MaxAge)
	}
	return nil
}

func validateRate(field string, pct, upper decimal.Decimal) error {
	if pct.LessThan(decimal.Zero) || pct.GreaterThan(upper) {
		return fmt.Errorf("%w: %s must be between 0%% and %s%%", domain.ErrInvalidInput, field, upper.String())
	}
	return nil
}
