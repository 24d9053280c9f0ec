// Package form collects a projection request interactively in the terminal.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/pkg/dateutil"
	"github.com/retirmentaudit/retirement-audit-launch/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// nowFunc resolves birth dates to ages (override in tests for determinism).
var nowFunc = time.Now

// AccountAnswers holds the raw text entered for one account.
type AccountAnswers struct {
	Balance       string
	Contribution  string
	EmployerMatch string
	GrowthRate    string
}

// PersonAnswers holds one household member's age and selected accounts.
type PersonAnswers struct {
	Age      string
	Kinds    []domain.AccountKind
	Accounts map[domain.AccountKind]*AccountAnswers
}

// Has reports whether the member selected an account kind.
func (p *PersonAnswers) Has(kind domain.AccountKind) bool {
	for _, k := range p.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Answers is everything the form collects, as entered.
type Answers struct {
	TargetAge        string
	HasSpouse        bool
	People           map[domain.Owner]*PersonAnswers
	HomeValue        string
	MortgageBalance  string
	AppreciationRate string
}

// NewAnswers returns answers pre-filled with the form defaults.
func NewAnswers() *Answers {
	a := &Answers{
		TargetAge:        "65",
		People:           make(map[domain.Owner]*PersonAnswers, len(domain.Owners)),
		HomeValue:        "0",
		MortgageBalance:  "0",
		AppreciationRate: "3",
	}
	for _, owner := range domain.Owners {
		p := &PersonAnswers{Accounts: make(map[domain.AccountKind]*AccountAnswers, len(domain.AccountKinds))}
		for _, kind := range domain.AccountKinds {
			p.Accounts[kind] = &AccountAnswers{Balance: "0", Contribution: "0", EmployerMatch: "0", GrowthRate: "7"}
		}
		a.People[owner] = p
	}
	return a
}

// Members returns the owners included in the projection.
func (a *Answers) Members() []domain.Owner {
	if a.HasSpouse {
		return []domain.Owner{domain.OwnerSelf, domain.OwnerSpouse}
	}
	return []domain.Owner{domain.OwnerSelf}
}

// Request parses and validates the answers. Every failure wraps domain.ErrInvalidInput.
func (a *Answers) Request() (*domain.ProjectionRequest, error) {
	target, err := parseWhole("target age", a.TargetAge)
	if err != nil {
		return nil, err
	}
	req := &domain.ProjectionRequest{TargetAge: target}

	for _, owner := range a.Members() {
		person := a.People[owner]
		if person == nil {
			return nil, fmt.Errorf("%w: no answers for %s", domain.ErrInvalidInput, owner.Label())
		}
		age, err := dateutil.ParseAge(person.Age, nowFunc())
		if err != nil {
			return nil, fmt.Errorf("%w: %s age: %v", domain.ErrInvalidInput, owner.Label(), err)
		}
		if owner == domain.OwnerSelf {
			req.Home.ReferenceAge = age
		}

		for _, kind := range domain.AccountKinds {
			if !person.Has(kind) {
				continue
			}
			key := domain.AccountKey{Owner: owner, Kind: kind}
			account, err := parseAccount(key, age, person.Accounts[kind])
			if err != nil {
				return nil, err
			}
			req.Accounts = append(req.Accounts, account)
		}
	}

	if req.Home.HomeValue, err = parseAmount("home value", a.HomeValue); err != nil {
		return nil, err
	}
	if req.Home.MortgageBalance, err = parseAmount("mortgage balance", a.MortgageBalance); err != nil {
		return nil, err
	}
	if req.Home.AppreciationRatePct, err = parseRate("appreciation rate", a.AppreciationRate); err != nil {
		return nil, err
	}

	if err := config.NewInputParser().ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func parseAccount(key domain.AccountKey, age int, in *AccountAnswers) (domain.AccountInput, error) {
	if in == nil {
		in = &AccountAnswers{}
	}
	account := domain.AccountInput{Key: key, CurrentAge: age}
	label := key.Label()

	var err error
	if account.Balance, err = parseAmount(label+" balance", in.Balance); err != nil {
		return account, err
	}
	if account.AnnualContribution, err = parseAmount(label+" contribution", in.Contribution); err != nil {
		return account, err
	}
	if key.Kind.HasEmployerMatch() {
		if account.EmployerMatch, err = parseAmount(label+" employer match", in.EmployerMatch); err != nil {
			return account, err
		}
	}
	if account.GrowthRatePct, err = parseRate(label+" growth rate", in.GrowthRate); err != nil {
		return account, err
	}
	return account, nil
}

func parseWhole(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a whole number", domain.ErrInvalidInput, field)
	}
	return n, nil
}

func parseAmount(field, s string) (stddec.Decimal, error) {
	m, err := decimal.ParseMoney(s)
	if err != nil {
		return stddec.Zero, fmt.Errorf("%w: %s must be a dollar amount", domain.ErrInvalidInput, field)
	}
	return m.Decimal, nil
}

func parseRate(field, s string) (stddec.Decimal, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return stddec.Zero, nil
	}
	d, err := stddec.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return stddec.Zero, fmt.Errorf("%w: %s must be a percentage", domain.ErrInvalidInput, field)
	}
	return d, nil
}
