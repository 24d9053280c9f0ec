package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Owner identifies which member of the household holds an account
type Owner string

const (
	OwnerSelf   Owner = "self"
	OwnerSpouse Owner = "spouse"
)

// Owners lists the supported household members in display order
var Owners = []Owner{OwnerSelf, OwnerSpouse}

// Valid reports whether the owner is a supported household member
func (o Owner) Valid() bool {
	return o == OwnerSelf || o == OwnerSpouse
}

// Label returns a human readable name for the owner
func (o Owner) Label() string {
	switch o {
	case OwnerSelf:
		return "You"
	case OwnerSpouse:
		return "Spouse"
	default:
		return string(o)
	}
}

// AccountKind identifies the type of retirement or investment account
type AccountKind string

const (
	Kind401k           AccountKind = "401k"
	KindTraditionalIRA AccountKind = "traditional_ira"
	KindRothIRA        AccountKind = "roth_ira"
	KindHSA            AccountKind = "hsa"
	KindBrokerage      AccountKind = "brokerage"
)

// AccountKinds lists the supported account kinds in display order
var AccountKinds = []AccountKind{Kind401k, KindTraditionalIRA, KindRothIRA, KindHSA, KindBrokerage}

// Valid reports whether the kind is supported
func (k AccountKind) Valid() bool {
	for _, kind := range AccountKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// HasEmployerMatch reports whether accounts of this kind can receive an employer match
func (k AccountKind) HasEmployerMatch() bool {
	return k == Kind401k
}

// IsIRA reports whether the kind is subject to the IRA contribution limit
func (k AccountKind) IsIRA() bool {
	return k == KindTraditionalIRA || k == KindRothIRA
}

// Label returns a human readable name for the account kind
func (k AccountKind) Label() string {
	switch k {
	case Kind401k:
		return "401(k)"
	case KindTraditionalIRA:
		return "Traditional IRA"
	case KindRothIRA:
		return "Roth IRA"
	case KindHSA:
		return "HSA"
	case KindBrokerage:
		return "Brokerage"
	default:
		return string(k)
	}
}

// AccountKey uniquely identifies an account within a request (owner x kind)
type AccountKey struct {
	Owner Owner       `yaml:"owner" json:"owner"`
	Kind  AccountKind `yaml:"kind" json:"kind"`
}

// String renders the key as "owner/kind"
func (k AccountKey) String() string {
	return fmt.Sprintf("%s/%s", k.Owner, k.Kind)
}

// Label renders the key for display, e.g. "Spouse Roth IRA"
func (k AccountKey) Label() string {
	return k.Owner.Label() + " " + k.Kind.Label()
}

// ParseAccountKey parses an "owner/kind" string
func ParseAccountKey(s string) (AccountKey, error) {
	owner, kind, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return AccountKey{}, fmt.Errorf("%w: account key %q must be owner/kind", ErrInvalidInput, s)
	}
	key := AccountKey{Owner: Owner(owner), Kind: AccountKind(kind)}
	if !key.Owner.Valid() {
		return AccountKey{}, fmt.Errorf("%w: unknown account owner %q", ErrInvalidInput, owner)
	}
	if !key.Kind.Valid() {
		return AccountKey{}, fmt.Errorf("%w: unknown account kind %q", ErrInvalidInput, kind)
	}
	return key, nil
}

// AccountInput is a single account entry of a projection request.
// EmployerMatch is zero for kinds without a match so every account aggregates the same way.
type AccountInput struct {
	Key                AccountKey      `yaml:",inline" json:"key"`
	CurrentAge         int             `yaml:"current_age" json:"current_age"`
	Balance            decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	EmployerMatch      decimal.Decimal `yaml:"employer_match" json:"employer_match"`
	GrowthRatePct      decimal.Decimal `yaml:"growth_rate_pct" json:"growth_rate_pct"`
}

// TotalContribution returns the yearly amount added to the account (own contribution plus match)
func (a AccountInput) TotalContribution() decimal.Decimal {
	return a.AnnualContribution.Add(a.EmployerMatch)
}

// YearsUntil returns the number of years between the holder's current age and targetAge.
// The result may be zero or negative.
func (a AccountInput) YearsUntil(targetAge int) int {
	return targetAge - a.CurrentAge
}
