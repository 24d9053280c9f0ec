package config

import (
	"fmt"
	"os"
	"time"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/retirmentaudit/retirement-audit-launch/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// PersonDetails describes a household member. Exactly one of CurrentAge or BirthDate is set.
type PersonDetails struct {
	Name       string     `yaml:"name,omitempty" json:"name,omitempty"`
	CurrentAge *int       `yaml:"current_age,omitempty" json:"current_age,omitempty"`
	BirthDate  *time.Time `yaml:"birth_date,omitempty" json:"birth_date,omitempty"`
}

// AccountEntry is one account of the input document; the holder's age comes from the household
type AccountEntry struct {
	Owner              domain.Owner       `yaml:"owner" json:"owner"`
	Kind               domain.AccountKind `yaml:"kind" json:"kind"`
	Balance            decimal.Decimal    `yaml:"balance" json:"balance"`
	AnnualContribution decimal.Decimal    `yaml:"annual_contribution" json:"annual_contribution"`
	EmployerMatch      decimal.Decimal    `yaml:"employer_match,omitempty" json:"employer_match,omitempty"`
	GrowthRatePct      decimal.Decimal    `yaml:"growth_rate_pct" json:"growth_rate_pct"`
}

// HomeEntry describes the primary residence. ReferenceAge defaults to the primary member's age.
type HomeEntry struct {
	HomeValue           decimal.Decimal `yaml:"home_value" json:"home_value"`
	MortgageBalance     decimal.Decimal `yaml:"mortgage_balance" json:"mortgage_balance"`
	AppreciationRatePct decimal.Decimal `yaml:"appreciation_rate_pct" json:"appreciation_rate_pct"`
	ReferenceAge        *int            `yaml:"reference_age,omitempty" json:"reference_age,omitempty"`
}

// InputDocument is the on-disk projection input
type InputDocument struct {
	TargetAge int                            `yaml:"target_age" json:"target_age"`
	Household map[domain.Owner]PersonDetails `yaml:"household" json:"household"`
	Accounts  []AccountEntry                 `yaml:"accounts" json:"accounts"`
	Home      *HomeEntry                     `yaml:"home,omitempty" json:"home,omitempty"`
}

// InputParser handles parsing and validation of projection inputs
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection request from a YAML (or JSON) input document
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes an input document and builds a validated projection request
func (ip *InputParser) Parse(data []byte) (*domain.ProjectionRequest, error) {
	var doc InputDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	req, err := ip.BuildRequest(&doc)
	if err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return req, nil
}

// BuildRequest resolves household ages and converts the document into a validated request
func (ip *InputParser) BuildRequest(doc *InputDocument) (*domain.ProjectionRequest, error) {
	if len(doc.Household) == 0 {
		return nil, fmt.Errorf("%w: no household members provided", domain.ErrInvalidInput)
	}
	if _, exists := doc.Household[domain.OwnerSelf]; !exists {
		return nil, fmt.Errorf("%w: household member %q is required", domain.ErrInvalidInput, domain.OwnerSelf)
	}

	ages := make(map[domain.Owner]int, len(doc.Household))
	for owner, person := range doc.Household {
		if !owner.Valid() {
			return nil, fmt.Errorf("%w: unknown household member %q", domain.ErrInvalidInput, owner)
		}
		age, err := resolveAge(person, nowFunc())
		if err != nil {
			return nil, fmt.Errorf("household member %s: %w", owner, err)
		}
		ages[owner] = age
	}

	req := &domain.ProjectionRequest{
		TargetAge: doc.TargetAge,
		Accounts:  make([]domain.AccountInput, 0, len(doc.Accounts)),
	}
	for i, entry := range doc.Accounts {
		age, ok := ages[entry.Owner]
		if !ok {
			return nil, fmt.Errorf("%w: account %d: owner %q is not in the household", domain.ErrInvalidInput, i, entry.Owner)
		}
		req.Accounts = append(req.Accounts, domain.AccountInput{
			Key:                domain.AccountKey{Owner: entry.Owner, Kind: entry.Kind},
			CurrentAge:         age,
			Balance:            entry.Balance,
			AnnualContribution: entry.AnnualContribution,
			EmployerMatch:      entry.EmployerMatch,
			GrowthRatePct:      entry.GrowthRatePct,
		})
	}

	req.Home.ReferenceAge = ages[domain.OwnerSelf]
	if doc.Home != nil {
		req.Home.HomeValue = doc.Home.HomeValue
		req.Home.MortgageBalance = doc.Home.MortgageBalance
		req.Home.AppreciationRatePct = doc.Home.AppreciationRatePct
		if doc.Home.ReferenceAge != nil {
			req.Home.ReferenceAge = *doc.Home.ReferenceAge
		}
	}

	if err := ip.ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}

func resolveAge(person PersonDetails, now time.Time) (int, error) {
	switch {
	case person.CurrentAge != nil && person.BirthDate != nil:
		return 0, fmt.Errorf("%w: specify either current_age or birth_date, not both", domain.ErrInvalidInput)
	case person.CurrentAge != nil:
		return *person.CurrentAge, nil
	case person.BirthDate != nil:
		if person.BirthDate.After(now) {
			return 0, fmt.Errorf("%w: birth date %s is in the future", domain.ErrInvalidInput, person.BirthDate.Format("2006-01-02"))
		}
		return dateutil.Age(*person.BirthDate, now), nil
	default:
		return 0, fmt.Errorf("%w: current_age or birth_date is required", domain.ErrInvalidInput)
	}
}

// CreateExampleConfiguration creates an example input document
func (ip *InputParser) CreateExampleConfiguration() *InputDocument {
	selfAge := 30
	spouseAge := 32

	return &InputDocument{
		TargetAge: 65,
		Household: map[domain.Owner]PersonDetails{
			domain.OwnerSelf:   {Name: "Alex", CurrentAge: &selfAge},
			domain.OwnerSpouse: {Name: "Sam", CurrentAge: &spouseAge},
		},
		Accounts: []AccountEntry{
			{
				Owner:              domain.OwnerSelf,
				Kind:               domain.Kind401k,
				Balance:            decimal.NewFromInt(45000),
				AnnualContribution: decimal.NewFromInt(12000),
				EmployerMatch:      decimal.NewFromInt(4000),
				GrowthRatePct:      decimal.NewFromInt(7),
			},
			{
				Owner:              domain.OwnerSelf,
				Kind:               domain.KindRothIRA,
				Balance:            decimal.NewFromInt(15000),
				AnnualContribution: decimal.NewFromInt(7000),
				GrowthRatePct:      decimal.NewFromInt(7),
			},
			{
				Owner:              domain.OwnerSpouse,
				Kind:               domain.Kind401k,
				Balance:            decimal.NewFromInt(60000),
				AnnualContribution: decimal.NewFromInt(10000),
				EmployerMatch:      decimal.NewFromInt(3000),
				GrowthRatePct:      decimal.NewFromInt(6),
			},
			{
				Owner:              domain.OwnerSpouse,
				Kind:               domain.KindHSA,
				Balance:            decimal.NewFromInt(8000),
				AnnualContribution: decimal.NewFromInt(4150),
				GrowthRatePct:      decimal.NewFromInt(5),
			},
		},
		Home: &HomeEntry{
			HomeValue:           decimal.NewFromInt(350000),
			MortgageBalance:     decimal.NewFromInt(280000),
			AppreciationRatePct: decimal.NewFromInt(3),
		},
	}
}
