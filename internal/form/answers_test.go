package form

import (
	"errors"
	"testing"
	"time"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledAnswers() *Answers {
	a := NewAnswers()
	self := a.People[domain.OwnerSelf]
	self.Age = "30"
	self.Kinds = []domain.AccountKind{domain.KindRothIRA, domain.Kind401k}
	self.Accounts[domain.Kind401k] = &AccountAnswers{Balance: "$45,000", Contribution: "12000", EmployerMatch: "4,000", GrowthRate: "7%"}
	self.Accounts[domain.KindRothIRA] = &AccountAnswers{Balance: "15000", Contribution: "7000", EmployerMatch: "999", GrowthRate: "6.5"}
	a.HomeValue = "350000"
	a.MortgageBalance = "280,000"
	return a
}

func TestRequest_SelfOnly(t *testing.T) {
	req, err := filledAnswers().Request()
	require.NoError(t, err)

	assert.Equal(t, 65, req.TargetAge)
	require.Len(t, req.Accounts, 2)

	// Accounts follow display order regardless of selection order.
	k401 := req.Accounts[0]
	assert.Equal(t, domain.AccountKey{Owner: domain.OwnerSelf, Kind: domain.Kind401k}, k401.Key)
	assert.Equal(t, 30, k401.CurrentAge)
	assert.True(t, k401.Balance.Equal(decimal.NewFromInt(45000)))
	assert.True(t, k401.EmployerMatch.Equal(decimal.NewFromInt(4000)))
	assert.True(t, k401.GrowthRatePct.Equal(decimal.NewFromInt(7)))

	roth := req.Accounts[1]
	assert.True(t, roth.EmployerMatch.IsZero(), "match is ignored for kinds without one")
	assert.True(t, roth.GrowthRatePct.Equal(decimal.RequireFromString("6.5")))

	assert.True(t, req.Home.MortgageBalance.Equal(decimal.NewFromInt(280000)))
	assert.True(t, req.Home.AppreciationRatePct.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 30, req.Home.ReferenceAge)
}

func TestRequest_SpouseToggle(t *testing.T) {
	a := filledAnswers()
	spouse := a.People[domain.OwnerSpouse]
	spouse.Age = "32"
	spouse.Kinds = []domain.AccountKind{domain.KindHSA}
	spouse.Accounts[domain.KindHSA].Balance = "8000"
	spouse.Accounts[domain.KindHSA].Contribution = "4150"

	req, err := a.Request()
	require.NoError(t, err)
	assert.Len(t, req.Accounts, 2, "spouse ignored until included")

	a.HasSpouse = true
	req, err = a.Request()
	require.NoError(t, err)
	require.Len(t, req.Accounts, 3)
	assert.Equal(t, domain.AccountKey{Owner: domain.OwnerSpouse, Kind: domain.KindHSA}, req.Accounts[2].Key)
	assert.Equal(t, 32, req.Accounts[2].CurrentAge)
}

func TestRequest_BirthDate(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	a := filledAnswers()
	a.People[domain.OwnerSelf].Age = "1990-01-15"
	req, err := a.Request()
	require.NoError(t, err)
	assert.Equal(t, 35, req.Accounts[0].CurrentAge)
}

func TestRequest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *Answers)
		want   string
	}{
		{name: "target age text", mutate: func(a *Answers) { a.TargetAge = "sixty" }, want: "target age must be a whole number"},
		{name: "missing age", mutate: func(a *Answers) { a.People[domain.OwnerSelf].Age = "" }, want: "You age"},
		{name: "bad balance", mutate: func(a *Answers) { a.People[domain.OwnerSelf].Accounts[domain.Kind401k].Balance = "lots" }, want: "You 401(k) balance must be a dollar amount"},
		{name: "bad rate", mutate: func(a *Answers) { a.AppreciationRate = "three" }, want: "appreciation rate must be a percentage"},
		{name: "ira over limit", mutate: func(a *Answers) { a.People[domain.OwnerSelf].Accounts[domain.KindRothIRA].Contribution = "7500" }, want: "cannot exceed $7000"},
		{name: "growth too high", mutate: func(a *Answers) { a.People[domain.OwnerSelf].Accounts[domain.Kind401k].GrowthRate = "25" }, want: "growth rate must be between"},
		{name: "spouse without age", mutate: func(a *Answers) { a.HasSpouse = true }, want: "Spouse age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := filledAnswers()
			tt.mutate(a)
			_, err := a.Request()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRequest_EmptyRateIsZero(t *testing.T) {
	a := filledAnswers()
	a.AppreciationRate = " "
	req, err := a.Request()
	require.NoError(t, err)
	assert.True(t, req.Home.AppreciationRatePct.IsZero())
}

func TestFieldValidators(t *testing.T) {
	assert.NoError(t, validateWhole("65"))
	assert.Error(t, validateWhole("6.5"))
	assert.NoError(t, validateAmount("$1,000"))
	assert.Error(t, validateAmount("abc"))
	assert.NoError(t, validateRate("7%"))
	assert.Error(t, validateRate("x%"))
	assert.NoError(t, validateAge("1980-02-02"))
	assert.Error(t, validateAge("soon"))
}

func TestNewForm(t *testing.T) {
	assert.NotNil(t, New(NewAnswers()))
}
