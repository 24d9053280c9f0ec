package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountKey(t *testing.T) {
	testCases := []struct {
		in      string
		want    AccountKey
		wantErr bool
		desc    string
	}{
		{in: "self/401k", want: AccountKey{Owner: OwnerSelf, Kind: Kind401k}, desc: "self 401k"},
		{in: " spouse/roth_ira ", want: AccountKey{Owner: OwnerSpouse, Kind: KindRothIRA}, desc: "trims whitespace"},
		{in: "self", wantErr: true, desc: "missing kind"},
		{in: "child/hsa", wantErr: true, desc: "unknown owner"},
		{in: "self/pension", wantErr: true, desc: "unknown kind"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			key, err := ParseAccountKey(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, key)
			assert.Equal(t, tc.want.String(), key.String())
		})
	}
}

func TestAccountKind_Properties(t *testing.T) {
	assert.True(t, Kind401k.HasEmployerMatch())
	for _, k := range []AccountKind{KindTraditionalIRA, KindRothIRA, KindHSA, KindBrokerage} {
		assert.False(t, k.HasEmployerMatch(), "%s should not carry a match", k)
	}
	assert.True(t, KindRothIRA.IsIRA())
	assert.True(t, KindTraditionalIRA.IsIRA())
	assert.False(t, KindHSA.IsIRA())
	assert.False(t, AccountKind("annuity").Valid())
	assert.Equal(t, "Spouse Roth IRA", AccountKey{Owner: OwnerSpouse, Kind: KindRothIRA}.Label())
}

func TestAccountInput_Contribution(t *testing.T) {
	a := AccountInput{
		Key:                AccountKey{Owner: OwnerSelf, Kind: Kind401k},
		CurrentAge:         40,
		AnnualContribution: decimal.NewFromInt(6000),
		EmployerMatch:      decimal.NewFromInt(3000),
	}
	assert.True(t, a.TotalContribution().Equal(decimal.NewFromInt(9000)))
	assert.Equal(t, 25, a.YearsUntil(65))
	assert.Equal(t, -5, a.YearsUntil(35))
}

func TestProjectionRequest_Totals(t *testing.T) {
	req := &ProjectionRequest{
		TargetAge: 65,
		Accounts: []AccountInput{
			{Key: AccountKey{Owner: OwnerSelf, Kind: Kind401k}, Balance: decimal.NewFromInt(1000), AnnualContribution: decimal.NewFromInt(100), EmployerMatch: decimal.NewFromInt(50)},
			{Key: AccountKey{Owner: OwnerSpouse, Kind: KindHSA}, Balance: decimal.NewFromInt(500), AnnualContribution: decimal.NewFromInt(200)},
		},
	}
	assert.True(t, req.TotalBalance().Equal(decimal.NewFromInt(1500)))
	assert.True(t, req.TotalAnnualContribution().Equal(decimal.NewFromInt(350)))

	hsa, ok := req.Account(AccountKey{Owner: OwnerSpouse, Kind: KindHSA})
	require.True(t, ok)
	assert.True(t, hsa.Balance.Equal(decimal.NewFromInt(500)))

	_, ok = req.Account(AccountKey{Owner: OwnerSpouse, Kind: Kind401k})
	assert.False(t, ok)
}

func TestHomeEquityInput_CurrentEquity(t *testing.T) {
	underwater := HomeEquityInput{HomeValue: decimal.NewFromInt(100000), MortgageBalance: decimal.NewFromInt(150000)}
	assert.True(t, underwater.CurrentEquity().IsZero())

	positive := HomeEquityInput{HomeValue: decimal.NewFromInt(300000), MortgageBalance: decimal.NewFromInt(120000)}
	assert.True(t, positive.CurrentEquity().Equal(decimal.NewFromInt(180000)))
}

func TestProjectionResult_Points(t *testing.T) {
	r := &ProjectionResult{}
	assert.Equal(t, TrajectoryPoint{}, r.FinalPoint())

	r.Trajectory = []TrajectoryPoint{{YearOffset: 0}, {YearOffset: 1, NetWorth: decimal.NewFromInt(10)}}
	assert.Equal(t, 1, r.FinalPoint().YearOffset)

	p, ok := r.PointAt(1)
	require.True(t, ok)
	assert.True(t, p.NetWorth.Equal(decimal.NewFromInt(10)))
	_, ok = r.PointAt(2)
	assert.False(t, ok)
	_, ok = r.PointAt(-1)
	assert.False(t, ok)
}
