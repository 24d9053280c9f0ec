package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(owner domain.Owner, kind domain.AccountKind, age int, balance, contribution, match int64, rate float64) domain.AccountInput {
	return domain.AccountInput{
		Key:                domain.AccountKey{Owner: owner, Kind: kind},
		CurrentAge:         age,
		Balance:            decimal.NewFromInt(balance),
		AnnualContribution: decimal.NewFromInt(contribution),
		EmployerMatch:      decimal.NewFromInt(match),
		GrowthRatePct:      decimal.NewFromFloat(rate),
	}
}

func householdRequest() *domain.ProjectionRequest {
	return &domain.ProjectionRequest{
		TargetAge: 65,
		Accounts: []domain.AccountInput{
			account(domain.OwnerSelf, domain.Kind401k, 30, 10000, 5000, 2000, 7),
			account(domain.OwnerSelf, domain.KindRothIRA, 30, 5000, 7000, 0, 6),
			account(domain.OwnerSpouse, domain.KindHSA, 40, 3000, 4000, 0, 5),
			account(domain.OwnerSpouse, domain.KindBrokerage, 40, 20000, 0, 0, 0),
		},
		Home: domain.HomeEquityInput{
			HomeValue:           decimal.NewFromInt(350000),
			MortgageBalance:     decimal.NewFromInt(250000),
			AppreciationRatePct: decimal.NewFromInt(3),
			ReferenceAge:        30,
		},
	}
}

type recordingLogger struct {
	NopLogger
	warnings []string
	debug    []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.debug = append(r.debug, fmt.Sprintf(format, args...))
}

func TestAggregateAccounts_SingleAccountScenario(t *testing.T) {
	accounts := []domain.AccountInput{account(domain.OwnerSelf, domain.Kind401k, 30, 10000, 5000, 0, 7)}
	got := AggregateAccounts(accounts, 35)
	assertClose(t, decimal.NewFromFloat(42779.21), got)
}

func TestAggregateAccounts_IncludesEmployerMatch(t *testing.T) {
	withMatch := []domain.AccountInput{account(domain.OwnerSelf, domain.Kind401k, 60, 0, 4000, 1000, 0)}
	assert.True(t, AggregateAccounts(withMatch, 62).Equal(decimal.NewFromInt(10000)))
}

func TestAggregateAccounts_Empty(t *testing.T) {
	for _, target := range []int{-1, 0, 65, 120} {
		assert.True(t, AggregateAccounts(nil, target).IsZero())
	}
}

func TestAggregateAccounts_PastTargetKeepsBalance(t *testing.T) {
	accounts := []domain.AccountInput{account(domain.OwnerSpouse, domain.KindHSA, 70, 12345, 8300, 0, 9)}
	assert.True(t, AggregateAccounts(accounts, 65).Equal(decimal.NewFromInt(12345)))
}

func TestAggregateAccounts_Additive(t *testing.T) {
	req := householdRequest()
	whole := AggregateAccounts(req.Accounts, req.TargetAge)

	partitions := [][][]domain.AccountInput{
		{req.Accounts[:1], req.Accounts[1:]},
		{req.Accounts[:2], req.Accounts[2:]},
		{req.Accounts[:1], req.Accounts[1:3], req.Accounts[3:]},
	}
	for i, parts := range partitions {
		sum := decimal.Zero
		for _, part := range parts {
			sum = sum.Add(AggregateAccounts(part, req.TargetAge))
		}
		assert.True(t, whole.Equal(sum), "partition %d: %s != %s", i, whole, sum)
	}
}

func TestProjectAccounts_UsesOwnHorizon(t *testing.T) {
	req := householdRequest()
	projections := ProjectAccounts(req.Accounts, req.TargetAge)
	require.Len(t, projections, 4)

	assert.Equal(t, 35, projections[0].Years)
	assert.Equal(t, 25, projections[2].Years)
	assert.True(t, projections[0].Contribution.Equal(decimal.NewFromInt(7000)))
	assert.Equal(t, req.Accounts[2].Key, projections[2].Key)
	// zero-rate brokerage holds its balance
	assert.True(t, projections[3].ValueAtTarget.Equal(decimal.NewFromInt(20000)))
}

func TestHomeEquity(t *testing.T) {
	tests := []struct {
		name           string
		home           domain.HomeEquityInput
		targetAge      int
		expectedValue  decimal.Decimal
		expectedEquity decimal.Decimal
	}{
		{
			name:           "underwater mortgage at zero years",
			home:           domain.HomeEquityInput{HomeValue: decimal.NewFromInt(100000), MortgageBalance: decimal.NewFromInt(150000), ReferenceAge: 40},
			targetAge:      40,
			expectedValue:  decimal.NewFromInt(100000),
			expectedEquity: decimal.Zero,
		},
		{
			name:           "appreciates to target",
			home:           domain.HomeEquityInput{HomeValue: decimal.NewFromInt(200000), MortgageBalance: decimal.NewFromInt(50000), AppreciationRatePct: decimal.NewFromInt(5), ReferenceAge: 63},
			targetAge:      65,
			expectedValue:  decimal.NewFromInt(220500),
			expectedEquity: decimal.NewFromInt(170500),
		},
		{
			name:           "target before reference age",
			home:           domain.HomeEquityInput{HomeValue: decimal.NewFromInt(300000), MortgageBalance: decimal.NewFromInt(100000), AppreciationRatePct: decimal.NewFromInt(4), ReferenceAge: 50},
			targetAge:      45,
			expectedValue:  decimal.NewFromInt(300000),
			expectedEquity: decimal.NewFromInt(200000),
		},
		{
			name:           "no home",
			home:           domain.HomeEquityInput{ReferenceAge: 30},
			targetAge:      65,
			expectedValue:  decimal.Zero,
			expectedEquity: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, equity := HomeEquity(tt.home, tt.targetAge)
			assertClose(t, tt.expectedValue, value)
			assertClose(t, tt.expectedEquity, equity)
		})
	}
}

func TestHomeEquity_NeverNegative(t *testing.T) {
	home := domain.HomeEquityInput{HomeValue: decimal.NewFromInt(100000), AppreciationRatePct: decimal.NewFromInt(2), ReferenceAge: 30}
	for _, mortgage := range []int64{0, 99999, 100000, 500000, 10000000} {
		home.MortgageBalance = decimal.NewFromInt(mortgage)
		for target := 20; target <= 90; target += 10 {
			_, equity := HomeEquity(home, target)
			assert.False(t, equity.IsNegative(), "mortgage=%d target=%d", mortgage, target)
		}
	}
}

func TestHorizonYears(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.ProjectionRequest
		expected int
	}{
		{name: "no accounts uses default", req: &domain.ProjectionRequest{TargetAge: 65}, expected: 35},
		{name: "longest account horizon", req: householdRequest(), expected: 40},
		{
			name: "every account past target",
			req: &domain.ProjectionRequest{TargetAge: 60, Accounts: []domain.AccountInput{
				account(domain.OwnerSelf, domain.Kind401k, 70, 1, 0, 0, 0),
			}},
			expected: 5,
		},
		{
			name: "short horizon below default",
			req: &domain.ProjectionRequest{TargetAge: 65, Accounts: []domain.AccountInput{
				account(domain.OwnerSelf, domain.Kind401k, 60, 1, 0, 0, 0),
			}},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HorizonYears(tt.req)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, HorizonPaddingYears)
		})
	}
}

func TestBuildTrajectory_NoAccounts(t *testing.T) {
	req := &domain.ProjectionRequest{
		TargetAge: 65,
		Home:      domain.HomeEquityInput{HomeValue: decimal.NewFromInt(100000), MortgageBalance: decimal.NewFromInt(150000), ReferenceAge: 30},
	}
	points := BuildTrajectory(req)
	require.Len(t, points, 36)
	for i, p := range points {
		assert.Equal(t, i, p.YearOffset)
		assert.True(t, p.InvestmentsTotal.IsZero())
		assert.True(t, p.HomeEquity.IsZero())
		assert.True(t, p.NetWorth.IsZero())
	}
}

func TestBuildTrajectory_UsesYearOffsetNotAge(t *testing.T) {
	req := householdRequest()
	points := BuildTrajectory(req)
	require.Len(t, points, HorizonYears(req)+1)

	first := points[0]
	assert.True(t, first.InvestmentsTotal.Equal(req.TotalBalance()))
	assert.True(t, first.HomeEquity.Equal(req.Home.CurrentEquity()))

	// At offset 25 every account has grown 25 years, including the age-30 accounts whose
	// snapshot horizon is 35 years.
	p := points[25]
	expected := decimal.Zero
	for _, a := range req.Accounts {
		expected = expected.Add(FutureValue(a.Balance, a.TotalContribution(), a.GrowthRatePct, 25))
	}
	assert.True(t, p.InvestmentsTotal.Equal(expected))
	assert.False(t, p.InvestmentsTotal.Equal(AggregateAccounts(req.Accounts, req.TargetAge)))

	_, equity := homeAt(req.Home, 25)
	assert.True(t, p.HomeEquity.Equal(equity))
	assert.True(t, p.NetWorth.Equal(p.InvestmentsTotal.Add(p.HomeEquity)))
}

func TestBuildTrajectory_NonDecreasing(t *testing.T) {
	points := BuildTrajectory(householdRequest())
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].NetWorth.GreaterThanOrEqual(points[i-1].NetWorth), "offset %d", i)
	}
}

func TestProjectionEngine_Project(t *testing.T) {
	engine := NewProjectionEngine()
	req := householdRequest()

	result, err := engine.Project(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 65, result.TargetAge)
	assert.Equal(t, 40, result.HorizonYears)
	assert.Len(t, result.Trajectory, 41)
	assert.Len(t, result.Accounts, 4)

	assert.True(t, result.InvestmentsTotalAtTarget.Equal(AggregateAccounts(req.Accounts, req.TargetAge)))
	value, equity := HomeEquity(req.Home, req.TargetAge)
	assert.True(t, result.HomeValueAtTarget.Equal(value))
	assert.True(t, result.HomeEquityAtTarget.Equal(equity))
	assert.True(t, result.NetWorthAtTarget.Equal(result.InvestmentsTotalAtTarget.Add(result.HomeEquityAtTarget)))
}

func TestProjectionEngine_DoesNotMutateRequest(t *testing.T) {
	req := householdRequest()
	req.Accounts[0].GrowthRatePct = decimal.NewFromInt(35)
	_, err := NewProjectionEngine().Project(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, req.Accounts[0].GrowthRatePct.Equal(decimal.NewFromInt(35)))
}

func TestProjectionEngine_ClampsOutOfRange(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewProjectionEngine()
	engine.SetLogger(logger)

	wild := &domain.ProjectionRequest{
		TargetAge: 40,
		Accounts: []domain.AccountInput{
			account(domain.OwnerSelf, domain.Kind401k, 30, -5000, 1000, 0, 35),
		},
		Home: domain.HomeEquityInput{HomeValue: decimal.NewFromInt(100000), AppreciationRatePct: decimal.NewFromInt(-3), ReferenceAge: 30},
	}
	sane := &domain.ProjectionRequest{
		TargetAge: 40,
		Accounts: []domain.AccountInput{
			account(domain.OwnerSelf, domain.Kind401k, 30, 0, 1000, 0, 20),
		},
		Home: domain.HomeEquityInput{HomeValue: decimal.NewFromInt(100000), ReferenceAge: 30},
	}

	got, err := engine.Project(context.Background(), wild)
	require.NoError(t, err)
	want, err := NewProjectionEngine().Project(context.Background(), sane)
	require.NoError(t, err)

	assert.True(t, got.NetWorthAtTarget.Equal(want.NetWorthAtTarget))
	assert.Len(t, logger.warnings, 3)
}

func TestProjectionEngine_DebugBreakdown(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewProjectionEngine()
	engine.SetLogger(logger)
	engine.Debug = true

	_, err := engine.Project(context.Background(), householdRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, logger.debug)
	assert.Contains(t, logger.debug[0], "PROJECTION AT AGE 65")
}

func TestProjectionEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProjectionEngine().Project(ctx, householdRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProjectionEngine_NilRequest(t *testing.T) {
	_, err := NewProjectionEngine().Project(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProjectionEngine_SetLoggerNil(t *testing.T) {
	engine := NewProjectionEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
