package usecase

import (
	"testing"

	"realty-platform/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulateIsDeterministic(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	req := &request.CreditSimulationRequest{
		MonthlySalary:     15000,
		Age:               30,
		ContributionYears: 6,
		SubaccountBalance: 80000,
	}

	first, err := svc.Simulate(req)
	require.NoError(t, err)

	second, err := svc.Simulate(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulateRateTiers(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	low, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 7000, Age: 30})
	require.NoError(t, err)
	assert.Equal(t, 0.0191, low.AnnualRate)

	mid, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 20000, Age: 30})
	require.NoError(t, err)
	assert.Equal(t, 0.0750, mid.AnnualRate)

	high, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 90000, Age: 30})
	require.NoError(t, err)
	assert.Equal(t, 0.1045, high.AnnualRate)

	// Higher rate means less credit for the same payment share ratio.
	assert.Greater(t, low.MaxCredit/low.MonthlyPayment, high.MaxCredit/high.MonthlyPayment)
}

func TestSimulateTermCappedAtRetirement(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	young, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 25})
	require.NoError(t, err)
	assert.Equal(t, 30, young.TermYears)

	older, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 50})
	require.NoError(t, err)
	assert.Equal(t, 15, older.TermYears)

	// The cap keeps shrinking the term right up to retirement.
	nearRetirement, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 63})
	require.NoError(t, err)
	assert.Equal(t, 2, nearRetirement.TermYears)
}

func TestSimulateTermNeverPassesRetirement(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	for age := 61; age <= 64; age++ {
		resp, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: age})
		require.NoError(t, err)
		assert.LessOrEqual(t, age+resp.TermYears, 65, "age %d", age)
		assert.GreaterOrEqual(t, resp.TermYears, 1, "age %d", age)
	}
}

func TestSimulatePurchasePowerIncludesSavings(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	resp, err := svc.Simulate(&request.CreditSimulationRequest{
		MonthlySalary:     15000,
		Age:               30,
		SubaccountBalance: 120000,
	})
	require.NoError(t, err)
	assert.InDelta(t, resp.MaxCredit+120000, resp.TotalPurchasePower, 0.01)
	assert.Equal(t, 120000.0, resp.SubaccountBalance)
}

func TestSimulateContributionYearsRaiseCapacity(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	base, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 30})
	require.NoError(t, err)

	veteran, err := svc.Simulate(&request.CreditSimulationRequest{
		MonthlySalary:     15000,
		Age:               30,
		ContributionYears: 12,
	})
	require.NoError(t, err)

	assert.Greater(t, veteran.MaxCredit, base.MaxCredit)
	assert.Greater(t, veteran.MonthlyPayment, base.MonthlyPayment)
}

func TestSimulateValidation(t *testing.T) {
	svc := NewCreditService(zap.NewNop())

	_, err := svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 0, Age: 30})
	assert.Error(t, err)

	_, err = svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 17})
	assert.Error(t, err)

	_, err = svc.Simulate(&request.CreditSimulationRequest{MonthlySalary: 15000, Age: 65})
	assert.Error(t, err)
}
