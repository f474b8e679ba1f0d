package goals

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		target time.Time
		want   int
	}{
		{time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC), 12},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), -9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MonthsBetween(now, tt.target), "target %s", tt.target.Format("2006-01-02"))
	}
}

func TestRequired_StableIncome(t *testing.T) {
	target := time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC)
	r := Required(dec("1000"), decs("5000", "5000", "5000"), decs("3000", "3000", "3000"), dec("13000"), target, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)

	assert.Equal(t, 12, r.MonthsUntilTarget)
	assert.True(t, r.RawRequiredSavings.Equal(dec("1000")))
	assert.True(t, r.RequiredMonthlySavings.Equal(dec("1000")))
	assert.Zero(t, r.IncomeVolatility)
	assert.True(t, r.MaxHistoricalSavings.Equal(dec("2000")))
	assert.True(t, r.IsFeasible)
	assert.Equal(t, "You need to save $1000.00 per month for 12 months to reach your goal. This accounts for your income variability.", r.Message)
}

func TestRequired_VolatilityBuffer(t *testing.T) {
	target := time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC)
	r := Required(dec("1000"), decs("2000", "6000"), decs("1500", "1500"), dec("13000"), target, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)

	assert.InDelta(t, 50.0, r.IncomeVolatility, 1e-9)
	assert.True(t, r.RequiredMonthlySavings.Equal(dec("1250")), "got %s", r.RequiredMonthlySavings)
	assert.True(t, r.IsFeasible)
}

func TestRequired_Infeasible(t *testing.T) {
	target := time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC)
	r := Required(dec("1000"), decs("2000", "6000"), decs("1900", "5000"), dec("13000"), target, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)

	assert.False(t, r.IsFeasible)
	assert.True(t, r.MaxHistoricalSavings.Equal(dec("1000")))
	assert.Equal(t, "The required savings of $1250.00 may be challenging given your income history. Consider adjusting your goal or timeline.", r.Message)
}

func TestRequired_CustomBuffer(t *testing.T) {
	target := time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC)
	r := Required(dec("1000"), decs("2000", "6000"), decs("1500", "1500"), dec("13000"), target, now, 0)
	require.NotNil(t, r)
	assert.True(t, r.RequiredMonthlySavings.Equal(dec("1000")))
}

func TestRequired_GoalAlreadyMet(t *testing.T) {
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Required(dec("20000"), decs("5000"), decs("4000"), dec("10000"), target, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)
	assert.True(t, r.RequiredMonthlySavings.IsZero())
	assert.True(t, r.IsFeasible)
}

func TestRequired_TargetPassed(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)
	r := Required(dec("1000"), decs("5000"), decs("4000"), dec("10000"), yesterday, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)

	assert.True(t, r.RequiredMonthlySavings.IsZero())
	assert.False(t, r.IsFeasible)
	assert.Equal(t, MsgTargetPassed, r.Message)
	assert.Equal(t, "Target date has already passed.", r.Message)

	lastYear := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	r = Required(dec("1000"), decs("5000"), decs("4000"), dec("10000"), lastYear, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)
	assert.False(t, r.IsFeasible)
	assert.Equal(t, MsgTargetPassed, r.Message)
}

func TestRequired_InsufficientInput(t *testing.T) {
	target := time.Date(2027, 10, 1, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, Required(dec("0"), decs("5000"), nil, dec("1000"), time.Time{}, now, DefaultVolatilityBuffer))
	assert.Nil(t, Required(dec("0"), decs("5000"), nil, decimal.Zero, target, now, DefaultVolatilityBuffer))
	assert.Nil(t, Required(dec("0"), nil, nil, dec("1000"), target, now, DefaultVolatilityBuffer))
}

func TestRequired_FeasibilityUsesUnroundedFigure(t *testing.T) {
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	r := Required(decimal.Zero, decs("1000", "1000"), decs("0", "0"), dec("3000.012"), target, now, DefaultVolatilityBuffer)
	require.NotNil(t, r)

	require.Equal(t, 3, r.MonthsUntilTarget)
	assert.True(t, r.MaxHistoricalSavings.Equal(dec("1000")))
	assert.True(t, r.RequiredMonthlySavings.Equal(dec("1000")), "got %s", r.RequiredMonthlySavings)
	assert.False(t, r.IsFeasible, "1000.004 a month exceeds the best month of 1000")
	assert.Contains(t, r.Message, "$1000.00 may be challenging")
}
