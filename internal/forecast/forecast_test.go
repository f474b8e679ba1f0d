package forecast

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/runway/internal/model"
)

var now = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func income(d time.Time, amount string) model.Transaction {
	return model.Transaction{Date: d, Amount: dec(amount), Type: model.TypeIncome, Name: "salary"}
}

func expense(d time.Time, amount string) model.Transaction {
	return model.Transaction{Date: d, Amount: dec(amount), Type: model.TypeExpense, Name: "groceries"}
}

// sampleHistory has flat income, rising expenses and one stale row.
func sampleHistory() []model.Transaction {
	return []model.Transaction{
		expense(date(2026, 1, 5), "9999"), // outside the window
		income(date(2026, 5, 1), "3000"),
		income(date(2026, 6, 1), "3000"),
		income(date(2026, 7, 1), "3000"),
		expense(date(2026, 5, 15), "100"),
		expense(date(2026, 6, 15), "110"),
		expense(date(2026, 7, 15), "-120"),
	}
}

func TestWindow(t *testing.T) {
	e := New(DefaultOptions())
	history := []model.Transaction{
		income(date(2026, 4, 17), "1"),
		income(date(2026, 4, 18), "2"),
		income(date(2026, 12, 1), "3"),
	}
	got := e.Window(history, now)
	require.Len(t, got, 2)
	assert.Equal(t, date(2026, 4, 18), got[0].Date, "cutoff day is inclusive")
	assert.Equal(t, date(2026, 12, 1), got[1].Date, "future-dated rows are kept")
}

func TestWindow_CustomLength(t *testing.T) {
	e := New(Options{WindowMonths: 1, Damping: DefaultDamping})
	got := e.Window(sampleHistory(), now)
	assert.Empty(t, got)
	assert.Equal(t, date(2026, 9, 18), e.Cutoff(now))
}

func TestNew_DefaultsWindow(t *testing.T) {
	assert.Equal(t, date(2026, 4, 18), New(Options{}).Cutoff(now))
}

func TestAverage(t *testing.T) {
	e := New(DefaultOptions())
	assert.True(t, e.Average(sampleHistory(), model.TypeIncome, now).Equal(dec("3000")))
	assert.True(t, e.Average(sampleHistory(), model.TypeExpense, now).Equal(dec("110")), "stale row excluded and sign dropped")
	assert.True(t, e.Average(nil, model.TypeExpense, now).IsZero())
}

func TestPredict(t *testing.T) {
	e := New(DefaultOptions())
	preds := e.Predict(sampleHistory(), 3, now)
	require.Len(t, preds, 6)

	wantExpense := []string{"220", "330", "440"}
	for i := 0; i < 3; i++ {
		inc := preds[2*i]
		exp := preds[2*i+1]

		assert.Equal(t, model.TypeIncome, inc.Type)
		assert.Equal(t, model.TypeExpense, exp.Type)
		assert.Equal(t, inc.Date, exp.Date)
		assert.Equal(t, 1, inc.Date.Day())

		assert.True(t, inc.Amount.Equal(dec("3000")), "month %d income %s", i+1, inc.Amount)
		assert.True(t, exp.Amount.Equal(dec(wantExpense[i])), "month %d expense %s", i+1, exp.Amount)
		assert.Equal(t, model.DirectionStable, inc.Trend)
		assert.Equal(t, model.DirectionIncreasing, exp.Trend)
	}

	assert.Equal(t, "forecast-income-1", preds[0].ID)
	assert.Equal(t, "forecast-expense-3", preds[5].ID)
	assert.Equal(t, "Predicted Income - November 2026", preds[0].Name)
	assert.Equal(t, "Predicted Expense - January 2027", preds[5].Name)
	assert.Equal(t, date(2026, 11, 1), preds[0].Date)
	assert.Equal(t, date(2027, 1, 1), preds[4].Date)
}

func TestPredict_YearRollover(t *testing.T) {
	e := New(DefaultOptions())
	end := date(2026, 12, 31)
	preds := e.Predict([]model.Transaction{income(date(2026, 12, 1), "10")}, 2, end)
	require.Len(t, preds, 4)
	assert.Equal(t, date(2027, 1, 1), preds[0].Date)
	assert.Equal(t, date(2027, 2, 1), preds[2].Date)
}

func TestPredict_ClampsNegative(t *testing.T) {
	e := New(DefaultOptions())
	history := []model.Transaction{
		income(date(2026, 8, 1), "1000"),
		income(date(2026, 9, 1), "100"),
	}
	preds := e.Predict(history, 1, now)
	require.Len(t, preds, 2)
	assert.True(t, preds[0].Amount.IsZero())
	assert.Equal(t, model.DirectionDecreasing, preds[0].Trend)
	assert.True(t, preds[1].Amount.IsZero(), "no expenses means a zero expense prediction")
}

func TestPredict_ZeroDamping(t *testing.T) {
	e := New(Options{WindowMonths: 6, Damping: 0})
	preds := e.Predict(sampleHistory(), 2, now)
	require.Len(t, preds, 4)
	assert.True(t, preds[3].Amount.Equal(dec("110")))
}

func TestPredict_EmptyAndStale(t *testing.T) {
	e := New(DefaultOptions())
	assert.Empty(t, e.Predict(nil, 3, now))
	assert.Empty(t, e.Predict([]model.Transaction{income(date(2020, 1, 1), "5")}, 3, now))
	assert.Empty(t, e.Predict(sampleHistory(), 0, now))
}

func TestPredict_RoundsToCents(t *testing.T) {
	e := New(DefaultOptions())
	history := []model.Transaction{
		expense(date(2026, 9, 1), "10"),
		expense(date(2026, 9, 2), "10"),
		expense(date(2026, 9, 3), "11"),
	}
	preds := e.Predict(history, 1, now)
	require.Len(t, preds, 2)
	// avg 10.333.., slope 0.5 -> 10.333.. * 1.05
	assert.Equal(t, "10.85", preds[1].Amount.StringFixed(2))
	assert.LessOrEqual(t, preds[1].Amount.Exponent(), int32(0))
	assert.GreaterOrEqual(t, preds[1].Amount.Exponent(), int32(-2))
}

func TestProjectSavings(t *testing.T) {
	e := New(DefaultOptions())
	projections := ProjectSavings(e.Predict(sampleHistory(), 3, now))
	require.Len(t, projections, 3)

	assert.Equal(t, "2026-11", projections[0].Month)
	assert.Equal(t, "2026-12", projections[1].Month)
	assert.Equal(t, "2027-01", projections[2].Month)

	first := projections[0]
	assert.True(t, first.Income.Equal(dec("3000")))
	assert.True(t, first.Expense.Equal(dec("220")))
	assert.True(t, first.Savings.Equal(dec("2780")))
	assert.InDelta(t, 92.6667, first.SavingsRate, 1e-3)

	for _, p := range projections {
		assert.True(t, p.Savings.Equal(p.Income.Sub(p.Expense)), "savings invariant for %s", p.Month)
	}
}

func TestProjectSavings_SortsAndGroups(t *testing.T) {
	preds := []model.Prediction{
		{Date: date(2027, 2, 1), Type: model.TypeExpense, Amount: dec("50")},
		{Date: date(2026, 12, 1), Type: model.TypeIncome, Amount: dec("100")},
		{Date: date(2027, 2, 1), Type: model.TypeExpense, Amount: dec("25")},
	}
	got := ProjectSavings(preds)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-12", got[0].Month)
	assert.Equal(t, "2027-02", got[1].Month)

	assert.True(t, got[1].Expense.Equal(dec("75")))
	assert.True(t, got[1].Savings.Equal(dec("-75")))
	assert.Zero(t, got[1].SavingsRate, "zero income means zero savings rate")
}

func TestProjectSavings_Empty(t *testing.T) {
	assert.Empty(t, ProjectSavings(nil))
}

func TestHealthScore_Empty(t *testing.T) {
	e := New(DefaultOptions())
	assert.Equal(t, 50, e.HealthScore(nil, now))
	assert.Equal(t, 50, e.HealthScore([]model.Transaction{income(date(2019, 1, 1), "100")}, now))
}

func TestHealthScore_Sample(t *testing.T) {
	e := New(DefaultOptions())
	b := e.Breakdown(sampleHistory(), now)

	assert.Equal(t, 6, b.Transactions)
	assert.True(t, b.TotalIncome.Equal(dec("9000")))
	assert.True(t, b.TotalExpense.Equal(dec("330")))
	assert.InDelta(t, 96.3333, b.SavingsRate, 1e-3)
	assert.InDelta(t, 100, b.SavingsScore, 1e-9)
	assert.InDelta(t, 30, b.IncomeStabilityScore, 1e-9)
	assert.InDelta(t, 28.9, b.ExpenseScore, 1e-9)
	assert.Equal(t, 58, b.Score)
	assert.Equal(t, 58, e.HealthScore(sampleHistory(), now))
}

func TestHealthScore_ZeroIncome(t *testing.T) {
	e := New(DefaultOptions())
	b := e.Breakdown([]model.Transaction{expense(date(2026, 9, 1), "500")}, now)

	assert.Zero(t, b.SavingsRate)
	assert.InDelta(t, 100, b.ExpenseRatio, 1e-9)
	assert.Zero(t, b.ExpenseScore)
	assert.Equal(t, 9, b.Score)
}

func TestHealthScore_DecreasingIncome(t *testing.T) {
	e := New(DefaultOptions())
	history := []model.Transaction{
		income(date(2026, 7, 1), "3000"),
		income(date(2026, 8, 1), "2000"),
		income(date(2026, 9, 1), "1000"),
	}
	b := e.Breakdown(history, now)
	assert.Equal(t, model.DirectionDecreasing, b.IncomeTrend.Direction)
	assert.InDelta(t, 20, b.IncomeStabilityScore, 1e-9)
	assert.Equal(t, 55, b.Score)
}

func TestHealthScore_IncreasingIncome(t *testing.T) {
	e := New(DefaultOptions())
	history := []model.Transaction{
		income(date(2026, 7, 1), "1000"),
		income(date(2026, 8, 1), "2000"),
	}
	b := e.Breakdown(history, now)
	assert.InDelta(t, 25, b.IncomeStabilityScore, 1e-9)
	assert.Equal(t, 57, b.Score) // 40 + 7.5 + 9 = 56.5 rounds up
}

func TestHealthScore_Bounds(t *testing.T) {
	e := New(DefaultOptions())
	histories := [][]model.Transaction{
		sampleHistory(),
		{expense(date(2026, 9, 1), "1000000")},
		{income(date(2026, 9, 1), "1"), expense(date(2026, 9, 2), "1000000")},
		{income(date(2026, 9, 1), "1000000"), expense(date(2026, 9, 2), "0")},
		{income(date(2026, 9, 1), "0")},
	}
	for i, h := range histories {
		score := e.HealthScore(h, now)
		assert.GreaterOrEqual(t, score, 0, "history %d", i)
		assert.LessOrEqual(t, score, 100, "history %d", i)
	}
}

func TestSummarize(t *testing.T) {
	e := New(DefaultOptions())
	s := e.Summarize(sampleHistory(), 6, now)

	assert.Equal(t, now, s.AsOf)
	assert.Equal(t, 6, s.WindowMonths)
	assert.Equal(t, 6, s.Windowed)
	assert.Len(t, s.Predictions, 12)
	assert.Len(t, s.Projections, 6)
	assert.Equal(t, model.DirectionStable, s.IncomeTrend.Direction)
	assert.Equal(t, model.DirectionIncreasing, s.ExpenseTrend.Direction)
	assert.Equal(t, 58, s.Health.Score)
}
