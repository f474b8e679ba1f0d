package forecast

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/model"
	"github.com/cleared-dev/runway/internal/trend"
)

// NeutralScore is returned when there is no windowed history to judge.
const NeutralScore = 50

const (
	savingsWeight   = 0.4
	stabilityWeight = 0.3
	expenseWeight   = 0.3
)

// HealthBreakdown shows how a health score was assembled.
type HealthBreakdown struct {
	Transactions         int             `json:"transactions"`
	TotalIncome          decimal.Decimal `json:"totalIncome"`
	TotalExpense         decimal.Decimal `json:"totalExpense"`
	SavingsRate          float64         `json:"savingsRate"`
	ExpenseRatio         float64         `json:"expenseRatio"`
	IncomeTrend          model.Trend     `json:"incomeTrend"`
	SavingsScore         float64         `json:"savingsScore"`
	IncomeStabilityScore float64         `json:"incomeStabilityScore"`
	ExpenseScore         float64         `json:"expenseScore"`
	Score                int             `json:"score"`
}

// HealthScore returns the weighted health score in [0, 100].
func (e *Engine) HealthScore(history []model.Transaction, now time.Time) int {
	return e.Breakdown(history, now).Score
}

// Breakdown computes the health score over the trailing window.
//
// A zero-income window is treated as worst case: savings rate 0 and
// expense ratio 100.
func (e *Engine) Breakdown(history []model.Transaction, now time.Time) HealthBreakdown {
	recent := e.Window(history, now)
	if len(recent) == 0 {
		return HealthBreakdown{
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
			IncomeTrend:  model.StableTrend,
			Score:        NeutralScore,
		}
	}

	incomes := model.FilterType(recent, model.TypeIncome)
	expenses := model.FilterType(recent, model.TypeExpense)
	totalIncome := totalMagnitude(incomes)
	totalExpense := totalMagnitude(expenses)

	savingsRate := 0.0
	expenseRatio := 100.0
	if totalIncome.IsPositive() {
		savingsRate = totalIncome.Sub(totalExpense).Div(totalIncome).Mul(hundred).InexactFloat64()
		expenseRatio = totalExpense.Div(totalIncome).Mul(hundred).InexactFloat64()
	}

	incomeTrend := trend.FromTransactions(incomes)

	b := HealthBreakdown{
		Transactions:         len(recent),
		TotalIncome:          totalIncome,
		TotalExpense:         totalExpense,
		SavingsRate:          savingsRate,
		ExpenseRatio:         expenseRatio,
		IncomeTrend:          incomeTrend,
		SavingsScore:         clamp(savingsRate*2, 0, 100),
		IncomeStabilityScore: stabilityScore(incomeTrend.Direction),
		ExpenseScore:         math.Max(0, 30-expenseRatio/100*30),
	}
	raw := math.Round(b.SavingsScore*savingsWeight + b.IncomeStabilityScore*stabilityWeight + b.ExpenseScore*expenseWeight)
	b.Score = int(clamp(raw, 0, 100))
	return b
}

func stabilityScore(d model.Direction) float64 {
	switch d {
	case model.DirectionStable:
		return 30
	case model.DirectionIncreasing:
		return 25
	default:
		return 20
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
