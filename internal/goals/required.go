package goals

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/stats"
)

// DefaultVolatilityBuffer is the share of income volatility added on top of
// the raw monthly requirement.
const DefaultVolatilityBuffer = 0.5

// MsgTargetPassed is the message returned for a target month that is not
// in the future.
const MsgTargetPassed = "Target date has already passed."

// RequiredSavings is the monthly amount needed to reach a goal by a date.
type RequiredSavings struct {
	RequiredMonthlySavings decimal.Decimal `json:"requiredMonthlySavings"` // buffered for volatility
	RawRequiredSavings     decimal.Decimal `json:"rawRequiredSavings"`
	IsFeasible             bool            `json:"isFeasible"`
	MonthsUntilTarget      int             `json:"monthsUntilTarget"`
	IncomeVolatility       float64         `json:"incomeVolatility"` // percent
	MaxHistoricalSavings   decimal.Decimal `json:"maxHistoricalSavings"`
	Message                string          `json:"message"`
}

// MonthsBetween counts calendar months from now to target using only the
// year and month fields; days are ignored.
func MonthsBetween(now, target time.Time) int {
	return (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
}

// Required computes how much must be saved each month to reach goal by
// target. The raw requirement is scaled by (1 + volatility*buffer), where
// volatility is the coefficient of variation of income. The plan is
// feasible when that figure does not exceed the best historical month.
//
// It returns nil when target is zero, goal is zero, or income is empty.
func Required(current decimal.Decimal, income, expense []decimal.Decimal, goal decimal.Decimal, target, now time.Time, buffer float64) *RequiredSavings {
	if target.IsZero() || goal.IsZero() || len(income) == 0 {
		return nil
	}

	months := MonthsBetween(now, target)
	if months <= 0 {
		return &RequiredSavings{
			RequiredMonthlySavings: decimal.Zero,
			RawRequiredSavings:     decimal.Zero,
			MaxHistoricalSavings:   decimal.Zero,
			MonthsUntilTarget:      months,
			Message:                MsgTargetPassed,
		}
	}

	remaining := decimal.Max(decimal.Zero, goal.Sub(current))
	raw := remaining.Div(decimal.NewFromInt(int64(months)))

	volatility := stats.CoefficientOfVariation(stats.Floats(income))
	adjusted := raw.Mul(decimal.NewFromFloat(1 + volatility*buffer))

	_, best := stats.MinMax(MonthlySavings(income, expense))
	feasible := adjusted.LessThanOrEqual(best)
	adjusted = adjusted.Round(2)

	r := &RequiredSavings{
		RequiredMonthlySavings: adjusted,
		RawRequiredSavings:     raw.Round(2),
		IsFeasible:             feasible,
		MonthsUntilTarget:      months,
		IncomeVolatility:       volatility * 100,
		MaxHistoricalSavings:   best,
	}
	if feasible {
		r.Message = fmt.Sprintf("You need to save $%s per month for %d months to reach your goal. This accounts for your income variability.",
			adjusted.StringFixed(2), months)
	} else {
		r.Message = fmt.Sprintf("The required savings of $%s may be challenging given your income history. Consider adjusting your goal or timeline.",
			adjusted.StringFixed(2))
	}
	return r
}
