package goals

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/stats"
)

// StabilityLevel buckets income by coefficient of variation.
type StabilityLevel string

const (
	Stable   StabilityLevel = "stable"
	Moderate StabilityLevel = "moderate"
	Variable StabilityLevel = "variable"
)

// Thresholds are the CV cut-offs between stability levels.
type Thresholds struct {
	StableBelow   float64 `yaml:"stable_below"`
	ModerateBelow float64 `yaml:"moderate_below"`
}

// DefaultThresholds returns CV < 0.2 stable, CV < 0.5 moderate.
func DefaultThresholds() Thresholds {
	return Thresholds{StableBelow: 0.2, ModerateBelow: 0.5}
}

// Level classifies a coefficient of variation.
func (t Thresholds) Level(cv float64) StabilityLevel {
	switch {
	case cv < t.StableBelow:
		return Stable
	case cv < t.ModerateBelow:
		return Moderate
	default:
		return Variable
	}
}

// IncomeStability summarizes how much income moves month to month.
type IncomeStability struct {
	AvgIncome          decimal.Decimal `json:"avgIncome"`
	MinIncome          decimal.Decimal `json:"minIncome"`
	MaxIncome          decimal.Decimal `json:"maxIncome"`
	IncomeVariability  float64         `json:"incomeVariability"` // CV ratio
	IncomeVolatility   float64         `json:"incomeVolatility"`  // CV percent
	SavingsConsistency float64         `json:"savingsConsistency"`
	StabilityLevel     StabilityLevel  `json:"stabilityLevel"`
	Recommendations    []string        `json:"recommendations"`
}

var levelAdvice = map[StabilityLevel][]string{
	Stable: {
		"Your income is relatively stable with low variability.",
	},
	Moderate: {
		"Your income has moderate variability. Some planning is needed.",
		"Maintain 3-4 months of expenses in emergency savings.",
		"During above-average income months, increase savings contributions.",
		"Track income patterns to anticipate leaner months.",
	},
	Variable: {
		"Your income is highly variable. Special strategies are recommended.",
		"Create a baseline budget based on your lowest typical income month.",
		"Save surplus income during high-earning months for low-earning periods.",
		"Build a larger emergency fund (6+ months of expenses) for income security.",
		"Consider diversifying income sources to reduce reliance on variable income.",
	},
}

// AnalyzeStability classifies income volatility and reports how often the
// history shows positive savings. It returns nil when income is empty.
func AnalyzeStability(income, expense []decimal.Decimal, th Thresholds) *IncomeStability {
	if len(income) == 0 {
		return nil
	}

	avg := stats.MeanDecimal(income)
	lo, hi := stats.MinMax(income)
	cv := stats.CoefficientOfVariation(stats.Floats(income))
	consistency := stats.PositiveShare(MonthlySavings(income, expense))
	level := th.Level(cv)

	advice := levelAdvice[level]
	recs := make([]string, 0, len(advice)+3)
	recs = append(recs,
		advice[0],
		fmt.Sprintf("Average monthly income: $%s", avg.StringFixed(2)),
		fmt.Sprintf("Income range: $%s - $%s", lo.StringFixed(2), hi.StringFixed(2)),
		fmt.Sprintf("Savings consistency: %s%% of months", fixed(consistency, 0)),
	)
	recs = append(recs, advice[1:]...)

	return &IncomeStability{
		AvgIncome:          avg,
		MinIncome:          lo,
		MaxIncome:          hi,
		IncomeVariability:  cv,
		IncomeVolatility:   cv * 100,
		SavingsConsistency: consistency,
		StabilityLevel:     level,
		Recommendations:    recs,
	}
}
