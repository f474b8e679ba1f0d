// Package goals plans savings goals from month-indexed income and expense
// histories: time to reach a goal under a chosen scenario, the monthly
// amount needed to hit a target date, and how stable income has been.
//
// Histories are aligned by index. An expense history shorter than the
// income history is treated as zero for the missing months; entries past
// the end of the income history are ignored.
package goals

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/stats"
)

// ProjectionType selects which historical monthly savings figure drives a
// projection.
type ProjectionType string

const (
	Conservative ProjectionType = "conservative" // lowest month
	Average      ProjectionType = "average"      // mean month
	Optimistic   ProjectionType = "optimistic"   // highest month
)

// ParseProjectionType accepts conservative, average or optimistic.
func ParseProjectionType(s string) (ProjectionType, error) {
	switch ProjectionType(strings.ToLower(strings.TrimSpace(s))) {
	case Conservative:
		return Conservative, nil
	case Average:
		return Average, nil
	case Optimistic:
		return Optimistic, nil
	default:
		return "", fmt.Errorf("unknown projection type %q (want conservative, average or optimistic)", s)
	}
}

// SavingsProjection is the time-to-goal estimate for one scenario.
//
// When IsAchievable is false, MonthsToGoal and YearsToGoal are -1.
type SavingsProjection struct {
	MonthsToGoal    int             `json:"monthsToGoal"`
	YearsToGoal     decimal.Decimal `json:"yearsToGoal"`
	MonthlySavings  decimal.Decimal `json:"monthlySavings"`
	AverageSavings  decimal.Decimal `json:"averageSavings"`
	MinSavings      decimal.Decimal `json:"minSavings"`
	MaxSavings      decimal.Decimal `json:"maxSavings"`
	ConsistencyRate float64         `json:"consistencyRate"`
	IsAchievable    bool            `json:"isAchievable"`
	ProjectionType  ProjectionType  `json:"projectionType"`
	Recommendations []string        `json:"recommendations"`
}

var twelve = decimal.NewFromInt(12)

// MonthlySavings returns income[i] - expense[i] for every income month.
func MonthlySavings(income, expense []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(income))
	for i, inc := range income {
		exp := decimal.Zero
		if i < len(expense) {
			exp = expense[i]
		}
		out[i] = inc.Sub(exp)
	}
	return out
}

// Project estimates how long it takes to grow current into goal. It
// returns nil when income is empty.
func Project(current decimal.Decimal, income, expense []decimal.Decimal, goal decimal.Decimal, typ ProjectionType) *SavingsProjection {
	if len(income) == 0 {
		return nil
	}

	monthly := MonthlySavings(income, expense)
	avg := stats.MeanDecimal(monthly)
	lo, hi := stats.MinMax(monthly)

	var selected decimal.Decimal
	switch typ {
	case Conservative:
		selected = lo
	case Optimistic:
		selected = hi
	default:
		typ = Average
		selected = avg
	}

	p := &SavingsProjection{
		MonthlySavings:  selected,
		AverageSavings:  avg,
		MinSavings:      lo,
		MaxSavings:      hi,
		ConsistencyRate: stats.PositiveShare(monthly),
		ProjectionType:  typ,
	}

	if !selected.IsPositive() {
		p.MonthsToGoal = -1
		p.YearsToGoal = decimal.NewFromInt(-1)
		p.Recommendations = []string{
			fmt.Sprintf("Your income is variable with only %s%% of months showing positive savings.", fixed(p.ConsistencyRate, 0)),
			"Focus on building an emergency fund to smooth out income fluctuations.",
			"Consider creating multiple income streams to reduce variability.",
			"During high-income months, save more to compensate for low-income months.",
		}
		return p
	}

	remaining := decimal.Max(decimal.Zero, goal.Sub(current))
	months := 0
	if remaining.IsPositive() {
		months = int(remaining.Div(selected).Ceil().IntPart())
	}

	p.MonthsToGoal = months
	p.YearsToGoal = decimal.NewFromInt(int64(months)).Div(twelve).Round(1)
	p.IsAchievable = true
	p.Recommendations = []string{
		fmt.Sprintf("At your %s savings rate of $%s per month, you'll reach your goal in %d months (%s years).",
			typ, selected.StringFixed(2), months, p.YearsToGoal.StringFixed(1)),
		"During high-income months, save extra to build a buffer for low-income months.",
		"Consider setting up automatic transfers during predictable income periods.",
		"Build an emergency fund covering 3-6 months of expenses to handle income variability.",
	}
	return p
}

func fixed(f float64, places int32) string {
	return decimal.NewFromFloat(f).StringFixed(places)
}
