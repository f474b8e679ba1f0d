package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cleared-dev/runway/internal/forecast"
	"github.com/cleared-dev/runway/internal/goals"
	"github.com/cleared-dev/runway/internal/model"
)

// Messages printed when an analysis has too little input to say anything.
const (
	MsgNoProjection = "Not enough income history to project savings."
	MsgNoRequired   = "Enter a goal, a target date and income history to calculate required savings."
	MsgNoStability  = "Not enough income history to analyze stability."
	MsgNoForecast   = "No transactions in the forecast window."
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// WriteSummary renders predictions, projections and the health score.
func WriteSummary(w io.Writer, s forecast.Summary, symbol string) error {
	tw := newTable(w)

	fmt.Fprintf(tw, "Forecast as of %s (%d transactions in the last %d months)\n",
		s.AsOf.Format(model.DateFormat), s.Windowed, s.WindowMonths)
	fmt.Fprintf(tw, "Income trend: %s\n", trendText(s.IncomeTrend))
	fmt.Fprintf(tw, "Expense trend: %s\n", trendText(s.ExpenseTrend))

	if len(s.Predictions) == 0 {
		fmt.Fprintln(tw, MsgNoForecast)
	} else {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Month\tIncome\tExpense\tSavings\tRate")
		fmt.Fprintln(tw, "-----\t------\t-------\t-------\t----")
		for _, p := range s.Projections {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Month,
				MoneyCents(p.Income, symbol), MoneyCents(p.Expense, symbol),
				MoneyCents(p.Savings, symbol), Percent(p.SavingsRate))
		}
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, ForecastInsight(s.Projections, symbol))
	}

	fmt.Fprintln(tw)
	writeHealth(tw, s.Health, symbol)
	return tw.Flush()
}

// WriteHealth renders a health breakdown.
func WriteHealth(w io.Writer, b forecast.HealthBreakdown, symbol string) error {
	tw := newTable(w)
	writeHealth(tw, b, symbol)
	return tw.Flush()
}

func writeHealth(tw *tabwriter.Writer, b forecast.HealthBreakdown, symbol string) {
	fmt.Fprintf(tw, "Financial health: %d/100 (%s)\n", b.Score, HealthLabel(b.Score))
	if b.Transactions > 0 {
		fmt.Fprintf(tw, "  Income\t%s\n", MoneyCents(b.TotalIncome, symbol))
		fmt.Fprintf(tw, "  Expenses\t%s\n", MoneyCents(b.TotalExpense, symbol))
		fmt.Fprintf(tw, "  Savings rate\t%s\t(score %.1f)\n", Percent(b.SavingsRate), b.SavingsScore)
		fmt.Fprintf(tw, "  Income trend\t%s\t(score %.0f)\n", b.IncomeTrend.Direction, b.IncomeStabilityScore)
		fmt.Fprintf(tw, "  Expense ratio\t%s\t(score %.1f)\n", Percent(b.ExpenseRatio), b.ExpenseScore)
	}
	fmt.Fprintln(tw, HealthInsight(b.Score))
}

// WriteProjection renders a time-to-goal projection and its balance path.
func WriteProjection(w io.Writer, p *goals.SavingsProjection, path []goals.PathPoint, symbol string) error {
	tw := newTable(w)
	if p == nil {
		fmt.Fprintln(tw, MsgNoProjection)
		return tw.Flush()
	}

	fmt.Fprintf(tw, "Projection (%s)\n", p.ProjectionType)
	if p.IsAchievable {
		fmt.Fprintf(tw, "  Months to goal\t%d\t(%s years)\n", p.MonthsToGoal, p.YearsToGoal.String())
	} else {
		fmt.Fprintln(tw, "  Months to goal\tnot reachable")
	}
	fmt.Fprintf(tw, "  Monthly savings\t%s\n", MoneyCents(p.MonthlySavings, symbol))
	fmt.Fprintf(tw, "  Average / min / max\t%s / %s / %s\n",
		MoneyCents(p.AverageSavings, symbol), MoneyCents(p.MinSavings, symbol), MoneyCents(p.MaxSavings, symbol))
	fmt.Fprintf(tw, "  Positive months\t%s\n", Percent(p.ConsistencyRate))

	if len(path) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Month\tBalance\tGoal")
		fmt.Fprintln(tw, "-----\t-------\t----")
		for _, pt := range path {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", pt.Label, MoneyCents(pt.Balance, symbol), MoneyCents(pt.Goal, symbol))
		}
	}

	writeList(tw, "Recommendations", p.Recommendations)
	return tw.Flush()
}

// WriteRequired renders the monthly savings needed to hit a target date.
func WriteRequired(w io.Writer, r *goals.RequiredSavings, symbol string) error {
	tw := newTable(w)
	if r == nil {
		fmt.Fprintln(tw, MsgNoRequired)
		return tw.Flush()
	}

	if r.MonthsUntilTarget > 0 {
		fmt.Fprintf(tw, "Required monthly savings\t%s\n", MoneyCents(r.RequiredMonthlySavings, symbol))
		fmt.Fprintf(tw, "  Before volatility buffer\t%s\n", MoneyCents(r.RawRequiredSavings, symbol))
		fmt.Fprintf(tw, "  Months until target\t%d\n", r.MonthsUntilTarget)
		fmt.Fprintf(tw, "  Income volatility\t%s\n", Percent(r.IncomeVolatility))
		fmt.Fprintf(tw, "  Best month so far\t%s\n", MoneyCents(r.MaxHistoricalSavings, symbol))
		feasible := "no"
		if r.IsFeasible {
			feasible = "yes"
		}
		fmt.Fprintf(tw, "  Feasible\t%s\n", feasible)
	}
	fmt.Fprintln(tw, r.Message)
	return tw.Flush()
}

// WriteStability renders an income stability analysis.
func WriteStability(w io.Writer, s *goals.IncomeStability, symbol string) error {
	tw := newTable(w)
	if s == nil {
		fmt.Fprintln(tw, MsgNoStability)
		return tw.Flush()
	}

	fmt.Fprintf(tw, "Income stability: %s\n", s.StabilityLevel)
	fmt.Fprintf(tw, "  Average income\t%s\n", MoneyCents(s.AvgIncome, symbol))
	fmt.Fprintf(tw, "  Range\t%s - %s\n", MoneyCents(s.MinIncome, symbol), MoneyCents(s.MaxIncome, symbol))
	fmt.Fprintf(tw, "  Volatility\t%s\n", Percent(s.IncomeVolatility))
	fmt.Fprintf(tw, "  Savings consistency\t%s\n", Percent(s.SavingsConsistency))
	writeList(tw, "Recommendations", s.Recommendations)
	return tw.Flush()
}

func writeList(tw *tabwriter.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(tw, "  - %s\n", strings.TrimSpace(it))
	}
}

func trendText(t model.Trend) string {
	return fmt.Sprintf("%s (slope %.2f)", t.Direction, t.Slope)
}
