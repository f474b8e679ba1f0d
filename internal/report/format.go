// Package report renders forecast and planner results for people: money
// with thousands separators, one-decimal percentages, and the short
// insight sentences shown next to the numbers.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/runway/internal/model"
)

var printer = message.NewPrinter(language.English)

// Money renders d rounded to whole units, e.g. $12,345 or -$1,200.
func Money(d decimal.Decimal, symbol string) string {
	sign := ""
	if d.Round(0).IsNegative() {
		sign = "-"
	}
	return sign + symbol + printer.Sprintf("%d", d.Abs().Round(0).IntPart())
}

// MoneyCents renders d with two decimals, e.g. $12,345.60.
func MoneyCents(d decimal.Decimal, symbol string) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	r = r.Abs()
	whole := r.Truncate(0)
	cents := r.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, printer.Sprintf("%d", whole.IntPart()), cents)
}

// Percent renders f with one decimal place, e.g. 23.4%.
func Percent(f float64) string {
	return fmt.Sprintf("%.1f%%", f)
}

// Health score bands.
const (
	LabelStrong    = "strong"
	LabelModerate  = "moderate"
	LabelAttention = "needs attention"
)

// HealthLabel buckets a 0-100 health score.
func HealthLabel(score int) string {
	switch {
	case score >= 70:
		return LabelStrong
	case score >= 40:
		return LabelModerate
	default:
		return LabelAttention
	}
}

// HealthInsight is the advice sentence for a health score.
func HealthInsight(score int) string {
	switch HealthLabel(score) {
	case LabelStrong:
		return "Your financial health is strong. Keep up the good work!"
	case LabelModerate:
		return "Your financial health is moderate. Consider reviewing your expenses."
	default:
		return "Your financial health needs attention. Focus on increasing income or reducing expenses."
	}
}

// ForecastInsight summarizes the last projected month.
func ForecastInsight(projections []model.MonthlyProjection, symbol string) string {
	savings, rate := decimal.Zero, 0.0
	if n := len(projections); n > 0 {
		savings, rate = projections[n-1].Savings, projections[n-1].SavingsRate
	}
	return fmt.Sprintf("Based on your historical data, you're projected to save %s in the next month with a savings rate of %s.",
		Money(savings, symbol), Percent(rate))
}
