// Package forecast predicts future monthly income and expense from a dated
// transaction history, projects the resulting savings, and scores overall
// financial health.
//
// Every function is pure: the evaluation instant is passed in as now and no
// state is kept between calls.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/id"
	"github.com/cleared-dev/runway/internal/model"
	"github.com/cleared-dev/runway/internal/stats"
	"github.com/cleared-dev/runway/internal/trend"
)

const (
	// DefaultWindowMonths is the trailing window every average and trend uses.
	DefaultWindowMonths = 6
	// DefaultDamping scales how strongly a trend slope moves each future month.
	DefaultDamping = 0.1
)

// Options tunes an Engine.
type Options struct {
	WindowMonths int     // <= 0 means DefaultWindowMonths
	Damping      float64 // multiplier on slope*monthOffset
}

// DefaultOptions returns the window and damping used by the dashboard.
func DefaultOptions() Options {
	return Options{WindowMonths: DefaultWindowMonths, Damping: DefaultDamping}
}

// Engine runs forecasts with a fixed window and damping factor.
type Engine struct {
	windowMonths int
	damping      float64
}

// New creates an Engine.
func New(opts Options) *Engine {
	if opts.WindowMonths <= 0 {
		opts.WindowMonths = DefaultWindowMonths
	}
	return &Engine{windowMonths: opts.WindowMonths, damping: opts.Damping}
}

// Cutoff returns the earliest instant still inside the window.
func (e *Engine) Cutoff(now time.Time) time.Time {
	return now.AddDate(0, -e.windowMonths, 0)
}

// Window keeps the transactions dated on or after the window cutoff.
// Order is preserved.
func (e *Engine) Window(history []model.Transaction, now time.Time) []model.Transaction {
	cutoff := e.Cutoff(now)
	var out []model.Transaction
	for _, t := range history {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// Average returns the mean magnitude of windowed transactions of typ,
// or zero when there are none.
func (e *Engine) Average(history []model.Transaction, typ model.TxType, now time.Time) decimal.Decimal {
	return meanMagnitude(model.FilterType(e.Window(history, now), typ))
}

// Predict emits one income and one expense prediction for each of the next
// monthsAhead months, starting the month after now. Each amount is the
// windowed average scaled by (1 + slope*i*damping), clamped at zero and
// rounded to cents.
func (e *Engine) Predict(history []model.Transaction, monthsAhead int, now time.Time) []model.Prediction {
	if monthsAhead <= 0 {
		return nil
	}
	recent := e.Window(history, now)
	if len(recent) == 0 {
		return nil
	}

	incomes := model.FilterType(recent, model.TypeIncome)
	expenses := model.FilterType(recent, model.TypeExpense)

	avgIncome := meanMagnitude(incomes)
	avgExpense := meanMagnitude(expenses)
	incomeTrend := trend.FromTransactions(incomes)
	expenseTrend := trend.FromTransactions(expenses)

	preds := make([]model.Prediction, 0, 2*monthsAhead)
	for i := 1; i <= monthsAhead; i++ {
		month := firstOfMonth(now, i)
		preds = append(preds,
			e.prediction(model.TypeIncome, "Income", avgIncome, incomeTrend, month, i),
			e.prediction(model.TypeExpense, "Expense", avgExpense, expenseTrend, month, i),
		)
	}
	return preds
}

func (e *Engine) prediction(typ model.TxType, label string, avg decimal.Decimal, tr model.Trend, month time.Time, offset int) model.Prediction {
	factor := 1 + tr.Slope*float64(offset)*e.damping
	amount := avg.Mul(decimal.NewFromFloat(factor))
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return model.Prediction{
		ID:     id.FormatPredictionID(string(typ), offset),
		Name:   "Predicted " + label + " - " + month.Format("January 2006"),
		Amount: amount.Round(2),
		Date:   month,
		Type:   typ,
		Trend:  tr.Direction,
	}
}

func firstOfMonth(now time.Time, offset int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
}

func meanMagnitude(txns []model.Transaction) decimal.Decimal {
	mags := make([]decimal.Decimal, len(txns))
	for i, t := range txns {
		mags[i] = t.Magnitude()
	}
	return stats.MeanDecimal(mags)
}

func totalMagnitude(txns []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Magnitude())
	}
	return total
}
