package forecast

import (
	"time"

	"github.com/cleared-dev/runway/internal/model"
	"github.com/cleared-dev/runway/internal/trend"
)

// Summary is everything the forecast dashboard renders for one history.
type Summary struct {
	AsOf         time.Time                 `json:"asOf"`
	WindowMonths int                       `json:"windowMonths"`
	Windowed     int                       `json:"windowed"`
	IncomeTrend  model.Trend               `json:"incomeTrend"`
	ExpenseTrend model.Trend               `json:"expenseTrend"`
	Predictions  []model.Prediction        `json:"predictions"`
	Projections  []model.MonthlyProjection `json:"projections"`
	Health       HealthBreakdown           `json:"health"`
}

// Summarize runs Predict, ProjectSavings and Breakdown over history.
func (e *Engine) Summarize(history []model.Transaction, monthsAhead int, now time.Time) Summary {
	recent := e.Window(history, now)
	preds := e.Predict(history, monthsAhead, now)
	return Summary{
		AsOf:         now,
		WindowMonths: e.windowMonths,
		Windowed:     len(recent),
		IncomeTrend:  trend.FromTransactions(model.FilterType(recent, model.TypeIncome)),
		ExpenseTrend: trend.FromTransactions(model.FilterType(recent, model.TypeExpense)),
		Predictions:  preds,
		Projections:  ProjectSavings(preds),
		Health:       e.Breakdown(history, now),
	}
}
