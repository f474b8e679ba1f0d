package forecast

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/id"
	"github.com/cleared-dev/runway/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ProjectSavings groups predictions by calendar month and derives savings
// and savings rate per month. The result is sorted by month key.
func ProjectSavings(predictions []model.Prediction) []model.MonthlyProjection {
	if len(predictions) == 0 {
		return nil
	}

	type totals struct{ income, expense decimal.Decimal }
	byMonth := make(map[string]*totals)
	for _, p := range predictions {
		key := id.MonthKey(p.Date)
		m, ok := byMonth[key]
		if !ok {
			m = &totals{income: decimal.Zero, expense: decimal.Zero}
			byMonth[key] = m
		}
		if p.Type == model.TypeIncome {
			m.income = m.income.Add(p.Amount)
		} else {
			m.expense = m.expense.Add(p.Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]model.MonthlyProjection, 0, len(keys))
	for _, k := range keys {
		m := byMonth[k]
		out = append(out, newProjection(k, m.income, m.expense))
	}
	return out
}

func newProjection(month string, income, expense decimal.Decimal) model.MonthlyProjection {
	savings := income.Sub(expense)
	rate := 0.0
	if income.IsPositive() {
		rate = savings.Div(income).Mul(hundred).InexactFloat64()
	}
	return model.MonthlyProjection{
		Month:       month,
		Income:      income,
		Expense:     expense,
		Savings:     savings,
		SavingsRate: rate,
	}
}
