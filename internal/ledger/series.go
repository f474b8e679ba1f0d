package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/model"
)

// MonthlySeries sums transaction magnitudes per calendar month for the
// months complete months before now, oldest first. The current month is
// excluded because it is still in progress. Both slices have length months.
func MonthlySeries(txns []model.Transaction, now time.Time, months int) (income, expense []decimal.Decimal) {
	if months <= 0 {
		return nil, nil
	}

	income = make([]decimal.Decimal, months)
	expense = make([]decimal.Decimal, months)
	for i := 0; i < months; i++ {
		income[i] = decimal.Zero
		expense[i] = decimal.Zero
	}

	startYear, startMonth := now.Year(), int(now.Month())-months
	for _, t := range txns {
		idx := (t.Date.Year()-startYear)*12 + int(t.Date.Month()) - startMonth
		if idx < 0 || idx >= months {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			income[idx] = income[idx].Add(t.Magnitude())
		case model.TypeExpense:
			expense[idx] = expense[idx].Add(t.Magnitude())
		}
	}
	return income, expense
}
