package goals

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPathMonths caps how far ProjectionPath looks ahead.
const DefaultPathMonths = 12

// PathPoint is one step of a projected savings balance.
type PathPoint struct {
	Label   string          `json:"label"`
	Month   time.Time       `json:"month"` // zero for the starting and goal points
	Balance decimal.Decimal `json:"balance"`
	Goal    decimal.Decimal `json:"goal"`
}

// ProjectionPath walks the balance forward month by month at p's monthly
// savings, for min(maxMonths, MonthsToGoal) months. When the goal lies
// beyond maxMonths a final "Goal" point is appended. Unachievable or nil
// projections have no path.
func ProjectionPath(current, goal decimal.Decimal, p *SavingsProjection, now time.Time, maxMonths int) []PathPoint {
	if p == nil || !p.IsAchievable {
		return nil
	}
	if maxMonths <= 0 {
		maxMonths = DefaultPathMonths
	}

	steps := min(maxMonths, p.MonthsToGoal)
	path := make([]PathPoint, 0, steps+2)
	path = append(path, PathPoint{Label: "Current", Balance: current, Goal: goal})

	for i := 1; i <= steps; i++ {
		month := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		path = append(path, PathPoint{
			Label:   month.Format("Jan 2006"),
			Month:   month,
			Balance: current.Add(p.MonthlySavings.Mul(decimal.NewFromInt(int64(i)))),
			Goal:    goal,
		})
	}

	if p.MonthsToGoal > maxMonths {
		path = append(path, PathPoint{Label: "Goal", Balance: goal, Goal: goal})
	}
	return path
}

// MonthRow is one month of the history as the stability chart shows it.
type MonthRow struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// History pairs each income month with its expense and savings.
func History(income, expense []decimal.Decimal) []MonthRow {
	savings := MonthlySavings(income, expense)
	rows := make([]MonthRow, len(income))
	for i := range income {
		exp := decimal.Zero
		if i < len(expense) {
			exp = expense[i]
		}
		rows[i] = MonthRow{
			Label:   fmt.Sprintf("Month %d", i+1),
			Income:  income[i],
			Expense: exp,
			Savings: savings[i],
		}
	}
	return rows
}
