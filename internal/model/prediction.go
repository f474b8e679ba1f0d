package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar-date layout used in files and JSON output.
const DateFormat = "2006-01-02"

// Prediction is a forecast amount for one type in one future month.
type Prediction struct {
	ID     string
	Name   string
	Amount decimal.Decimal // never negative
	Date   time.Time       // first day of the predicted month
	Type   TxType
	Trend  Direction
}

type predictionJSON struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Type   TxType          `json:"type"`
	Trend  Direction       `json:"trend"`
}

// MarshalJSON renders Date as YYYY-MM-DD.
func (p Prediction) MarshalJSON() ([]byte, error) {
	return json.Marshal(predictionJSON{
		ID:     p.ID,
		Name:   p.Name,
		Amount: p.Amount,
		Date:   p.Date.Format(DateFormat),
		Type:   p.Type,
		Trend:  p.Trend,
	})
}

// MonthlyProjection aggregates predictions for a single YYYY-MM month.
//
// Savings is always Income - Expense. SavingsRate is 100*Savings/Income,
// or 0 when Income is zero.
type MonthlyProjection struct {
	Month       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expense     decimal.Decimal `json:"expense"`
	Savings     decimal.Decimal `json:"savings"`
	SavingsRate float64         `json:"savingsRate"`
}
