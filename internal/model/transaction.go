package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TxType tags a transaction as money in or money out.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// ParseTxType accepts "income" or "expense" in any case.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Valid reports whether t is one of the two known tags.
func (t TxType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated income or expense record.
type Transaction struct {
	Date   time.Time
	Amount decimal.Decimal // sign is ignored by the analytics; use Magnitude
	Type   TxType
	Name   string
}

// Magnitude returns the absolute amount.
func (t Transaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}

// FilterType returns the transactions of the given type, preserving order.
func FilterType(txns []Transaction, typ TxType) []Transaction {
	var out []Transaction
	for _, t := range txns {
		if t.Type == typ {
			out = append(out, t)
		}
	}
	return out
}
