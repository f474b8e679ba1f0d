package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/runway/internal/model"
)

// ValidationError describes one problem with one transaction.
type ValidationError struct {
	Index       int // position in the validated slice
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("transaction %d [%s]: %s", e.Index, e.Field, e.Description)
}

// Validate checks transactions built outside ReadTransactions (for example
// by a bank importer) before they reach the analytics.
func Validate(txns []model.Transaction) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)

	for i, txn := range txns {
		if txn.Date.IsZero() {
			errs = append(errs, ValidationError{
				Index:       i,
				Field:       "date",
				Description: "date is missing",
			})
		}

		if !txn.Type.Valid() {
			errs = append(errs, ValidationError{
				Index:       i,
				Field:       "type",
				Description: fmt.Sprintf("type %q must be income or expense", txn.Type),
			})
		}

		// Amounts are money: at most two decimal places.
		scaled := txn.Amount.Mul(hundred)
		if !scaled.Equal(scaled.Truncate(0)) {
			errs = append(errs, ValidationError{
				Index:       i,
				Field:       "amount",
				Description: fmt.Sprintf("amount %s has more than 2 decimal places", txn.Amount),
			})
		}
	}
	return errs
}
