package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/config"
	"github.com/cleared-dev/runway/internal/importer"
	"github.com/cleared-dev/runway/internal/ledger"
	"github.com/cleared-dev/runway/internal/logging"
	"github.com/cleared-dev/runway/internal/model"
)

// loadLedger reads paths (files or directories) with the named parser,
// drops transactions that fail validation, and logs what it kept. With no
// paths it reads the project's ledger directory.
func (e *env) loadLedger(ctx context.Context, format string, paths []string) ([]model.Transaction, error) {
	if len(paths) == 0 {
		paths = []string{ledgerDir}
	}

	p, err := importer.DefaultRegistry().Lookup(format)
	if err != nil {
		return nil, err
	}

	txns, err := ledger.LoadFiles(ctx, p, paths...)
	if err != nil {
		return nil, err
	}

	txns = e.dropInvalid(txns)
	e.log.WithFields(logrus.Fields{
		logging.FieldPath:         strings.Join(paths, ","),
		logging.FieldFormat:       format,
		logging.FieldTransactions: len(txns),
	}).Debug("ledger loaded")
	return txns, nil
}

func (e *env) dropInvalid(txns []model.Transaction) []model.Transaction {
	problems := ledger.Validate(txns)
	if len(problems) == 0 {
		return txns
	}

	bad := make(map[int]bool, len(problems))
	for _, p := range problems {
		bad[p.Index] = true
		e.log.WithFields(logrus.Fields{
			logging.FieldIndex: p.Index,
			logging.FieldField: p.Field,
		}).Warn(p.Description)
	}

	kept := make([]model.Transaction, 0, len(txns)-len(bad))
	for i, t := range txns {
		if !bad[i] {
			kept = append(kept, t)
		}
	}
	return kept
}

// parseAmounts parses a list of decimal amounts such as "4000,4800.50".
func parseAmounts(flag string, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("--%s: parsing %q: %w", flag, v, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// parseAmount parses a single decimal flag value.
func parseAmount(flag, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s: parsing %q: %w", flag, value, err)
	}
	return d, nil
}

// baseName strips directory and extension from a file path.
// forecastMonths returns the --months value, or the configured horizon
// when the flag was not given.
func (e *env) forecastMonths(cmd *cobra.Command, months int) (int, error) {
	if !cmd.Flags().Changed("months") {
		return e.cfg.Forecast.MonthsAhead, nil
	}
	if months < 1 || months > config.MaxMonthsAhead {
		return 0, fmt.Errorf("--months %d: must be between 1 and %d", months, config.MaxMonthsAhead)
	}
	return months, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
