package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/forecast"
	"github.com/cleared-dev/runway/internal/logging"
	"github.com/cleared-dev/runway/internal/report"
)

func newForecastCommand(e *env) *cobra.Command {
	var months int
	var format string

	cmd := &cobra.Command{
		Use:   "forecast [files or directories...]",
		Short: "Predict income and expenses for the coming months",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			txns, err := e.loadLedger(cmd.Context(), format, args)
			if err != nil {
				return err
			}

			months, err = e.forecastMonths(cmd, months)
			if err != nil {
				return err
			}
			engine := forecast.New(e.cfg.ForecastOptions())
			summary := engine.Summarize(txns, months, now)

			e.log.WithFields(logrus.Fields{
				logging.FieldMonthsAhead: months,
				logging.FieldScore:       summary.Health.Score,
			}).Debug("forecast computed")

			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), summary)
			}
			return report.WriteSummary(cmd.OutOrStdout(), summary, e.cfg.Output.CurrencySymbol)
		},
	}

	cmd.Flags().IntVar(&months, "months", 6, "months to forecast (default from config)")
	cmd.Flags().StringVar(&format, "format", "runway", "input format (runway or chase)")

	return cmd
}

func newHealthCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "health [files or directories...]",
		Short: "Score financial health over the recent window",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			txns, err := e.loadLedger(cmd.Context(), format, args)
			if err != nil {
				return err
			}

			b := forecast.New(e.cfg.ForecastOptions()).Breakdown(txns, now)
			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), b)
			}
			return report.WriteHealth(cmd.OutOrStdout(), b, e.cfg.Output.CurrencySymbol)
		},
	}

	cmd.Flags().StringVar(&format, "format", "runway", "input format (runway or chase)")

	return cmd
}
