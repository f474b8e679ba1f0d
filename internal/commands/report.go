package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/forecast"
	"github.com/cleared-dev/runway/internal/goals"
	"github.com/cleared-dev/runway/internal/ledger"
	"github.com/cleared-dev/runway/internal/model"
	"github.com/cleared-dev/runway/internal/report"
)

// fullReport is the JSON shape of the report command.
type fullReport struct {
	Forecast   forecast.Summary         `json:"forecast"`
	Projection *goals.SavingsProjection `json:"projection"`
	Path       []goals.PathPoint        `json:"path"`
	Required   *goals.RequiredSavings   `json:"required,omitempty"`
	Stability  *goals.IncomeStability   `json:"stability"`
}

func newReportCommand(e *env) *cobra.Command {
	var (
		format        string
		months        int
		historyMonths int
		current       string
		goal          string
		target        string
	)

	cmd := &cobra.Command{
		Use:   "report [files or directories...]",
		Short: "Forecast, health and goal planning in one pass",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			txns, err := e.loadLedger(cmd.Context(), format, args)
			if err != nil {
				return err
			}
			if historyMonths < 1 {
				return fmt.Errorf("--history-months %d: must be at least 1", historyMonths)
			}
			months, err = e.forecastMonths(cmd, months)
			if err != nil {
				return err
			}

			amounts := plannerInput{current: current, goal: goal}
			cur, g, err := amounts.amounts(e)
			if err != nil {
				return err
			}
			pt, err := goals.ParseProjectionType(e.cfg.Planner.ProjectionType)
			if err != nil {
				return err
			}

			income, expense := ledger.MonthlySeries(txns, now, historyMonths)
			rep := fullReport{
				Forecast:  forecast.New(e.cfg.ForecastOptions()).Summarize(txns, months, now),
				Stability: goals.AnalyzeStability(income, expense, e.cfg.Planner.Stability),
			}
			rep.Projection = goals.Project(cur, income, expense, g, pt)
			rep.Path = goals.ProjectionPath(cur, g, rep.Projection, now, e.cfg.Planner.PathMonths)

			if target != "" {
				targetDate, err := time.Parse(model.DateFormat, target)
				if err != nil {
					return fmt.Errorf("parsing --target %q: %w", target, err)
				}
				rep.Required = goals.Required(cur, income, expense, g, targetDate, now, e.cfg.Planner.VolatilityBuffer)
			}

			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), rep)
			}
			return writeReport(cmd.OutOrStdout(), rep, target != "", e.cfg.Output.CurrencySymbol)
		},
	}

	cmd.Flags().StringVar(&format, "format", "runway", "input format (runway or chase)")
	cmd.Flags().IntVar(&months, "months", 6, "months to forecast (default from config)")
	cmd.Flags().IntVar(&historyMonths, "history-months", defaultHistoryMonths, "complete months of history for goal planning")
	cmd.Flags().StringVar(&current, "current", "0", "current savings balance")
	cmd.Flags().StringVar(&goal, "goal", "", "savings goal (default from config)")
	cmd.Flags().StringVar(&target, "target", "", "target date for required savings (YYYY-MM-DD)")

	return cmd
}

func writeReport(w io.Writer, rep fullReport, withRequired bool, symbol string) error {
	if err := report.WriteSummary(w, rep.Forecast, symbol); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := report.WriteProjection(w, rep.Projection, rep.Path, symbol); err != nil {
		return err
	}
	if withRequired {
		fmt.Fprintln(w)
		if err := report.WriteRequired(w, rep.Required, symbol); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	return report.WriteStability(w, rep.Stability, symbol)
}
