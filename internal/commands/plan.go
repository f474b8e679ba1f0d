package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/goals"
	"github.com/cleared-dev/runway/internal/ledger"
	"github.com/cleared-dev/runway/internal/model"
	"github.com/cleared-dev/runway/internal/report"
)

const defaultHistoryMonths = 6

// plannerInput collects the monthly series every planner view needs,
// either typed in as lists or derived from ledger files.
type plannerInput struct {
	income        []string
	expense       []string
	ledgerPaths   []string
	format        string
	historyMonths int
	current       string
	goal          string
}

func (in *plannerInput) bind(cmd *cobra.Command, withGoal bool) {
	f := cmd.Flags()
	f.StringSliceVar(&in.income, "income", nil, "monthly income, oldest first (e.g. 4000,4800,4400)")
	f.StringSliceVar(&in.expense, "expense", nil, "monthly expenses, oldest first")
	f.StringSliceVar(&in.ledgerPaths, "ledger", nil, "derive monthly series from these ledger files or directories")
	f.StringVar(&in.format, "format", "runway", "ledger input format (runway or chase)")
	f.IntVar(&in.historyMonths, "history-months", defaultHistoryMonths, "complete months of ledger history to use")
	if withGoal {
		f.StringVar(&in.current, "current", "0", "current savings balance")
		f.StringVar(&in.goal, "goal", "", "savings goal (default from config)")
	}
}

func (in *plannerInput) series(ctx context.Context, e *env, now time.Time) (income, expense []decimal.Decimal, err error) {
	if len(in.ledgerPaths) > 0 {
		if len(in.income) > 0 || len(in.expense) > 0 {
			return nil, nil, errors.New("use either --ledger or --income/--expense, not both")
		}
		if in.historyMonths < 1 {
			return nil, nil, fmt.Errorf("--history-months %d: must be at least 1", in.historyMonths)
		}
		txns, err := e.loadLedger(ctx, in.format, in.ledgerPaths)
		if err != nil {
			return nil, nil, err
		}
		income, expense = ledger.MonthlySeries(txns, now, in.historyMonths)
		return income, expense, nil
	}

	if income, err = parseAmounts("income", in.income); err != nil {
		return nil, nil, err
	}
	if expense, err = parseAmounts("expense", in.expense); err != nil {
		return nil, nil, err
	}
	return income, expense, nil
}

func (in *plannerInput) amounts(e *env) (current, goal decimal.Decimal, err error) {
	if current, err = parseAmount("current", in.current); err != nil {
		return
	}
	if in.goal == "" {
		goal, err = e.cfg.Planner.Goal()
		return
	}
	goal, err = parseAmount("goal", in.goal)
	return
}

func newPlanCommand(e *env) *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Savings goal planning",
	}
	planCmd.AddCommand(newPlanProjectCommand(e))
	planCmd.AddCommand(newPlanRequiredCommand(e))
	planCmd.AddCommand(newPlanStabilityCommand(e))
	return planCmd
}

// projectionResult is the JSON shape of plan project.
type projectionResult struct {
	Projection *goals.SavingsProjection `json:"projection"`
	Path       []goals.PathPoint        `json:"path"`
	History    []goals.MonthRow         `json:"history"`
}

func newPlanProjectCommand(e *env) *cobra.Command {
	in := &plannerInput{}
	var typ string
	var pathMonths int

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Estimate how long it takes to reach a savings goal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			income, expense, err := in.series(cmd.Context(), e, now)
			if err != nil {
				return err
			}
			current, goal, err := in.amounts(e)
			if err != nil {
				return err
			}

			if typ == "" {
				typ = e.cfg.Planner.ProjectionType
			}
			pt, err := goals.ParseProjectionType(typ)
			if err != nil {
				return fmt.Errorf("--type: %w", err)
			}
			if !cmd.Flags().Changed("path-months") {
				pathMonths = e.cfg.Planner.PathMonths
			}

			p := goals.Project(current, income, expense, goal, pt)
			path := goals.ProjectionPath(current, goal, p, now, pathMonths)

			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), projectionResult{
					Projection: p,
					Path:       path,
					History:    goals.History(income, expense),
				})
			}
			return report.WriteProjection(cmd.OutOrStdout(), p, path, e.cfg.Output.CurrencySymbol)
		},
	}

	in.bind(cmd, true)
	cmd.Flags().StringVar(&typ, "type", "", "projection type: conservative, average or optimistic (default from config)")
	cmd.Flags().IntVar(&pathMonths, "path-months", goals.DefaultPathMonths, "months of balance path to show")

	return cmd
}

func newPlanRequiredCommand(e *env) *cobra.Command {
	in := &plannerInput{}
	var target string
	var buffer float64

	cmd := &cobra.Command{
		Use:   "required",
		Short: "Monthly savings needed to reach a goal by a target date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			targetDate, err := time.Parse(model.DateFormat, target)
			if err != nil {
				return fmt.Errorf("parsing --target %q: %w", target, err)
			}
			income, expense, err := in.series(cmd.Context(), e, now)
			if err != nil {
				return err
			}
			current, goal, err := in.amounts(e)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("buffer") {
				buffer = e.cfg.Planner.VolatilityBuffer
			}

			r := goals.Required(current, income, expense, goal, targetDate, now, buffer)
			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), r)
			}
			return report.WriteRequired(cmd.OutOrStdout(), r, e.cfg.Output.CurrencySymbol)
		},
	}

	in.bind(cmd, true)
	cmd.Flags().StringVar(&target, "target", "", "target date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("target")
	cmd.Flags().Float64Var(&buffer, "buffer", goals.DefaultVolatilityBuffer, "share of income volatility added as a buffer (default from config)")

	return cmd
}

func newPlanStabilityCommand(e *env) *cobra.Command {
	in := &plannerInput{}

	cmd := &cobra.Command{
		Use:   "stability",
		Short: "Classify how stable monthly income is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := e.now()
			if err != nil {
				return err
			}
			income, expense, err := in.series(cmd.Context(), e, now)
			if err != nil {
				return err
			}

			s := goals.AnalyzeStability(income, expense, e.cfg.Planner.Stability)
			if e.jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), s)
			}
			return report.WriteStability(cmd.OutOrStdout(), s, e.cfg.Output.CurrencySymbol)
		},
	}

	in.bind(cmd, false)

	return cmd
}
