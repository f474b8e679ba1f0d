package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/buildinfo"
	"github.com/cleared-dev/runway/internal/config"
	"github.com/cleared-dev/runway/internal/logging"
	"github.com/cleared-dev/runway/internal/model"
)

// env is the state every subcommand shares once the root pre-run has
// loaded configuration and built the logger.
type env struct {
	configPath string
	logLevel   string
	logFormat  string
	asOf       string
	jsonOut    bool

	cfg *config.Config
	log *logrus.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:     "runway",
		Short:   "Forecast income, expenses and savings goals from a transaction ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&e.configPath, "config", config.FileName, "config file")
	pf.StringVar(&e.logLevel, "log-level", "", "log level (debug, info, warn, error); default $"+logging.EnvLevel+" or info")
	pf.StringVar(&e.logFormat, "log-format", "text", "log format (text or json)")
	pf.StringVar(&e.asOf, "as-of", "", "evaluate as of this date (YYYY-MM-DD) instead of today")
	pf.BoolVar(&e.jsonOut, "json", false, "write JSON instead of text (money amounts are quoted decimal strings)")

	rootCmd.AddCommand(newInitCommand(e))
	rootCmd.AddCommand(newForecastCommand(e))
	rootCmd.AddCommand(newHealthCommand(e))
	rootCmd.AddCommand(newPlanCommand(e))
	rootCmd.AddCommand(newReportCommand(e))
	rootCmd.AddCommand(newImportCommand(e))

	return rootCmd
}

func (e *env) setup(cmd *cobra.Command) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	level := e.logLevel
	if level == "" {
		level = os.Getenv(logging.EnvLevel)
	}
	e.log = logging.New(cmd.ErrOrStderr(), level, e.logFormat)

	cfg, err := config.Resolve(e.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("applying environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg

	e.log.WithFields(logrus.Fields{
		logging.FieldCommand: cmd.CommandPath(),
		logging.FieldPath:    e.configPath,
		logging.FieldWindow:  cfg.Forecast.WindowMonths,
	}).Debug("configuration loaded")
	return nil
}

// now returns the evaluation instant: --as-of at midnight UTC, or the
// current time.
func (e *env) now() (time.Time, error) {
	if e.asOf == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(model.DateFormat, e.asOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --as-of %q: %w", e.asOf, err)
	}
	return t, nil
}
