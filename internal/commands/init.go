package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/config"
	"github.com/cleared-dev/runway/internal/ledger"
	"github.com/cleared-dev/runway/internal/logging"
)

// Directory layout of a runway project.
const (
	ledgerDir   = "ledger"
	ledgerFile  = "transactions.csv"
	importDir   = "import"
	keepFile    = ".gitkeep"
	gitignore   = ".gitignore"
	ignoredEnvs = ".env\n"
)

func newInitCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new runway project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			kept, err := runInit(absDir, force)
			if err != nil {
				return err
			}
			e.log.WithField(logging.FieldPath, absDir).Debug("project initialized")
			if kept {
				fmt.Fprintf(cmd.OutOrStdout(), "Kept existing %s (use --force to overwrite)\n", config.FileName)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized runway project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing runway.yaml")

	return cmd
}

// runInit lays out a project in dir. It reports whether an existing
// runway.yaml was left in place.
func runInit(dir string, force bool) (keptConfig bool, err error) {
	// Create directory structure.
	for _, d := range []string{ledgerDir, filepath.Join(importDir, "processed")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return false, fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write runway.yaml, keeping an existing one unless forced.
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		keptConfig = true
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking config: %w", err)
	}
	if !keptConfig {
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return false, fmt.Errorf("writing config: %w", err)
		}
	}

	// Write an empty ledger with just the header, unless one exists.
	txPath := filepath.Join(dir, ledgerDir, ledgerFile)
	if _, err := os.Stat(txPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(txPath, []byte(ledger.Header+"\n"), 0o644); err != nil {
			return keptConfig, fmt.Errorf("writing ledger: %w", err)
		}
	}

	// Write .gitignore.
	if err := os.WriteFile(filepath.Join(dir, gitignore), []byte(ignoredEnvs), 0o644); err != nil {
		return keptConfig, fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write import/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, importDir, keepFile), []byte{}, 0o644); err != nil {
		return keptConfig, fmt.Errorf("writing .gitkeep: %w", err)
	}

	return keptConfig, nil
}
