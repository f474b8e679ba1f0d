package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/runway/internal/importer"
	"github.com/cleared-dev/runway/internal/ledger"
	"github.com/cleared-dev/runway/internal/logging"
)

func newImportCommand(e *env) *cobra.Command {
	var format string
	var repoDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert bank exports in import/ into ledger files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			p, err := importer.DefaultRegistry().Lookup(format)
			if err != nil {
				return err
			}

			files, err := importer.Scan(absDir)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import.")
				return nil
			}

			for _, f := range files {
				n, err := e.importFile(absDir, f, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", n, f.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "chase", "export format (chase or runway)")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")

	return cmd
}

// importFile converts one export into ledger/<name>.csv and moves the
// export to import/processed. An existing ledger file is never overwritten.
func (e *env) importFile(root string, f importer.FileInfo, p importer.Parser) (int, error) {
	txns, err := ledger.LoadFile(f.Path, p)
	if err != nil {
		return 0, err
	}
	txns = e.dropInvalid(txns)

	dst := filepath.Join(root, ledgerDir, baseName(f.Name)+".csv")
	if _, err := os.Stat(dst); err == nil {
		return 0, fmt.Errorf("%s already exists", dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("checking %s: %w", dst, err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("creating ledger dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}
	if err := ledger.WriteTransactions(out, txns); err != nil {
		out.Close()
		return 0, fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", dst, err)
	}

	if err := importer.MarkProcessed(root, f.Name); err != nil {
		// Leave the export importable on the next run.
		if rmErr := os.Remove(dst); rmErr != nil {
			return 0, errors.Join(err, fmt.Errorf("removing %s: %w", dst, rmErr))
		}
		return 0, err
	}

	e.log.WithFields(logrus.Fields{
		logging.FieldPath:         dst,
		logging.FieldFormat:       p.Format(),
		logging.FieldTransactions: len(txns),
	}).Info("imported")
	return len(txns), nil
}
