package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/runway/internal/commands"
)

const asOf = "2026-10-18"

// Three complete months before asOf: savings of 400, 1600 and 1000.
const sampleLedger = `date,type,amount,name
2026-07-01,income,4000.00,Salary
2026-07-03,expense,3600.00,Rent and bills
2026-08-01,income,4800.00,Salary
2026-08-03,expense,3200.00,Rent and bills
2026-09-01,income,4400.00,Salary
2026-09-03,expense,3400.00,Rent and bills
`

func runRunway(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// writeLedger creates <dir>/ledger/transactions.csv and returns the ledger dir.
func writeLedger(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "ledger")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte(content), 0o644))
	return dir
}
