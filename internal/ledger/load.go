package ledger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/runway/internal/model"
)

// Parser turns one input file into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
}

// LoadFile parses a single file with p.
func LoadFile(path string, p Parser) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// Expand replaces every directory in paths with the *.csv files directly
// inside it, sorted by name. Plain files are kept in place.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("reading dir %s: %w", p, err)
		}
		var files []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
				continue
			}
			files = append(files, filepath.Join(p, e.Name()))
		}
		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}

// LoadFiles expands paths and parses every file concurrently. The result
// keeps file order, then row order within each file. The first failure
// cancels the remaining reads.
func LoadFiles(ctx context.Context, p Parser, paths ...string) ([]model.Transaction, error) {
	files, err := Expand(paths)
	if err != nil {
		return nil, err
	}

	results := make([][]model.Transaction, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			txns, err := LoadFile(path, p)
			if err != nil {
				return err
			}
			results[i] = txns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []model.Transaction
	for _, txns := range results {
		all = append(all, txns...)
	}
	return all, nil
}
