// Package cli implements the fracplace commands on top of the placement solver.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fracplace/fracplace/internal/store"
	"github.com/fracplace/fracplace/pkg/placement"
	"github.com/fracplace/fracplace/pkg/topology"
)

// CLI wires the solver, the topology loaders and the run-history store
// together for the command implementations.
type CLI struct {
	solver *placement.Solver
	dbPath string
	out    io.Writer
}

// New creates a CLI writing its output to out. The history database at dbPath
// is only opened by commands that need it; an empty path selects the default
// location under the user's home directory.
func New(out io.Writer, dbPath string) (*CLI, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fracplace", store.DBFileName)
	}
	return &CLI{
		solver: placement.NewSolver(topology.NewGraphChecker()),
		dbPath: dbPath,
		out:    out,
	}, nil
}

func (cli *CLI) openStore() (*store.Store, error) {
	if err := os.MkdirAll(filepath.Dir(cli.dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}
	s, err := store.Open(cli.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	return s, nil
}
