package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/fracplace/fracplace/internal/cli/output"
	"github.com/fracplace/fracplace/pkg/placement"
	"github.com/fracplace/fracplace/pkg/topology"
)

// SolveOptions configures the solve command.
type SolveOptions struct {
	// Format is the output format, "table" or "json".
	Format string
	// Record stores the outcome of every solve in the history database.
	Record bool
}

// solveRun pairs one service file with its outcome for reporting.
type solveRun struct {
	service  string
	solution *placement.Solution
	err      error
}

// Solve places each of the given service topologies onto the infrastructure
// and prints the resulting mappings. Every service is solved independently
// with fresh solver state, so the solves run concurrently.
func (cli *CLI) Solve(ctx context.Context, infraPath string, servicePaths []string, opts SolveOptions) error {
	infra, err := topology.LoadInfrastructure(infraPath)
	if err != nil {
		return err
	}

	runs := make([]solveRun, len(servicePaths))
	g, _ := errgroup.WithContext(ctx)
	for i, path := range servicePaths {
		g.Go(func() error {
			run := solveRun{service: path}
			svc, err := topology.LoadService(path)
			if err != nil {
				run.err = err
			} else {
				run.solution, run.err = cli.solver.Solve(infra, svc)
			}
			runs[i] = run
			// Individual failures are reported per service, not aborted on.
			return nil
		})
	}
	// The group never returns an error but draining it awaits all solves.
	_ = g.Wait()

	if opts.Record {
		if err = cli.recordRuns(infraPath, runs); err != nil {
			return err
		}
	}

	var failed []string
	for _, run := range runs {
		if err = cli.printRun(run, opts.Format); err != nil {
			return err
		}
		if run.err != nil || !run.solution.Worked {
			failed = append(failed, run.service)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("no placement found for %s", strings.Join(failed, ", "))
	}
	return nil
}

func (cli *CLI) printRun(run solveRun, format string) error {
	if run.err != nil {
		var infeasible *placement.InfeasibleError
		if errors.As(run.err, &infeasible) {
			fmt.Fprintf(cli.out, "%s: infeasible: %s\n", run.service, infeasible.Error())
			return nil
		}
		return fmt.Errorf("solve %s: %w", run.service, run.err)
	}

	sol := run.solution
	if !sol.Worked {
		fmt.Fprintf(cli.out, "%s: no placement found\n", run.service)
		return nil
	}

	if format == "json" {
		return output.PrintJSON(cli.out, sol)
	}

	fmt.Fprintf(cli.out, "%s: objective %.4g (fractional optimum %.4g, gap %.1f%%)\n",
		run.service, sol.Objective, sol.FractionalObjective, sol.Gap()*100)
	columns := []output.Column[placement.BinUsage]{
		{Header: "BIN", Value: func(u placement.BinUsage) string { return u.BinID }},
		{Header: "LOAD", Value: func(u placement.BinUsage) string {
			return fmt.Sprintf("%.4g/%.4g (%.0f%%)", u.Load, u.Capacity, u.Utilization()*100)
		}},
		{Header: "ITEMS", Value: func(u placement.BinUsage) string { return strings.Join(u.Items, ",") }},
	}
	return output.Print(cli.out, sol.Bins, columns, format)
}

func (cli *CLI) recordRuns(infraPath string, runs []solveRun) error {
	s, err := cli.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	for _, run := range runs {
		if run.solution == nil {
			// Load or solve errors are not part of the history.
			continue
		}
		infra := filepath.Base(infraPath)
		if err = s.RecordRun(infra, filepath.Base(run.service), run.solution); err != nil {
			return err
		}
		slog.Debug("Recorded solve run.", "infra", infra, "service", run.service, "worked", run.solution.Worked)
	}
	return nil
}
