package cli

import (
	"fmt"

	"github.com/fracplace/fracplace/internal/cli/output"
	"github.com/fracplace/fracplace/internal/store"
)

// History prints the most recent recorded solve runs.
func (cli *CLI) History(limit int, format string) error {
	s, err := cli.openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	runs, err := s.ListRuns(limit)
	if err != nil {
		return err
	}

	columns := []output.Column[store.Run]{
		{Header: "WHEN", Value: func(r store.Run) string { return r.CreatedAt.Format("2006-01-02 15:04:05") }},
		{Header: "INFRA", Value: func(r store.Run) string { return r.Infra }},
		{Header: "SERVICE", Value: func(r store.Run) string { return r.Service }},
		{Header: "WORKED", Value: func(r store.Run) string { return fmt.Sprintf("%t", r.Worked) }},
		{Header: "OBJECTIVE", Value: func(r store.Run) string {
			if !r.Objective.Valid {
				return "-"
			}
			return fmt.Sprintf("%.4g", r.Objective.Float64)
		}},
		{Header: "FRACTIONAL", Value: func(r store.Run) string {
			if !r.FractionalObjective.Valid {
				return "-"
			}
			return fmt.Sprintf("%.4g", r.FractionalObjective.Float64)
		}},
	}
	return output.Print(cli.out, runs, columns, format)
}
