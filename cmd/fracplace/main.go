package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fracplace/fracplace/internal/cli"
	"github.com/fracplace/fracplace/internal/log"
)

type globalOptions struct {
	dbPath string
	debug  bool
}

func main() {
	opts := globalOptions{}
	var fraccli *cli.CLI

	cmd := &cobra.Command{
		Use:           "fracplace",
		Short:         "Place VNF demand onto capacitated infrastructure hosts at minimal cost.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.Init(opts.debug)
			var err error
			fraccli, err = cli.New(os.Stdout, opts.dbPath)
			if err != nil {
				return fmt.Errorf("initialize CLI: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "",
		"Path to the run history database (default ~/.fracplace/history.db).")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging.")

	var solveOpts cli.SolveOptions
	var infraPath string
	solveCmd := &cobra.Command{
		Use:   "solve SERVICE_FILE [SERVICE_FILE...]",
		Short: "Solve the placement of one or more service topologies onto an infrastructure.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fraccli.Solve(cmd.Context(), infraPath, args, solveOpts)
		},
	}
	solveCmd.Flags().StringVarP(&infraPath, "infra", "i", "", "Path to the infrastructure topology file.")
	solveCmd.Flags().StringVarP(&solveOpts.Format, "output", "o", "table", "Output format: table or json.")
	solveCmd.Flags().BoolVar(&solveOpts.Record, "record", false, "Record the outcome in the run history.")
	_ = solveCmd.MarkFlagRequired("infra")
	cmd.AddCommand(solveCmd)

	var historyLimit int
	var historyFormat string
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded solve runs, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fraccli.History(historyLimit, historyFormat)
		},
	}
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of runs to list.")
	historyCmd.Flags().StringVarP(&historyFormat, "output", "o", "table", "Output format: table or json.")
	cmd.AddCommand(historyCmd)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
