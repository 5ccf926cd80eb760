//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"github.com/spf13/cobra"

	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/reports"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run [report...]",
	Short: "Run analytical reports over the dataset",
	Long: `Run the named reports against the loaded dataset and print the
result tables. With no arguments, every analytical report runs.

Example:
  retail-reports run category-revenue daily-trend
  retail-reports run --random --json`,
	RunE: runReports,
}

func init() {
	runCmd.Flags().BoolVar(&runJSON, "json", false,
		"print results as JSON instead of tables")
}

func runReports(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		for _, def := range reports.All() {
			if def.Kind == reports.KindAnalytics {
				names = append(names, def.Name)
			}
		}
	}

	// Resolve every name before touching the dataset.
	defs := make([]reports.Definition, 0, len(names))
	for _, name := range names {
		def, err := reports.Get(name)
		if err != nil {
			return err
		}
		defs = append(defs, def)
	}

	st, source, err := buildStore()
	if err != nil {
		return err
	}

	logging.Info().
		Str("dataset", source).
		Int("reports", len(defs)).
		Msg("Running reports")

	params := reports.Params{StockThreshold: cfg.Report.StockThreshold}

	results := make([]reports.Result, 0, len(defs))
	for _, def := range defs {
		results = append(results, def.Run(st, params))
	}

	if runJSON {
		return renderJSON(cmd.OutOrStdout(), results)
	}
	for _, res := range results {
		if err := renderTable(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}
	return nil
}
