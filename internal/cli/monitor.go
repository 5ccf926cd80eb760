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

	"github.com/pgEdge/retail-reports/internal/reports"
)

var (
	monitorJSON      bool
	monitorThreshold int
)

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run the monitoring queries (low stock, customer inactivity)",
	Long: `Run the two monitoring queries against the loaded dataset: products
below the restock threshold, and days since each customer's last
purchase.

Example:
  retail-reports monitor --stock-threshold 25 --as-of 2024-02-01`,
	RunE: runMonitor,
}

func init() {
	monitorCmd.Flags().BoolVar(&monitorJSON, "json", false,
		"print results as JSON instead of tables")
	monitorCmd.Flags().IntVar(&monitorThreshold, "stock-threshold", 0,
		"low-stock alert level (default: 20)")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	if monitorThreshold > 0 {
		cfg.Report.StockThreshold = monitorThreshold
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st, _, err := buildStore()
	if err != nil {
		return err
	}

	params := reports.Params{StockThreshold: cfg.Report.StockThreshold}

	var results []reports.Result
	for _, def := range reports.All() {
		if def.Kind == reports.KindMonitoring {
			results = append(results, def.Run(st, params))
		}
	}

	if monitorJSON {
		return renderJSON(cmd.OutOrStdout(), results)
	}
	for _, res := range results {
		if err := renderTable(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}
	return nil
}
