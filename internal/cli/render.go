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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pgEdge/retail-reports/internal/reports"
)

// renderTable writes a result as an aligned text table.
func renderTable(w io.Writer, res reports.Result) error {
	fmt.Fprintf(w, "%s\n", res.Name)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))
	for _, row := range res.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
	}
	fmt.Fprintln(w)
	return nil
}

// renderJSON writes results as a JSON array of objects keyed by column.
func renderJSON(w io.Writer, results []reports.Result) error {
	out := make(map[string][]map[string]string, len(results))
	for _, res := range results {
		rows := make([]map[string]string, 0, len(res.Rows))
		for _, row := range res.Rows {
			obj := make(map[string]string, len(res.Columns))
			for i, col := range res.Columns {
				obj[col] = row[i]
			}
			rows = append(rows, obj)
		}
		out[res.Name] = rows
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
