//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports_test

import (
	"testing"

	"github.com/pgEdge/retail-reports/internal/reports"
)

func TestGet(t *testing.T) {
	knownReports := []string{
		"category-revenue",
		"purchase-history",
		"product-performance",
		"regional-sales",
		"daily-trend",
		"low-stock",
		"inactivity",
	}

	for _, name := range knownReports {
		t.Run(name, func(t *testing.T) {
			def, err := reports.Get(name)
			if err != nil {
				t.Fatalf("Failed to get report '%s': %v", name, err)
			}
			if def.Name != name {
				t.Errorf("Report name mismatch: expected '%s', got '%s'", name, def.Name)
			}
			if def.Description == "" {
				t.Error("Report description should not be empty")
			}
			if def.Run == nil {
				t.Error("Report should have a Run function")
			}
		})
	}
}

func TestGetInvalidReport(t *testing.T) {
	_, err := reports.Get("nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent report")
	}
}

func TestList(t *testing.T) {
	names := reports.List()
	if len(names) != 7 {
		t.Errorf("Expected 7 registered reports, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("List should be sorted: '%s' before '%s'", names[i-1], names[i])
		}
	}
}

func TestReportKinds(t *testing.T) {
	monitoring := map[string]bool{"low-stock": true, "inactivity": true}

	for _, def := range reports.All() {
		want := reports.KindAnalytics
		if monitoring[def.Name] {
			want = reports.KindMonitoring
		}
		if def.Kind != want {
			t.Errorf("%s: expected kind %s, got %s", def.Name, want, def.Kind)
		}
	}
}

func TestRunProducesRectangularResults(t *testing.T) {
	st := sampleStore(t)

	for _, def := range reports.All() {
		res := def.Run(st, reports.Params{})
		if res.Name != def.Name {
			t.Errorf("%s: result name mismatch: %s", def.Name, res.Name)
		}
		if len(res.Columns) == 0 {
			t.Errorf("%s: result has no columns", def.Name)
		}
		for i, row := range res.Rows {
			if len(row) != len(res.Columns) {
				t.Errorf("%s row %d: %d cells for %d columns",
					def.Name, i, len(row), len(res.Columns))
			}
		}
	}
}

func TestRunFormatsMoneyWithTwoDecimals(t *testing.T) {
	st := sampleStore(t)

	def, err := reports.Get("category-revenue")
	if err != nil {
		t.Fatal(err)
	}
	res := def.Run(st, reports.Params{})
	if len(res.Rows) == 0 {
		t.Fatal("Expected rows")
	}
	if got := res.Rows[0][2]; got != "699.99" {
		t.Errorf("Expected '699.99', got '%s'", got)
	}
}

func TestRunLowStockThresholdParam(t *testing.T) {
	st := sampleStore(t)

	def, err := reports.Get("low-stock")
	if err != nil {
		t.Fatal(err)
	}

	if res := def.Run(st, reports.Params{}); len(res.Rows) != 0 {
		t.Errorf("Default threshold should match nothing in the sample data, got %d rows", len(res.Rows))
	}
	if res := def.Run(st, reports.Params{StockThreshold: 100}); len(res.Rows) != 3 {
		t.Errorf("Threshold 100 should match 3 products, got %d rows", len(res.Rows))
	}
}

func TestRunInactivityPlaceholders(t *testing.T) {
	st := sampleStore(t)

	def, err := reports.Get("inactivity")
	if err != nil {
		t.Fatal(err)
	}
	res := def.Run(st, reports.Params{})
	for _, row := range res.Rows {
		if row[2] == "-" || row[3] == "-" {
			t.Errorf("Sample customers all have purchases, got placeholder in %v", row)
		}
	}
}
