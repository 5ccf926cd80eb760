//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package reports

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/store"
)

// Kind distinguishes analytical reports from monitoring queries.
type Kind string

const (
	KindAnalytics  Kind = "analytics"
	KindMonitoring Kind = "monitoring"
)

// Params carries the knobs a pipeline can take. Zero values mean defaults.
type Params struct {
	// StockThreshold is the low-stock alert level.
	StockThreshold int
}

// Result is a rendered report: column headers plus formatted cells, ready
// for tabular or JSON output.
type Result struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Definition describes one named pipeline.
type Definition struct {
	Name        string
	Description string
	Kind        Kind
	Run         func(s *store.Store, p Params) Result
}

var (
	registry = make(map[string]Definition)
	mu       sync.RWMutex
)

// Register adds a report definition to the registry.
func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()
	registry[def.Name] = def
}

// Get retrieves a report definition by name.
func Get(name string) (Definition, error) {
	mu.RLock()
	defer mu.RUnlock()

	def, ok := registry[name]
	if !ok {
		return Definition{}, fmt.Errorf("unknown report: %s", name)
	}
	return def, nil
}

// List returns all registered report names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered definitions, sorted by name.
func All() []Definition {
	defs := make([]Definition, 0)
	for _, name := range List() {
		mu.RLock()
		defs = append(defs, registry[name])
		mu.RUnlock()
	}
	return defs
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func init() {
	Register(Definition{
		Name:        "category-revenue",
		Description: "Revenue and sale counts per product category",
		Kind:        KindAnalytics,
		Run: func(s *store.Store, _ Params) Result {
			rows := CategoryRevenue(s)
			out := Result{Name: "category-revenue",
				Columns: []string{"category", "total_sales", "total_revenue"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					r.Category, fmt.Sprint(r.TotalSales), money(r.TotalRevenue)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "purchase-history",
		Description: "Purchase counts and spend per customer",
		Kind:        KindAnalytics,
		Run: func(s *store.Store, _ Params) Result {
			rows := PurchaseHistory(s)
			out := Result{Name: "purchase-history",
				Columns: []string{"customer", "city", "purchase_count", "total_spent"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					r.Customer, r.City, fmt.Sprint(r.PurchaseCount), money(r.TotalSpent)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "product-performance",
		Description: "Units sold and revenue per product",
		Kind:        KindAnalytics,
		Run: func(s *store.Store, _ Params) Result {
			rows := ProductPerformance(s)
			out := Result{Name: "product-performance",
				Columns: []string{"product", "category", "units_sold", "total_revenue"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					r.Product, r.Category, fmt.Sprint(r.UnitsSold), money(r.TotalRevenue)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "regional-sales",
		Description: "Sale counts, revenue and average sale per region",
		Kind:        KindAnalytics,
		Run: func(s *store.Store, _ Params) Result {
			rows := RegionalSales(s)
			out := Result{Name: "regional-sales",
				Columns: []string{"region", "total_sales", "total_revenue", "avg_sale"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					r.Region, fmt.Sprint(r.TotalSales), money(r.TotalRevenue), money(r.AvgSale)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "daily-trend",
		Description: "Sale counts and revenue per calendar date",
		Kind:        KindAnalytics,
		Run: func(s *store.Store, _ Params) Result {
			rows := DailyTrend(s)
			out := Result{Name: "daily-trend",
				Columns: []string{"date", "total_sales", "total_revenue"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					day(r.Date), fmt.Sprint(r.TotalSales), money(r.TotalRevenue)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "low-stock",
		Description: "Products with stock below the restock threshold",
		Kind:        KindMonitoring,
		Run: func(s *store.Store, p Params) Result {
			threshold := p.StockThreshold
			if threshold <= 0 {
				threshold = DefaultStockThreshold
			}
			rows := LowStock(s, threshold)
			out := Result{Name: "low-stock",
				Columns: []string{"product", "stock_quantity", "unit_price"}}
			for _, r := range rows {
				out.Rows = append(out.Rows, []string{
					r.Product, fmt.Sprint(r.StockQuantity), money(r.UnitPrice)})
			}
			return out
		},
	})
	Register(Definition{
		Name:        "inactivity",
		Description: "Last purchase date and days since, per customer",
		Kind:        KindMonitoring,
		Run: func(s *store.Store, _ Params) Result {
			rows := Inactivity(s)
			out := Result{Name: "inactivity",
				Columns: []string{"customer", "purchase_count", "last_purchase", "days_since_purchase"}}
			for _, r := range rows {
				last, days := "-", "-"
				if r.LastPurchase != nil {
					last = day(*r.LastPurchase)
				}
				if r.DaysSincePurchase != nil {
					days = fmt.Sprint(*r.DaysSincePurchase)
				}
				out.Rows = append(out.Rows, []string{
					r.Customer, fmt.Sprint(r.PurchaseCount), last, days})
			}
			return out
		},
	})
}
