//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package reports executes the fixed aggregation pipelines over a store
// snapshot. Each report is a pure read: join, group, aggregate, sort.
// Ordering ties are broken by store insertion order, which every pipeline
// gets for free by collecting groups in first-seen order and sorting with
// sort.SliceStable.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/store"
)

func saleProduct(s *store.Store) []store.Pair[model.Sale, model.Product] {
	return store.HashJoin(s.Sales(), s.Products(),
		func(sl model.Sale) (int64, bool) { return sl.ProductID, true },
		func(p model.Product) int64 { return p.ID })
}

// CategoryRevenue aggregates sales revenue per category, ordered by
// revenue descending. Products without a category and categories without
// sales do not appear (inner joins throughout).
func CategoryRevenue(s *store.Store) []CategoryRevenueRow {
	withCategory := store.HashJoin(saleProduct(s), s.Categories(),
		func(sp store.Pair[model.Sale, model.Product]) (int64, bool) {
			if sp.Right.CategoryID == nil {
				return 0, false
			}
			return *sp.Right.CategoryID, true
		},
		func(c model.Category) int64 { return c.ID })

	groups := make(map[string]*CategoryRevenueRow)
	var order []string
	for _, row := range withCategory {
		name := row.Right.Name
		g, ok := groups[name]
		if !ok {
			g = &CategoryRevenueRow{Category: name}
			groups[name] = g
			order = append(order, name)
		}
		g.TotalSales++
		g.TotalRevenue = g.TotalRevenue.Add(row.Left.Left.TotalAmount)
	}

	out := make([]CategoryRevenueRow, 0, len(order))
	for _, name := range order {
		out = append(out, *groups[name])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	return out
}

// PurchaseHistory aggregates per-customer purchase counts and spend,
// ordered by total spent descending. Customers need a location (inner
// join) but not sales (left join): a customer with no purchases shows a
// zero count and a zero total and sorts after every spender.
func PurchaseHistory(s *store.Store) []PurchaseHistoryRow {
	located := store.HashJoin(s.Customers(), s.Locations(),
		func(c model.Customer) (int64, bool) {
			if c.LocationID == nil {
				return 0, false
			}
			return *c.LocationID, true
		},
		func(l model.Location) int64 { return l.ID })

	withSales := store.LeftJoin(located, s.Sales(),
		func(cl store.Pair[model.Customer, model.Location]) (int64, bool) {
			return cl.Left.ID, true
		},
		func(sl model.Sale) int64 { return sl.CustomerID })

	groups := make(map[int64]*PurchaseHistoryRow)
	var order []int64
	for _, row := range withSales {
		id := row.Left.Left.ID
		g, ok := groups[id]
		if !ok {
			g = &PurchaseHistoryRow{
				Customer: row.Left.Left.FullName(),
				City:     row.Left.Right.City,
			}
			groups[id] = g
			order = append(order, id)
		}
		if row.Right != nil {
			g.PurchaseCount++
			g.TotalSpent = g.TotalSpent.Add(row.Right.TotalAmount)
		}
	}

	out := make([]PurchaseHistoryRow, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent.GreaterThan(out[j].TotalSpent)
	})
	return out
}

// ProductPerformance aggregates units sold and revenue per product,
// ordered by units sold descending. Only categorized products with at
// least one sale appear.
func ProductPerformance(s *store.Store) []ProductPerformanceRow {
	categorized := store.HashJoin(s.Products(), s.Categories(),
		func(p model.Product) (int64, bool) {
			if p.CategoryID == nil {
				return 0, false
			}
			return *p.CategoryID, true
		},
		func(c model.Category) int64 { return c.ID })

	sold := store.HashJoin(categorized, s.Sales(),
		func(pc store.Pair[model.Product, model.Category]) (int64, bool) {
			return pc.Left.ID, true
		},
		func(sl model.Sale) int64 { return sl.ProductID })

	groups := make(map[int64]*ProductPerformanceRow)
	var order []int64
	for _, row := range sold {
		id := row.Left.Left.ID
		g, ok := groups[id]
		if !ok {
			g = &ProductPerformanceRow{
				Product:  row.Left.Left.Name,
				Category: row.Left.Right.Name,
			}
			groups[id] = g
			order = append(order, id)
		}
		g.UnitsSold += int64(row.Right.Quantity)
		g.TotalRevenue = g.TotalRevenue.Add(row.Right.TotalAmount)
	}

	out := make([]ProductPerformanceRow, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UnitsSold > out[j].UnitsSold
	})
	return out
}

// RegionalSales aggregates sales per location region, ordered by revenue
// descending. The average is rounded to cents.
func RegionalSales(s *store.Store) []RegionalSalesRow {
	located := store.HashJoin(s.Customers(), s.Locations(),
		func(c model.Customer) (int64, bool) {
			if c.LocationID == nil {
				return 0, false
			}
			return *c.LocationID, true
		},
		func(l model.Location) int64 { return l.ID })

	withSales := store.HashJoin(s.Sales(), located,
		func(sl model.Sale) (int64, bool) { return sl.CustomerID, true },
		func(cl store.Pair[model.Customer, model.Location]) int64 {
			return cl.Left.ID
		})

	groups := make(map[string]*RegionalSalesRow)
	var order []string
	for _, row := range withSales {
		region := row.Right.Right.Region
		g, ok := groups[region]
		if !ok {
			g = &RegionalSalesRow{Region: region}
			groups[region] = g
			order = append(order, region)
		}
		g.TotalSales++
		g.TotalRevenue = g.TotalRevenue.Add(row.Left.TotalAmount)
	}

	out := make([]RegionalSalesRow, 0, len(order))
	for _, region := range order {
		g := groups[region]
		g.AvgSale = g.TotalRevenue.DivRound(decimal.NewFromInt(g.TotalSales), 2)
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
	})
	return out
}

// DailyTrend aggregates sale counts and revenue per calendar date, ordered
// by date ascending. No join: sales group directly on their own date.
func DailyTrend(s *store.Store) []DailyTrendRow {
	groups := make(map[string]*DailyTrendRow)
	var order []string
	for _, sl := range s.Sales() {
		key := sl.SaleDate.Format("2006-01-02")
		g, ok := groups[key]
		if !ok {
			g = &DailyTrendRow{Date: sl.SaleDate}
			groups[key] = g
			order = append(order, key)
		}
		g.TotalSales++
		g.TotalRevenue = g.TotalRevenue.Add(sl.TotalAmount)
	}

	out := make([]DailyTrendRow, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
