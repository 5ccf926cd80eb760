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
	"sort"

	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/store"
)

// DefaultStockThreshold is the restock alert level used when the caller
// does not supply one.
const DefaultStockThreshold = 20

// LowStock lists products with stock below the threshold, ordered by
// remaining stock ascending.
func LowStock(s *store.Store, threshold int) []LowStockRow {
	var out []LowStockRow
	for _, p := range s.Products() {
		if p.StockQuantity >= threshold {
			continue
		}
		out = append(out, LowStockRow{
			Product:       p.Name,
			StockQuantity: p.StockQuantity,
			UnitPrice:     p.UnitPrice,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StockQuantity < out[j].StockQuantity
	})
	return out
}

// Inactivity lists every customer with purchase count, last purchase date,
// and days elapsed since it relative to the store clock. Ordered by last
// purchase descending; customers who never bought anything carry nil
// dates and sort after everyone else, in insertion order.
func Inactivity(s *store.Store) []InactivityRow {
	withSales := store.LeftJoin(s.Customers(), s.Sales(),
		func(c model.Customer) (int64, bool) { return c.ID, true },
		func(sl model.Sale) int64 { return sl.CustomerID })

	groups := make(map[int64]*InactivityRow)
	var order []int64
	for _, row := range withSales {
		id := row.Left.ID
		g, ok := groups[id]
		if !ok {
			g = &InactivityRow{Customer: row.Left.FullName()}
			groups[id] = g
			order = append(order, id)
		}
		if row.Right == nil {
			continue
		}
		g.PurchaseCount++
		d := row.Right.SaleDate
		if g.LastPurchase == nil || d.After(*g.LastPurchase) {
			last := d
			g.LastPurchase = &last
		}
	}

	today := s.Today()
	out := make([]InactivityRow, 0, len(order))
	for _, id := range order {
		g := groups[id]
		if g.LastPurchase != nil {
			days := int(today.Sub(*g.LastPurchase).Hours() / 24)
			g.DaysSincePurchase = &days
		}
		out = append(out, *g)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastPurchase, out[j].LastPurchase
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out
}
