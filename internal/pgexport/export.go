//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package pgexport

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/store"
)

// Export copies every row of the store into PostgreSQL inside one
// transaction, tables in dependency order. The sale total is not sent:
// the generated column recomputes it, so a mismatch would surface as a
// constraint error rather than silent drift.
func Export(ctx context.Context, pool *pgxpool.Pool, st *store.Store) (int, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows := 0

	for _, c := range st.Categories() {
		_, err := tx.Exec(ctx, `
            INSERT INTO categories (category_id, name, description)
            VALUES ($1, $2, NULLIF($3, ''))
        `, c.ID, c.Name, c.Description)
		if err != nil {
			return 0, fmt.Errorf("failed to export category %d: %w", c.ID, err)
		}
		rows++
	}

	for _, l := range st.Locations() {
		_, err := tx.Exec(ctx, `
            INSERT INTO locations (location_id, city, state, region)
            VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
        `, l.ID, l.City, l.State, l.Region)
		if err != nil {
			return 0, fmt.Errorf("failed to export location %d: %w", l.ID, err)
		}
		rows++
	}

	for _, c := range st.Customers() {
		_, err := tx.Exec(ctx, `
            INSERT INTO customers (customer_id, first_name, last_name, email, location_id, join_date)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, c.ID, c.FirstName, c.LastName, c.Email, c.LocationID, c.JoinDate)
		if err != nil {
			return 0, fmt.Errorf("failed to export customer %d: %w", c.ID, err)
		}
		rows++
	}

	for _, p := range st.Products() {
		_, err := tx.Exec(ctx, `
            INSERT INTO products (product_id, name, category_id, unit_price, stock_quantity, active)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, p.ID, p.Name, p.CategoryID, p.UnitPrice, p.StockQuantity, p.IsActive())
		if err != nil {
			return 0, fmt.Errorf("failed to export product %d: %w", p.ID, err)
		}
		rows++
	}

	for _, s := range st.Sales() {
		_, err := tx.Exec(ctx, `
            INSERT INTO sales (sale_id, customer_id, product_id, quantity, sale_date, unit_price)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, s.ID, s.CustomerID, s.ProductID, s.Quantity, s.SaleDate, s.UnitPrice)
		if err != nil {
			return 0, fmt.Errorf("failed to export sale %d: %w", s.ID, err)
		}
		rows++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit export: %w", err)
	}

	logging.Info().Int("rows", rows).Msg("Exported dataset")
	return rows, nil
}
