//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package pgexport dumps an in-memory dataset into PostgreSQL. The DDL
// mirrors the in-memory constraints declaratively: CHECK for positive
// values, UNIQUE for the customer email, foreign keys for references, and
// a generated column for the sale total.
package pgexport

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
    category_id INTEGER PRIMARY KEY CHECK (category_id > 0),
    name        VARCHAR(100) NOT NULL,
    description TEXT
);

CREATE TABLE IF NOT EXISTS locations (
    location_id INTEGER PRIMARY KEY CHECK (location_id > 0),
    city        VARCHAR(100) NOT NULL,
    state       VARCHAR(50),
    region      VARCHAR(50)
);

CREATE TABLE IF NOT EXISTS customers (
    customer_id INTEGER PRIMARY KEY CHECK (customer_id > 0),
    first_name  VARCHAR(50) NOT NULL,
    last_name   VARCHAR(50) NOT NULL,
    email       VARCHAR(100) UNIQUE,
    location_id INTEGER REFERENCES locations(location_id),
    join_date   DATE NOT NULL DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS products (
    product_id     INTEGER PRIMARY KEY CHECK (product_id > 0),
    name           VARCHAR(100) NOT NULL,
    category_id    INTEGER REFERENCES categories(category_id),
    unit_price     NUMERIC(10,2) NOT NULL CHECK (unit_price > 0),
    stock_quantity INTEGER NOT NULL DEFAULT 0,
    active         BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS sales (
    sale_id      INTEGER PRIMARY KEY CHECK (sale_id > 0),
    customer_id  INTEGER NOT NULL REFERENCES customers(customer_id),
    product_id   INTEGER NOT NULL REFERENCES products(product_id),
    quantity     INTEGER NOT NULL CHECK (quantity > 0),
    sale_date    DATE NOT NULL DEFAULT CURRENT_DATE,
    unit_price   NUMERIC(10,2) NOT NULL CHECK (unit_price > 0),
    total_amount NUMERIC(12,2) GENERATED ALWAYS AS (quantity * unit_price) STORED
);

CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_id);
CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id);
CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_customers_location ON customers(location_id);
`

const dropSchemaSQL = `
DROP TABLE IF EXISTS sales CASCADE;
DROP TABLE IF EXISTS products CASCADE;
DROP TABLE IF EXISTS customers CASCADE;
DROP TABLE IF EXISTS locations CASCADE;
DROP TABLE IF EXISTS categories CASCADE;
`

// CreateSchema creates the retail schema.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, createSchemaSQL)
	return err
}

// DropSchema drops the retail schema.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, dropSchemaSQL)
	return err
}
