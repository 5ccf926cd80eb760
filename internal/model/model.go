//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package model defines the retail dataset entities.
//
// Pointer fields are nullable: a nil foreign key means the row references
// nothing, a nil email means the customer has none. Date fields are stored
// normalized to midnight UTC; a zero date on insert means "use the store's
// clock". Derived fields are computed by the store and cannot be set by
// callers.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups products.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Location is a city a customer can live in.
type Location struct {
	ID    int64
	City  string
	State string
	// Region is the sales region used by the regional-sales report.
	Region string
}

// Customer is a buyer. Email is unique among non-nil values.
type Customer struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      *string
	LocationID *int64
	// JoinDate defaults to the store clock's current date when zero.
	JoinDate time.Time
}

// FullName returns "First Last" for report grouping.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Product is an item for sale. UnitPrice is the current list price;
// sales capture their own price at sale time.
type Product struct {
	ID            int64
	Name          string
	CategoryID    *int64
	UnitPrice     decimal.Decimal
	StockQuantity int
	// Active defaults to true when nil. The store normalizes it to
	// non-nil on insert.
	Active *bool
}

// IsActive reports whether the product is active, treating an unset flag
// as active.
func (p Product) IsActive() bool {
	return p.Active == nil || *p.Active
}

// Sale is one purchase of a product by a customer.
type Sale struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
	// SaleDate defaults to the store clock's current date when zero.
	SaleDate time.Time
	// UnitPrice is the price captured at sale time, independent of the
	// product's current price.
	UnitPrice decimal.Decimal
	// TotalAmount is always Quantity x UnitPrice. The store recomputes it
	// on insert; any caller-supplied value is discarded.
	TotalAmount decimal.Decimal
}

// DateOf truncates a timestamp to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ptr returns a pointer to v, for filling nullable fields in literals.
func Ptr[T any](v T) *T {
	return &v
}
