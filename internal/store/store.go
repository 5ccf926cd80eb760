//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package store holds the in-memory tables. One ordered sequence of rows
// per entity, keyed by id, insertion order preserved for deterministic
// iteration. Inserts validate against the schema registry, apply defaults
// from the injected clock, derive computed columns, and either append the
// whole row or leave the store untouched. A single RWMutex keeps scans
// from observing a partial insert.
package store

import (
	"sync"
	"time"

	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/schema"
)

// table is an ordered row sequence with an id index.
type table[T any] struct {
	rows []T
	byID map[int64]int
}

func newTable[T any]() table[T] {
	return table[T]{byID: make(map[int64]int)}
}

func (t *table[T]) has(id int64) bool {
	_, ok := t.byID[id]
	return ok
}

func (t *table[T]) get(id int64) (T, bool) {
	i, ok := t.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

func (t *table[T]) append(id int64, row T) {
	t.byID[id] = len(t.rows)
	t.rows = append(t.rows, row)
}

// snapshot returns a copy of the rows; callers can iterate freely without
// holding the store lock.
func (t *table[T]) snapshot() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Store is the in-memory table store for the five retail entities.
type Store struct {
	mu    sync.RWMutex
	clock Clock

	categories table[model.Category]
	locations  table[model.Location]
	customers  table[model.Customer]
	products   table[model.Product]
	sales      table[model.Sale]
}

// New creates an empty store using the given clock for date defaults.
func New(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{
		clock:      clock,
		categories: newTable[model.Category](),
		locations:  newTable[model.Location](),
		customers:  newTable[model.Customer](),
		products:   newTable[model.Product](),
		sales:      newTable[model.Sale](),
	}
}

// today returns the clock's current calendar date.
func (s *Store) today() time.Time {
	return model.DateOf(s.clock.Now())
}

// refView adapts the store to schema.RefLookup. It is only used while the
// write lock is held, so it reads the tables directly.
type refView struct {
	s *Store
}

func (r refView) HasCategory(id int64) bool { return r.s.categories.has(id) }
func (r refView) HasLocation(id int64) bool { return r.s.locations.has(id) }
func (r refView) HasCustomer(id int64) bool { return r.s.customers.has(id) }
func (r refView) HasProduct(id int64) bool  { return r.s.products.has(id) }

func (r refView) EmailTaken(email string) bool {
	for _, c := range r.s.customers.rows {
		if c.Email != nil && *c.Email == email {
			return true
		}
	}
	return false
}

// InsertCategory validates and appends a category row.
func (s *Store) InsertCategory(c model.Category) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := schema.ValidateCategory(c); v != nil {
		return 0, v
	}
	if s.categories.has(c.ID) {
		return 0, &schema.Violation{Entity: schema.Categories, Field: "id", Rule: schema.RuleUnique}
	}
	s.categories.append(c.ID, c)
	return c.ID, nil
}

// InsertLocation validates and appends a location row.
func (s *Store) InsertLocation(l model.Location) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := schema.ValidateLocation(l); v != nil {
		return 0, v
	}
	if s.locations.has(l.ID) {
		return 0, &schema.Violation{Entity: schema.Locations, Field: "id", Rule: schema.RuleUnique}
	}
	s.locations.append(l.ID, l)
	return l.ID, nil
}

// InsertCustomer validates a customer row, defaults the join date to the
// clock's current date, and appends it.
func (s *Store) InsertCustomer(c model.Customer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := schema.ValidateCustomer(c, refView{s}); v != nil {
		return 0, v
	}
	if s.customers.has(c.ID) {
		return 0, &schema.Violation{Entity: schema.Customers, Field: "id", Rule: schema.RuleUnique}
	}
	if c.JoinDate.IsZero() {
		c.JoinDate = s.today()
	} else {
		c.JoinDate = model.DateOf(c.JoinDate)
	}
	s.customers.append(c.ID, c)
	return c.ID, nil
}

// InsertProduct validates a product row, defaults the active flag to true,
// and appends it.
func (s *Store) InsertProduct(p model.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := schema.ValidateProduct(p, refView{s}); v != nil {
		return 0, v
	}
	if s.products.has(p.ID) {
		return 0, &schema.Violation{Entity: schema.Products, Field: "id", Rule: schema.RuleUnique}
	}
	if p.Active == nil {
		p.Active = model.Ptr(true)
	}
	s.products.append(p.ID, p)
	return p.ID, nil
}

// InsertSale validates a sale row, defaults the sale date to the clock's
// current date, derives the total amount, and appends it. Everything
// happens on the candidate copy, so a rejected row leaves no trace.
func (s *Store) InsertSale(sale model.Sale) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v := schema.ValidateSale(sale, refView{s}); v != nil {
		return 0, v
	}
	if s.sales.has(sale.ID) {
		return 0, &schema.Violation{Entity: schema.Sales, Field: "id", Rule: schema.RuleUnique}
	}
	if sale.SaleDate.IsZero() {
		sale.SaleDate = s.today()
	} else {
		sale.SaleDate = model.DateOf(sale.SaleDate)
	}
	sale.TotalAmount = deriveSaleTotal(sale)
	s.sales.append(sale.ID, sale)
	return sale.ID, nil
}

// GetCategory returns the category with the given id.
func (s *Store) GetCategory(id int64) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.get(id)
}

// GetLocation returns the location with the given id.
func (s *Store) GetLocation(id int64) (model.Location, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locations.get(id)
}

// GetCustomer returns the customer with the given id.
func (s *Store) GetCustomer(id int64) (model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.get(id)
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id int64) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.get(id)
}

// GetSale returns the sale with the given id.
func (s *Store) GetSale(id int64) (model.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sales.get(id)
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories.snapshot()
}

// Locations returns all locations in insertion order.
func (s *Store) Locations() []model.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locations.snapshot()
}

// Customers returns all customers in insertion order.
func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.snapshot()
}

// Products returns all products in insertion order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.snapshot()
}

// Sales returns all sales in insertion order.
func (s *Store) Sales() []model.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sales.snapshot()
}

// Counts returns the row count per entity.
func (s *Store) Counts() map[schema.Entity]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[schema.Entity]int{
		schema.Categories: len(s.categories.rows),
		schema.Locations:  len(s.locations.rows),
		schema.Customers:  len(s.customers.rows),
		schema.Products:   len(s.products.rows),
		schema.Sales:      len(s.sales.rows),
	}
}

// Today exposes the clock's current date for report pipelines that need
// "now" (customer inactivity).
func (s *Store) Today() time.Time {
	return s.today()
}
