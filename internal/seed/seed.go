//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package seed loads datasets into the store, either the built-in sample
// or a YAML file. Rows go through the store's public insert API in
// dependency order, so seed files get the same validation as any other
// caller.
package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/store"
)

// Dataset is the YAML shape of a seed file. Prices are strings so they
// parse through decimal rather than float64; dates are "2006-01-02".
type Dataset struct {
	Categories []CategoryRecord `yaml:"categories"`
	Locations  []LocationRecord `yaml:"locations"`
	Customers  []CustomerRecord `yaml:"customers"`
	Products   []ProductRecord  `yaml:"products"`
	Sales      []SaleRecord     `yaml:"sales"`
}

// CategoryRecord is one seed category.
type CategoryRecord struct {
	ID          int64  `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// LocationRecord is one seed location.
type LocationRecord struct {
	ID     int64  `yaml:"id"`
	City   string `yaml:"city"`
	State  string `yaml:"state"`
	Region string `yaml:"region"`
}

// CustomerRecord is one seed customer.
type CustomerRecord struct {
	ID         int64   `yaml:"id"`
	FirstName  string  `yaml:"first_name"`
	LastName   string  `yaml:"last_name"`
	Email      *string `yaml:"email"`
	LocationID *int64  `yaml:"location_id"`
	JoinDate   string  `yaml:"join_date"`
}

// ProductRecord is one seed product.
type ProductRecord struct {
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	CategoryID    *int64 `yaml:"category_id"`
	UnitPrice     string `yaml:"unit_price"`
	StockQuantity int    `yaml:"stock_quantity"`
	Active        *bool  `yaml:"active"`
}

// SaleRecord is one seed sale. No total_amount field: the store derives it.
type SaleRecord struct {
	ID         int64  `yaml:"id"`
	CustomerID int64  `yaml:"customer_id"`
	ProductID  int64  `yaml:"product_id"`
	Quantity   int    `yaml:"quantity"`
	SaleDate   string `yaml:"sale_date"`
	UnitPrice  string `yaml:"unit_price"`
}

// Load parses a YAML seed file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &ds, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Apply inserts the dataset into the store in dependency order. The first
// rejected row aborts the load.
func (ds *Dataset) Apply(st *store.Store) error {
	for _, r := range ds.Categories {
		_, err := st.InsertCategory(model.Category{
			ID: r.ID, Name: r.Name, Description: r.Description,
		})
		if err != nil {
			return fmt.Errorf("category %d: %w", r.ID, err)
		}
	}
	for _, r := range ds.Locations {
		_, err := st.InsertLocation(model.Location{
			ID: r.ID, City: r.City, State: r.State, Region: r.Region,
		})
		if err != nil {
			return fmt.Errorf("location %d: %w", r.ID, err)
		}
	}
	for _, r := range ds.Customers {
		joined, err := parseDate(r.JoinDate)
		if err != nil {
			return fmt.Errorf("customer %d: %w", r.ID, err)
		}
		_, err = st.InsertCustomer(model.Customer{
			ID: r.ID, FirstName: r.FirstName, LastName: r.LastName,
			Email: r.Email, LocationID: r.LocationID, JoinDate: joined,
		})
		if err != nil {
			return fmt.Errorf("customer %d: %w", r.ID, err)
		}
	}
	for _, r := range ds.Products {
		price, err := parsePrice(r.UnitPrice)
		if err != nil {
			return fmt.Errorf("product %d: %w", r.ID, err)
		}
		_, err = st.InsertProduct(model.Product{
			ID: r.ID, Name: r.Name, CategoryID: r.CategoryID,
			UnitPrice: price, StockQuantity: r.StockQuantity, Active: r.Active,
		})
		if err != nil {
			return fmt.Errorf("product %d: %w", r.ID, err)
		}
	}
	for _, r := range ds.Sales {
		date, err := parseDate(r.SaleDate)
		if err != nil {
			return fmt.Errorf("sale %d: %w", r.ID, err)
		}
		price, err := parsePrice(r.UnitPrice)
		if err != nil {
			return fmt.Errorf("sale %d: %w", r.ID, err)
		}
		_, err = st.InsertSale(model.Sale{
			ID: r.ID, CustomerID: r.CustomerID, ProductID: r.ProductID,
			Quantity: r.Quantity, SaleDate: date, UnitPrice: price,
		})
		if err != nil {
			return fmt.Errorf("sale %d: %w", r.ID, err)
		}
	}
	return nil
}
