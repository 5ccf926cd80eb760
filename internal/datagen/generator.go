//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/model"
	"github.com/pgEdge/retail-reports/internal/store"
)

// Sizes controls how many rows the generator inserts per entity.
type Sizes struct {
	Locations int
	Customers int
	Products  int
	Sales     int
}

// DefaultSizes returns a small but non-trivial dataset.
func DefaultSizes() Sizes {
	return Sizes{
		Locations: 10,
		Customers: 50,
		Products:  40,
		Sales:     200,
	}
}

// Generator fills a store with random but constraint-valid retail data.
// The same seed always produces the same dataset.
type Generator struct {
	faker *Faker
}

// NewGenerator creates a generator with a random seed.
func NewGenerator() *Generator {
	return &Generator{faker: NewFaker()}
}

// NewGeneratorWithSeed creates a reproducible generator.
func NewGeneratorWithSeed(seed uint64) *Generator {
	return &Generator{faker: NewFakerWithSeed(seed)}
}

var categoryNames = []string{
	"Electronics", "Clothing", "Books", "Home & Kitchen",
	"Sports & Outdoors", "Toys", "Garden", "Grocery",
}

var regions = []string{"Northeast", "Southeast", "Midwest", "South", "West"}

// Generate inserts the requested number of rows through the store's
// public insert API. Every generated row satisfies the schema
// constraints, so any insert failure is a bug worth surfacing.
func (g *Generator) Generate(st *store.Store, sizes Sizes) error {
	start := time.Now()

	for i, name := range categoryNames {
		_, err := st.InsertCategory(model.Category{
			ID:          int64(i + 1),
			Name:        name,
			Description: g.faker.Sentence(6),
		})
		if err != nil {
			return fmt.Errorf("generate category: %w", err)
		}
	}

	for i := 0; i < sizes.Locations; i++ {
		_, err := st.InsertLocation(model.Location{
			ID:     int64(i + 1),
			City:   g.faker.City(),
			State:  g.faker.State(),
			Region: Choose(g.faker, regions),
		})
		if err != nil {
			return fmt.Errorf("generate location: %w", err)
		}
	}

	joinStart := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	joinEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	for i := 0; i < sizes.Customers; i++ {
		id := int64(i + 1)
		c := model.Customer{
			ID:        id,
			FirstName: g.faker.FirstName(),
			LastName:  g.faker.LastName(),
			JoinDate:  g.faker.DateRange(joinStart, joinEnd),
		}
		// Unique by construction; gofakeit alone can repeat addresses.
		c.Email = model.Ptr(fmt.Sprintf("%d.%s", id, g.faker.Email()))
		if sizes.Locations > 0 && g.faker.Int(1, 10) > 1 {
			c.LocationID = model.Ptr(int64(g.faker.Int(1, sizes.Locations)))
		}
		if _, err := st.InsertCustomer(c); err != nil {
			return fmt.Errorf("generate customer: %w", err)
		}
	}

	for i := 0; i < sizes.Products; i++ {
		p := model.Product{
			ID:            int64(i + 1),
			Name:          g.faker.ProductName(),
			CategoryID:    model.Ptr(int64(g.faker.Int(1, len(categoryNames)))),
			UnitPrice:     decimal.NewFromFloat(g.faker.Price(1, 1500)).Round(2),
			StockQuantity: g.faker.Int(0, 250),
		}
		if g.faker.Int(1, 20) == 1 {
			p.Active = model.Ptr(false)
		}
		if _, err := st.InsertProduct(p); err != nil {
			return fmt.Errorf("generate product: %w", err)
		}
	}

	saleStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < sizes.Sales; i++ {
		if sizes.Customers == 0 || sizes.Products == 0 {
			break
		}
		productID := int64(g.faker.Int(1, sizes.Products))
		product, _ := st.GetProduct(productID)
		_, err := st.InsertSale(model.Sale{
			ID:         int64(i + 1),
			CustomerID: int64(g.faker.Int(1, sizes.Customers)),
			ProductID:  productID,
			Quantity:   g.faker.Int(1, 5),
			SaleDate:   g.faker.DateRange(saleStart, saleEnd),
			UnitPrice:  product.UnitPrice,
		})
		if err != nil {
			return fmt.Errorf("generate sale: %w", err)
		}
	}

	logging.Debug().
		Int("customers", sizes.Customers).
		Int("products", sizes.Products).
		Int("sales", sizes.Sales).
		Dur("elapsed", time.Since(start)).
		Msg("Generated random dataset")

	return nil
}
