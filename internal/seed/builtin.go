//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package seed

import "github.com/pgEdge/retail-reports/internal/model"

// Builtin returns the built-in sample dataset: four categories, four
// locations, four customers, four products, and four sales (one per
// customer and product).
func Builtin() *Dataset {
	return &Dataset{
		Categories: []CategoryRecord{
			{ID: 1, Name: "Electronics", Description: "Phones, laptops and accessories"},
			{ID: 2, Name: "Clothing", Description: "Apparel and footwear"},
			{ID: 3, Name: "Books", Description: "Print and audio books"},
			{ID: 4, Name: "Home & Kitchen", Description: "Appliances and cookware"},
		},
		Locations: []LocationRecord{
			{ID: 1, City: "New York", State: "NY", Region: "Northeast"},
			{ID: 2, City: "Los Angeles", State: "CA", Region: "West"},
			{ID: 3, City: "Chicago", State: "IL", Region: "Midwest"},
			{ID: 4, City: "Houston", State: "TX", Region: "South"},
		},
		Customers: []CustomerRecord{
			{ID: 1, FirstName: "John", LastName: "Smith",
				Email: model.Ptr("john.smith@example.com"), LocationID: model.Ptr(int64(1)),
				JoinDate: "2024-01-01"},
			{ID: 2, FirstName: "Jane", LastName: "Doe",
				Email: model.Ptr("jane.doe@example.com"), LocationID: model.Ptr(int64(2)),
				JoinDate: "2024-01-01"},
			{ID: 3, FirstName: "Bob", LastName: "Johnson",
				Email: model.Ptr("bob.johnson@example.com"), LocationID: model.Ptr(int64(3)),
				JoinDate: "2024-01-01"},
			{ID: 4, FirstName: "Alice", LastName: "Williams",
				Email: model.Ptr("alice.williams@example.com"), LocationID: model.Ptr(int64(4)),
				JoinDate: "2024-01-01"},
		},
		Products: []ProductRecord{
			{ID: 1, Name: "Smartphone", CategoryID: model.Ptr(int64(1)),
				UnitPrice: "699.99", StockQuantity: 50},
			{ID: 2, Name: "T-Shirt", CategoryID: model.Ptr(int64(2)),
				UnitPrice: "19.99", StockQuantity: 200},
			{ID: 3, Name: "Novel", CategoryID: model.Ptr(int64(3)),
				UnitPrice: "14.99", StockQuantity: 80},
			{ID: 4, Name: "Coffee Maker", CategoryID: model.Ptr(int64(4)),
				UnitPrice: "89.99", StockQuantity: 30},
		},
		Sales: []SaleRecord{
			{ID: 1, CustomerID: 1, ProductID: 1, Quantity: 1,
				SaleDate: "2024-01-15", UnitPrice: "699.99"},
			{ID: 2, CustomerID: 2, ProductID: 2, Quantity: 3,
				SaleDate: "2024-01-16", UnitPrice: "19.99"},
			{ID: 3, CustomerID: 3, ProductID: 3, Quantity: 2,
				SaleDate: "2024-01-16", UnitPrice: "14.99"},
			{ID: 4, CustomerID: 4, ProductID: 4, Quantity: 1,
				SaleDate: "2024-01-16", UnitPrice: "89.99"},
		},
	}
}
