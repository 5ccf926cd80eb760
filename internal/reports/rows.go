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
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRevenueRow is one group of the category-revenue report.
type CategoryRevenueRow struct {
	Category     string
	TotalSales   int64
	TotalRevenue decimal.Decimal
}

// PurchaseHistoryRow is one group of the purchase-history report. Customers
// without sales appear with a zero count and a zero total, never absent.
type PurchaseHistoryRow struct {
	Customer      string
	City          string
	PurchaseCount int64
	TotalSpent    decimal.Decimal
}

// ProductPerformanceRow is one group of the product-performance report.
type ProductPerformanceRow struct {
	Product      string
	Category     string
	UnitsSold    int64
	TotalRevenue decimal.Decimal
}

// RegionalSalesRow is one group of the regional-sales report.
type RegionalSalesRow struct {
	Region       string
	TotalSales   int64
	TotalRevenue decimal.Decimal
	AvgSale      decimal.Decimal
}

// DailyTrendRow is one group of the daily-trend report.
type DailyTrendRow struct {
	Date         time.Time
	TotalSales   int64
	TotalRevenue decimal.Decimal
}

// LowStockRow is one row of the low-stock monitoring query.
type LowStockRow struct {
	Product       string
	StockQuantity int
	UnitPrice     decimal.Decimal
}

// InactivityRow is one row of the customer-inactivity monitoring query.
// LastPurchase and DaysSincePurchase are nil for customers who never
// bought anything; those customers sort after everyone else.
type InactivityRow struct {
	Customer          string
	PurchaseCount     int64
	LastPurchase      *time.Time
	DaysSincePurchase *int
}
