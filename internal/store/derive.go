//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import (
	"github.com/shopspring/decimal"

	"github.com/pgEdge/retail-reports/internal/model"
)

// deriveSaleTotal computes the sale's generated column. Decimal arithmetic
// keeps totals exact; 3 x 19.99 is 59.97, not a float approximation.
func deriveSaleTotal(s model.Sale) decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
