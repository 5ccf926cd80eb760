//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package schema is the registry of entity shapes and insert-time
// constraints. Validation is pure: referential and uniqueness checks read
// the current table contents through a RefLookup view supplied by the
// store, and a nil result means the candidate row may be appended as-is.
package schema

import (
	"github.com/pgEdge/retail-reports/internal/model"
)

// Entity names one of the five tables.
type Entity string

const (
	Categories Entity = "categories"
	Locations  Entity = "locations"
	Customers  Entity = "customers"
	Products   Entity = "products"
	Sales      Entity = "sales"
)

// Entities lists all entities in dependency order: every foreign key
// target precedes its referrers.
func Entities() []Entity {
	return []Entity{Categories, Locations, Customers, Products, Sales}
}

// FieldType is the semantic type of a field.
type FieldType string

const (
	TypeID      FieldType = "id"
	TypeText    FieldType = "text"
	TypeDecimal FieldType = "decimal"
	TypeInt     FieldType = "int"
	TypeBool    FieldType = "bool"
	TypeDate    FieldType = "date"
)

// FieldDef describes one field of an entity for introspection. Derived
// fields are computed by the store and rejected as direct input.
type FieldDef struct {
	Name     string
	Type     FieldType
	Required bool
	// Default describes the value applied when the field is absent
	// ("" when the field has no default).
	Default string
	// References names the entity a foreign key points at.
	References Entity
	Unique     bool
	Derived    bool
}

var fieldDefs = map[Entity][]FieldDef{
	Categories: {
		{Name: "id", Type: TypeID, Required: true},
		{Name: "name", Type: TypeText, Required: true},
		{Name: "description", Type: TypeText},
	},
	Locations: {
		{Name: "id", Type: TypeID, Required: true},
		{Name: "city", Type: TypeText, Required: true},
		{Name: "state", Type: TypeText},
		{Name: "region", Type: TypeText},
	},
	Customers: {
		{Name: "id", Type: TypeID, Required: true},
		{Name: "first_name", Type: TypeText, Required: true},
		{Name: "last_name", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Unique: true},
		{Name: "location_id", Type: TypeID, References: Locations},
		{Name: "join_date", Type: TypeDate, Default: "current date"},
	},
	Products: {
		{Name: "id", Type: TypeID, Required: true},
		{Name: "name", Type: TypeText, Required: true},
		{Name: "category_id", Type: TypeID, References: Categories},
		{Name: "unit_price", Type: TypeDecimal, Required: true},
		{Name: "stock_quantity", Type: TypeInt, Default: "0"},
		{Name: "active", Type: TypeBool, Default: "true"},
	},
	Sales: {
		{Name: "id", Type: TypeID, Required: true},
		{Name: "customer_id", Type: TypeID, Required: true, References: Customers},
		{Name: "product_id", Type: TypeID, Required: true, References: Products},
		{Name: "quantity", Type: TypeInt, Required: true},
		{Name: "sale_date", Type: TypeDate, Default: "current date"},
		{Name: "unit_price", Type: TypeDecimal, Required: true},
		{Name: "total_amount", Type: TypeDecimal, Derived: true},
	},
}

// Fields returns the field definitions for an entity, nil for an unknown
// entity.
func Fields(entity Entity) []FieldDef {
	return fieldDefs[entity]
}

// RefLookup is the store view validation needs for foreign-key and
// uniqueness checks.
type RefLookup interface {
	HasCategory(id int64) bool
	HasLocation(id int64) bool
	HasCustomer(id int64) bool
	HasProduct(id int64) bool
	EmailTaken(email string) bool
}

// ValidateCategory checks a candidate category row.
func ValidateCategory(c model.Category) *Violation {
	if c.ID <= 0 {
		return violation(Categories, "id", RulePositive)
	}
	if c.Name == "" {
		return violation(Categories, "name", RuleRequired)
	}
	return nil
}

// ValidateLocation checks a candidate location row.
func ValidateLocation(l model.Location) *Violation {
	if l.ID <= 0 {
		return violation(Locations, "id", RulePositive)
	}
	if l.City == "" {
		return violation(Locations, "city", RuleRequired)
	}
	return nil
}

// ValidateCustomer checks a candidate customer row against the current
// table contents.
func ValidateCustomer(c model.Customer, refs RefLookup) *Violation {
	if c.ID <= 0 {
		return violation(Customers, "id", RulePositive)
	}
	if c.FirstName == "" {
		return violation(Customers, "first_name", RuleRequired)
	}
	if c.LastName == "" {
		return violation(Customers, "last_name", RuleRequired)
	}
	if c.Email != nil && refs.EmailTaken(*c.Email) {
		return violation(Customers, "email", RuleUnique)
	}
	if c.LocationID != nil && !refs.HasLocation(*c.LocationID) {
		return violation(Customers, "location_id", RuleForeignKey)
	}
	return nil
}

// ValidateProduct checks a candidate product row against the current
// table contents.
func ValidateProduct(p model.Product, refs RefLookup) *Violation {
	if p.ID <= 0 {
		return violation(Products, "id", RulePositive)
	}
	if p.Name == "" {
		return violation(Products, "name", RuleRequired)
	}
	if !p.UnitPrice.IsPositive() {
		return violation(Products, "unit_price", RulePositive)
	}
	if p.CategoryID != nil && !refs.HasCategory(*p.CategoryID) {
		return violation(Products, "category_id", RuleForeignKey)
	}
	return nil
}

// ValidateSale checks a candidate sale row against the current table
// contents. TotalAmount is not checked here; the store derives it after
// validation passes.
func ValidateSale(s model.Sale, refs RefLookup) *Violation {
	if s.ID <= 0 {
		return violation(Sales, "id", RulePositive)
	}
	if s.Quantity <= 0 {
		return violation(Sales, "quantity", RulePositive)
	}
	if !s.UnitPrice.IsPositive() {
		return violation(Sales, "unit_price", RulePositive)
	}
	if !refs.HasCustomer(s.CustomerID) {
		return violation(Sales, "customer_id", RuleForeignKey)
	}
	if !refs.HasProduct(s.ProductID) {
		return violation(Sales, "product_id", RuleForeignKey)
	}
	return nil
}
