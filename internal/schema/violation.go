//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package schema

import "fmt"

// Rule names a constraint that an insert can violate.
type Rule string

const (
	// RuleRequired rejects a missing required field.
	RuleRequired Rule = "required"

	// RulePositive rejects a value that must be strictly positive.
	RulePositive Rule = "positive"

	// RuleForeignKey rejects a reference to a row that does not exist.
	RuleForeignKey Rule = "foreign_key"

	// RuleUnique rejects a duplicate value in a unique field.
	RuleUnique Rule = "unique"
)

// Violation describes why a candidate row was rejected. It satisfies error
// and is the only error type insert validation produces.
type Violation struct {
	Entity Entity
	Field  string
	Rule   Rule
}

func (v *Violation) Error() string {
	switch v.Rule {
	case RuleRequired:
		return fmt.Sprintf("%s.%s is required", v.Entity, v.Field)
	case RulePositive:
		return fmt.Sprintf("%s.%s must be greater than zero", v.Entity, v.Field)
	case RuleForeignKey:
		return fmt.Sprintf("%s.%s references a missing row", v.Entity, v.Field)
	case RuleUnique:
		return fmt.Sprintf("%s.%s conflicts with an existing row", v.Entity, v.Field)
	}
	return fmt.Sprintf("%s.%s violates %s", v.Entity, v.Field, v.Rule)
}

func violation(entity Entity, field string, rule Rule) *Violation {
	return &Violation{Entity: entity, Field: field, Rule: rule}
}
