//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package store

import "time"

// Clock supplies the current time for date defaults. The store never reads
// time.Now directly so tests can pin dates.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}
