//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"fmt"

	"github.com/pgEdge/retail-reports/internal/datagen"
	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/seed"
	"github.com/pgEdge/retail-reports/internal/store"
)

// buildStore assembles the dataset every command runs against: random
// generation when --random is set, else a YAML seed file, else the
// built-in sample. --as-of pins the store clock.
func buildStore() (*store.Store, string, error) {
	var clock store.Clock = store.SystemClock{}
	if t := cfg.AsOfTime(); !t.IsZero() {
		clock = store.FixedClock{Time: t}
	}
	st := store.New(clock)

	switch {
	case randomData:
		if err := cfg.ValidateDatagen(); err != nil {
			return nil, "", err
		}
		gen := datagen.NewGenerator()
		if cfg.Datagen.Seed != 0 {
			gen = datagen.NewGeneratorWithSeed(cfg.Datagen.Seed)
		}
		sizes := datagen.Sizes{
			Locations: cfg.Datagen.Locations,
			Customers: cfg.Datagen.Customers,
			Products:  cfg.Datagen.Products,
			Sales:     cfg.Datagen.Sales,
		}
		if err := gen.Generate(st, sizes); err != nil {
			return nil, "", fmt.Errorf("failed to generate dataset: %w", err)
		}
		return st, "random", nil

	case cfg.SeedFile != "":
		ds, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, "", err
		}
		if err := ds.Apply(st); err != nil {
			return nil, "", fmt.Errorf("failed to load %s: %w", cfg.SeedFile, err)
		}
		logging.Debug().Str("file", cfg.SeedFile).Msg("Loaded seed file")
		return st, cfg.SeedFile, nil

	default:
		if err := seed.Builtin().Apply(st); err != nil {
			return nil, "", fmt.Errorf("failed to load built-in dataset: %w", err)
		}
		return st, "builtin", nil
	}
}
