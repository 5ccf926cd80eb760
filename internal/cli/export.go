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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/retail-reports/internal/db"
	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/pgexport"
)

var (
	exportConnection   string
	exportDropExisting bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset to a PostgreSQL database",
	Long: `Create the retail schema in PostgreSQL and copy the loaded dataset
into it. The database schema carries the same constraints the in-memory
store enforces, including the generated sale total.

Example:
  retail-reports export --connection "postgres://localhost/retail"`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportConnection, "connection", "",
		"PostgreSQL connection string")
	exportCmd.Flags().BoolVar(&exportDropExisting, "drop-existing", false,
		"drop the existing schema before exporting")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportConnection != "" {
		cfg.Export.Connection = exportConnection
	}
	if exportDropExisting {
		cfg.Export.DropExisting = true
	}
	if err := cfg.ValidateExport(); err != nil {
		return err
	}

	st, source, err := buildStore()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Export.Connection)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Export.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := pgexport.DropSchema(ctx, pool); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating schema")
	if err := pgexport.CreateSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	rows, err := pgexport.Export(ctx, pool, st)
	if err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}

	if err := db.SaveMetadata(ctx, pool, source, rows); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}

	logging.Info().
		Str("dataset", source).
		Int("rows", rows).
		Msg("Export complete")

	return nil
}
