//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/pkg/version"
)

const metadataTable = "retail_reports_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS retail_reports_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// SaveMetadata records which dataset was exported and when.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, dataset string, rowCount int) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	metadata := map[string]string{
		"dataset":     dataset,
		"version":     version.Short(),
		"exported_at": time.Now().UTC().Format(time.RFC3339),
		"row_count":   fmt.Sprint(rowCount),
	}

	for key, value := range metadata {
		_, err := pool.Exec(ctx, `
            INSERT INTO retail_reports_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("dataset", dataset).
		Int("row_count", rowCount).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM retail_reports_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
