//-------------------------------------------------------------------------
//
// pgEdge Retail Reports
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package cli implements the command-line interface for retail-reports.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgEdge/retail-reports/internal/config"
	"github.com/pgEdge/retail-reports/internal/logging"
	"github.com/pgEdge/retail-reports/internal/reports"
	"github.com/pgEdge/retail-reports/internal/schema"
	"github.com/pgEdge/retail-reports/pkg/version"
)

var (
	// Global flags
	cfgFile    string
	seedFile   string
	randomData bool
	asOf       string
	logLevel   string

	// Global config
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "retail-reports",
		Short: "In-memory retail analytics engine with fixed reports",
		Long: `retail-reports holds a small retail dataset (categories, locations,
customers, products, sales) in an in-memory, constraint-checked table
store and produces a fixed set of analytical reports and monitoring
queries over it.

Datasets come from the built-in sample, a YAML seed file, or a seeded
random generator; the dataset can also be exported to PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./retail-reports.yaml)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed-file", "",
		"YAML dataset file (default: built-in sample)")
	rootCmd.PersistentFlags().BoolVar(&randomData, "random", false,
		"generate a random dataset instead of loading a seed")
	rootCmd.PersistentFlags().StringVar(&asOf, "as-of", "",
		"pin the report date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(describeCmd)
}

func initConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}

	// Override with CLI flags
	if seedFile != "" {
		cfg.SeedFile = seedFile
	}
	if asOf != "" {
		cfg.Report.AsOf = asOf
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.Info())
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List available reports and monitoring queries",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("Available pipelines:")
		cmd.Println()
		for _, def := range reports.All() {
			cmd.Printf("  %-20s %-11s %s\n", def.Name, def.Kind, def.Description)
		}
		cmd.Println()
		cmd.Println("Use 'retail-reports run <name>' to execute one.")
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the entity schemas and their constraints",
	Run: func(cmd *cobra.Command, args []string) {
		for _, entity := range schema.Entities() {
			cmd.Printf("%s\n", entity)
			for _, f := range schema.Fields(entity) {
				cmd.Printf("  %-15s %-8s%s\n", f.Name, f.Type, fieldNotes(f))
			}
			cmd.Println()
		}
	},
}

func fieldNotes(f schema.FieldDef) string {
	notes := ""
	if f.Required {
		notes += " required"
	}
	if f.Unique {
		notes += " unique"
	}
	if f.Derived {
		notes += " derived"
	}
	if f.References != "" {
		notes += fmt.Sprintf(" -> %s", f.References)
	}
	if f.Default != "" {
		notes += fmt.Sprintf(" (default: %s)", f.Default)
	}
	return notes
}
