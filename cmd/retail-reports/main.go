// Package main is the entry point for retail-reports.
package main

import (
	"fmt"
	"os"

	"github.com/pgEdge/retail-reports/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
