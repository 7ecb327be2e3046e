// Package main is the entry point for pizza-analytics.
package main

import (
	"fmt"
	"os"

	"github.com/pgEdge/pizza-analytics/internal/cli"

	// Register the metric battery
	_ "github.com/pgEdge/pizza-analytics/internal/metrics"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
