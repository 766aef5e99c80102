// =============================================================================
// Sales Order Report - Main Entry Point
// =============================================================================
//
// This is the main entry point for the sales order report CLI. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   salesreport run <input.csv> <output-dir>  - Process a sales order CSV
//   salesreport check <input.csv>             - Validate the CSV header only
//   salesreport version                       - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : core business logic (not for external import)
//   - pkg/       : shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/sales-order-report/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
