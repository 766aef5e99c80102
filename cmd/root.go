// =============================================================================
// Sales Order Report - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'run', 'check') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (salesreport)
//   ├── runCmd (salesreport run)
//   ├── checkCmd (salesreport check)
//   └── versionCmd (salesreport version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Sales Order Report - Aggregate a sales order CSV into run reports",

	Long: `Sales Order Report is a batch CLI tool that ingests a CSV file of sales
orders, validates and sanitizes each row, applies the fixed discount rules,
aggregates totals by region and customer, and writes a human-readable
report.txt plus a machine-readable summary.json.

The job is single-pass and deterministic: rows are processed strictly in file
order, malformed rows are counted but never abort the run, and two runs over
the same input produce byte-identical outputs.

Example Usage:
  salesreport run orders.csv ./out        # Process orders.csv into ./out
  salesreport run orders.csv ./out --xlsx # Also write summary.xlsx
  salesreport check orders.csv            # Validate the header only`,

	// With no subcommand, just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Any command error is printed
// and the process exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// init sets up the global flags.
func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (defaults apply when absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
