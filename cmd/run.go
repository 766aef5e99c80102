// =============================================================================
// Sales Order Report - Run Command
// =============================================================================
//
// This file defines the 'run' command, which executes one report job: it
// reads the input CSV, folds every data row through validation, discount
// rules and aggregation, and writes report.txt and summary.json to the
// output directory.
//
// COMMAND USAGE:
//   salesreport run <input.csv> <output-dir> [flags]
//
// FLAGS:
//   --xlsx : Also write a summary.xlsx workbook to the output directory
//
// EXIT BEHAVIOR:
//   0 on success. 1 when arguments are missing, the input file is missing,
//   the file has no data rows, a required header column is absent, or any
//   unexpected failure occurs. Malformed data rows never fail the run: they
//   are counted as bad rows and processing continues.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-order-report/internal/config"
	"github.com/ginjaninja78/sales-order-report/internal/job"
	"github.com/ginjaninja78/sales-order-report/internal/logger"
	"github.com/ginjaninja78/sales-order-report/pkg/utils"
)

// withXLSX enables the optional XLSX summary export.
var withXLSX bool

// runCmd represents the 'run' command.
var runCmd = &cobra.Command{
	Use:   "run <input.csv> <output-dir>",
	Short: "Process a sales order CSV and write the run reports",
	Long: `The run command ingests the given CSV file, validates and sanitizes every
data row, applies the discount rules, aggregates totals by region and
customer, and writes the outputs to the given directory:

  report.txt    - the human-readable report
  summary.json  - the machine-readable summary (2-space indented)
  summary.xlsx  - optional workbook, when --xlsx is set or configured

Rows missing orderId or customerId, or with fewer columns than the header,
are rejected and counted as bad rows. Invalid units or unitPrice values are
defaulted (1 and 0 respectively) with a recorded warning. Neither aborts the
run.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(args[0], args[1])
	},
}

// init registers the run command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(
		&withXLSX,
		"xlsx",
		false,
		"Also write a summary.xlsx workbook to the output directory",
	)
}

// runReport executes one report job and prints the console summary.
func runReport(csvPath, outputDir string) error {
	fmt.Println("=== Sales Order Report ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if withXLSX && cfg.XLSXFile == "" {
		cfg.XLSXFile = "summary.xlsx"
	}

	logMode := cfg.LogMode
	if verbose {
		logMode = "dev"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	j := job.New(csvPath, outputDir, cfg, log)

	result, err := j.Run()
	if err != nil {
		// Best-effort error log next to the outputs; never masks the failure.
		if resolved, rerr := utils.ResolvePath(outputDir); rerr == nil && dirExists(resolved) {
			utils.WriteErrorLog(resolved, j.RunID(), err.Error())
		}
		return err
	}

	fmt.Printf("  ✓ %s\n", result.ReportPath)
	fmt.Printf("  ✓ %s\n", result.SummaryPath)
	if result.XLSXPath != "" {
		fmt.Printf("  ✓ %s\n", result.XLSXPath)
	}
	if result.ArchivedPath != "" {
		fmt.Printf("  ✓ archived input -> %s\n", result.ArchivedPath)
	}

	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Orders:          %d\n", result.Summary.TotalOrders)
	fmt.Printf("Bad rows:        %d\n", result.Summary.BadRows)
	fmt.Printf("Warnings:        %d\n", result.Warnings)
	fmt.Printf("Time elapsed:    %s\n", result.Elapsed)

	return nil
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
