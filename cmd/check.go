// =============================================================================
// Sales Order Report - Check Command
// =============================================================================
//
// This file defines the 'check' command, which validates that a CSV file's
// header carries every required column without processing any data rows.
// Useful for verifying an export before scheduling the full run.
//
// COMMAND USAGE:
//   salesreport check <input.csv>
//
// =============================================================================

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/sales-order-report/internal/ingest"
	"github.com/ginjaninja78/sales-order-report/internal/job"
	"github.com/ginjaninja78/sales-order-report/pkg/utils"
)

// checkCmd represents the 'check' command.
var checkCmd = &cobra.Command{
	Use:   "check <input.csv>",
	Short: "Validate a CSV header without processing the file",
	Long: `The check command reads only the header line of the given CSV file and
verifies that every required column is present:

  orderId, customerId, customerName, product, units, unitPrice, region,
  createdAt

Column order is irrelevant and extra columns are ignored, matching what the
run command accepts.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

// init registers the check command with the root command.
func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck validates the header of one CSV file.
func runCheck(csvPath string) error {
	resolved, err := utils.ResolvePath(csvPath)
	if err != nil {
		return err
	}
	if !utils.FileExists(resolved) {
		return fmt.Errorf("%w: %s", job.ErrInputMissing, resolved)
	}

	lines, err := utils.ReadNonBlankLines(resolved)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: %s", job.ErrEmptyInput, resolved)
	}

	header, err := ingest.BuildHeaderIndex(lines[0])
	if err != nil {
		return err
	}

	// Print the resolved positions in column order.
	columns := header.Columns()
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return columns[names[i]] < columns[names[j]]
	})

	fmt.Printf("  ✓ header valid: %d column(s)\n", header.Width())
	for _, name := range names {
		fmt.Printf("    %2d  %s\n", columns[name], name)
	}
	return nil
}
