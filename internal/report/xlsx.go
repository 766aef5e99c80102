// =============================================================================
// Sales Order Report - XLSX Summary Export
// =============================================================================
//
// Optional third output: a summary.xlsx workbook mirroring the text report
// content, for teams that consume run results in spreadsheets. The workbook
// carries three sheets:
//
//   Summary       - the run totals (one metric per row)
//   By Region     - one row per region bucket, lexicographic order
//   Top Customers - the same top-10 listing as the text report
//
// The export is disabled by default and never alters report.txt or
// summary.json.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-order-report/internal/aggregate"
)

// WriteXLSX writes the summary workbook to path.
//
// PARAMETERS:
//   - path: Destination file path (conventionally summary.xlsx in the
//     output directory).
//   - agg: The finalized aggregates for the run.
//
// RETURNS:
//   - An error if any sheet cannot be built or the file cannot be saved.
func WriteXLSX(path string, agg *aggregate.Aggregates) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the Summary sheet.
	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, agg); err != nil {
		return err
	}
	if err := writeRegionSheet(f, agg); err != nil {
		return err
	}
	if err := writeCustomerSheet(f, agg); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeSummarySheet fills the Summary sheet with one metric per row.
func writeSummarySheet(f *excelize.File, agg *aggregate.Aggregates) error {
	rows := []struct {
		label string
		value interface{}
	}{
		{"Orders", agg.TotalOrders},
		{"Units", agg.TotalUnits},
		{"Gross", round2(agg.Gross)},
		{"Discount", round2(agg.Discounted)},
		{"Net", round2(agg.Net)},
		{"Bad rows", agg.BadRows},
		{"Warnings", len(agg.Warnings)},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue("Summary", labelCell, row.label); err != nil {
			return fmt.Errorf("failed to write summary sheet: %w", err)
		}
		if err := f.SetCellValue("Summary", valueCell, row.value); err != nil {
			return fmt.Errorf("failed to write summary sheet: %w", err)
		}
	}
	return nil
}

// writeRegionSheet fills the By Region sheet, one row per bucket in
// lexicographic key order.
func writeRegionSheet(f *excelize.File, agg *aggregate.Aggregates) error {
	const sheet = "By Region"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create region sheet: %w", err)
	}

	header := []interface{}{"Region", "Orders", "Units", "Gross", "Net"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write region header: %w", err)
	}

	for i, region := range sortedRegions(agg) {
		b := agg.ByRegion[region]
		row := []interface{}{region, b.Orders, b.Units, b.Gross, b.Net}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write region row: %w", err)
		}
	}
	return nil
}

// writeCustomerSheet fills the Top Customers sheet with the same listing as
// the text report.
func writeCustomerSheet(f *excelize.File, agg *aggregate.Aggregates) error {
	const sheet = "Top Customers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create customer sheet: %w", err)
	}

	header := []interface{}{"Rank", "Customer", "Customer ID", "Orders", "Units", "Net"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write customer header: %w", err)
	}

	for rank, key := range TopCustomers(agg, topCustomersLimit) {
		b := agg.ByCustomer[key]
		name := key.CustomerName
		if name == "" {
			name = "(unknown)"
		}
		row := []interface{}{rank + 1, name, key.CustomerID, b.Orders, b.Units, b.Net}
		cell := fmt.Sprintf("A%d", rank+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write customer row: %w", err)
		}
	}
	return nil
}
