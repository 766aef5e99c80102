// =============================================================================
// Sales Order Report - Row Parser / Sanitizer
// =============================================================================
//
// This module turns one raw CSV data line into either a validated OrderRow
// or a rejection, emitting warnings for fields that were sanitized along the
// way. All per-row problems are resolved here: nothing a data row contains
// can abort the run.
//
// CONTRACT (applied in this exact order):
//   1. Fewer columns than the header     -> reject, no warning
//   2. Extract and trim the text fields; upper-case region
//   3. Parse units (int) and unitPrice (float) from the trimmed text
//   4. Empty orderId or customerId      -> reject, no warning
//   5. Empty customerName               -> warn, accept
//   6. Empty product                    -> warn, accept
//   7. Empty region                     -> warn, accept
//   8. Bad or non-positive units        -> default to 1, warn
//   9. Bad or negative unitPrice        -> default to 0, warn
//  10. Unparseable createdAt            -> warn only; raw text is kept
//
// A rejected row therefore never produces warnings: rejection happens before
// any warning-emitting step runs.
//
// =============================================================================

package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/sales-order-report/internal/types"
)

// Collector receives the side effects of row parsing: warnings for sanitized
// fields and the bad-row count for rejections. The aggregates object
// implements it; tests can substitute their own.
type Collector interface {
	// AddWarning records a non-fatal annotation about an accepted row.
	AddWarning(msg string)

	// RecordBadRow counts a rejected row.
	RecordBadRow()
}

// createdAtLayouts are the layouts tried, in order, when interpreting the
// createdAt column. The parse is best-effort and only decides whether the
// "invalid createdAt" warning is emitted.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseRow parses one raw data line.
//
// PARAMETERS:
//   - line: The raw line text (comma-split internally, no quoting).
//   - header: The header index built from the first line.
//   - lineNumber: 1-based position of the line among the file's non-blank
//     lines, counting the header (the first data row is line 2). Used in
//     warning messages.
//   - sink: Receives warnings and the bad-row count.
//
// RETURNS:
//   - The validated OrderRow and true if the row was accepted.
//   - A zero OrderRow and false if the row was rejected. Rejections have
//     already been counted on the sink; they never carry warnings.
func ParseRow(line string, header *HeaderIndex, lineNumber int, sink Collector) (types.OrderRow, bool) {
	cols := SplitRow(line)

	// Short rows cannot be identified reliably; reject without warning so a
	// truncated row is distinguishable from one that was defaulted.
	if len(cols) < header.Width() {
		sink.RecordBadRow()
		return types.OrderRow{}, false
	}

	orderID := textField(cols, header, "orderId")
	customerID := textField(cols, header, "customerId")
	customerName := textField(cols, header, "customerName")
	product := textField(cols, header, "product")
	createdAt := textField(cols, header, "createdAt")
	region := strings.ToUpper(textField(cols, header, "region"))

	units, unitsOK := parseUnits(textField(cols, header, "units"))
	unitPrice, priceOK := parseUnitPrice(textField(cols, header, "unitPrice"))

	// Without both ids the row cannot be aggregated anywhere.
	if orderID == "" || customerID == "" {
		sink.RecordBadRow()
		return types.OrderRow{}, false
	}

	if customerName == "" {
		sink.AddWarning(fmt.Sprintf("row %d missing customerName for %s", lineNumber, customerID))
	}
	if product == "" {
		sink.AddWarning(fmt.Sprintf("row %d missing product for order %s", lineNumber, orderID))
	}
	if region == "" {
		sink.AddWarning(fmt.Sprintf("row %d missing region for order %s", lineNumber, orderID))
	}

	if !unitsOK || units <= 0 {
		units = 1
		sink.AddWarning(fmt.Sprintf("row %d invalid units; defaulted to 1", lineNumber))
	}
	if !priceOK || unitPrice < 0 {
		unitPrice = 0
		sink.AddWarning(fmt.Sprintf("row %d invalid unitPrice; defaulted to 0", lineNumber))
	}

	if !parsesAsDate(createdAt) {
		sink.AddWarning(fmt.Sprintf("row %d invalid createdAt: %s", lineNumber, createdAt))
	}

	return types.OrderRow{
		OrderID:      orderID,
		CustomerID:   customerID,
		CustomerName: customerName,
		Product:      product,
		Region:       region,
		Units:        units,
		UnitPrice:    unitPrice,
		CreatedAt:    createdAt,
	}, true
}

// textField extracts the trimmed value of a named column. A column position
// beyond the row's length yields an empty string.
func textField(cols []string, header *HeaderIndex, name string) string {
	pos, ok := header.Position(name)
	if !ok || pos >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[pos])
}

// parseUnits parses the units column as an integer. The second return value
// is false when the text is not a parseable integer; range and sign checks
// are the caller's concern.
func parseUnits(text string) (int, bool) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseUnitPrice parses the unitPrice column as a float. NaN and infinities
// count as parse failures.
func parseUnitPrice(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parsesAsDate reports whether the createdAt text can be interpreted as a
// calendar date/time. The result only decides warning emission: acceptance
// and computed values never depend on it, and the raw text is kept either
// way.
func parsesAsDate(text string) bool {
	for _, layout := range createdAtLayouts {
		if _, err := time.Parse(layout, text); err == nil {
			return true
		}
	}
	return false
}
