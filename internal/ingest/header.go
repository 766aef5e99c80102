// =============================================================================
// Sales Order Report - Header Indexer
// =============================================================================
//
// This module maps CSV column names to their positions, built once from the
// first non-blank line of the input file. The index is immutable after
// construction and is consulted by the row parser for every data row.
//
// HEADER RULES:
//   - Fields are split on commas (no quoting support) and trimmed.
//   - Duplicate names are not rejected: the later occurrence wins silently.
//   - Column order within the header is irrelevant; extra columns are ignored.
//   - All required columns must be present or indexing fails with a
//     MissingHeaderError naming the first missing column, checked in the
//     declared order.
//
// =============================================================================

package ingest

import (
	"fmt"
	"strings"
)

// RequiredColumns lists the columns every input file must declare. The order
// here is the order missing columns are reported in.
var RequiredColumns = []string{
	"orderId",
	"customerId",
	"customerName",
	"product",
	"units",
	"unitPrice",
	"region",
	"createdAt",
}

// =============================================================================
// ERROR TYPES
// =============================================================================

// MissingHeaderError reports the first required column absent from the
// header line. It aborts the whole run.
type MissingHeaderError struct {
	// Column is the name of the missing required column.
	Column string
}

// Error implements the error interface.
func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("missing required header column: %s", e.Column)
}

// =============================================================================
// HEADER INDEX
// =============================================================================

// HeaderIndex maps a column name to its zero-based position in the header
// line. Built once by BuildHeaderIndex; read-only afterward.
type HeaderIndex struct {
	positions map[string]int

	// width is the number of comma-separated fields in the header line.
	// Rows with fewer columns than this are rejected outright.
	width int
}

// BuildHeaderIndex parses the header line into a HeaderIndex.
//
// PARAMETERS:
//   - line: The first non-blank line of the input file.
//
// RETURNS:
//   - The constructed HeaderIndex.
//   - A *MissingHeaderError if any required column is absent. Checking
//     short-circuits on the first missing column in RequiredColumns order.
func BuildHeaderIndex(line string) (*HeaderIndex, error) {
	fields := SplitRow(line)

	positions := make(map[string]int, len(fields))
	for i, field := range fields {
		name := strings.TrimSpace(field)
		// Later duplicates overwrite earlier ones.
		positions[name] = i
	}

	for _, required := range RequiredColumns {
		if _, ok := positions[required]; !ok {
			return nil, &MissingHeaderError{Column: required}
		}
	}

	return &HeaderIndex{
		positions: positions,
		width:     len(fields),
	}, nil
}

// Position returns the zero-based column position for a name. The second
// return value is false for unknown columns.
func (h *HeaderIndex) Position(name string) (int, bool) {
	pos, ok := h.positions[name]
	return pos, ok
}

// Width returns the number of fields in the header line.
func (h *HeaderIndex) Width() int {
	return h.width
}

// Columns returns the indexed column names with their positions. The map is
// a copy; mutating it does not affect the index.
func (h *HeaderIndex) Columns() map[string]int {
	out := make(map[string]int, len(h.positions))
	for name, pos := range h.positions {
		out[name] = pos
	}
	return out
}

// SplitRow splits a raw line into its column values.
//
// Splitting is a naive comma split: quoting and escaping are deliberately
// unsupported, so a literal comma inside a field is treated as a column
// separator. Adding quote handling would change which rows are accepted.
func SplitRow(line string) []string {
	return strings.Split(line, ",")
}
