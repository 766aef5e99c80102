// =============================================================================
// Sales Order Report - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - ingest
//   - rules
//   - aggregate
//   - report
//
// =============================================================================

package types

// =============================================================================
// ORDER TYPES
// =============================================================================

// OrderRow is one validated, sanitized data row from the input CSV.
// An OrderRow only exists if both OrderID and CustomerID were non-empty;
// rows failing that are rejected before construction. The row is read-only
// after construction and is discarded once folded into the aggregates.
type OrderRow struct {
	// OrderID is the trimmed order identifier. Never empty.
	OrderID string

	// CustomerID is the trimmed customer identifier. Never empty.
	CustomerID string

	// CustomerName is the trimmed customer name. May be empty (warned, not
	// rejected).
	CustomerName string

	// Product is the trimmed product name. May be empty.
	Product string

	// Region is the trimmed, upper-cased region code. May be empty.
	Region string

	// Units is the ordered unit count. Always >= 1: invalid or non-positive
	// input is defaulted to 1 during sanitization.
	Units int

	// UnitPrice is the per-unit price. Always >= 0: invalid or negative
	// input is defaulted to 0 during sanitization.
	UnitPrice float64

	// CreatedAt is the raw createdAt column text. It is kept as-is even when
	// it does not parse as a date; parsing only drives a warning.
	CreatedAt string
}

// CustomerKey identifies a customer aggregation bucket.
//
// The key is the (CustomerID, CustomerName) pair, not CustomerID alone:
// two rows with the same id but different names (for example one row missing
// the name) land in distinct buckets. That behavior is deliberate and must
// be preserved.
type CustomerKey struct {
	CustomerID   string
	CustomerName string
}

// =============================================================================
// LINE AMOUNTS
// =============================================================================

// LineAmounts holds the monetary figures derived from one accepted row.
// Computed once per row and consumed immediately by the aggregator; never
// persisted.
type LineAmounts struct {
	// Gross is Units * UnitPrice.
	Gross float64

	// Discount is Gross * the discount rate for the row.
	Discount float64

	// Net is Gross - Discount.
	Net float64
}

// ComputeLineAmounts derives the gross/discount/net figures for a row at the
// given discount rate. Net is computed by subtraction so that
// Gross == Net + Discount holds exactly.
func ComputeLineAmounts(row OrderRow, rate float64) LineAmounts {
	gross := float64(row.Units) * row.UnitPrice
	discount := gross * rate
	return LineAmounts{
		Gross:    gross,
		Discount: discount,
		Net:      gross - discount,
	}
}
