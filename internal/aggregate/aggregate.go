// =============================================================================
// Sales Order Report - Aggregation Engine
// =============================================================================
//
// This module folds accepted order rows into running totals plus per-region
// and per-customer buckets. Aggregation is a strict left-fold: each accepted
// row mutates the aggregates exactly once, in file order, with no
// backtracking and no recomputation. One Aggregates instance is owned
// exclusively by one run, so no locking is involved.
//
// INVARIANTS (hold after every Apply call):
//   - Gross == Net + Discounted (within floating-point tolerance)
//   - Sum of bucket Orders over all regions   == TotalOrders
//   - Sum of bucket Orders over all customers == TotalOrders
//   - All counters are monotonically non-decreasing
//
// Buckets are created on first sight of their key (including the empty
// region string) and are never removed.
//
// =============================================================================

package aggregate

import (
	"github.com/ginjaninja78/sales-order-report/internal/types"
)

// Bucket holds the counters for one aggregation slot (a region or a
// customer).
type Bucket struct {
	Orders int
	Units  int
	Gross  float64
	Net    float64
}

// Aggregates is the accumulator for one run. Created empty with New, mutated
// once per accepted row via Apply, then treated as read-only by the report
// formatter.
type Aggregates struct {
	TotalOrders int
	TotalUnits  int
	Gross       float64
	Net         float64
	Discounted  float64
	BadRows     int

	// ByRegion buckets rows by upper-cased region code. The empty string is
	// a valid key (rows with a missing region).
	ByRegion map[string]*Bucket

	// ByCustomer buckets rows by the (customerId, customerName) pair.
	ByCustomer map[types.CustomerKey]*Bucket

	// customerOrder records customer keys in first-seen order so the report
	// can break net-amount ties stably.
	customerOrder []types.CustomerKey

	// Warnings is the append-only, ordered warning list for the run.
	Warnings []string
}

// New returns an empty Aggregates ready for one run.
func New() *Aggregates {
	return &Aggregates{
		ByRegion:   make(map[string]*Bucket),
		ByCustomer: make(map[types.CustomerKey]*Bucket),
	}
}

// Apply folds one accepted row and its line amounts into the aggregates.
// Must be called exactly once per accepted row, in file order.
func (a *Aggregates) Apply(row types.OrderRow, amounts types.LineAmounts) {
	a.TotalOrders++
	a.TotalUnits += row.Units
	a.Gross += amounts.Gross
	a.Net += amounts.Net
	a.Discounted += amounts.Discount

	region := a.regionBucket(row.Region)
	region.Orders++
	region.Units += row.Units
	region.Gross += amounts.Gross
	region.Net += amounts.Net

	customer := a.customerBucket(types.CustomerKey{
		CustomerID:   row.CustomerID,
		CustomerName: row.CustomerName,
	})
	customer.Orders++
	customer.Units += row.Units
	customer.Gross += amounts.Gross
	customer.Net += amounts.Net
}

// regionBucket returns the bucket for a region, creating it on first sight.
func (a *Aggregates) regionBucket(region string) *Bucket {
	b, ok := a.ByRegion[region]
	if !ok {
		b = &Bucket{}
		a.ByRegion[region] = b
	}
	return b
}

// customerBucket returns the bucket for a customer key, creating it on first
// sight and recording the insertion order.
func (a *Aggregates) customerBucket(key types.CustomerKey) *Bucket {
	b, ok := a.ByCustomer[key]
	if !ok {
		b = &Bucket{}
		a.ByCustomer[key] = b
		a.customerOrder = append(a.customerOrder, key)
	}
	return b
}

// CustomerOrder returns the customer keys in first-seen order. The slice is
// shared; callers must not mutate it.
func (a *Aggregates) CustomerOrder() []types.CustomerKey {
	return a.customerOrder
}

// =============================================================================
// COLLECTOR IMPLEMENTATION
// =============================================================================
// Aggregates doubles as the row parser's side-effect sink: warnings and the
// bad-row counter live here so the whole run has a single accumulator.

// AddWarning appends a warning to the run's ordered warning list.
func (a *Aggregates) AddWarning(msg string) {
	a.Warnings = append(a.Warnings, msg)
}

// RecordBadRow counts one rejected row.
func (a *Aggregates) RecordBadRow() {
	a.BadRows++
}
