// =============================================================================
// Sales Order Report - Report Formatter
// =============================================================================
//
// This module projects the finalized aggregates into the two run outputs:
//
//   1. The human-readable report: a fixed banner, the summary block, a
//      "By Region" block sorted lexicographically by region key, a
//      "Top Customers" block holding at most the top 10 customers by net
//      (ties broken by first-seen order), and a "Warnings" block capped at
//      50 displayed lines.
//
//   2. The structured Summary object serialized to summary.json: totals,
//      2-decimal-rounded money figures, the bad-row count, and the full
//      per-region bucket mapping (unrounded).
//
// Formatting is a pure projection: nothing here mutates the aggregates, and
// the output contains no timestamps, so two runs over the same input produce
// byte-identical files.
//
// =============================================================================

package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ginjaninja78/sales-order-report/internal/aggregate"
	"github.com/ginjaninja78/sales-order-report/internal/types"
)

// Display caps for the text report. These are output-shape constants, not
// configuration: changing them changes the report contract.
const (
	topCustomersLimit    = 10
	warningsDisplayLimit = 50
)

// reportBanner is the fixed first line of the text report.
const reportBanner = "=== Sales Order Report ==="

// =============================================================================
// STRUCTURED SUMMARY
// =============================================================================

// RegionSummary is one region bucket as it appears in summary.json.
// Money figures are carried unrounded.
type RegionSummary struct {
	Orders int     `json:"orders"`
	Units  int     `json:"units"`
	Gross  float64 `json:"gross"`
	Net    float64 `json:"net"`
}

// Summary is the machine-readable run summary written to summary.json.
type Summary struct {
	TotalOrders int                      `json:"totalOrders"`
	TotalUnits  int                      `json:"totalUnits"`
	Gross       float64                  `json:"gross"`
	Discounted  float64                  `json:"discounted"`
	Net         float64                  `json:"net"`
	BadRows     int                      `json:"badRows"`
	ByRegion    map[string]RegionSummary `json:"byRegion"`
}

// BuildSummary projects the aggregates into the structured summary.
// Top-level money figures are rounded to 2 decimal places; per-region
// buckets are not.
func BuildSummary(agg *aggregate.Aggregates) Summary {
	byRegion := make(map[string]RegionSummary, len(agg.ByRegion))
	for region, b := range agg.ByRegion {
		byRegion[region] = RegionSummary{
			Orders: b.Orders,
			Units:  b.Units,
			Gross:  b.Gross,
			Net:    b.Net,
		}
	}

	return Summary{
		TotalOrders: agg.TotalOrders,
		TotalUnits:  agg.TotalUnits,
		Gross:       round2(agg.Gross),
		Discounted:  round2(agg.Discounted),
		Net:         round2(agg.Net),
		BadRows:     agg.BadRows,
		ByRegion:    byRegion,
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// =============================================================================
// TEXT REPORT
// =============================================================================

// Render formats the full text report, newline-joined with no trailing
// newline beyond the join.
func Render(agg *aggregate.Aggregates) string {
	return strings.Join(FormatLines(agg), "\n")
}

// FormatLines produces the text report as an ordered line sequence.
func FormatLines(agg *aggregate.Aggregates) []string {
	lines := []string{
		reportBanner,
		fmt.Sprintf("Orders:   %d", agg.TotalOrders),
		fmt.Sprintf("Units:    %d", agg.TotalUnits),
		fmt.Sprintf("Gross:    $%.2f", agg.Gross),
		fmt.Sprintf("Discount: $%.2f", agg.Discounted),
		fmt.Sprintf("Net:      $%.2f", agg.Net),
		fmt.Sprintf("Bad rows: %d", agg.BadRows),
	}

	lines = append(lines, "", "By Region:")
	for _, region := range sortedRegions(agg) {
		b := agg.ByRegion[region]
		lines = append(lines, fmt.Sprintf("  %s: orders=%d units=%d gross=$%.2f net=$%.2f",
			region, b.Orders, b.Units, b.Gross, b.Net))
	}

	lines = append(lines, "", "Top Customers:")
	for rank, key := range TopCustomers(agg, topCustomersLimit) {
		b := agg.ByCustomer[key]
		name := key.CustomerName
		if name == "" {
			name = "(unknown)"
		}
		lines = append(lines, fmt.Sprintf("  %02d. %s (%s) orders=%d units=%d net=$%.2f",
			rank+1, name, key.CustomerID, b.Orders, b.Units, b.Net))
	}

	lines = append(lines, "", "Warnings:")
	if len(agg.Warnings) == 0 {
		lines = append(lines, "  (none)")
	} else {
		shown := agg.Warnings
		if len(shown) > warningsDisplayLimit {
			shown = shown[:warningsDisplayLimit]
		}
		for _, w := range shown {
			lines = append(lines, "  "+w)
		}
		if extra := len(agg.Warnings) - warningsDisplayLimit; extra > 0 {
			lines = append(lines, fmt.Sprintf("  (+%d more)", extra))
		}
	}

	return lines
}

// sortedRegions returns the region keys in ascending lexicographic order.
// Sorting happens at format time; bucket insertion order is irrelevant.
func sortedRegions(agg *aggregate.Aggregates) []string {
	regions := make([]string, 0, len(agg.ByRegion))
	for region := range agg.ByRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// TopCustomers returns up to limit customer keys ordered by bucket net
// descending. Ties keep the customers' first-seen order (stable sort over
// the insertion sequence).
func TopCustomers(agg *aggregate.Aggregates, limit int) []types.CustomerKey {
	keys := make([]types.CustomerKey, len(agg.CustomerOrder()))
	copy(keys, agg.CustomerOrder())

	sort.SliceStable(keys, func(i, j int) bool {
		return agg.ByCustomer[keys[i]].Net > agg.ByCustomer[keys[j]].Net
	})

	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
