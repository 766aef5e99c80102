package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ginjaninja78/sales-order-report/internal/aggregate"
	"github.com/ginjaninja78/sales-order-report/internal/types"
)

func applyRow(agg *aggregate.Aggregates, row types.OrderRow, rate float64) {
	agg.Apply(row, types.ComputeLineAmounts(row, rate))
}

func sampleAggregates() *aggregate.Aggregates {
	agg := aggregate.New()
	applyRow(agg, types.OrderRow{OrderID: "A1", CustomerID: "C1", CustomerName: "Alice", Region: "EU", Units: 10, UnitPrice: 2.5}, 0.05)
	applyRow(agg, types.OrderRow{OrderID: "A2", CustomerID: "C2", CustomerName: "", Region: "US", Units: 4, UnitPrice: 10}, 0)
	agg.RecordBadRow()
	return agg
}

func TestRenderSummaryBlock(t *testing.T) {
	text := Render(sampleAggregates())
	lines := strings.Split(text, "\n")

	if lines[0] != "=== Sales Order Report ===" {
		t.Errorf("banner = %q", lines[0])
	}

	for _, want := range []string{
		"Orders:   2",
		"Units:    14",
		"Gross:    $65.00",
		"Discount: $1.25",
		"Net:      $63.75",
		"Bad rows: 1",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}

	if strings.HasSuffix(text, "\n") {
		t.Error("report has a trailing newline")
	}
}

func TestRenderRegionsSorted(t *testing.T) {
	agg := aggregate.New()
	applyRow(agg, types.OrderRow{OrderID: "A1", CustomerID: "C1", Region: "US", Units: 1, UnitPrice: 1}, 0)
	applyRow(agg, types.OrderRow{OrderID: "A2", CustomerID: "C2", Region: "EU", Units: 1, UnitPrice: 1}, 0)
	applyRow(agg, types.OrderRow{OrderID: "A3", CustomerID: "C3", Region: "", Units: 1, UnitPrice: 1}, 0)
	applyRow(agg, types.OrderRow{OrderID: "A4", CustomerID: "C4", Region: "APAC", Units: 1, UnitPrice: 1}, 0)

	lines := FormatLines(agg)

	var regionLines []string
	inBlock := false
	for _, line := range lines {
		switch {
		case line == "By Region:":
			inBlock = true
		case inBlock && strings.HasPrefix(line, "  "):
			regionLines = append(regionLines, line)
		case inBlock:
			inBlock = false
		}
	}

	if len(regionLines) != 4 {
		t.Fatalf("got %d region lines, want 4: %v", len(regionLines), regionLines)
	}
	// Ascending lexicographic order; the empty key sorts first.
	wantPrefixes := []string{"  :", "  APAC:", "  EU:", "  US:"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(regionLines[i], prefix) {
			t.Errorf("region line %d = %q, want prefix %q", i, regionLines[i], prefix)
		}
	}
}

func TestRenderTopCustomers(t *testing.T) {
	agg := aggregate.New()
	// 12 customers with descending nets; only the top 10 should appear.
	for i := 0; i < 12; i++ {
		applyRow(agg, types.OrderRow{
			OrderID:      fmt.Sprintf("A%d", i),
			CustomerID:   fmt.Sprintf("C%d", i),
			CustomerName: fmt.Sprintf("Customer%d", i),
			Region:       "US",
			Units:        1,
			UnitPrice:    float64(100 - i),
		}, 0)
	}

	text := Render(agg)

	if !strings.Contains(text, "  01. Customer0 (C0) orders=1 units=1 net=$100.00") {
		t.Errorf("missing rank-1 line:\n%s", text)
	}
	if !strings.Contains(text, "  10. Customer9 (C9)") {
		t.Error("missing rank-10 line")
	}
	if strings.Contains(text, "  11.") || strings.Contains(text, "Customer10 ") {
		t.Error("customer listing not capped at 10")
	}
}

func TestRenderTopCustomersTieStable(t *testing.T) {
	agg := aggregate.New()
	// Equal nets: first-seen customer ranks first.
	applyRow(agg, types.OrderRow{OrderID: "A1", CustomerID: "C9", CustomerName: "Zed", Units: 1, UnitPrice: 10}, 0)
	applyRow(agg, types.OrderRow{OrderID: "A2", CustomerID: "C1", CustomerName: "Ann", Units: 1, UnitPrice: 10}, 0)

	text := Render(agg)
	if !strings.Contains(text, "  01. Zed (C9)") || !strings.Contains(text, "  02. Ann (C1)") {
		t.Errorf("tie not broken by insertion order:\n%s", text)
	}
}

func TestRenderUnknownCustomerName(t *testing.T) {
	agg := aggregate.New()
	applyRow(agg, types.OrderRow{OrderID: "A1", CustomerID: "C2", CustomerName: "", Units: 1, UnitPrice: 5}, 0)

	text := Render(agg)
	if !strings.Contains(text, "  01. (unknown) (C2)") {
		t.Errorf("empty name not rendered as (unknown):\n%s", text)
	}
}

func TestRenderWarnings(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		agg := aggregate.New()
		text := Render(agg)
		if !strings.Contains(text, "Warnings:\n  (none)") {
			t.Errorf("missing (none) marker:\n%s", text)
		}
	})

	t.Run("under the cap", func(t *testing.T) {
		agg := aggregate.New()
		agg.AddWarning("row 2 invalid units; defaulted to 1")
		text := Render(agg)
		if !strings.Contains(text, "  row 2 invalid units; defaulted to 1") {
			t.Error("warning line missing")
		}
		if strings.Contains(text, "more)") {
			t.Error("unexpected overflow marker")
		}
	})

	t.Run("over the cap", func(t *testing.T) {
		agg := aggregate.New()
		for i := 1; i <= 55; i++ {
			agg.AddWarning(fmt.Sprintf("warning %d", i))
		}
		text := Render(agg)

		if !strings.Contains(text, "  warning 50") {
			t.Error("50th warning should be displayed")
		}
		if strings.Contains(text, "  warning 51\n") {
			t.Error("51st warning should be cut off")
		}
		if !strings.Contains(text, "  (+5 more)") {
			t.Errorf("missing overflow marker:\n%s", text)
		}
	})
}

func TestBuildSummary(t *testing.T) {
	agg := aggregate.New()
	// Values chosen so the unrounded totals carry long fractions.
	applyRow(agg, types.OrderRow{OrderID: "A1", CustomerID: "C1", Region: "EU", Units: 3, UnitPrice: 3.333}, 0.05)
	agg.RecordBadRow()

	s := BuildSummary(agg)

	if s.TotalOrders != 1 || s.TotalUnits != 3 || s.BadRows != 1 {
		t.Errorf("counters = %+v", s)
	}

	// Top-level money figures are rounded to 2 decimals.
	if s.Gross != 10.0 {
		t.Errorf("Gross = %v, want 10.0 (rounded)", s.Gross)
	}
	if s.Discounted != 0.5 {
		t.Errorf("Discounted = %v, want 0.5 (rounded)", s.Discounted)
	}
	if s.Net != 9.5 {
		t.Errorf("Net = %v, want 9.5 (rounded)", s.Net)
	}

	// Per-region buckets stay unrounded.
	eu, ok := s.ByRegion["EU"]
	if !ok {
		t.Fatal("EU bucket missing from summary")
	}
	if eu.Gross == 10.0 {
		t.Errorf("region gross unexpectedly rounded: %v", eu.Gross)
	}
	if eu.Orders != 1 || eu.Units != 3 {
		t.Errorf("EU bucket = %+v", eu)
	}
}
