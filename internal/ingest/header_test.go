package ingest

import (
	"errors"
	"testing"
)

const standardHeader = "orderId,customerId,customerName,product,units,unitPrice,region,createdAt"

func TestBuildHeaderIndex(t *testing.T) {
	tests := []struct {
		name          string
		line          string
		expectErr     bool
		missingColumn string
	}{
		{
			name: "standard header",
			line: standardHeader,
		},
		{
			name: "shuffled order with extra columns",
			line: "createdAt,region,unitPrice,units,product,customerName,customerId,orderId,notes,channel",
		},
		{
			name: "whitespace around names",
			line: " orderId , customerId ,customerName,product,units,unitPrice,region,createdAt ",
		},
		{
			name:          "missing one column",
			line:          "orderId,customerId,customerName,product,units,unitPrice,region",
			expectErr:     true,
			missingColumn: "createdAt",
		},
		{
			name:          "first missing column reported in declared order",
			line:          "orderId,customerName,units,unitPrice,region,createdAt",
			expectErr:     true,
			missingColumn: "customerId",
		},
		{
			name:          "empty line",
			line:          "",
			expectErr:     true,
			missingColumn: "orderId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, err := BuildHeaderIndex(tt.line)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("BuildHeaderIndex(%q) expected error, got none", tt.line)
				}
				var missing *MissingHeaderError
				if !errors.As(err, &missing) {
					t.Fatalf("expected *MissingHeaderError, got %T", err)
				}
				if missing.Column != tt.missingColumn {
					t.Errorf("missing column = %q, want %q", missing.Column, tt.missingColumn)
				}
				return
			}

			if err != nil {
				t.Fatalf("BuildHeaderIndex(%q) unexpected error: %v", tt.line, err)
			}
			for _, required := range RequiredColumns {
				if _, ok := header.Position(required); !ok {
					t.Errorf("required column %q not indexed", required)
				}
			}
		})
	}
}

func TestBuildHeaderIndexPositions(t *testing.T) {
	header, err := BuildHeaderIndex(standardHeader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{
		"orderId":   0,
		"units":     4,
		"unitPrice": 5,
		"createdAt": 7,
	}
	for name, pos := range want {
		got, ok := header.Position(name)
		if !ok || got != pos {
			t.Errorf("Position(%q) = %d, %v; want %d, true", name, got, ok, pos)
		}
	}

	if header.Width() != 8 {
		t.Errorf("Width() = %d, want 8", header.Width())
	}
}

func TestBuildHeaderIndexDuplicateLaterWins(t *testing.T) {
	header, err := BuildHeaderIndex(standardHeader + ",orderId")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos, _ := header.Position("orderId")
	if pos != 8 {
		t.Errorf("duplicate orderId position = %d, want 8 (later occurrence wins)", pos)
	}
	if header.Width() != 9 {
		t.Errorf("Width() = %d, want 9", header.Width())
	}
}

func TestSplitRowNoQuoting(t *testing.T) {
	// Quoting is deliberately unsupported: a quoted comma still splits.
	cols := SplitRow(`A1,"Smith, John",Widget`)
	if len(cols) != 4 {
		t.Fatalf("SplitRow returned %d columns, want 4", len(cols))
	}
	if cols[1] != `"Smith` {
		t.Errorf("cols[1] = %q, want %q", cols[1], `"Smith`)
	}
}
