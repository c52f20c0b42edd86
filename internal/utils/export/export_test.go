package export

import (
	"strings"
	"testing"
)

func TestCSV(t *testing.T) {
	content, err := CSV(
		[]string{"Product", "Quantity"},
		[][]string{{"Milk", "2"}, {"Bread, sliced", "1"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Product,Quantity" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != `"Bread, sliced",1` {
		t.Errorf("expected quoted cell, got %q", lines[2])
	}
}

func TestPDF(t *testing.T) {
	content, err := PDF("Wastage report", []string{"Product", "Reason"}, [][]string{{"Milk", "spoiled"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(content), "%PDF") {
		t.Error("expected a PDF document")
	}
}
