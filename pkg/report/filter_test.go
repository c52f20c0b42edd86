package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func queryFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestParseFilterValid(t *testing.T) {
	productID := uuid.New()
	f := ParseFilter(queryFrom(map[string]string{
		"start_date":   "2026-01-01",
		"end_date":     "2026-01-31",
		"product":      productID.String(),
		"reason":       " expired ",
		"min_quantity": "1.5",
		"max_quantity": "10",
	}), "min_quantity", "max_quantity")

	if f.StartDate == nil || f.StartDate.Format("2006-01-02") != "2026-01-01" {
		t.Errorf("start date not parsed: %v", f.StartDate)
	}
	if f.EndDate == nil || f.EndDate.Format("2006-01-02") != "2026-01-31" {
		t.Errorf("end date not parsed: %v", f.EndDate)
	}
	if f.ProductID == nil || *f.ProductID != productID {
		t.Errorf("product id not parsed: %v", f.ProductID)
	}
	if f.Reason != "expired" {
		t.Errorf("expected trimmed reason, got %q", f.Reason)
	}
	if f.Min == nil || f.Min.String() != "1.5" {
		t.Errorf("min not parsed: %v", f.Min)
	}
	if f.Max == nil || f.Max.String() != "10" {
		t.Errorf("max not parsed: %v", f.Max)
	}
}

func TestParseFilterDropsInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
	}{
		{"malformed date", map[string]string{"start_date": "01/31/2026"}},
		{"malformed uuid", map[string]string{"product": "not-a-uuid", "category": "42"}},
		{"negative min", map[string]string{"min_quantity": "-3"}},
		{"non numeric max", map[string]string{"max_quantity": "lots"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := ParseFilter(queryFrom(tc.values), "min_quantity", "max_quantity")

			if f.StartDate != nil || f.EndDate != nil {
				t.Error("expected dates to be dropped")
			}
			if f.ProductID != nil || f.CategoryID != nil {
				t.Error("expected ids to be dropped")
			}
			if f.Min != nil || f.Max != nil {
				t.Error("expected bounds to be dropped")
			}
		})
	}
}

func TestWindowOrDefault(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	t.Run("default trailing 30 days", func(t *testing.T) {
		start, end := Filter{}.WindowOrDefault(now)
		if !start.Equal(now.AddDate(0, 0, -30)) {
			t.Errorf("expected start 30 days back, got %s", start)
		}
		if !end.Equal(now) {
			t.Errorf("expected end now, got %s", end)
		}
	})

	t.Run("explicit bounds win", func(t *testing.T) {
		from := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		start, end := Filter{StartDate: &from, EndDate: &to}.WindowOrDefault(now)
		if !start.Equal(from) || !end.Equal(to) {
			t.Errorf("expected explicit window, got %s..%s", start, end)
		}
	})
}
