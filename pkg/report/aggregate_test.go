package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	if summary.Count != 0 {
		t.Errorf("expected count 0, got %d", summary.Count)
	}
	if !summary.Total.IsZero() {
		t.Errorf("expected zero total, got %s", summary.Total)
	}
	if !summary.Average.IsZero() {
		t.Errorf("expected zero average, got %s", summary.Average)
	}
	if len(summary.Series) != 0 {
		t.Errorf("expected empty series, got %d points", len(summary.Series))
	}
}

func TestSummarizeTotalsAndAverage(t *testing.T) {
	points := make([]RecordPoint, 0, 5)
	for i := 0; i < 5; i++ {
		points = append(points, RecordPoint{
			Date:  day(2026, time.March, i+1),
			Value: decimal.RequireFromString("100.50"),
		})
	}

	summary := Summarize(points)

	if summary.Count != 5 {
		t.Errorf("expected count 5, got %d", summary.Count)
	}
	if got := summary.Total.StringFixed(2); got != "502.50" {
		t.Errorf("expected total 502.50, got %s", got)
	}
	if got := summary.Average.StringFixed(2); got != "100.50" {
		t.Errorf("expected average 100.50, got %s", got)
	}
}

func TestSummarizeAverageRounding(t *testing.T) {
	points := []RecordPoint{
		{Date: day(2026, time.March, 1), Value: decimal.NewFromInt(10)},
		{Date: day(2026, time.March, 2), Value: decimal.NewFromInt(0)},
		{Date: day(2026, time.March, 3), Value: decimal.NewFromInt(0)},
	}

	summary := Summarize(points)

	if got := summary.Average.StringFixed(2); got != "3.33" {
		t.Errorf("expected average 3.33, got %s", got)
	}
}

func TestSummarizeSeries(t *testing.T) {
	points := []RecordPoint{
		{Date: day(2026, time.April, 12), Value: decimal.NewFromInt(4)},
		{Date: day(2026, time.March, 5), Value: decimal.NewFromInt(1)},
		{Date: day(2026, time.March, 28), Value: decimal.NewFromInt(2)},
		{Date: day(2026, time.May, 1), Value: decimal.NewFromInt(8)},
	}

	summary := Summarize(points)

	if len(summary.Series) != 3 {
		t.Fatalf("expected 3 series points, got %d", len(summary.Series))
	}

	for i := 1; i < len(summary.Series); i++ {
		if !summary.Series[i-1].Period.Before(summary.Series[i].Period) {
			t.Errorf("series not in chronological order at index %d", i)
		}
	}

	seriesTotal := decimal.Zero
	for _, p := range summary.Series {
		seriesTotal = seriesTotal.Add(p.Total)
	}
	if !seriesTotal.Equal(summary.Total) {
		t.Errorf("series totals %s do not sum to overall total %s", seriesTotal, summary.Total)
	}

	march := summary.Series[0]
	if !march.Period.Equal(day(2026, time.March, 1)) {
		t.Errorf("expected first period 2026-03-01, got %s", march.Period)
	}
	if !march.Total.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected march total 3, got %s", march.Total)
	}
}

func TestTruncateMonth(t *testing.T) {
	in := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	got := TruncateMonth(in)
	want := day(2026, time.August, 1)

	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}
