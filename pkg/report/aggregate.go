package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// RecordPoint is one dated value extracted from a consumption,
	// expense or wastage row.
	RecordPoint struct {
		Date  time.Time
		Value decimal.Decimal
	}

	// SeriesPoint is the summed value of one calendar month.
	SeriesPoint struct {
		Period time.Time
		Total  decimal.Decimal
	}

	Summary struct {
		Count   int64
		Total   decimal.Decimal
		Average decimal.Decimal
		Series  []SeriesPoint
	}
)

// TruncateMonth drops everything below the calendar month.
func TruncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Summarize computes count, total, average and the month-bucketed series
// for a set of points. An empty input yields the zero summary, never an
// error; Average is Total/Count rounded to two places when Count > 0.
func Summarize(points []RecordPoint) Summary {
	summary := Summary{
		Total:   decimal.Zero,
		Average: decimal.Zero,
		Series:  []SeriesPoint{},
	}

	if len(points) == 0 {
		return summary
	}

	buckets := make(map[time.Time]decimal.Decimal)
	for _, p := range points {
		summary.Count++
		summary.Total = summary.Total.Add(p.Value)

		period := TruncateMonth(p.Date)
		buckets[period] = buckets[period].Add(p.Value)
	}

	summary.Average = summary.Total.DivRound(decimal.NewFromInt(summary.Count), 2)

	for period, total := range buckets {
		summary.Series = append(summary.Series, SeriesPoint{Period: period, Total: total})
	}
	sort.Slice(summary.Series, func(i, j int) bool {
		return summary.Series[i].Period.Before(summary.Series[j].Period)
	})

	return summary
}
