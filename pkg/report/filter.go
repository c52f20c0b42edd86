package report

import (
	"Homestock-Backend/domain"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Filter narrows a report query. Every field is optional; the zero
// value selects the whole window.
type Filter struct {
	StartDate      *time.Time
	EndDate        *time.Time
	ProductID      *uuid.UUID
	CategoryID     *uuid.UUID
	ShoppingListID *uuid.UUID
	Reason         string
	Min            *decimal.Decimal
	Max            *decimal.Decimal
}

// ParseFilter builds a Filter from raw query values. Unparseable or
// negative values are dropped rather than rejected, so a bad filter
// degrades to the unfiltered query. The query getter returns "" for
// absent keys, matching fiber's Ctx.Query.
func ParseFilter(query func(key string) string, minKey, maxKey string) Filter {
	var f Filter

	if v := query("start_date"); v != "" {
		if t, err := time.Parse(domain.DateLayout, v); err == nil {
			f.StartDate = &t
		}
	}
	if v := query("end_date"); v != "" {
		if t, err := time.Parse(domain.DateLayout, v); err == nil {
			f.EndDate = &t
		}
	}
	if v := query("product"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.ProductID = &id
		}
	}
	if v := query("category"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.CategoryID = &id
		}
	}
	if v := query("shopping_list"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			f.ShoppingListID = &id
		}
	}
	f.Reason = strings.TrimSpace(query("reason"))

	if v := query(minKey); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			f.Min = &d
		}
	}
	if v := query(maxKey); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && !d.IsNegative() {
			f.Max = &d
		}
	}

	return f
}

// WindowOrDefault returns the filter's window, falling back to the
// trailing 30 days ending at now.
func (f Filter) WindowOrDefault(now time.Time) (time.Time, time.Time) {
	start := now.AddDate(0, 0, -30)
	end := now
	if f.StartDate != nil {
		start = *f.StartDate
	}
	if f.EndDate != nil {
		end = *f.EndDate
	}
	return start, end
}
