package notification

import (
	"Homestock-Backend/entities"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeRuleData struct {
	now          time.Time
	products     []entities.Product
	wastages     []entities.WastageRecord
	wastageCount int64
	expenseTotal decimal.Decimal
	firstHalf    decimal.Decimal
	secondHalf   decimal.Decimal
}

func (f *fakeRuleData) Products(ctx context.Context, userID uuid.UUID) ([]entities.Product, error) {
	return f.products, nil
}

func (f *fakeRuleData) WastagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entities.WastageRecord, error) {
	return f.wastages, nil
}

func (f *fakeRuleData) WastageCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	return f.wastageCount, nil
}

func (f *fakeRuleData) ExpenseTotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	return f.expenseTotal, nil
}

func (f *fakeRuleData) ConsumptionTotalBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	if to.Equal(f.now) {
		return f.secondHalf, nil
	}
	return f.firstHalf, nil
}

func testProduct(name string, expiry time.Time, qty, minQty int64, active bool) entities.Product {
	return entities.Product{
		ID:          uuid.New(),
		Name:        name,
		ExpiryDate:  expiry,
		Quantity:    decimal.NewFromInt(qty),
		MinQuantity: decimal.NewFromInt(minQty),
		Unit:        "szt",
		IsActive:    active,
	}
}

var testNow = time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

func TestExpiringProductsRule(t *testing.T) {
	userID := uuid.New()
	data := &fakeRuleData{
		now: testNow,
		products: []entities.Product{
			testProduct("Milk", testNow.AddDate(0, 0, 3), 5, 1, true),
			testProduct("Flour", testNow.AddDate(0, 0, 30), 5, 1, true),
			testProduct("Old cheese", testNow.AddDate(0, 0, -1), 5, 1, true),
			testProduct("Hidden", testNow.AddDate(0, 0, 2), 5, 1, false),
		},
	}

	out, err := expiringProductsRule{windowDays: 7}.Evaluate(context.Background(), data, userID, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out))
	}
	if out[0].Type != entities.NotificationExpiry {
		t.Errorf("expected type %q, got %q", entities.NotificationExpiry, out[0].Type)
	}
	if !strings.Contains(out[0].Message, "3 days") {
		t.Errorf("expected message to mention days left, got %q", out[0].Message)
	}
	if out[0].ProductID == nil {
		t.Error("expected product reference")
	}
}

func TestExpiredProductsRule(t *testing.T) {
	userID := uuid.New()
	data := &fakeRuleData{
		now: testNow,
		products: []entities.Product{
			testProduct("Yoghurt", testNow.AddDate(0, 0, -2), 5, 1, true),
			testProduct("Fresh", testNow.AddDate(0, 0, 10), 5, 1, true),
		},
	}

	out, err := expiredProductsRule{}.Evaluate(context.Background(), data, userID, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out))
	}
	if !strings.Contains(out[0].Message, "expired") {
		t.Errorf("unexpected message %q", out[0].Message)
	}
}

func TestLowStockRule(t *testing.T) {
	userID := uuid.New()
	data := &fakeRuleData{
		now: testNow,
		products: []entities.Product{
			testProduct("Rice", testNow.AddDate(0, 1, 0), 1, 2, true),
			testProduct("Pasta", testNow.AddDate(0, 1, 0), 10, 2, true),
			testProduct("Disabled", testNow.AddDate(0, 1, 0), 0, 2, false),
		},
	}

	out, err := lowStockRule{}.Evaluate(context.Background(), data, userID, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out))
	}
	if out[0].Type != entities.NotificationLowStock {
		t.Errorf("expected type %q, got %q", entities.NotificationLowStock, out[0].Type)
	}
	if !strings.Contains(out[0].Message, "Rice") {
		t.Errorf("unexpected message %q", out[0].Message)
	}
}

func TestRecentWastageRule(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	data := &fakeRuleData{
		now: testNow,
		wastages: []entities.WastageRecord{
			{
				ID:        uuid.New(),
				ProductID: productID,
				Reason:    "went moldy",
				Product:   &entities.Product{ID: productID, Name: "Bread"},
			},
			{
				ID:        uuid.New(),
				ProductID: uuid.New(),
				Reason:    "spilled",
			},
		},
	}

	out, err := recentWastageRule{}.Evaluate(context.Background(), data, userID, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected one notification per record, got %d", len(out))
	}
	if !strings.Contains(out[0].Message, "Bread") || !strings.Contains(out[0].Message, "went moldy") {
		t.Errorf("unexpected message %q", out[0].Message)
	}
}

func TestWastageBurstRule(t *testing.T) {
	userID := uuid.New()

	t.Run("above threshold", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, wastageCount: 6}
		out, err := wastageBurstRule{threshold: 5}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(out))
		}
		if !strings.Contains(out[0].Message, "6 wastage records") {
			t.Errorf("unexpected message %q", out[0].Message)
		}
	})

	t.Run("at threshold stays silent", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, wastageCount: 5}
		out, err := wastageBurstRule{threshold: 5}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no notifications, got %d", len(out))
		}
	})
}

func TestBudgetExceededRule(t *testing.T) {
	userID := uuid.New()
	threshold := decimal.NewFromInt(1000)

	t.Run("over budget", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, expenseTotal: decimal.RequireFromString("1500.25")}
		out, err := budgetExceededRule{threshold: threshold}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(out))
		}
		if !strings.Contains(out[0].Message, "1500.25") {
			t.Errorf("unexpected message %q", out[0].Message)
		}
	})

	t.Run("exactly at budget stays silent", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, expenseTotal: decimal.NewFromInt(1000)}
		out, err := budgetExceededRule{threshold: threshold}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no notifications, got %d", len(out))
		}
	})
}

func TestConsumptionTrendRule(t *testing.T) {
	userID := uuid.New()

	cases := []struct {
		name    string
		first   decimal.Decimal
		second  decimal.Decimal
		fires   bool
		mention string
	}{
		{"sharp increase", decimal.NewFromInt(10), decimal.NewFromInt(20), true, "increased"},
		{"sharp decrease", decimal.NewFromInt(20), decimal.NewFromInt(5), true, "decreased"},
		{"steady", decimal.NewFromInt(10), decimal.NewFromInt(12), false, ""},
		{"no data", decimal.Zero, decimal.Zero, false, ""},
		{"fresh start counts as increase", decimal.Zero, decimal.NewFromInt(3), true, "increased"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := &fakeRuleData{now: testNow, firstHalf: tc.first, secondHalf: tc.second}
			out, err := consumptionTrendRule{}.Evaluate(context.Background(), data, userID, testNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.fires != (len(out) == 1) {
				t.Fatalf("fires=%v but got %d notifications", tc.fires, len(out))
			}
			if tc.fires && !strings.Contains(out[0].Message, tc.mention) {
				t.Errorf("expected %q in message %q", tc.mention, out[0].Message)
			}
		})
	}
}

func TestWastageSummaryRule(t *testing.T) {
	userID := uuid.New()

	t.Run("with records", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, wastageCount: 3}
		out, err := wastageSummaryRule{}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(out))
		}
		if out[0].Type != entities.NotificationReport {
			t.Errorf("expected type %q, got %q", entities.NotificationReport, out[0].Type)
		}
		if !strings.Contains(out[0].Message, "3 wastage records") {
			t.Errorf("unexpected message %q", out[0].Message)
		}
	})

	t.Run("without records", func(t *testing.T) {
		data := &fakeRuleData{now: testNow, wastageCount: 0}
		out, err := wastageSummaryRule{}.Evaluate(context.Background(), data, userID, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected no notifications, got %d", len(out))
		}
	})
}

func TestDefaultRulesOrder(t *testing.T) {
	rules := DefaultRules(DefaultThresholds())

	want := []string{
		"expiring_products",
		"expired_products",
		"low_stock",
		"recent_wastage",
		"wastage_burst",
		"budget_exceeded",
		"consumption_trend",
		"wastage_summary",
	}

	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, r := range rules {
		if r.Name() != want[i] {
			t.Errorf("rule %d: expected %q, got %q", i, want[i], r.Name())
		}
	}
}

func TestShoppingListCreated(t *testing.T) {
	list := &entities.ShoppingList{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Name:   "Weekly groceries",
	}

	n := ShoppingListCreated(list)

	if n.Type != entities.NotificationShoppingList {
		t.Errorf("expected type %q, got %q", entities.NotificationShoppingList, n.Type)
	}
	if n.UserID != list.UserID {
		t.Error("expected notification for the list owner")
	}
	if n.ShoppingListID == nil || *n.ShoppingListID != list.ID {
		t.Error("expected list reference")
	}
	if !strings.Contains(n.Message, "Weekly groceries") {
		t.Errorf("unexpected message %q", n.Message)
	}
}
