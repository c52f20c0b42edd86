package notification

import (
	"Homestock-Backend/entities"
	"Homestock-Backend/internal/utils"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	// RuleData is the read side every rule evaluates against. It is a
	// narrow slice of the notification repository so rules stay testable
	// with in-memory fakes.
	RuleData interface {
		Products(ctx context.Context, userID uuid.UUID) ([]entities.Product, error)
		WastagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entities.WastageRecord, error)
		WastageCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error)
		ExpenseTotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, error)
		ConsumptionTotalBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	}

	// Rule inspects the current state for one owner and emits the
	// notifications that should be created right now. Rules never
	// deduplicate; re-evaluating recreates whatever still fires.
	Rule interface {
		Name() string
		Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error)
	}

	Thresholds struct {
		Budget           decimal.Decimal
		WastageCount     int64
		ExpiryWindowDays int
	}
)

func DefaultThresholds() Thresholds {
	return Thresholds{
		Budget:           decimal.NewFromInt(1000),
		WastageCount:     5,
		ExpiryWindowDays: 7,
	}
}

// ThresholdsFromConfig reads the configured thresholds, falling back to
// the defaults for missing or unparseable values.
func ThresholdsFromConfig() Thresholds {
	t := DefaultThresholds()

	if v := utils.GetConfig("BUDGET_THRESHOLD"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			t.Budget = d
		}
	}
	if v := utils.GetConfig("WASTAGE_THRESHOLD"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			t.WastageCount = n
		}
	}
	if v := utils.GetConfig("EXPIRY_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			t.ExpiryWindowDays = n
		}
	}

	return t
}

// DefaultRules is the full rule set, evaluated in order by the driver.
// Rules are independent; none of them short-circuits another.
func DefaultRules(t Thresholds) []Rule {
	return []Rule{
		expiringProductsRule{windowDays: t.ExpiryWindowDays},
		expiredProductsRule{},
		lowStockRule{},
		recentWastageRule{},
		wastageBurstRule{threshold: t.WastageCount},
		budgetExceededRule{threshold: t.Budget},
		consumptionTrendRule{},
		wastageSummaryRule{},
	}
}

func productLink(p entities.Product) string {
	return fmt.Sprintf("/products/%s", p.ID.String())
}

type expiringProductsRule struct {
	windowDays int
}

func (r expiringProductsRule) Name() string { return "expiring_products" }

func (r expiringProductsRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	products, err := data.Products(ctx, userID)
	if err != nil {
		return nil, err
	}

	deadline := now.AddDate(0, 0, r.windowDays)

	var out []entities.Notification
	for _, p := range products {
		if !p.IsActive || !p.ExpiryDate.After(now) || p.ExpiryDate.After(deadline) {
			continue
		}
		p := p
		daysLeft := int(p.ExpiryDate.Sub(now).Hours() / 24)
		out = append(out, entities.Notification{
			UserID:    userID,
			Type:      entities.NotificationExpiry,
			Title:     fmt.Sprintf("Product %s is about to expire", p.Name),
			Message:   fmt.Sprintf("Product %s will expire in %d days.", p.Name, daysLeft),
			Link:      productLink(p),
			ProductID: &p.ID,
		})
	}

	return out, nil
}

type expiredProductsRule struct{}

func (r expiredProductsRule) Name() string { return "expired_products" }

func (r expiredProductsRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	products, err := data.Products(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []entities.Notification
	for _, p := range products {
		if p.ExpiryDate.After(now) {
			continue
		}
		p := p
		out = append(out, entities.Notification{
			UserID:    userID,
			Type:      entities.NotificationExpiry,
			Title:     fmt.Sprintf("Product %s has expired", p.Name),
			Message:   fmt.Sprintf("Product %s has already expired.", p.Name),
			Link:      productLink(p),
			ProductID: &p.ID,
		})
	}

	return out, nil
}

type lowStockRule struct{}

func (r lowStockRule) Name() string { return "low_stock" }

func (r lowStockRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	products, err := data.Products(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []entities.Notification
	for _, p := range products {
		if !p.IsActive || p.Quantity.GreaterThan(p.MinQuantity) {
			continue
		}
		p := p
		out = append(out, entities.Notification{
			UserID:    userID,
			Type:      entities.NotificationLowStock,
			Title:     fmt.Sprintf("Product %s is running low", p.Name),
			Message:   fmt.Sprintf("Product %s is running low (%s %s left).", p.Name, p.Quantity.String(), p.Unit),
			Link:      productLink(p),
			ProductID: &p.ID,
		})
	}

	return out, nil
}

type recentWastageRule struct{}

func (r recentWastageRule) Name() string { return "recent_wastage" }

func (r recentWastageRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	wastages, err := data.WastagesSince(ctx, userID, now.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	var out []entities.Notification
	for _, w := range wastages {
		w := w
		name := w.ProductID.String()
		if w.Product != nil {
			name = w.Product.Name
		}
		out = append(out, entities.Notification{
			UserID:    userID,
			Type:      entities.NotificationWastage,
			Title:     fmt.Sprintf("Wastage of product %s", name),
			Message:   fmt.Sprintf("Product %s was recorded as wasted. Reason: %s", name, w.Reason),
			Link:      fmt.Sprintf("/products/%s", w.ProductID.String()),
			ProductID: &w.ProductID,
		})
	}

	return out, nil
}

type wastageBurstRule struct {
	threshold int64
}

func (r wastageBurstRule) Name() string { return "wastage_burst" }

func (r wastageBurstRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	count, err := data.WastageCountSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	if count <= r.threshold {
		return nil, nil
	}

	return []entities.Notification{{
		UserID:  userID,
		Type:    entities.NotificationWastage,
		Title:   "High product wastage",
		Message: fmt.Sprintf("%d wastage records in the last 30 days, exceeding the threshold of %d.", count, r.threshold),
		Link:    "/reports/wastage",
	}}, nil
}

type budgetExceededRule struct {
	threshold decimal.Decimal
}

func (r budgetExceededRule) Name() string { return "budget_exceeded" }

func (r budgetExceededRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	total, err := data.ExpenseTotalSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	if total.LessThanOrEqual(r.threshold) {
		return nil, nil
	}

	return []entities.Notification{{
		UserID:  userID,
		Type:    entities.NotificationBudget,
		Title:   "Budget threshold exceeded",
		Message: fmt.Sprintf("You spent %s in the last 30 days, exceeding the threshold of %s.", total.StringFixed(2), r.threshold.StringFixed(2)),
		Link:    "/reports/expenses",
	}}, nil
}

type consumptionTrendRule struct{}

func (r consumptionTrendRule) Name() string { return "consumption_trend" }

func (r consumptionTrendRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	fifteenDaysAgo := now.AddDate(0, 0, -15)

	firstHalf, err := data.ConsumptionTotalBetween(ctx, userID, thirtyDaysAgo, fifteenDaysAgo)
	if err != nil {
		return nil, err
	}
	secondHalf, err := data.ConsumptionTotalBetween(ctx, userID, fifteenDaysAgo, now)
	if err != nil {
		return nil, err
	}

	switch {
	case secondHalf.GreaterThan(firstHalf.Mul(decimal.NewFromFloat(1.5))):
		return []entities.Notification{{
			UserID:  userID,
			Type:    entities.NotificationConsumption,
			Title:   "Significant consumption increase",
			Message: "Consumption in the last 15 days increased significantly compared to the previous 15 days.",
			Link:    "/reports/consumption",
		}}, nil
	case secondHalf.LessThan(firstHalf.Mul(decimal.NewFromFloat(0.5))):
		return []entities.Notification{{
			UserID:  userID,
			Type:    entities.NotificationConsumption,
			Title:   "Significant consumption decrease",
			Message: "Consumption in the last 15 days decreased significantly compared to the previous 15 days.",
			Link:    "/reports/consumption",
		}}, nil
	}

	return nil, nil
}

type wastageSummaryRule struct{}

func (r wastageSummaryRule) Name() string { return "wastage_summary" }

func (r wastageSummaryRule) Evaluate(ctx context.Context, data RuleData, userID uuid.UUID, now time.Time) ([]entities.Notification, error) {
	count, err := data.WastageCountSince(ctx, userID, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return nil, nil
	}

	return []entities.Notification{{
		UserID:  userID,
		Type:    entities.NotificationReport,
		Title:   "Product wastage summary",
		Message: fmt.Sprintf("%d wastage records in the last 30 days.", count),
		Link:    "/reports/wastage",
	}}, nil
}

// ShoppingListCreated is emitted directly by the shopping list service
// when a list is created, not polled by the rule driver.
func ShoppingListCreated(list *entities.ShoppingList) *entities.Notification {
	return &entities.Notification{
		ID:             uuid.New(),
		UserID:         list.UserID,
		Type:           entities.NotificationShoppingList,
		Title:          "New shopping list",
		Message:        fmt.Sprintf("Shopping list %q was created.", list.Name),
		Link:           fmt.Sprintf("/shopping-lists/%s", list.ID.String()),
		ShoppingListID: &list.ID,
	}
}
