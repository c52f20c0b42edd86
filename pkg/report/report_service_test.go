package report

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type mockReportRepository struct {
	consumptions []*entities.ConsumptionRecord
	expenses     []*entities.ExpenseRecord
	wastages     []*entities.WastageRecord
	topProducts  []TopProduct
}

func (m *mockReportRepository) CreateConsumption(ctx context.Context, record *entities.ConsumptionRecord) error {
	m.consumptions = append(m.consumptions, record)
	return nil
}

func (m *mockReportRepository) CreateExpense(ctx context.Context, record *entities.ExpenseRecord) error {
	m.expenses = append(m.expenses, record)
	return nil
}

func (m *mockReportRepository) CreateWastage(ctx context.Context, record *entities.WastageRecord) error {
	m.wastages = append(m.wastages, record)
	return nil
}

func (m *mockReportRepository) GetConsumptions(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ConsumptionRecord, error) {
	if filter.ProductID == nil {
		return m.consumptions, nil
	}
	var out []*entities.ConsumptionRecord
	for _, r := range m.consumptions {
		if r.ProductID == *filter.ProductID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockReportRepository) GetExpenses(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ExpenseRecord, error) {
	return m.expenses, nil
}

func (m *mockReportRepository) GetWastages(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.WastageRecord, error) {
	return m.wastages, nil
}

func (m *mockReportRepository) GetTopProducts(ctx context.Context, userID string, since time.Time, limit int) ([]TopProduct, error) {
	return m.topProducts, nil
}

type mockProductRepository struct {
	products map[string]*entities.Product
}

func (m *mockProductRepository) AddProduct(ctx context.Context, product *entities.Product) error {
	m.products[product.ID.String()] = product
	return nil
}

func (m *mockProductRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return nil
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, id string) error { return nil }

func (m *mockProductRepository) GetProducts(ctx context.Context, userID string, page, limit int) ([]*entities.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepository) AddCategory(ctx context.Context, category *entities.Category) error {
	return nil
}

func (m *mockProductRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return nil
}

func (m *mockProductRepository) DeleteCategory(ctx context.Context, id string) error { return nil }

func (m *mockProductRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return nil, nil
}

type mockShoppingListRepository struct {
	lists map[string]*entities.ShoppingList
}

func (m *mockShoppingListRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	m.lists[list.ID.String()] = list
	return nil
}

func (m *mockShoppingListRepository) GetListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	if l, ok := m.lists[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShoppingListRepository) GetLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	return nil, nil
}

func (m *mockShoppingListRepository) UpdateList(ctx context.Context, list *entities.ShoppingList) error {
	return nil
}

func (m *mockShoppingListRepository) DeleteList(ctx context.Context, id string) error { return nil }

func (m *mockShoppingListRepository) AddItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return nil
}

func (m *mockShoppingListRepository) GetItemByID(ctx context.Context, id string) (*entities.ShoppingListItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShoppingListRepository) UpdateItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return nil
}

func (m *mockShoppingListRepository) DeleteItem(ctx context.Context, id string) error { return nil }

type mockNotificationService struct {
	generated int
}

func (m *mockNotificationService) GenerateAll(ctx context.Context, userID string) error {
	m.generated++
	return nil
}

func (m *mockNotificationService) GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id string, userID string) error {
	return nil
}

func (m *mockNotificationService) MarkAllRead(ctx context.Context, userID string) error { return nil }

func (m *mockNotificationService) UnreadCount(ctx context.Context, userID string) (domain.UnreadCountResponse, error) {
	return domain.UnreadCountResponse{}, nil
}

func (m *mockNotificationService) Refresh(ctx context.Context, userID string) ([]domain.NotificationResponse, int64, error) {
	return nil, 0, nil
}

func (m *mockNotificationService) SendDigest(ctx context.Context, userID string) error { return nil }

type reportFixture struct {
	service       ReportService
	reports       *mockReportRepository
	products      *mockProductRepository
	lists         *mockShoppingListRepository
	notifications *mockNotificationService
	userID        uuid.UUID
}

func newReportFixture() *reportFixture {
	reports := &mockReportRepository{}
	products := &mockProductRepository{products: make(map[string]*entities.Product)}
	lists := &mockShoppingListRepository{lists: make(map[string]*entities.ShoppingList)}
	notifications := &mockNotificationService{}

	return &reportFixture{
		service:       NewReportService(reports, products, lists, notifications),
		reports:       reports,
		products:      products,
		lists:         lists,
		notifications: notifications,
		userID:        uuid.New(),
	}
}

func (f *reportFixture) addProduct(unit string) *entities.Product {
	p := &entities.Product{
		ID:       uuid.New(),
		UserID:   f.userID,
		Name:     "Milk",
		Unit:     unit,
		IsActive: true,
	}
	f.products.products[p.ID.String()] = p
	return p
}

func yesterday() string {
	return time.Now().AddDate(0, 0, -1).Format(domain.DateLayout)
}

func TestAddConsumption(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("l")

	res, err := f.service.AddConsumption(context.Background(), domain.AddConsumptionRequest{
		ProductID:       p.ID.String(),
		Quantity:        "2.5",
		Unit:            "l",
		ConsumptionDate: yesterday(),
	}, f.userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.reports.consumptions) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(f.reports.consumptions))
	}
	if res.Product != "Milk" {
		t.Errorf("expected product name in response, got %q", res.Product)
	}
	if f.notifications.generated != 1 {
		t.Errorf("expected notification generation after the record, got %d runs", f.notifications.generated)
	}
}

func TestAddConsumptionValidation(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	foreign := &entities.Product{ID: uuid.New(), UserID: uuid.New(), Name: "Other", Unit: "kg"}
	f.products.products[foreign.ID.String()] = foreign

	base := domain.AddConsumptionRequest{
		ProductID:       p.ID.String(),
		Quantity:        "1",
		Unit:            "kg",
		ConsumptionDate: yesterday(),
	}

	cases := []struct {
		name    string
		mutate  func(r *domain.AddConsumptionRequest)
		wantErr error
	}{
		{"unknown product", func(r *domain.AddConsumptionRequest) { r.ProductID = uuid.New().String() }, domain.ErrProductNotFound},
		{"foreign product", func(r *domain.AddConsumptionRequest) { r.ProductID = foreign.ID.String() }, domain.ErrUserNotAllowed},
		{"unit mismatch", func(r *domain.AddConsumptionRequest) { r.Unit = "l" }, domain.ErrUnitMismatch},
		{"zero quantity", func(r *domain.AddConsumptionRequest) { r.Quantity = "0" }, domain.ErrInvalidQty},
		{"malformed quantity", func(r *domain.AddConsumptionRequest) { r.Quantity = "much" }, domain.ErrInvalidQty},
		{"future date", func(r *domain.AddConsumptionRequest) {
			r.ConsumptionDate = time.Now().AddDate(0, 0, 2).Format(domain.DateLayout)
		}, domain.ErrFutureDate},
		{"malformed date", func(r *domain.AddConsumptionRequest) { r.ConsumptionDate = "31-12-2026" }, domain.ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base
			tc.mutate(&req)
			_, err := f.service.AddConsumption(context.Background(), req, f.userID.String())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	if len(f.reports.consumptions) != 0 {
		t.Errorf("expected no stored records, got %d", len(f.reports.consumptions))
	}
	if f.notifications.generated != 0 {
		t.Errorf("expected no notification runs, got %d", f.notifications.generated)
	}
}

func TestAddExpense(t *testing.T) {
	f := newReportFixture()
	list := &entities.ShoppingList{ID: uuid.New(), UserID: f.userID, Name: "Groceries"}
	f.lists.lists[list.ID.String()] = list

	foreign := &entities.ShoppingList{ID: uuid.New(), UserID: uuid.New(), Name: "Not mine"}
	f.lists.lists[foreign.ID.String()] = foreign

	t.Run("success", func(t *testing.T) {
		res, err := f.service.AddExpense(context.Background(), domain.AddExpenseRequest{
			ShoppingListID: list.ID.String(),
			TotalAmount:    "120.99",
			ShoppingDate:   yesterday(),
		}, f.userID.String())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalAmount != "120.99" {
			t.Errorf("expected amount 120.99, got %q", res.TotalAmount)
		}
		if res.ShoppingList != "Groceries" {
			t.Errorf("expected list name, got %q", res.ShoppingList)
		}
	})

	t.Run("foreign list", func(t *testing.T) {
		_, err := f.service.AddExpense(context.Background(), domain.AddExpenseRequest{
			ShoppingListID: foreign.ID.String(),
			TotalAmount:    "10",
			ShoppingDate:   yesterday(),
		}, f.userID.String())
		if !errors.Is(err, domain.ErrUserNotAllowed) {
			t.Errorf("expected ErrUserNotAllowed, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := f.service.AddExpense(context.Background(), domain.AddExpenseRequest{
			ShoppingListID: list.ID.String(),
			TotalAmount:    "-5",
			ShoppingDate:   yesterday(),
		}, f.userID.String())
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("missing list", func(t *testing.T) {
		_, err := f.service.AddExpense(context.Background(), domain.AddExpenseRequest{
			ShoppingListID: uuid.New().String(),
			TotalAmount:    "10",
			ShoppingDate:   yesterday(),
		}, f.userID.String())
		if !errors.Is(err, domain.ErrShoppingListMissing) {
			t.Errorf("expected ErrShoppingListMissing, got %v", err)
		}
	})
}

func TestAddWastageRequiresReason(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	_, err := f.service.AddWastage(context.Background(), domain.AddWastageRequest{
		ProductID:   p.ID.String(),
		Quantity:    "1",
		Unit:        "kg",
		WastageDate: yesterday(),
		Reason:      "   ",
	}, f.userID.String())
	if !errors.Is(err, domain.ErrEmptyReason) {
		t.Errorf("expected ErrEmptyReason, got %v", err)
	}
}

func TestGetDashboard(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	date := time.Now().AddDate(0, 0, -3)
	f.reports.consumptions = []*entities.ConsumptionRecord{
		{ID: uuid.New(), UserID: f.userID, ProductID: p.ID, Quantity: decimal.NewFromInt(2), Unit: "kg", ConsumptionDate: date, Product: p},
	}
	f.reports.topProducts = []TopProduct{
		{ProductID: p.ID, Name: p.Name, TotalQuantity: decimal.NewFromInt(2), Count: 1},
	}

	res, err := f.service.GetDashboard(context.Background(), f.userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.notifications.generated != 1 {
		t.Errorf("expected notifications to refresh before aggregation, got %d runs", f.notifications.generated)
	}
	if res.Consumption.Count != 1 {
		t.Errorf("expected consumption count 1, got %d", res.Consumption.Count)
	}
	if res.Consumption.Total != "2.00" {
		t.Errorf("expected total 2.00, got %q", res.Consumption.Total)
	}
	if len(res.TopProducts) != 1 || res.TopProducts[0].Name != "Milk" {
		t.Errorf("unexpected top products %+v", res.TopProducts)
	}
}

func TestGetConsumptionReportUnknownProduct(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	f.reports.consumptions = []*entities.ConsumptionRecord{
		{ID: uuid.New(), UserID: f.userID, ProductID: p.ID, Quantity: decimal.NewFromInt(2), Unit: "kg", ConsumptionDate: time.Now().AddDate(0, 0, -2), Product: p},
	}

	unknown := uuid.New()
	res, err := f.service.GetConsumptionReport(context.Background(), f.userID.String(), Filter{ProductID: &unknown})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Summary.Count != 0 {
		t.Errorf("expected empty summary, got count %d", res.Summary.Count)
	}
	if res.Summary.Total != "0.00" {
		t.Errorf("expected zero total, got %q", res.Summary.Total)
	}
	if len(res.Summary.Series) != 0 {
		t.Errorf("expected no series points, got %d", len(res.Summary.Series))
	}
	if len(res.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(res.Entries))
	}
}

func TestGetTrends(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	march := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 2, 0, 0, 0, 0, time.UTC)
	f.reports.consumptions = []*entities.ConsumptionRecord{
		{ID: uuid.New(), UserID: f.userID, ProductID: p.ID, Quantity: decimal.NewFromInt(3), ConsumptionDate: march},
		{ID: uuid.New(), UserID: f.userID, ProductID: p.ID, Quantity: decimal.NewFromInt(5), ConsumptionDate: april},
	}

	res, err := f.service.GetTrends(context.Background(), f.userID.String(), KindConsumption)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Labels) != 2 || res.Labels[0] != "2026-03-01" || res.Labels[1] != "2026-04-01" {
		t.Errorf("unexpected labels %v", res.Labels)
	}
	if len(res.Datasets) != 1 {
		t.Fatalf("expected a single dataset, got %d", len(res.Datasets))
	}
	if got := res.Datasets[0].Data; len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("unexpected data %v", got)
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := f.service.GetTrends(context.Background(), f.userID.String(), "savings")
		if !errors.Is(err, domain.ErrUnknownReportKind) {
			t.Errorf("expected ErrUnknownReportKind, got %v", err)
		}
	})
}

func TestExport(t *testing.T) {
	f := newReportFixture()
	p := f.addProduct("kg")

	date := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	f.reports.wastages = []*entities.WastageRecord{
		{ID: uuid.New(), UserID: f.userID, ProductID: p.ID, Quantity: decimal.NewFromInt(1), Unit: "kg", WastageDate: date, Reason: "spoiled", Product: p},
	}

	t.Run("csv", func(t *testing.T) {
		res, err := f.service.Export(context.Background(), f.userID.String(), KindWastage, "csv", Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ContentType != "text/csv" {
			t.Errorf("expected text/csv, got %q", res.ContentType)
		}
		body := string(res.Content)
		if !strings.Contains(body, "Milk") || !strings.Contains(body, "spoiled") {
			t.Errorf("expected record fields in export, got %q", body)
		}
		if !strings.HasPrefix(body, "Product,Category,Quantity,Unit,Date,Reason") {
			t.Errorf("expected header row, got %q", body)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		res, err := f.service.Export(context.Background(), f.userID.String(), KindWastage, "pdf", Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ContentType != "application/pdf" {
			t.Errorf("expected application/pdf, got %q", res.ContentType)
		}
		if !strings.HasPrefix(string(res.Content), "%PDF") {
			t.Error("expected a PDF document")
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := f.service.Export(context.Background(), f.userID.String(), KindWastage, "xlsx", Filter{})
		if !errors.Is(err, domain.ErrUnsupportedFormat) {
			t.Errorf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := f.service.Export(context.Background(), f.userID.String(), "savings", "csv", Filter{})
		if !errors.Is(err, domain.ErrUnknownReportKind) {
			t.Errorf("expected ErrUnknownReportKind, got %v", err)
		}
	})
}
