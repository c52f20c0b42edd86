package report

import (
	"Homestock-Backend/domain"
	"Homestock-Backend/entities"
	"Homestock-Backend/internal/utils/export"
	"Homestock-Backend/pkg/notification"
	"Homestock-Backend/pkg/product"
	"Homestock-Backend/pkg/shoppinglist"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	KindConsumption = "consumption"
	KindExpense     = "expense"
	KindWastage     = "wastage"

	topProductsLimit = 5
)

type (
	// ExportResult is a rendered report document ready to be served.
	ExportResult struct {
		Content     []byte
		ContentType string
		FileName    string
	}

	ReportService interface {
		AddConsumption(ctx context.Context, req domain.AddConsumptionRequest, userID string) (domain.ConsumptionEntryResponse, error)
		AddExpense(ctx context.Context, req domain.AddExpenseRequest, userID string) (domain.ExpenseEntryResponse, error)
		AddWastage(ctx context.Context, req domain.AddWastageRequest, userID string) (domain.WastageEntryResponse, error)

		GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error)
		GetConsumptionReport(ctx context.Context, userID string, filter Filter) (domain.ConsumptionReportResponse, error)
		GetExpenseReport(ctx context.Context, userID string, filter Filter) (domain.ExpenseReportResponse, error)
		GetWastageReport(ctx context.Context, userID string, filter Filter) (domain.WastageReportResponse, error)

		GetTrends(ctx context.Context, userID string, kind string) (domain.TrendsResponse, error)
		Export(ctx context.Context, userID string, kind, format string, filter Filter) (ExportResult, error)
	}

	reportService struct {
		reportRepository       ReportRepository
		productRepository      product.ProductRepository
		shoppingListRepository shoppinglist.ShoppingListRepository
		notificationService    notification.NotificationService
	}
)

func NewReportService(
	reportRepository ReportRepository,
	productRepository product.ProductRepository,
	shoppingListRepository shoppinglist.ShoppingListRepository,
	notificationService notification.NotificationService,
) ReportService {
	return &reportService{
		reportRepository:       reportRepository,
		productRepository:      productRepository,
		shoppingListRepository: shoppingListRepository,
		notificationService:    notificationService,
	}
}

func parseRecordDate(value string, now time.Time) (time.Time, error) {
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.After(today) {
		return time.Time{}, domain.ErrFutureDate
	}
	return date, nil
}

func toSummaryResponse(s Summary) domain.SummaryResponse {
	res := domain.SummaryResponse{
		Count:   s.Count,
		Total:   s.Total.StringFixed(2),
		Average: s.Average.StringFixed(2),
		Series:  make([]domain.SeriesPointResponse, 0, len(s.Series)),
	}
	for _, p := range s.Series {
		res.Series = append(res.Series, domain.SeriesPointResponse{
			Period: p.Period.Format(domain.DateLayout),
			Total:  p.Total.StringFixed(2),
		})
	}
	return res
}

func consumptionPoints(records []*entities.ConsumptionRecord) []RecordPoint {
	points := make([]RecordPoint, 0, len(records))
	for _, r := range records {
		points = append(points, RecordPoint{Date: r.ConsumptionDate, Value: r.Quantity})
	}
	return points
}

func expensePoints(records []*entities.ExpenseRecord) []RecordPoint {
	points := make([]RecordPoint, 0, len(records))
	for _, r := range records {
		points = append(points, RecordPoint{Date: r.ShoppingDate, Value: r.TotalAmount})
	}
	return points
}

func wastagePoints(records []*entities.WastageRecord) []RecordPoint {
	points := make([]RecordPoint, 0, len(records))
	for _, r := range records {
		points = append(points, RecordPoint{Date: r.WastageDate, Value: r.Quantity})
	}
	return points
}

func (s *reportService) ownedProduct(ctx context.Context, productID, userID string) (*entities.Product, error) {
	item, err := s.productRepository.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if item.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}
	return item, nil
}

func (s *reportService) AddConsumption(ctx context.Context, req domain.AddConsumptionRequest, userID string) (domain.ConsumptionEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ConsumptionEntryResponse{}, domain.ErrParseUUID
	}

	item, err := s.ownedProduct(ctx, req.ProductID, userID)
	if err != nil {
		return domain.ConsumptionEntryResponse{}, err
	}

	if req.Unit != item.Unit {
		return domain.ConsumptionEntryResponse{}, domain.ErrUnitMismatch
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || !quantity.IsPositive() {
		return domain.ConsumptionEntryResponse{}, domain.ErrInvalidQty
	}

	date, err := parseRecordDate(req.ConsumptionDate, time.Now())
	if err != nil {
		return domain.ConsumptionEntryResponse{}, err
	}

	record := &entities.ConsumptionRecord{
		ID:              uuid.New(),
		UserID:          userUUID,
		ProductID:       item.ID,
		Quantity:        quantity,
		Unit:            req.Unit,
		ConsumptionDate: date,
	}

	if err := s.reportRepository.CreateConsumption(ctx, record); err != nil {
		return domain.ConsumptionEntryResponse{}, err
	}

	// Notifications react to the new record; the record itself stands
	// even when generation fails.
	_ = s.notificationService.GenerateAll(ctx, userID)

	record.Product = item
	return toConsumptionEntry(record), nil
}

func (s *reportService) AddExpense(ctx context.Context, req domain.AddExpenseRequest, userID string) (domain.ExpenseEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ExpenseEntryResponse{}, domain.ErrParseUUID
	}

	list, err := s.shoppingListRepository.GetListByID(ctx, req.ShoppingListID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ExpenseEntryResponse{}, domain.ErrShoppingListMissing
		}
		return domain.ExpenseEntryResponse{}, err
	}
	if list.UserID.String() != userID {
		return domain.ExpenseEntryResponse{}, domain.ErrUserNotAllowed
	}

	amount, err := decimal.NewFromString(req.TotalAmount)
	if err != nil || amount.IsNegative() {
		return domain.ExpenseEntryResponse{}, domain.ErrInvalidAmount
	}

	date, err := parseRecordDate(req.ShoppingDate, time.Now())
	if err != nil {
		return domain.ExpenseEntryResponse{}, err
	}

	record := &entities.ExpenseRecord{
		ID:             uuid.New(),
		UserID:         userUUID,
		ShoppingListID: list.ID,
		TotalAmount:    amount,
		ShoppingDate:   date,
	}

	if err := s.reportRepository.CreateExpense(ctx, record); err != nil {
		return domain.ExpenseEntryResponse{}, err
	}

	_ = s.notificationService.GenerateAll(ctx, userID)

	record.ShoppingList = list
	return toExpenseEntry(record), nil
}

func (s *reportService) AddWastage(ctx context.Context, req domain.AddWastageRequest, userID string) (domain.WastageEntryResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.WastageEntryResponse{}, domain.ErrParseUUID
	}

	item, err := s.ownedProduct(ctx, req.ProductID, userID)
	if err != nil {
		return domain.WastageEntryResponse{}, err
	}

	if req.Unit != item.Unit {
		return domain.WastageEntryResponse{}, domain.ErrUnitMismatch
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || !quantity.IsPositive() {
		return domain.WastageEntryResponse{}, domain.ErrInvalidQty
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return domain.WastageEntryResponse{}, domain.ErrEmptyReason
	}

	date, err := parseRecordDate(req.WastageDate, time.Now())
	if err != nil {
		return domain.WastageEntryResponse{}, err
	}

	record := &entities.WastageRecord{
		ID:          uuid.New(),
		UserID:      userUUID,
		ProductID:   item.ID,
		Quantity:    quantity,
		Unit:        req.Unit,
		WastageDate: date,
		Reason:      reason,
	}

	if err := s.reportRepository.CreateWastage(ctx, record); err != nil {
		return domain.WastageEntryResponse{}, err
	}

	_ = s.notificationService.GenerateAll(ctx, userID)

	record.Product = item
	return toWastageEntry(record), nil
}

func toConsumptionEntry(r *entities.ConsumptionRecord) domain.ConsumptionEntryResponse {
	res := domain.ConsumptionEntryResponse{
		ID:              r.ID.String(),
		Quantity:        r.Quantity.String(),
		Unit:            r.Unit,
		ConsumptionDate: r.ConsumptionDate,
	}
	if r.Product != nil {
		res.Product = r.Product.Name
		if r.Product.Category != nil {
			res.Category = r.Product.Category.Name
		}
	}
	return res
}

func toExpenseEntry(r *entities.ExpenseRecord) domain.ExpenseEntryResponse {
	res := domain.ExpenseEntryResponse{
		ID:           r.ID.String(),
		TotalAmount:  r.TotalAmount.StringFixed(2),
		ShoppingDate: r.ShoppingDate,
	}
	if r.ShoppingList != nil {
		res.ShoppingList = r.ShoppingList.Name
	}
	return res
}

func toWastageEntry(r *entities.WastageRecord) domain.WastageEntryResponse {
	res := domain.WastageEntryResponse{
		ID:          r.ID.String(),
		Quantity:    r.Quantity.String(),
		Unit:        r.Unit,
		WastageDate: r.WastageDate,
		Reason:      r.Reason,
	}
	if r.Product != nil {
		res.Product = r.Product.Name
		if r.Product.Category != nil {
			res.Category = r.Product.Category.Name
		}
	}
	return res
}

// GetDashboard refreshes notifications first, then aggregates the three
// record kinds over the default window plus the most consumed products.
func (s *reportService) GetDashboard(ctx context.Context, userID string) (domain.DashboardResponse, error) {
	if err := s.notificationService.GenerateAll(ctx, userID); err != nil {
		return domain.DashboardResponse{}, err
	}

	now := time.Now()

	consumptions, err := s.reportRepository.GetConsumptions(ctx, userID, Filter{}, now)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	expenses, err := s.reportRepository.GetExpenses(ctx, userID, Filter{}, now)
	if err != nil {
		return domain.DashboardResponse{}, err
	}
	wastages, err := s.reportRepository.GetWastages(ctx, userID, Filter{}, now)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	top, err := s.reportRepository.GetTopProducts(ctx, userID, now.AddDate(0, 0, -30), topProductsLimit)
	if err != nil {
		return domain.DashboardResponse{}, err
	}

	topResponse := make([]domain.TopProductResponse, 0, len(top))
	for _, t := range top {
		topResponse = append(topResponse, domain.TopProductResponse{
			ProductID:     t.ProductID.String(),
			Name:          t.Name,
			TotalQuantity: t.TotalQuantity.StringFixed(2),
			Count:         t.Count,
		})
	}

	return domain.DashboardResponse{
		Consumption: toSummaryResponse(Summarize(consumptionPoints(consumptions))),
		Expense:     toSummaryResponse(Summarize(expensePoints(expenses))),
		Wastage:     toSummaryResponse(Summarize(wastagePoints(wastages))),
		TopProducts: topResponse,
	}, nil
}

func (s *reportService) GetConsumptionReport(ctx context.Context, userID string, filter Filter) (domain.ConsumptionReportResponse, error) {
	records, err := s.reportRepository.GetConsumptions(ctx, userID, filter, time.Now())
	if err != nil {
		return domain.ConsumptionReportResponse{}, err
	}

	entries := make([]domain.ConsumptionEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, toConsumptionEntry(r))
	}

	return domain.ConsumptionReportResponse{
		Summary: toSummaryResponse(Summarize(consumptionPoints(records))),
		Entries: entries,
	}, nil
}

func (s *reportService) GetExpenseReport(ctx context.Context, userID string, filter Filter) (domain.ExpenseReportResponse, error) {
	records, err := s.reportRepository.GetExpenses(ctx, userID, filter, time.Now())
	if err != nil {
		return domain.ExpenseReportResponse{}, err
	}

	entries := make([]domain.ExpenseEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, toExpenseEntry(r))
	}

	return domain.ExpenseReportResponse{
		Summary: toSummaryResponse(Summarize(expensePoints(records))),
		Entries: entries,
	}, nil
}

func (s *reportService) GetWastageReport(ctx context.Context, userID string, filter Filter) (domain.WastageReportResponse, error) {
	records, err := s.reportRepository.GetWastages(ctx, userID, filter, time.Now())
	if err != nil {
		return domain.WastageReportResponse{}, err
	}

	entries := make([]domain.WastageEntryResponse, 0, len(records))
	for _, r := range records {
		entries = append(entries, toWastageEntry(r))
	}

	return domain.WastageReportResponse{
		Summary: toSummaryResponse(Summarize(wastagePoints(records))),
		Entries: entries,
	}, nil
}

func (s *reportService) summaryFor(ctx context.Context, userID, kind string, filter Filter, now time.Time) (Summary, error) {
	switch kind {
	case KindConsumption:
		records, err := s.reportRepository.GetConsumptions(ctx, userID, filter, now)
		if err != nil {
			return Summary{}, err
		}
		return Summarize(consumptionPoints(records)), nil
	case KindExpense:
		records, err := s.reportRepository.GetExpenses(ctx, userID, filter, now)
		if err != nil {
			return Summary{}, err
		}
		return Summarize(expensePoints(records)), nil
	case KindWastage:
		records, err := s.reportRepository.GetWastages(ctx, userID, filter, now)
		if err != nil {
			return Summary{}, err
		}
		return Summarize(wastagePoints(records)), nil
	default:
		return Summary{}, domain.ErrUnknownReportKind
	}
}

// GetTrends shapes the monthly series for the chart endpoints.
func (s *reportService) GetTrends(ctx context.Context, userID string, kind string) (domain.TrendsResponse, error) {
	summary, err := s.summaryFor(ctx, userID, kind, Filter{}, time.Now())
	if err != nil {
		return domain.TrendsResponse{}, err
	}

	labels := make([]string, 0, len(summary.Series))
	data := make([]float64, 0, len(summary.Series))
	for _, p := range summary.Series {
		labels = append(labels, p.Period.Format(domain.DateLayout))
		data = append(data, p.Total.InexactFloat64())
	}

	return domain.TrendsResponse{
		Labels:   labels,
		Datasets: []domain.TrendDataset{{Data: data}},
	}, nil
}

func (s *reportService) exportRows(ctx context.Context, userID, kind string, filter Filter, now time.Time) ([]string, [][]string, error) {
	switch kind {
	case KindConsumption:
		records, err := s.reportRepository.GetConsumptions(ctx, userID, filter, now)
		if err != nil {
			return nil, nil, err
		}
		headers := []string{"Product", "Category", "Quantity", "Unit", "Date"}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			entry := toConsumptionEntry(r)
			rows = append(rows, []string{
				entry.Product,
				entry.Category,
				entry.Quantity,
				entry.Unit,
				entry.ConsumptionDate.Format(domain.DateLayout),
			})
		}
		return headers, rows, nil
	case KindExpense:
		records, err := s.reportRepository.GetExpenses(ctx, userID, filter, now)
		if err != nil {
			return nil, nil, err
		}
		headers := []string{"Shopping list", "Total amount", "Date"}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			entry := toExpenseEntry(r)
			rows = append(rows, []string{
				entry.ShoppingList,
				entry.TotalAmount,
				entry.ShoppingDate.Format(domain.DateLayout),
			})
		}
		return headers, rows, nil
	case KindWastage:
		records, err := s.reportRepository.GetWastages(ctx, userID, filter, now)
		if err != nil {
			return nil, nil, err
		}
		headers := []string{"Product", "Category", "Quantity", "Unit", "Date", "Reason"}
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			entry := toWastageEntry(r)
			rows = append(rows, []string{
				entry.Product,
				entry.Category,
				entry.Quantity,
				entry.Unit,
				entry.WastageDate.Format(domain.DateLayout),
				entry.Reason,
			})
		}
		return headers, rows, nil
	default:
		return nil, nil, domain.ErrUnknownReportKind
	}
}

// Export renders one report kind as CSV or PDF. Any other format is
// rejected before touching the database.
func (s *reportService) Export(ctx context.Context, userID string, kind, format string, filter Filter) (ExportResult, error) {
	if format != "csv" && format != "pdf" {
		return ExportResult{}, domain.ErrUnsupportedFormat
	}

	now := time.Now()
	headers, rows, err := s.exportRows(ctx, userID, kind, filter, now)
	if err != nil {
		return ExportResult{}, err
	}

	fileName := kind + "_report_" + now.Format(domain.DateLayout) + "." + format

	if format == "csv" {
		content, err := export.CSV(headers, rows)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{
			Content:     content,
			ContentType: "text/csv",
			FileName:    fileName,
		}, nil
	}

	title := strings.ToUpper(kind[:1]) + kind[1:] + " report (" + strconv.Itoa(len(rows)) + " records)"
	content, err := export.PDF(title, headers, rows)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{
		Content:     content,
		ContentType: "application/pdf",
		FileName:    fileName,
	}, nil
}
