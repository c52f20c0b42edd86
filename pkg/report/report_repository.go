package report

import (
	"Homestock-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	// TopProduct is one row of the dashboard's most-consumed ranking.
	TopProduct struct {
		ProductID     uuid.UUID       `json:"product_id"`
		Name          string          `json:"name"`
		TotalQuantity decimal.Decimal `json:"total_quantity"`
		Count         int64           `json:"count"`
	}

	ReportRepository interface {
		CreateConsumption(ctx context.Context, record *entities.ConsumptionRecord) error
		CreateExpense(ctx context.Context, record *entities.ExpenseRecord) error
		CreateWastage(ctx context.Context, record *entities.WastageRecord) error

		GetConsumptions(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ConsumptionRecord, error)
		GetExpenses(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ExpenseRecord, error)
		GetWastages(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.WastageRecord, error)

		GetTopProducts(ctx context.Context, userID string, since time.Time, limit int) ([]TopProduct, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateConsumption(ctx context.Context, record *entities.ConsumptionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *reportRepository) CreateExpense(ctx context.Context, record *entities.ExpenseRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *reportRepository) CreateWastage(ctx context.Context, record *entities.WastageRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *reportRepository) GetConsumptions(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ConsumptionRecord, error) {
	var records []*entities.ConsumptionRecord

	start, end := filter.WindowOrDefault(now)
	query := r.db.WithContext(ctx).
		Where("consumption_records.user_id = ?", userID).
		Where("consumption_records.consumption_date BETWEEN ? AND ?", start, end)

	if filter.ProductID != nil {
		query = query.Where("consumption_records.product_id = ?", *filter.ProductID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN products ON products.id = consumption_records.product_id").
			Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.Min != nil {
		query = query.Where("consumption_records.quantity >= ?", *filter.Min)
	}
	if filter.Max != nil {
		query = query.Where("consumption_records.quantity <= ?", *filter.Max)
	}

	if err := query.
		Preload("Product").
		Preload("Product.Category").
		Order("consumption_records.consumption_date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *reportRepository) GetExpenses(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.ExpenseRecord, error) {
	var records []*entities.ExpenseRecord

	start, end := filter.WindowOrDefault(now)
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("shopping_date BETWEEN ? AND ?", start, end)

	if filter.ShoppingListID != nil {
		query = query.Where("shopping_list_id = ?", *filter.ShoppingListID)
	}
	if filter.Min != nil {
		query = query.Where("total_amount >= ?", *filter.Min)
	}
	if filter.Max != nil {
		query = query.Where("total_amount <= ?", *filter.Max)
	}

	if err := query.
		Preload("ShoppingList").
		Order("shopping_date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *reportRepository) GetWastages(ctx context.Context, userID string, filter Filter, now time.Time) ([]*entities.WastageRecord, error) {
	var records []*entities.WastageRecord

	start, end := filter.WindowOrDefault(now)
	query := r.db.WithContext(ctx).
		Where("wastage_records.user_id = ?", userID).
		Where("wastage_records.wastage_date BETWEEN ? AND ?", start, end)

	if filter.ProductID != nil {
		query = query.Where("wastage_records.product_id = ?", *filter.ProductID)
	}
	if filter.CategoryID != nil {
		query = query.
			Joins("JOIN products ON products.id = wastage_records.product_id").
			Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.Reason != "" {
		query = query.Where("wastage_records.reason ILIKE ?", "%"+filter.Reason+"%")
	}
	if filter.Min != nil {
		query = query.Where("wastage_records.quantity >= ?", *filter.Min)
	}
	if filter.Max != nil {
		query = query.Where("wastage_records.quantity <= ?", *filter.Max)
	}

	if err := query.
		Preload("Product").
		Preload("Product.Category").
		Order("wastage_records.wastage_date desc").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *reportRepository) GetTopProducts(ctx context.Context, userID string, since time.Time, limit int) ([]TopProduct, error) {
	var top []TopProduct

	err := r.db.WithContext(ctx).
		Model(&entities.ConsumptionRecord{}).
		Select("consumption_records.product_id as product_id, products.name as name, SUM(consumption_records.quantity) as total_quantity, COUNT(consumption_records.id) as count").
		Joins("JOIN products ON products.id = consumption_records.product_id").
		Where("consumption_records.user_id = ? AND consumption_records.consumption_date >= ?", userID, since).
		Group("consumption_records.product_id, products.name").
		Order("total_quantity desc").
		Limit(limit).
		Scan(&top).Error
	if err != nil {
		return nil, err
	}

	return top, nil
}
