package notification

import (
	"Homestock-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		RuleData

		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error)
		GetUnreadNotifications(ctx context.Context, userID string) ([]*entities.Notification, error)
		UpdateNotification(ctx context.Context, notification *entities.Notification) error
		MarkAllRead(ctx context.Context, userID string) error
		CountUnread(ctx context.Context, userID string) (int64, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Notification{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) GetUnreadNotifications(ctx context.Context, userID string) ([]*entities.Notification, error) {
	var notifications []*entities.Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) Products(ctx context.Context, userID uuid.UUID) ([]entities.Product, error) {
	var products []entities.Product
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *notificationRepository) WastagesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]entities.WastageRecord, error) {
	var wastages []entities.WastageRecord
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND wastage_date >= ?", userID, since).
		Find(&wastages).Error; err != nil {
		return nil, err
	}
	return wastages, nil
}

func (r *notificationRepository) WastageCountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.WastageRecord{}).
		Where("user_id = ? AND wastage_date >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) ExpenseTotalSince(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&entities.ExpenseRecord{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("user_id = ? AND shopping_date >= ?", userID, since).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *notificationRepository) ConsumptionTotalBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&entities.ConsumptionRecord{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("user_id = ? AND consumption_date >= ? AND consumption_date < ?", userID, from, to).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
